package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secretary-api/core/cache"
	"secretary-api/core/errors"
	calentity "secretary-api/modules/calendar/entity"
	reqentity "secretary-api/modules/request/entity"
	"secretary-api/modules/session/entity"
)

func TestSessionRepository_RoundTrip(t *testing.T) {
	repo := NewSessionRepository(cache.NewMemoryCache(), time.Minute)

	session := entity.NewBookingSession(reqentity.MeetingRequest{
		Email:    "ziad@example.com",
		Topic:    "Budget review",
		Priority: 7,
	})
	session.Candidates = []calentity.Candidate{
		{
			Start: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC),
		},
	}

	require.Nil(t, repo.Save(context.Background(), session))

	loaded, appErr := repo.Get(context.Background(), session.ID)
	require.Nil(t, appErr)
	assert.Equal(t, session.ID, loaded.ID)
	assert.Equal(t, session.State, loaded.State)
	assert.Equal(t, "Budget review", loaded.Request.Topic)
	require.Len(t, loaded.Candidates, 1)
	assert.True(t, loaded.Candidates[0].Start.Equal(session.Candidates[0].Start))
}

func TestSessionRepository_MissMapsToNotFound(t *testing.T) {
	repo := NewSessionRepository(cache.NewMemoryCache(), time.Minute)

	loaded, appErr := repo.Get(context.Background(), uuid.New())
	assert.Nil(t, loaded)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestSessionRepository_Delete(t *testing.T) {
	repo := NewSessionRepository(cache.NewMemoryCache(), time.Minute)

	session := entity.NewBookingSession(reqentity.MeetingRequest{
		Email: "ziad@example.com", Topic: "Sync", Priority: 1,
	})
	require.Nil(t, repo.Save(context.Background(), session))
	require.Nil(t, repo.Delete(context.Background(), session.ID))

	_, appErr := repo.Get(context.Background(), session.ID)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}
