package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secretary-api/core/errors"
)

func TestSlotToken_RoundTrip(t *testing.T) {
	sessionID := uuid.New()
	slotStart := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	token, err := SignSlotToken("secret", sessionID, slotStart, 30, time.Hour)
	require.NoError(t, err)

	claims, appErr := VerifySlotToken("secret", token)
	require.Nil(t, appErr)
	assert.Equal(t, sessionID.String(), claims.SessionID)
	assert.Equal(t, slotStart.Unix(), claims.SlotStart)
	assert.Equal(t, 30, claims.DurationMinutes)
}

func TestSlotToken_Expired(t *testing.T) {
	token, err := SignSlotToken("secret", uuid.New(), time.Now(), 30, -time.Minute)
	require.NoError(t, err)

	claims, appErr := VerifySlotToken("secret", token)
	assert.Nil(t, claims)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrTokenExpired, appErr.Code)
}

func TestSlotToken_WrongSecret(t *testing.T) {
	token, err := SignSlotToken("secret", uuid.New(), time.Now(), 30, time.Hour)
	require.NoError(t, err)

	claims, appErr := VerifySlotToken("other-secret", token)
	assert.Nil(t, claims)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidTokenFormat, appErr.Code)
}

func TestSlotToken_Garbage(t *testing.T) {
	claims, appErr := VerifySlotToken("secret", "not.a.token")
	assert.Nil(t, claims)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidTokenFormat, appErr.Code)
}
