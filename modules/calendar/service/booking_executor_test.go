package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secretary-api/core/errors"
	"secretary-api/modules/calendar/entity"
)

// fakeCalendarAPI records insert payloads and replays canned answers
type fakeCalendarAPI struct {
	busy      []entity.BusyInterval
	busyErr   *errors.AppError
	booked    *entity.BookedMeeting
	insertErr *errors.AppError

	inserted []*entity.EventPayload
}

func (f *fakeCalendarAPI) ListBusyIntervals(ctx context.Context, calendarID string, start, end time.Time) ([]entity.BusyInterval, *errors.AppError) {
	if f.busyErr != nil {
		return nil, f.busyErr
	}
	return f.busy, nil
}

func (f *fakeCalendarAPI) InsertEvent(ctx context.Context, calendarID string, payload *entity.EventPayload) (*entity.BookedMeeting, *errors.AppError) {
	f.inserted = append(f.inserted, payload)
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	return f.booked, nil
}

func TestBookingExecutor_Book(t *testing.T) {
	slot := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	confirmed := &entity.BookedMeeting{
		EventID: "evt_1",
		// the service normalized the start by one minute
		Start:    slot.Add(time.Minute),
		End:      slot.Add(31 * time.Minute),
		Attendee: "ziad@example.com",
		Summary:  "Budget review",
	}
	api := &fakeCalendarAPI{booked: confirmed}
	executor := NewBookingExecutor(api, "primary", "Asia/Riyadh")

	booked, appErr := executor.Book(context.Background(), slot, 30*time.Minute,
		"Budget review", "Q3 numbers", "ziad@example.com")

	require.Nil(t, appErr)
	require.NotNil(t, booked)
	assert.Equal(t, "evt_1", booked.EventID)
	assert.Equal(t, confirmed.Start, booked.Start, "confirmed time must win over the requested one")

	require.Len(t, api.inserted, 1)
	payload := api.inserted[0]
	assert.Equal(t, slot, payload.Start)
	assert.Equal(t, slot.Add(30*time.Minute), payload.End)
	assert.Equal(t, "ziad@example.com", payload.AttendeeEmail)
	assert.Equal(t, "Asia/Riyadh", payload.Timezone)
}

func TestBookingExecutor_Book_ConflictNotRetried(t *testing.T) {
	slot := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	api := &fakeCalendarAPI{
		insertErr: errors.NewAppError(errors.ErrBookingConflict, "slot no longer available", nil),
	}
	executor := NewBookingExecutor(api, "primary", "Asia/Riyadh")

	booked, appErr := executor.Book(context.Background(), slot, 30*time.Minute,
		"Budget review", "", "ziad@example.com")

	assert.Nil(t, booked)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrBookingConflict, appErr.Code)
	assert.Len(t, api.inserted, 1, "a failed insertion must not be retried")
}
