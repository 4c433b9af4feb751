package service

import (
	"context"
	"time"

	"secretary-api/core/errors"
	"secretary-api/core/logger"
	"secretary-api/modules/calendar/entity"
)

// BookingExecutor turns a chosen candidate into a calendar entry. It does
// not retry: a failed insertion is surfaced once and the caller may submit
// a different candidate.
type BookingExecutor struct {
	api        CalendarAPI
	calendarID string
	timezone   string
}

func NewBookingExecutor(api CalendarAPI, calendarID, timezone string) *BookingExecutor {
	return &BookingExecutor{
		api:        api,
		calendarID: calendarID,
		timezone:   timezone,
	}
}

// Book submits the event and returns the meeting as the calendar service
// confirmed it.
func (e *BookingExecutor) Book(
	ctx context.Context,
	slot time.Time,
	duration time.Duration,
	summary string,
	description string,
	attendeeEmail string,
) (*entity.BookedMeeting, *errors.AppError) {

	payload := &entity.EventPayload{
		Summary:       summary,
		Description:   description,
		Start:         slot,
		End:           slot.Add(duration),
		AttendeeEmail: attendeeEmail,
		Timezone:      e.timezone,
	}

	booked, appErr := e.api.InsertEvent(ctx, e.calendarID, payload)
	if appErr != nil {
		logger.Error("BookingExecutor:Book:InsertEvent:Error",
			"error", appErr,
			"slot", slot.Format(time.RFC3339),
			"attendee", attendeeEmail,
		)
		return nil, appErr
	}

	logger.Info("BookingExecutor:Book:Success",
		"event_id", booked.EventID,
		"start", booked.Start.Format(time.RFC3339),
		"end", booked.End.Format(time.RFC3339),
	)
	return booked, nil
}
