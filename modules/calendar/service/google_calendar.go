package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"secretary-api/core/constants"
	"secretary-api/core/errors"
	"secretary-api/core/googleauth"
	"secretary-api/core/logger"
	"secretary-api/modules/calendar/entity"
)

const googleCalendarAPIBase = "https://www.googleapis.com/calendar/v3"

// CalendarAPI is the boundary to the external calendar service
type CalendarAPI interface {
	// ListBusyIntervals returns the occupied ranges on the calendar within
	// [start, end), ordered by start time.
	ListBusyIntervals(ctx context.Context, calendarID string, start, end time.Time) ([]entity.BusyInterval, *errors.AppError)

	// InsertEvent creates a calendar entry and notifies attendees. The
	// returned meeting carries the start/end the service confirmed.
	InsertEvent(ctx context.Context, calendarID string, payload *entity.EventPayload) (*entity.BookedMeeting, *errors.AppError)
}

type googleCalendarAPI struct {
	baseURL string
	client  *http.Client
	tokenFn func(ctx context.Context) (string, *errors.AppError)
}

func NewGoogleCalendarAPI() CalendarAPI {
	return &googleCalendarAPI{
		baseURL: googleCalendarAPIBase,
		client:  &http.Client{Timeout: constants.DefaultTimeout},
		tokenFn: googleauth.AccessToken,
	}
}

// ListBusyIntervals calls the Google Calendar FreeBusy API
func (g *googleCalendarAPI) ListBusyIntervals(ctx context.Context, calendarID string, start, end time.Time) ([]entity.BusyInterval, *errors.AppError) {
	accessToken, appErr := g.tokenFn(ctx)
	if appErr != nil {
		return nil, appErr
	}

	payload := map[string]any{
		"timeMin": start.Format(time.RFC3339),
		"timeMax": end.Format(time.RFC3339),
		"items": []map[string]string{
			{"id": calendarID},
		},
	}
	payloadJSON, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, "POST", g.baseURL+"/freeBusy", bytes.NewReader(payloadJSON))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrLookupFailed, "failed to create request", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		logger.Error("GoogleCalendarAPI:ListBusyIntervals:DoRequest:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrLookupFailed, "failed to fetch busy intervals", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		logger.Error("GoogleCalendarAPI:ListBusyIntervals:APIError", "status", resp.StatusCode, "body", string(body))
		return nil, g.mapError(resp.StatusCode, "busy interval lookup", string(body))
	}

	var result struct {
		Calendars map[string]struct {
			Busy []struct {
				Start string `json:"start"`
				End   string `json:"end"`
			} `json:"busy"`
		} `json:"calendars"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.NewAppError(errors.ErrLookupFailed, "failed to parse freeBusy response", err)
	}

	var busy []entity.BusyInterval
	if cal, ok := result.Calendars[calendarID]; ok {
		for _, b := range cal.Busy {
			busyStart, err1 := time.Parse(time.RFC3339, b.Start)
			busyEnd, err2 := time.Parse(time.RFC3339, b.End)
			if err1 != nil || err2 != nil {
				logger.Warn("GoogleCalendarAPI:ListBusyIntervals:SkipUnparsable", "start", b.Start, "end", b.End)
				continue
			}
			busy = append(busy, entity.BusyInterval{Start: busyStart, End: busyEnd})
		}
	}

	return busy, nil
}

// InsertEvent calls the Google Calendar Events API with sendUpdates=all
func (g *googleCalendarAPI) InsertEvent(ctx context.Context, calendarID string, payload *entity.EventPayload) (*entity.BookedMeeting, *errors.AppError) {
	accessToken, appErr := g.tokenFn(ctx)
	if appErr != nil {
		return nil, appErr
	}

	event := map[string]any{
		"summary":     payload.Summary,
		"description": payload.Description,
		"start": map[string]string{
			"dateTime": payload.Start.Format(time.RFC3339),
			"timeZone": payload.Timezone,
		},
		"end": map[string]string{
			"dateTime": payload.End.Format(time.RFC3339),
			"timeZone": payload.Timezone,
		},
		"attendees": []map[string]string{
			{"email": payload.AttendeeEmail},
		},
	}
	eventJSON, _ := json.Marshal(event)

	// calendar IDs may carry '#' (e.g. public holiday calendars)
	apiURL := fmt.Sprintf("%s/calendars/%s/events?sendUpdates=all", g.baseURL, url.PathEscape(calendarID))
	req, err := http.NewRequestWithContext(ctx, "POST", apiURL, bytes.NewReader(eventJSON))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrBookingFailed, "failed to create request", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		logger.Error("GoogleCalendarAPI:InsertEvent:DoRequest:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrBookingFailed, "failed to insert event", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		logger.Error("GoogleCalendarAPI:InsertEvent:APIError", "status", resp.StatusCode, "body", string(body))
		return nil, g.mapError(resp.StatusCode, "event insertion", string(body))
	}

	var result struct {
		ID      string `json:"id"`
		Summary string `json:"summary"`
		Start   struct {
			DateTime string `json:"dateTime"`
		} `json:"start"`
		End struct {
			DateTime string `json:"dateTime"`
		} `json:"end"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.NewAppError(errors.ErrBookingFailed, "failed to parse insert response", err)
	}

	// Surface the service's confirmed times; fall back to the request only
	// when the response omits them.
	confirmedStart, confirmedEnd := payload.Start, payload.End
	if t, err := time.Parse(time.RFC3339, result.Start.DateTime); err == nil {
		confirmedStart = t
	}
	if t, err := time.Parse(time.RFC3339, result.End.DateTime); err == nil {
		confirmedEnd = t
	}

	return &entity.BookedMeeting{
		EventID:     result.ID,
		Start:       confirmedStart,
		End:         confirmedEnd,
		Attendee:    payload.AttendeeEmail,
		Summary:     payload.Summary,
		Description: payload.Description,
	}, nil
}

func (g *googleCalendarAPI) mapError(status int, operation string, body string) *errors.AppError {
	msg := fmt.Sprintf("Google Calendar API error during %s: %d", operation, status)
	cause := fmt.Errorf("google api: status %d: %s", status, body)

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.NewAppError(errors.ErrForbidden, msg, cause)
	case http.StatusNotFound:
		return errors.NewAppError(errors.ErrNotFound, "calendar not found", cause)
	case http.StatusConflict:
		return errors.NewAppError(errors.ErrBookingConflict, "slot no longer available", cause)
	case http.StatusTooManyRequests:
		return errors.NewAppError(errors.ErrQuotaExceeded, "calendar API quota exceeded", cause)
	default:
		if operation == "event insertion" {
			return errors.NewAppError(errors.ErrBookingFailed, msg, cause)
		}
		return errors.NewAppError(errors.ErrLookupFailed, msg, cause)
	}
}
