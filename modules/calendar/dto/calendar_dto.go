package dto

import (
	"time"

	"secretary-api/modules/calendar/entity"
	sessentity "secretary-api/modules/session/entity"
)

// ===================== Request DTOs =====================

// CreateSessionRequest opens a booking session from a meeting request
type CreateSessionRequest struct {
	Email       string `json:"email" validate:"required"`
	Topic       string `json:"topic" validate:"required"`
	Description string `json:"description"`
	Priority    int    `json:"priority" validate:"min=1,max=57"`
}

// BookSlotRequest books the candidate named by its slot token
type BookSlotRequest struct {
	SlotToken string `json:"slot_token" validate:"required"`
}

// ===================== Response DTOs =====================

// SlotDTO is a presented candidate slot
type SlotDTO struct {
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	DayOfWeek     string    `json:"day_of_week"`
	FormattedDate string    `json:"formatted_date"`
	FormattedTime string    `json:"formatted_time"`
	Token         string    `json:"token,omitempty"`
}

// AvailabilityResponse for the stateless search endpoint
type AvailabilityResponse struct {
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
	Slots       []SlotDTO `json:"slots"`
}

// SessionResponse reflects the booking session state machine
type SessionResponse struct {
	ID        string                `json:"id"`
	State     string                `json:"state"`
	Topic     string                `json:"topic"`
	Email     string                `json:"email"`
	Priority  int                   `json:"priority"`
	Slots     []SlotDTO             `json:"slots,omitempty"`
	Booked    *entity.BookedMeeting `json:"booked,omitempty"`
	LastError string                `json:"last_error,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
}

// ===================== Mapper Functions =====================

// ToSlotDTOs maps candidates to presentation slots; tokens may be nil for
// token-less views and must otherwise align index-wise with candidates.
func ToSlotDTOs(candidates []entity.Candidate, tokens []string) []SlotDTO {
	slots := make([]SlotDTO, 0, len(candidates))
	for i, c := range candidates {
		s := SlotDTO{
			StartTime:     c.Start,
			EndTime:       c.End,
			DayOfWeek:     c.Start.Weekday().String(),
			FormattedDate: c.Start.Format("02/01/2006"),
			FormattedTime: c.Start.Format("15:04") + " - " + c.End.Format("15:04"),
		}
		if tokens != nil && i < len(tokens) {
			s.Token = tokens[i]
		}
		slots = append(slots, s)
	}
	return slots
}

// ToSessionResponse maps a session to its API view
func ToSessionResponse(session *sessentity.BookingSession, tokens []string) *SessionResponse {
	resp := &SessionResponse{
		ID:        session.ID.String(),
		State:     string(session.State),
		Topic:     session.Request.Topic,
		Email:     session.Request.Email,
		Priority:  session.Request.Priority,
		Booked:    session.Booked,
		LastError: session.LastError,
		CreatedAt: session.CreatedAt,
	}
	if session.State == sessentity.StateAwaitingSelection {
		resp.Slots = ToSlotDTOs(session.Candidates, tokens)
	}
	return resp
}
