package entity

import (
	"time"

	"github.com/google/uuid"

	"secretary-api/core/errors"
	calentity "secretary-api/modules/calendar/entity"
	reqentity "secretary-api/modules/request/entity"
)

// SessionState is one stage of the booking flow
type SessionState string

const (
	StateCollectingRequest SessionState = "collecting_request"
	StateSearchingSlots    SessionState = "searching_slots"
	StateAwaitingSelection SessionState = "awaiting_selection"
	StateBooked            SessionState = "booked"
	StateFailed            SessionState = "failed"
)

// TransitionInput drives the session state machine
type TransitionInput string

const (
	InputSubmit          TransitionInput = "submit"
	InputSearchComplete  TransitionInput = "search_complete"
	InputSearchFailed    TransitionInput = "search_failed"
	InputSlotChosen      TransitionInput = "slot_chosen"
	InputBookingComplete TransitionInput = "booking_complete"
	InputBookingFailed   TransitionInput = "booking_failed"
)

// BookingSession replaces process-wide form state with an explicit object
// persisted per request/response cycle. A failed booking keeps the session
// in awaiting_selection so the already-computed candidates can be retried;
// only a failed search is terminal.
type BookingSession struct {
	ID         uuid.UUID                `json:"id"`
	State      SessionState             `json:"state"`
	Request    reqentity.MeetingRequest `json:"request"`
	Candidates []calentity.Candidate    `json:"candidates,omitempty"`
	Booked     *calentity.BookedMeeting `json:"booked,omitempty"`
	LastError  string                   `json:"last_error,omitempty"`
	CreatedAt  time.Time                `json:"created_at"`
	UpdatedAt  time.Time                `json:"updated_at"`
}

func NewBookingSession(req reqentity.MeetingRequest) *BookingSession {
	now := time.Now()
	return &BookingSession{
		ID:        uuid.New(),
		State:     StateCollectingRequest,
		Request:   req,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

var transitions = map[SessionState]map[TransitionInput]SessionState{
	StateCollectingRequest: {
		InputSubmit: StateSearchingSlots,
	},
	StateSearchingSlots: {
		InputSearchComplete: StateAwaitingSelection,
		InputSearchFailed:   StateFailed,
	},
	StateAwaitingSelection: {
		InputSlotChosen:      StateAwaitingSelection,
		InputBookingComplete: StateBooked,
		InputBookingFailed:   StateAwaitingSelection,
	},
}

// Apply advances the state machine, rejecting inputs the current state
// does not accept.
func (s *BookingSession) Apply(input TransitionInput) *errors.AppError {
	next, ok := transitions[s.State][input]
	if !ok {
		return errors.NewAppError(errors.ErrInvalidTransition,
			"input "+string(input)+" not allowed in state "+string(s.State), nil)
	}
	s.State = next
	s.UpdatedAt = time.Now()
	return nil
}

// CanBook reports whether a booking attempt is currently permitted
func (s *BookingSession) CanBook() bool {
	return s.State == StateAwaitingSelection
}
