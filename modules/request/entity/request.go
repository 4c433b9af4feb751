package entity

import (
	"net/mail"
	"strings"

	"secretary-api/core/constants"
	"secretary-api/core/errors"
)

// MeetingRequest is the user-supplied form payload. It is validated once at
// the boundary and consumed by either the record path or the booking path.
type MeetingRequest struct {
	Email       string `json:"email"`
	Topic       string `json:"topic"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
}

// Validate rejects incomplete requests before any external call is made
func (r *MeetingRequest) Validate() *errors.AppError {
	r.Email = strings.TrimSpace(r.Email)
	r.Topic = strings.TrimSpace(r.Topic)

	if r.Email == "" || r.Topic == "" {
		return errors.NewAppError(errors.ErrInvalidInput, "email and topic are required", nil)
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.NewAppError(errors.ErrInvalidInput, "invalid email address", err)
	}
	if r.Priority < constants.PriorityMin || r.Priority > constants.PriorityMax {
		return errors.NewAppError(errors.ErrInvalidInput, "priority must be between 1 and 57", nil)
	}
	return nil
}
