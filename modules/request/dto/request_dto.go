package dto

import "time"

// SubmitRequestBody is the form payload for the record-only path
type SubmitRequestBody struct {
	Email       string `json:"email" validate:"required"`
	Topic       string `json:"topic" validate:"required"`
	Description string `json:"description"`
	Priority    int    `json:"priority" validate:"min=1,max=57"`
}

// SubmitResponse acknowledges a recorded request
type SubmitResponse struct {
	SubmittedAt time.Time `json:"submitted_at"`
	Message     string    `json:"message"`
}
