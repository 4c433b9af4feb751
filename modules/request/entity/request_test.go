package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secretary-api/core/errors"
)

func TestMeetingRequest_Validate(t *testing.T) {
	req := MeetingRequest{
		Email:    "  ziad@example.com  ",
		Topic:    " Budget review ",
		Priority: 1,
	}
	require.Nil(t, req.Validate())
	assert.Equal(t, "ziad@example.com", req.Email, "email is trimmed in place")
	assert.Equal(t, "Budget review", req.Topic)
}

func TestMeetingRequest_ValidateRejects(t *testing.T) {
	cases := []struct {
		name string
		req  MeetingRequest
	}{
		{"empty", MeetingRequest{Priority: 1}},
		{"whitespace topic", MeetingRequest{Email: "ziad@example.com", Topic: "   ", Priority: 1}},
		{"malformed email", MeetingRequest{Email: "ziad@", Topic: "Budget", Priority: 1}},
		{"zero priority", MeetingRequest{Email: "ziad@example.com", Topic: "Budget", Priority: 0}},
		{"priority 58", MeetingRequest{Email: "ziad@example.com", Topic: "Budget", Priority: 58}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := tc.req.Validate()
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
		})
	}
}
