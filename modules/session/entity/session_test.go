package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secretary-api/core/errors"
	reqentity "secretary-api/modules/request/entity"
)

func newSession() *BookingSession {
	return NewBookingSession(reqentity.MeetingRequest{
		Email:    "ziad@example.com",
		Topic:    "Budget review",
		Priority: 10,
	})
}

func TestBookingSession_HappyPath(t *testing.T) {
	s := newSession()
	assert.Equal(t, StateCollectingRequest, s.State)

	require.Nil(t, s.Apply(InputSubmit))
	assert.Equal(t, StateSearchingSlots, s.State)

	require.Nil(t, s.Apply(InputSearchComplete))
	assert.Equal(t, StateAwaitingSelection, s.State)
	assert.True(t, s.CanBook())

	require.Nil(t, s.Apply(InputSlotChosen))
	require.Nil(t, s.Apply(InputBookingComplete))
	assert.Equal(t, StateBooked, s.State)
	assert.False(t, s.CanBook())
}

func TestBookingSession_SearchFailureIsTerminal(t *testing.T) {
	s := newSession()
	require.Nil(t, s.Apply(InputSubmit))
	require.Nil(t, s.Apply(InputSearchFailed))
	assert.Equal(t, StateFailed, s.State)

	for _, input := range []TransitionInput{
		InputSubmit, InputSearchComplete, InputSlotChosen, InputBookingComplete,
	} {
		appErr := s.Apply(input)
		require.NotNil(t, appErr, "input %s must be rejected in failed state", input)
		assert.Equal(t, errors.ErrInvalidTransition, appErr.Code)
	}
}

func TestBookingSession_BookingFailureKeepsCandidates(t *testing.T) {
	s := newSession()
	require.Nil(t, s.Apply(InputSubmit))
	require.Nil(t, s.Apply(InputSearchComplete))

	require.Nil(t, s.Apply(InputSlotChosen))
	require.Nil(t, s.Apply(InputBookingFailed))

	// a failed booking keeps the session open for another attempt
	assert.Equal(t, StateAwaitingSelection, s.State)
	assert.True(t, s.CanBook())
	require.Nil(t, s.Apply(InputSlotChosen))
	require.Nil(t, s.Apply(InputBookingComplete))
	assert.Equal(t, StateBooked, s.State)
}

func TestBookingSession_RejectsOutOfOrderInputs(t *testing.T) {
	s := newSession()

	appErr := s.Apply(InputBookingComplete)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidTransition, appErr.Code)
	assert.Equal(t, StateCollectingRequest, s.State, "rejected input must not change state")

	require.Nil(t, s.Apply(InputSubmit))
	appErr = s.Apply(InputSubmit)
	require.NotNil(t, appErr)
	assert.Equal(t, StateSearchingSlots, s.State)
}

func TestBookingSession_BookedIsTerminal(t *testing.T) {
	s := newSession()
	require.Nil(t, s.Apply(InputSubmit))
	require.Nil(t, s.Apply(InputSearchComplete))
	require.Nil(t, s.Apply(InputSlotChosen))
	require.Nil(t, s.Apply(InputBookingComplete))

	for _, input := range []TransitionInput{
		InputSubmit, InputSlotChosen, InputBookingComplete, InputBookingFailed,
	} {
		require.NotNil(t, s.Apply(input))
	}
	assert.Equal(t, StateBooked, s.State)
}
