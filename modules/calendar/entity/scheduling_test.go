package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulingPolicy_Validate(t *testing.T) {
	policy := SchedulingPolicy{
		MeetingDuration:   30 * time.Minute,
		WorkingHoursStart: 10,
		WorkingHoursEnd:   16,
		MaxSlots:          10,
	}
	assert.NoError(t, policy.Validate())

	bad := policy
	bad.MeetingDuration = 0
	assert.Error(t, bad.Validate())

	bad = policy
	bad.WorkingHoursStart = 16
	assert.Error(t, bad.Validate())

	bad = policy
	bad.MaxSlots = 0
	assert.Error(t, bad.Validate())

	bad = policy
	bad.WeekendDays = WeekendSet([]int{0, 1, 2, 3, 4, 5, 6})
	assert.Error(t, bad.Validate(), "a weekend set covering every weekday leaves nothing to schedule")
}

func TestWeekendSet(t *testing.T) {
	set := WeekendSet([]int{5, 6, 0, 99, -1})

	assert.True(t, set[time.Friday])
	assert.True(t, set[time.Saturday])
	assert.True(t, set[time.Sunday])
	assert.False(t, set[time.Monday])
	assert.Len(t, set, 3, "out-of-range values are ignored")
}

func TestWithinWorkingHours(t *testing.T) {
	policy := SchedulingPolicy{WorkingHoursStart: 10, WorkingHoursEnd: 16}
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	assert.False(t, policy.WithinWorkingHours(day.Add(9*time.Hour+59*time.Minute)))
	assert.True(t, policy.WithinWorkingHours(day.Add(10*time.Hour)))
	assert.True(t, policy.WithinWorkingHours(day.Add(15*time.Hour+59*time.Minute)))
	assert.False(t, policy.WithinWorkingHours(day.Add(16*time.Hour)))
}

func TestTimeWindow_Validate(t *testing.T) {
	now := time.Now()
	require.NoError(t, TimeWindow{Start: now, End: now.Add(time.Hour)}.Validate())
	assert.Error(t, TimeWindow{Start: now, End: now}.Validate())
	assert.Error(t, TimeWindow{Start: now.Add(time.Hour), End: now}.Validate())
}
