package entity

import (
	"fmt"
	"time"
)

// TimeWindow is the span a slot search covers. Start must precede End.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (w TimeWindow) Validate() error {
	if !w.Start.Before(w.End) {
		return fmt.Errorf("window start %s must be before end %s",
			w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
	}
	return nil
}

// In converts both bounds to the given location
func (w TimeWindow) In(loc *time.Location) TimeWindow {
	return TimeWindow{Start: w.Start.In(loc), End: w.End.In(loc)}
}

// BusyInterval is an occupied range on the target calendar, half-open [Start, End)
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Candidate is a computed, not-yet-booked potential meeting start.
// End is derived from the policy's meeting duration.
type Candidate struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SchedulingPolicy holds the constraints a slot search runs under.
// Constant for the lifetime of one search.
type SchedulingPolicy struct {
	MeetingDuration   time.Duration
	WorkingHoursStart int // hour of day, inclusive
	WorkingHoursEnd   int // hour of day, exclusive
	WeekendDays       map[time.Weekday]bool
	Buffer            time.Duration
	MaxSlots          int
	Location          *time.Location
}

func (p SchedulingPolicy) Validate() error {
	if p.MeetingDuration <= 0 {
		return fmt.Errorf("meeting duration must be positive")
	}
	if p.WorkingHoursStart >= p.WorkingHoursEnd {
		return fmt.Errorf("working hours start %d must be before end %d",
			p.WorkingHoursStart, p.WorkingHoursEnd)
	}
	if p.MaxSlots <= 0 {
		return fmt.Errorf("max slots must be positive")
	}
	excluded := 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		if p.WeekendDays[d] {
			excluded++
		}
	}
	if excluded == 7 {
		return fmt.Errorf("weekend days must leave at least one working day")
	}
	return nil
}

// WithinWorkingHours reports whether t starts inside the daily window
func (p SchedulingPolicy) WithinWorkingHours(t time.Time) bool {
	hour := t.Hour()
	return hour >= p.WorkingHoursStart && hour < p.WorkingHoursEnd
}

// IsWeekend reports whether t falls on an excluded weekday
func (p SchedulingPolicy) IsWeekend(t time.Time) bool {
	return p.WeekendDays[t.Weekday()]
}

// WeekendSet builds the weekday set from config values
func WeekendSet(days []int) map[time.Weekday]bool {
	set := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		if d >= 0 && d <= 6 {
			set[time.Weekday(d)] = true
		}
	}
	return set
}

// EventPayload is the request side of a calendar insertion
type EventPayload struct {
	Summary       string
	Description   string
	Start         time.Time
	End           time.Time
	AttendeeEmail string
	Timezone      string
}

// BookedMeeting is a confirmed calendar entry. Start and End carry the
// values the calendar service returned, which may differ from the request.
type BookedMeeting struct {
	EventID     string    `json:"event_id"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Attendee    string    `json:"attendee"`
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	Reference   string    `json:"reference,omitempty"`
}
