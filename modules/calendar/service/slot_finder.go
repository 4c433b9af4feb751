package service

import (
	"time"

	"secretary-api/modules/calendar/entity"
)

// SlotFinder walks a search window and yields meeting start candidates that
// satisfy the scheduling policy and avoid every busy interval.
type SlotFinder struct{}

func NewSlotFinder() *SlotFinder {
	return &SlotFinder{}
}

// FindAvailableSlots enumerates candidate starts in increasing order.
//
// The cursor begins at the window start. An eligible cursor (inside working
// hours, not a weekend day) is tested against the busy snapshot with the
// half-open overlap rule and, accepted or rejected, advances by meeting
// duration plus buffer: the buffer separates every pair of considered slots.
// An ineligible cursor jumps straight to the next working-hours opening.
//
// Callers must hand in window and busy intervals already expressed in the
// policy's timezone; the finder does no conversion of its own. A slot whose
// end runs past the working-hours close is still accepted when its start is
// inside the window.
func (f *SlotFinder) FindAvailableSlots(
	window entity.TimeWindow,
	busyIntervals []entity.BusyInterval,
	policy entity.SchedulingPolicy,
) []entity.Candidate {

	candidates := []entity.Candidate{}
	step := policy.MeetingDuration + policy.Buffer

	cursor := window.Start
	for cursor.Before(window.End) && len(candidates) < policy.MaxSlots {
		if policy.IsWeekend(cursor) || !policy.WithinWorkingHours(cursor) {
			cursor = f.nextOpening(cursor, policy)
			continue
		}

		slotEnd := cursor.Add(policy.MeetingDuration)
		if !f.conflicts(cursor, slotEnd, busyIntervals) {
			candidates = append(candidates, entity.Candidate{Start: cursor, End: slotEnd})
		}

		cursor = cursor.Add(step)
	}

	return candidates
}

// conflicts applies the half-open interval overlap test against the snapshot
func (f *SlotFinder) conflicts(start, end time.Time, busy []entity.BusyInterval) bool {
	for _, b := range busy {
		latestStart := start
		if b.Start.After(latestStart) {
			latestStart = b.Start
		}
		earliestEnd := end
		if b.End.Before(earliestEnd) {
			earliestEnd = b.End
		}
		if latestStart.Before(earliestEnd) {
			return true
		}
	}
	return false
}

// nextOpening moves an ineligible cursor to the next working-hours start:
// the same day's opening when the cursor is before hours, otherwise the next
// day's, skipping weekend days either way.
func (f *SlotFinder) nextOpening(t time.Time, policy entity.SchedulingPolicy) time.Time {
	day := t
	if policy.IsWeekend(t) || t.Hour() >= policy.WorkingHoursStart {
		day = day.AddDate(0, 0, 1)
	}

	opening := time.Date(day.Year(), day.Month(), day.Day(),
		policy.WorkingHoursStart, 0, 0, 0, t.Location())

	// a week covers every weekday once; a policy that excludes all seven
	// must still advance so the caller's window bound terminates the walk
	for i := 0; policy.IsWeekend(opening) && i < 7; i++ {
		opening = opening.AddDate(0, 0, 1)
	}
	return opening
}
