package constants

import "time"

// External call timeout applied to every Google API request
const DefaultTimeout = 30 * time.Second

// Priority scale on the request form (inclusive)
const (
	PriorityMin = 1
	PriorityMax = 57
)

// Scheduling policy defaults, matching the original deployment:
// Sunday-Thursday office with a Monday-Thursday meeting window,
// 10:00-16:00 local time.
const (
	DefaultTimezone          = "Asia/Riyadh"
	DefaultMeetingMinutes    = 30
	DefaultWorkingHoursStart = 10
	DefaultWorkingHoursEnd   = 16
	DefaultBufferMinutes     = 15
	DefaultMaxSlots          = 10
	DefaultSearchHorizonDays = 14
	DefaultSessionTTLMinutes = 30
)

// Timestamp layout used for spreadsheet rows
const SheetTimestampLayout = "2006-01-02 15:04:05"
