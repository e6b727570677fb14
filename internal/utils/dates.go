package utils

import (
	"time"
)

const (
	// PrettyDateLayout is the human-readable date shown in lists and
	// reminder emails.
	PrettyDateLayout = "January 2, 2006"
	// DateLayout is the wire format for calendar days.
	DateLayout = "2006-01-02"
	// ClockLayout is the 24-hour clock shown on schedules.
	ClockLayout = "15:04"
)

// FormatDate renders an ISO timestamp string for display. Missing values
// render as "Not scheduled" and unparseable ones as "Invalid date"; a bad
// value must never take the rest of the view down with it.
func FormatDate(iso string) string {
	if iso == "" {
		return "Not scheduled"
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		// Date-only values appear in older records.
		t, err = time.Parse("2006-01-02", iso)
		if err != nil {
			return "Invalid date"
		}
	}
	return t.Format(PrettyDateLayout)
}

// ToISOString renders a timestamp in the wire format. Zero times render
// as the empty string.
func ToISOString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// FormatClock renders the time-of-day portion of a timestamp.
func FormatClock(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(ClockLayout)
}

// ParseClock parses an "HH:MM" clock string.
func ParseClock(clock string) (time.Time, error) {
	return time.Parse(ClockLayout, clock)
}

// CombineDateClock combines a calendar day and an "HH:MM" clock string
// into a single timestamp.
func CombineDateClock(date, clock string) (time.Time, error) {
	return time.Parse(DateLayout+" "+ClockLayout, date+" "+clock)
}
