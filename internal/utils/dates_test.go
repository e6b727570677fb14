package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDateSentinels(t *testing.T) {
	assert.Equal(t, "Not scheduled", FormatDate(""))
	assert.Equal(t, "Invalid date", FormatDate("not-a-date"))
	assert.Equal(t, "Invalid date", FormatDate("2026-13-45"))
}

func TestFormatDateRendersRFC3339(t *testing.T) {
	assert.Equal(t, "March 9, 2026", FormatDate("2026-03-09T09:00:00Z"))
}

func TestFormatDateAcceptsDateOnly(t *testing.T) {
	assert.Equal(t, "March 9, 2026", FormatDate("2026-03-09"))
}

func TestRoundTripKeepsCalendarDay(t *testing.T) {
	d := time.Date(2026, time.March, 9, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "March 9, 2026", FormatDate(ToISOString(d)))
}

func TestToISOStringZeroTime(t *testing.T) {
	assert.Equal(t, "", ToISOString(time.Time{}))
}

func TestFormatClock(t *testing.T) {
	d := time.Date(2026, time.March, 9, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "09:05", FormatClock(d))
	assert.Equal(t, "", FormatClock(time.Time{}))
}
