package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-dashboard-server/internal/models"
)

func calendarAppt(id string, start time.Time) models.Appointment {
	return models.Appointment{
		BaseModel: models.BaseModel{ID: id},
		StartTime: start,
		Status:    models.StatusConfirmed,
	}
}

func TestGroupByDaySeparatesDays(t *testing.T) {
	monday := time.Date(2026, time.March, 9, 9, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	appts := []models.Appointment{
		calendarAppt("a1", monday),
		calendarAppt("a2", tuesday),
		calendarAppt("a3", monday.Add(2 * time.Hour)),
	}

	byDay, skipped := GroupByDay(appts)
	assert.Zero(t, skipped)
	assert.Len(t, byDay["2026-03-09"], 2)
	assert.Len(t, byDay["2026-03-10"], 1)
}

func TestGroupByDaySkipsZeroStartTimes(t *testing.T) {
	monday := time.Date(2026, time.March, 9, 9, 0, 0, 0, time.UTC)
	appts := []models.Appointment{
		calendarAppt("a1", monday),
		calendarAppt("bad", time.Time{}),
	}

	byDay, skipped := GroupByDay(appts)
	assert.Equal(t, 1, skipped)

	total := 0
	for _, bucket := range byDay {
		total += len(bucket)
	}
	assert.Equal(t, 1, total, "the unplaceable appointment appears in no bucket")
}

func TestDayViewSortedAscending(t *testing.T) {
	day := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)
	appts := []models.Appointment{
		calendarAppt("late", day.Add(15*time.Hour+30*time.Minute)),
		calendarAppt("early", day.Add(9 * time.Hour)),
		calendarAppt("mid", day.Add(14 * time.Hour)),
		calendarAppt("other-day", day.AddDate(0, 0, 3)),
	}

	view := DayView(appts, day)
	require.Len(t, view, 3)
	assert.Equal(t, "early", view[0].ID)
	assert.Equal(t, "mid", view[1].ID)
	assert.Equal(t, "late", view[2].ID)
}

func TestDayViewEmptyDay(t *testing.T) {
	day := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)
	appts := []models.Appointment{
		calendarAppt("a1", day.AddDate(0, 0, 1)),
	}

	assert.Empty(t, DayView(appts, day))
}

func TestMonthMarkers(t *testing.T) {
	appts := []models.Appointment{
		calendarAppt("a1", time.Date(2026, time.March, 9, 9, 0, 0, 0, time.UTC)),
		calendarAppt("a2", time.Date(2026, time.March, 9, 14, 0, 0, 0, time.UTC)),
		calendarAppt("a3", time.Date(2026, time.March, 21, 10, 0, 0, 0, time.UTC)),
		calendarAppt("a4", time.Date(2026, time.April, 2, 10, 0, 0, 0, time.UTC)),
		calendarAppt("bad", time.Time{}),
	}

	marks := MonthMarkers(appts, 2026, time.March)
	assert.Equal(t, map[int]bool{9: true, 21: true}, marks)
}
