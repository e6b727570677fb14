package schedule

import (
	"sort"
	"time"

	"clinic-dashboard-server/internal/models"
)

// DayKeyLayout is the calendar bucket key format.
const DayKeyLayout = "2006-01-02"

// GroupByDay buckets appointments by calendar day. Appointments with a
// zero start time cannot be placed on the calendar; they are counted in
// skipped and excluded, never fatal, so one bad record can't blank the
// whole calendar.
func GroupByDay(appts []models.Appointment) (byDay map[string][]models.Appointment, skipped int) {
	byDay = make(map[string][]models.Appointment)
	for _, a := range appts {
		if a.StartTime.IsZero() {
			skipped++
			continue
		}
		key := a.StartTime.Format(DayKeyLayout)
		byDay[key] = append(byDay[key], a)
	}
	return byDay, skipped
}

// DayView returns the appointments on the given calendar day, ordered by
// start time ascending.
func DayView(appts []models.Appointment, day time.Time) []models.Appointment {
	byDay, _ := GroupByDay(appts)
	out := append([]models.Appointment(nil), byDay[day.Format(DayKeyLayout)]...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}

// MonthMarkers reports which days of the given month have at least one
// appointment, keyed by day of month.
func MonthMarkers(appts []models.Appointment, year int, month time.Month) map[int]bool {
	marks := make(map[int]bool)
	byDay, _ := GroupByDay(appts)
	for key, bucket := range byDay {
		t, err := time.Parse(DayKeyLayout, key)
		if err != nil || len(bucket) == 0 {
			continue
		}
		if t.Year() == year && t.Month() == month {
			marks[t.Day()] = true
		}
	}
	return marks
}
