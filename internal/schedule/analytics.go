package schedule

import (
	"time"

	"clinic-dashboard-server/internal/models"
)

// Breakdown counts appointments per label (status or type).
type Breakdown map[string]int

// WeeklyTrend is the per-weekday appointment count for the current week,
// ordered Monday through Sunday as the analytics chart displays it.
type WeeklyTrend struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

// StatusBreakdown counts appointments by status.
func StatusBreakdown(appts []models.Appointment) Breakdown {
	b := Breakdown{}
	for _, a := range appts {
		b[string(a.Status)]++
	}
	return b
}

// TypeBreakdown counts appointments by type.
func TypeBreakdown(appts []models.Appointment) Breakdown {
	b := Breakdown{}
	for _, a := range appts {
		b[a.Type]++
	}
	return b
}

var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// ComputeWeeklyTrend buckets this week's appointments by weekday. The week
// runs Sunday through Saturday around now, matching the original chart.
func ComputeWeeklyTrend(appts []models.Appointment, now time.Time) WeeklyTrend {
	weekStart := now.AddDate(0, 0, -int(now.Weekday()))
	weekStart = time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, 0, 0, 0, now.Location())
	weekEnd := weekStart.AddDate(0, 0, 7)

	perDay := map[time.Weekday]int{}
	for _, a := range appts {
		if a.StartTime.IsZero() {
			continue
		}
		if a.StartTime.Before(weekStart) || !a.StartTime.Before(weekEnd) {
			continue
		}
		perDay[a.StartTime.Weekday()]++
	}

	trend := WeeklyTrend{}
	for _, wd := range weekdayOrder {
		trend.Labels = append(trend.Labels, wd.String())
		trend.Counts = append(trend.Counts, perDay[wd])
	}
	return trend
}
