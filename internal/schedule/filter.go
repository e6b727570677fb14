package schedule

import (
	"strings"

	"clinic-dashboard-server/internal/models"
)

// StatusAll is the status filter value that matches every appointment.
const StatusAll = "all"

// Filter returns the appointments that pass both the status filter and the
// search query, preserving input order. It is a pure function: the input
// slice is never mutated and identical inputs yield identical output.
//
// An appointment passes when the status filter is "all" or equals its
// status, AND the query is empty or is a case-insensitive substring of the
// patient name or the notes.
func Filter(appts []models.Appointment, query string, statusFilter string) []models.Appointment {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Appointment, 0, len(appts))
	for _, a := range appts {
		if statusFilter != StatusAll && string(a.Status) != statusFilter {
			continue
		}
		if q != "" {
			name := strings.ToLower(a.PatientName())
			notes := strings.ToLower(a.Notes)
			if !strings.Contains(name, q) && !strings.Contains(notes, q) {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

// Stats are the aggregate counters shown on the dashboard.
type Stats struct {
	TotalAppointments     int `json:"totalAppointments"`
	TotalPatients         int `json:"totalPatients"`
	UpcomingAppointments  int `json:"upcomingAppointments"`
	CompletedAppointments int `json:"completedAppointments"`
}

// ComputeStats derives the dashboard counters. "Upcoming" counts pending
// appointments, matching the original dashboard's definition.
func ComputeStats(appts []models.Appointment, patientCount int) Stats {
	s := Stats{
		TotalAppointments: len(appts),
		TotalPatients:     patientCount,
	}
	for _, a := range appts {
		switch a.Status {
		case models.StatusPending:
			s.UpcomingAppointments++
		case models.StatusCompleted:
			s.CompletedAppointments++
		}
	}
	return s
}
