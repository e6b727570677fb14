package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"clinic-dashboard-server/internal/models"
)

func sampleAppointments() []models.Appointment {
	day := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)
	mk := func(id, name, clock, apptType string, status models.AppointmentStatus, notes string) models.Appointment {
		t, _ := time.Parse("15:04", clock)
		return models.Appointment{
			BaseModel: models.BaseModel{ID: id},
			StartTime: time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC),
			Type:      apptType,
			Status:    status,
			Notes:     notes,
			Patient:   models.Patient{Name: name},
		}
	}
	return []models.Appointment{
		mk("a1", "Sarah Johnson", "09:00", "Consultation", models.StatusConfirmed, "Annual checkup"),
		mk("a2", "Michael Chen", "10:30", "Follow-up", models.StatusPending, "Blood test results review"),
		mk("a3", "Emily Davis", "14:00", "Consultation", models.StatusConfirmed, "First visit"),
		mk("a4", "Robert Wilson", "15:30", "Procedure", models.StatusConfirmed, "Minor procedure"),
	}
}

func TestFilterAllAndEmptyQueryReturnsEverything(t *testing.T) {
	appts := sampleAppointments()
	got := Filter(appts, "", StatusAll)

	assert.Len(t, got, len(appts))
	for i := range appts {
		assert.Equal(t, appts[i].ID, got[i].ID, "input order must be preserved")
	}
}

func TestFilterByQueryMatchesNameAndNotes(t *testing.T) {
	appts := sampleAppointments()

	byName := Filter(appts, "sarah", StatusAll)
	if assert.Len(t, byName, 1) {
		assert.Equal(t, "a1", byName[0].ID)
	}

	// Case-folded substring match against the notes too.
	byNotes := Filter(appts, "BLOOD TEST", StatusAll)
	if assert.Len(t, byNotes, 1) {
		assert.Equal(t, "a2", byNotes[0].ID)
	}
}

func TestFilterComposesQueryAndStatus(t *testing.T) {
	appts := sampleAppointments()

	// a2 matches the query but is pending; a confirmed-only filter must
	// exclude it regardless of the query.
	assert.Empty(t, Filter(appts, "blood test", string(models.StatusConfirmed)))

	// And a non-matching query excludes it regardless of the status.
	assert.Empty(t, Filter(appts, "xyz", string(models.StatusPending)))

	both := Filter(appts, "blood test", string(models.StatusPending))
	if assert.Len(t, both, 1) {
		assert.Equal(t, "a2", both[0].ID)
	}
}

func TestFilterIsPure(t *testing.T) {
	appts := sampleAppointments()
	before := make([]models.Appointment, len(appts))
	copy(before, appts)

	first := Filter(appts, "visit", string(models.StatusConfirmed))
	second := Filter(appts, "visit", string(models.StatusConfirmed))

	assert.Equal(t, before, appts, "input slice must not be mutated")
	assert.Equal(t, first, second, "identical inputs must yield identical output")
}

func TestComputeStats(t *testing.T) {
	appts := sampleAppointments()
	appts[3].Status = models.StatusCompleted

	stats := ComputeStats(appts, 4)

	assert.Equal(t, 4, stats.TotalAppointments)
	assert.Equal(t, 4, stats.TotalPatients)
	assert.Equal(t, 1, stats.UpcomingAppointments, "upcoming counts pending appointments")
	assert.Equal(t, 1, stats.CompletedAppointments)
}

func TestComputeStatsEmpty(t *testing.T) {
	assert.Equal(t, Stats{}, ComputeStats(nil, 0))
}
