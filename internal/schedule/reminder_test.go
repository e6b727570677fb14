package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-dashboard-server/internal/models"
)

type fakeSender struct {
	calls      []string // recipient per call, in dispatch order
	failFor    map[string]bool
	failAlways bool
}

func (f *fakeSender) SendAppointmentReminder(ctx context.Context, to, patientName, date, clock, apptType string) error {
	f.calls = append(f.calls, to)
	if f.failAlways || f.failFor[to] {
		return errors.New("smtp unavailable")
	}
	return nil
}

func reminderFixture(t *testing.T) (*Service, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	sarah := store.SeedPatient(models.Patient{Name: "Sarah Johnson", Email: "sarah.johnson@email.com"})
	michael := store.SeedPatient(models.Patient{Name: "Michael Chen", Email: "michael.chen@email.com"})

	start := time.Date(2026, time.March, 9, 9, 0, 0, 0, time.UTC)
	store.SeedAppointment(models.Appointment{PatientID: sarah.ID, StartTime: start, Status: models.StatusPending, Type: "Consultation"})
	store.SeedAppointment(models.Appointment{PatientID: michael.ID, StartTime: start.Add(90 * time.Minute), Status: models.StatusPending, Type: "Follow-up"})
	store.SeedAppointment(models.Appointment{PatientID: sarah.ID, StartTime: start.Add(5 * time.Hour), Status: models.StatusConfirmed, Type: "Consultation"})
	store.SeedAppointment(models.Appointment{PatientID: michael.ID, StartTime: start.Add(6 * time.Hour), Status: models.StatusCompleted, Type: "Procedure"})

	return New(store, zerolog.Nop()), store
}

func TestSendRemindersDispatchesOnlyPending(t *testing.T) {
	svc, store := reminderFixture(t)
	sender := &fakeSender{}

	sum, err := svc.SendReminders(context.Background(), sender)
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Total)
	assert.Equal(t, 2, sum.Sent)
	assert.Equal(t, 0, sum.Failed)
	assert.Equal(t, "2 reminders sent successfully", sum.Message)

	require.Len(t, sender.calls, 2)
	assert.Equal(t, "sarah.johnson@email.com", sender.calls[0])
	assert.Equal(t, "michael.chen@email.com", sender.calls[1])

	log := store.ReminderLog()
	require.Len(t, log, 2)
	assert.True(t, log[0].Delivered)
	assert.Equal(t, "email", log[0].Channel)
}

func TestSendRemindersNothingPending(t *testing.T) {
	store := NewMemoryStore()
	p := store.SeedPatient(models.Patient{Name: "Emily Davis"})
	store.SeedAppointment(models.Appointment{
		PatientID: p.ID,
		StartTime: time.Date(2026, time.March, 9, 14, 0, 0, 0, time.UTC),
		Status:    models.StatusConfirmed,
	})
	svc := New(store, zerolog.Nop())
	sender := &fakeSender{}

	sum, err := svc.SendReminders(context.Background(), sender)
	require.NoError(t, err)

	assert.Equal(t, "No reminders needed", sum.Message)
	assert.Zero(t, sum.Total)
	assert.Empty(t, sender.calls, "no dispatch call may happen with nothing pending")
	assert.Empty(t, store.ReminderLog())
}

func TestSendRemindersAllFail(t *testing.T) {
	svc, store := reminderFixture(t)
	sender := &fakeSender{failAlways: true}

	sum, err := svc.SendReminders(context.Background(), sender)
	require.NoError(t, err)

	assert.Equal(t, 0, sum.Sent)
	assert.Equal(t, 2, sum.Failed)
	assert.Equal(t, "All 2 reminders failed to send", sum.Message)

	// Failures are still logged, flagged undelivered.
	log := store.ReminderLog()
	require.Len(t, log, 2)
	assert.False(t, log[0].Delivered)
	assert.False(t, log[1].Delivered)
}

func TestSendRemindersMixedOutcome(t *testing.T) {
	svc, _ := reminderFixture(t)
	sender := &fakeSender{failFor: map[string]bool{"michael.chen@email.com": true}}

	sum, err := svc.SendReminders(context.Background(), sender)
	require.NoError(t, err)

	assert.Equal(t, 1, sum.Sent)
	assert.Equal(t, 1, sum.Failed)
	assert.Equal(t, "1 reminders sent, 1 failed", sum.Message)
}

func TestSendRemindersSynthesizesAddressWhenMissing(t *testing.T) {
	store := NewMemoryStore()
	p := store.SeedPatient(models.Patient{Name: "Robert Wilson"})
	store.SeedAppointment(models.Appointment{
		PatientID: p.ID,
		StartTime: time.Date(2026, time.March, 9, 15, 30, 0, 0, time.UTC),
		Status:    models.StatusPending,
		Type:      "Procedure",
	})
	svc := New(store, zerolog.Nop())
	sender := &fakeSender{}

	_, err := svc.SendReminders(context.Background(), sender)
	require.NoError(t, err)

	require.Len(t, sender.calls, 1)
	assert.Equal(t, "robert.wilson@example.com", sender.calls[0])
}

func TestPlaceholderAddress(t *testing.T) {
	assert.Equal(t, "sarah.johnson@example.com", PlaceholderAddress("Sarah Johnson"))
	assert.Equal(t, "emily.rose.davis@example.com", PlaceholderAddress("Emily Rose Davis"))
}
