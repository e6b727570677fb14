package schedule

import (
	"context"
	"errors"

	"clinic-dashboard-server/internal/models"
)

// ErrNotFound is returned by stores when a record does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the persistence contract the scheduling service talks to. The
// production implementation is backed by gorm; tests and the demo seed use
// the in-memory fixture store.
type Store interface {
	// ListAppointments returns all appointments with their patient relation
	// populated, in insertion order.
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	GetAppointment(ctx context.Context, id string) (models.Appointment, error)
	CreateAppointment(ctx context.Context, appt models.Appointment) (models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id string, status models.AppointmentStatus) error
	DeleteAppointment(ctx context.Context, id string) error

	ListPatients(ctx context.Context) ([]models.Patient, error)
	GetPatient(ctx context.Context, id string) (models.Patient, error)
	FindPatientByName(ctx context.Context, name string) (models.Patient, error)

	AppendReminderLog(ctx context.Context, entry models.ReminderLog) error
}
