package schedule

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"clinic-dashboard-server/internal/models"
)

// MemoryStore is an in-memory Store used by tests and the demo seed. Ids
// are collision-checked UUIDs; insertion order is preserved.
type MemoryStore struct {
	mu           sync.RWMutex
	appointments []models.Appointment
	patients     []models.Patient
	reminderLog  []models.ReminderLog

	// Call counters, for asserting that invalid input never reaches the
	// store.
	ListAppointmentCalls   int
	CreateAppointmentCalls int
	UpdateStatusCalls      int
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SeedPatient inserts a patient, assigning an id when missing.
func (m *MemoryStore) SeedPatient(p models.Patient) models.Patient {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == "" {
		p.ID = m.newIDLocked()
	}
	m.patients = append(m.patients, p)
	return p
}

// SeedAppointment inserts an appointment, assigning an id when missing and
// linking the patient relation when the patient is known.
func (m *MemoryStore) SeedAppointment(a models.Appointment) models.Appointment {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a.ID == "" {
		a.ID = m.newIDLocked()
	}
	if a.Patient.ID == "" {
		for _, p := range m.patients {
			if p.ID == a.PatientID {
				a.Patient = p
				break
			}
		}
	}
	m.appointments = append(m.appointments, a)
	return a
}

func (m *MemoryStore) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListAppointmentCalls++
	return append([]models.Appointment(nil), m.appointments...), nil
}

func (m *MemoryStore) GetAppointment(ctx context.Context, id string) (models.Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Appointment{}, ErrNotFound
}

func (m *MemoryStore) CreateAppointment(ctx context.Context, appt models.Appointment) (models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateAppointmentCalls++
	appt.ID = m.newIDLocked()
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = appt.CreatedAt
	for _, p := range m.patients {
		if p.ID == appt.PatientID {
			appt.Patient = p
			break
		}
	}
	m.appointments = append(m.appointments, appt)
	return appt, nil
}

func (m *MemoryStore) UpdateAppointmentStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateStatusCalls++
	for i := range m.appointments {
		if m.appointments[i].ID == id {
			m.appointments[i].Status = status
			m.appointments[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) DeleteAppointment(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.appointments {
		if m.appointments[i].ID == id {
			m.appointments = append(m.appointments[:i], m.appointments[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) ListPatients(ctx context.Context) ([]models.Patient, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Patient(nil), m.patients...), nil
}

func (m *MemoryStore) GetPatient(ctx context.Context, id string) (models.Patient, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.patients {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Patient{}, ErrNotFound
}

func (m *MemoryStore) FindPatientByName(ctx context.Context, name string) (models.Patient, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.patients {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return models.Patient{}, ErrNotFound
}

func (m *MemoryStore) AppendReminderLog(ctx context.Context, entry models.ReminderLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if entry.ID == "" {
		entry.ID = m.newIDLocked()
	}
	m.reminderLog = append(m.reminderLog, entry)
	return nil
}

// ReminderLog returns a copy of the recorded reminder dispatches.
func (m *MemoryStore) ReminderLog() []models.ReminderLog {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.ReminderLog(nil), m.reminderLog...)
}

// newIDLocked generates a UUID that does not collide with any existing
// record. Collisions are vanishingly rare; the scan keeps the mock honest
// about the uniqueness invariant.
func (m *MemoryStore) newIDLocked() string {
	for {
		id := uuid.New().String()
		if !m.idExistsLocked(id) {
			return id
		}
	}
}

func (m *MemoryStore) idExistsLocked(id string) bool {
	for _, a := range m.appointments {
		if a.ID == id {
			return true
		}
	}
	for _, p := range m.patients {
		if p.ID == id {
			return true
		}
	}
	for _, r := range m.reminderLog {
		if r.ID == id {
			return true
		}
	}
	return false
}
