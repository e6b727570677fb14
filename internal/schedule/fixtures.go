package schedule

import (
	"time"

	"gorm.io/gorm"

	"clinic-dashboard-server/internal/models"
)

type fixturePatient struct {
	name    string
	email   string
	phone   string
	age     int
	history string
}

type fixtureAppointment struct {
	patient  string
	clock    string
	apptType string
	status   models.AppointmentStatus
	notes    string
}

var fixturePatients = []fixturePatient{
	{"Sarah Johnson", "sarah.johnson@email.com", "+1 (555) 123-4567", 34, "Diabetes Type 2, Hypertension"},
	{"Michael Chen", "michael.chen@email.com", "+1 (555) 987-6543", 28, "Allergies: Penicillin"},
	{"Emily Davis", "emily.davis@email.com", "+1 (555) 456-7890", 45, "Previous surgery: Appendectomy"},
	{"Robert Wilson", "robert.wilson@email.com", "+1 (555) 321-0987", 52, "High cholesterol, Joint pain"},
}

var fixtureAppointments = []fixtureAppointment{
	{"Sarah Johnson", "09:00", "Consultation", models.StatusConfirmed, "Annual checkup"},
	{"Michael Chen", "10:30", "Follow-up", models.StatusPending, "Blood test results review"},
	{"Emily Davis", "14:00", "Consultation", models.StatusConfirmed, "First visit"},
	{"Robert Wilson", "15:30", "Procedure", models.StatusConfirmed, "Minor procedure"},
}

// NewFixtureStore returns a memory store seeded with the demo patients and
// today's demo appointments.
func NewFixtureStore(now time.Time) *MemoryStore {
	m := NewMemoryStore()
	byName := map[string]models.Patient{}
	for _, fp := range fixturePatients {
		p := m.SeedPatient(models.Patient{
			Name:           fp.name,
			Email:          fp.email,
			Phone:          fp.phone,
			Age:            fp.age,
			Status:         models.PatientActive,
			MedicalHistory: fp.history,
		})
		byName[fp.name] = p
	}
	for _, fa := range fixtureAppointments {
		p := byName[fa.patient]
		clock, _ := time.Parse("15:04", fa.clock)
		start := time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, now.Location())
		m.SeedAppointment(models.Appointment{
			PatientID:       p.ID,
			StartTime:       start,
			DurationMinutes: 30,
			Type:            fa.apptType,
			Status:          fa.status,
			Phone:           p.Phone,
			Notes:           fa.notes,
		})
	}
	return m
}

// SeedDemoData loads the demo fixtures into the database if it holds no
// patients yet. Used behind the SEED_DEMO_DATA switch for local runs.
func SeedDemoData(db *gorm.DB, now time.Time) error {
	var count int64
	if err := db.Model(&models.Patient{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	byName := map[string]models.Patient{}
	for _, fp := range fixturePatients {
		p := models.Patient{
			Name:           fp.name,
			Email:          fp.email,
			Phone:          fp.phone,
			Age:            fp.age,
			Status:         models.PatientActive,
			MedicalHistory: fp.history,
		}
		if err := db.Create(&p).Error; err != nil {
			return err
		}
		byName[fp.name] = p
	}
	for _, fa := range fixtureAppointments {
		p := byName[fa.patient]
		clock, _ := time.Parse("15:04", fa.clock)
		start := time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, now.Location())
		appt := models.Appointment{
			PatientID:       p.ID,
			StartTime:       start,
			DurationMinutes: 30,
			Type:            fa.apptType,
			Status:          fa.status,
			Phone:           p.Phone,
			Notes:           fa.notes,
		}
		if err := db.Create(&appt).Error; err != nil {
			return err
		}
	}
	return nil
}
