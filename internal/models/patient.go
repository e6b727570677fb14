package models

import (
	"time"
)

// PatientStatus represents whether a patient is actively visiting the clinic
type PatientStatus string

const (
	PatientActive   PatientStatus = "active"
	PatientInactive PatientStatus = "inactive"
)

// Patient represents a clinic patient record
type Patient struct {
	BaseModel
	Name           string        `gorm:"size:255;not null;index" json:"name"`
	Email          string        `gorm:"size:255" json:"email"`
	Phone          string        `gorm:"size:50" json:"phone"`
	Age            int           `json:"age"`
	Status         PatientStatus `gorm:"size:20;default:'active'" json:"status"`
	LastVisit      *time.Time    `json:"lastVisit,omitempty"`
	MedicalHistory string        `gorm:"type:text" json:"medicalHistory"`

	// Relations
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"-"`
}

// NextAppointment returns the earliest upcoming appointment start time, if
// the Appointments relation is preloaded. Cancelled appointments do not count.
func (p *Patient) NextAppointment(now time.Time) *time.Time {
	var next *time.Time
	for i := range p.Appointments {
		a := &p.Appointments[i]
		if a.Status == StatusCancelled || a.StartTime.Before(now) {
			continue
		}
		if next == nil || a.StartTime.Before(*next) {
			t := a.StartTime
			next = &t
		}
	}
	return next
}
