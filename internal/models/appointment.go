package models

import (
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// KnownStatuses are the statuses the dashboard renders with dedicated
// badges. The column itself is an open string; anything else gets the
// default rendering.
var KnownStatuses = []AppointmentStatus{
	StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted,
}

// Appointment represents a scheduled clinic visit.
//
// StartTime is the single source of truth for when the visit happens;
// clock strings and pretty dates exist only at the request/response
// boundary. The patient is referenced by id, never by a copied name.
type Appointment struct {
	BaseModel
	PatientID       string            `gorm:"size:36;index" json:"patientId"`
	StartTime       time.Time         `gorm:"index" json:"startTime"`
	DurationMinutes int               `gorm:"default:30" json:"durationMinutes"`
	Type            string            `gorm:"size:100" json:"type"`
	Status          AppointmentStatus `gorm:"size:20;default:'pending'" json:"status"`
	Phone           string            `gorm:"size:50" json:"phone"`
	Notes           string            `gorm:"type:text" json:"notes"`

	// Relations
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient"`
}

// PatientName returns the name of the linked patient when the relation is
// preloaded, empty otherwise.
func (a *Appointment) PatientName() string {
	return a.Patient.Name
}
