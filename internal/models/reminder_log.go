package models

import (
	"time"
)

// ReminderLog records one reminder dispatch attempt for an appointment.
type ReminderLog struct {
	BaseModel
	AppointmentID string    `gorm:"size:36;index" json:"appointmentId"`
	PatientName   string    `gorm:"size:255" json:"patientName"`
	Recipient     string    `gorm:"size:255" json:"recipient"`
	Channel       string    `gorm:"size:20;default:'email'" json:"channel"`
	SentAt        time.Time `json:"sentAt"`
	Delivered     bool      `gorm:"default:false" json:"delivered"`

	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"-"`
}
