package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clinic-dashboard-server/internal/models"
)

// Sender delivers a single appointment reminder. Implementations report a
// nil error when the message was accepted for delivery.
type Sender interface {
	SendAppointmentReminder(ctx context.Context, to, patientName, date, clock, apptType string) error
}

// Summary aggregates the outcome of one reminder batch.
type Summary struct {
	Total   int    `json:"total"`
	Sent    int    `json:"sent"`
	Failed  int    `json:"failed"`
	Message string `json:"message"`
}

// PlaceholderAddress synthesizes a recipient address for a patient without
// an email on file: lower-cased name, spaces replaced by dots.
func PlaceholderAddress(patientName string) string {
	return strings.ReplaceAll(strings.ToLower(patientName), " ", ".") + "@example.com"
}

// SendReminders dispatches a reminder for every pending appointment,
// sequentially, and returns the batch summary. With nothing pending no
// dispatch call is made at all.
func (s *Service) SendReminders(ctx context.Context, sender Sender) (Summary, error) {
	appts, err := s.store.ListAppointments(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("reminders: loading appointments failed")
		return Summary{}, err
	}

	var pending []models.Appointment
	for _, a := range appts {
		if a.Status == models.StatusPending {
			pending = append(pending, a)
		}
	}

	if len(pending) == 0 {
		return Summary{Message: "No reminders needed"}, nil
	}

	sum := Summary{Total: len(pending)}
	for _, a := range pending {
		recipient := a.Patient.Email
		if recipient == "" {
			recipient = PlaceholderAddress(a.PatientName())
		}

		date := a.StartTime.Format("January 2, 2006")
		clock := a.StartTime.Format("15:04")

		sendErr := sender.SendAppointmentReminder(ctx, recipient, a.PatientName(), date, clock, a.Type)
		if sendErr != nil {
			sum.Failed++
			s.log.Warn().Err(sendErr).Str("appointment_id", a.ID).Str("recipient", recipient).
				Msg("reminder dispatch failed")
		} else {
			sum.Sent++
		}

		entry := models.ReminderLog{
			AppointmentID: a.ID,
			PatientName:   a.PatientName(),
			Recipient:     recipient,
			Channel:       "email",
			SentAt:        time.Now(),
			Delivered:     sendErr == nil,
		}
		if logErr := s.store.AppendReminderLog(ctx, entry); logErr != nil {
			s.log.Warn().Err(logErr).Str("appointment_id", a.ID).Msg("reminder log write failed")
		}
	}

	switch {
	case sum.Failed == 0:
		sum.Message = fmt.Sprintf("%d reminders sent successfully", sum.Sent)
	case sum.Sent == 0:
		sum.Message = fmt.Sprintf("All %d reminders failed to send", sum.Failed)
	default:
		sum.Message = fmt.Sprintf("%d reminders sent, %d failed", sum.Sent, sum.Failed)
	}
	return sum, nil
}
