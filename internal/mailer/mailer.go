package mailer

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"clinic-dashboard-server/internal/config"
)

// Mailer delivers appointment reminder emails over SMTP. It implements
// schedule.Sender.
type Mailer struct {
	cfg    config.SMTPConfig
	clinic string
}

// New creates a Mailer from SMTP config. clinicName is used in the
// message signature.
func New(cfg config.SMTPConfig, clinicName string) *Mailer {
	return &Mailer{cfg: cfg, clinic: clinicName}
}

// SendAppointmentReminder sends one reminder email. A nil error means the
// SMTP server accepted the message for delivery. With the transport
// disabled nothing is dialed and the message counts as sent, so local
// environments without an SMTP server still get meaningful summaries.
func (m *Mailer) SendAppointmentReminder(ctx context.Context, to, patientName, date, clock, apptType string) error {
	if !m.cfg.Enabled {
		return nil
	}

	subject := fmt.Sprintf("Appointment Reminder: %s on %s", apptType, date)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", reminderBody(patientName, date, clock, apptType, m.clinic))

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)

	done := make(chan error, 1)
	go func() {
		done <- d.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("mailer: send to %s: %w", to, err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func reminderBody(patientName, date, clock, apptType, clinic string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Appointment Reminder</h2>
  <p>Dear %s,</p>
  <p>This is a reminder of your upcoming appointment:</p>
  <div style="background-color: #f8f9fa; padding: 15px; border-radius: 5px; margin: 20px 0;">
    <p><strong>Date:</strong> %s</p>
    <p><strong>Time:</strong> %s</p>
    <p><strong>Type:</strong> %s</p>
  </div>
  <p>If you need to reschedule or cancel, please contact us at least 24 hours before your appointment.</p>
  <p>Best regards,<br>%s</p>
</div>`, patientName, date, clock, apptType, clinic)
}
