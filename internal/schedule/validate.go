package schedule

import (
	"strings"
	"time"
	"unicode"

	"clinic-dashboard-server/internal/utils"
)

// Form carries the scheduling form values for a new appointment. Date and
// Clock arrive as the strings the form produces; they are combined into a
// single absolute timestamp before anything is stored.
type Form struct {
	PatientID       string `json:"patientId"`
	Patient         string `json:"patient"`
	Date            string `json:"date"` // 2006-01-02
	Clock           string `json:"time"` // 15:04
	Type            string `json:"type"`
	Phone           string `json:"phone"`
	Notes           string `json:"notes"`
	DurationMinutes int    `json:"durationMinutes"`
}

// FieldErrors maps form field names to validation messages.
type FieldErrors map[string]string

// Validate checks the form and returns field-level errors. An empty map
// means the form is valid. No store call may happen before this passes.
func (f *Form) Validate() FieldErrors {
	errs := FieldErrors{}

	if len(strings.TrimSpace(f.Patient)) < 2 {
		errs["patient"] = "Patient name must be at least 2 characters"
	}
	if strings.TrimSpace(f.Type) == "" {
		errs["type"] = "Appointment type is required"
	}
	if strings.TrimSpace(f.Date) == "" {
		errs["date"] = "Date is required"
	} else if _, err := time.Parse(utils.DateLayout, f.Date); err != nil {
		errs["date"] = "Date must be in YYYY-MM-DD format"
	}
	if strings.TrimSpace(f.Clock) == "" {
		errs["time"] = "Time is required"
	} else if _, err := utils.ParseClock(f.Clock); err != nil {
		errs["time"] = "Time must be in HH:MM format"
	}
	if countDigits(f.Phone) < 10 {
		errs["phone"] = "Phone number must contain at least 10 digits"
	}

	return errs
}

// StartTime combines the date and clock fields into one timestamp. Call
// only after Validate has passed.
func (f *Form) StartTime() (time.Time, error) {
	return utils.CombineDateClock(f.Date, f.Clock)
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
