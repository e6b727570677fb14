package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() Form {
	return Form{
		Patient: "Sarah Johnson",
		Date:    "2026-03-09",
		Clock:   "09:00",
		Type:    "Consultation",
		Phone:   "+1 (555) 123-4567",
	}
}

func TestValidateAcceptsCompleteForm(t *testing.T) {
	form := validForm()
	assert.Empty(t, form.Validate())
}

func TestValidateRejectsShortName(t *testing.T) {
	form := validForm()
	form.Patient = "A"

	errs := form.Validate()
	assert.Contains(t, errs, "patient")
}

func TestValidateTrimsWhitespaceBeforeLengthCheck(t *testing.T) {
	form := validForm()
	form.Patient = "  A  "

	errs := form.Validate()
	assert.Contains(t, errs, "patient")
}

func TestValidateRequiresType(t *testing.T) {
	form := validForm()
	form.Type = "   "

	errs := form.Validate()
	assert.Contains(t, errs, "type")
}

func TestValidateRequiresDateAndTime(t *testing.T) {
	form := validForm()
	form.Date = ""
	form.Clock = ""

	errs := form.Validate()
	assert.Contains(t, errs, "date")
	assert.Contains(t, errs, "time")
}

func TestValidateRejectsMalformedDate(t *testing.T) {
	form := validForm()
	form.Date = "03/09/2026"

	errs := form.Validate()
	assert.Contains(t, errs, "date")
}

func TestValidatePhoneCountsDigitsOnly(t *testing.T) {
	form := validForm()

	// Nine digits spread across formatting characters is still too short.
	form.Phone = "(555) 123-456"
	assert.Contains(t, form.Validate(), "phone")

	// Ten digits with heavy formatting passes.
	form.Phone = "(555) 123-4567 ext"
	assert.NotContains(t, form.Validate(), "phone")
}

func TestValidateCollectsAllErrorsAtOnce(t *testing.T) {
	form := Form{}
	errs := form.Validate()

	for _, field := range []string{"patient", "type", "date", "time", "phone"} {
		assert.Contains(t, errs, field)
	}
}

func TestStartTimeCombinesDateAndClock(t *testing.T) {
	form := validForm()

	start, err := form.StartTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 9, 9, 0, 0, 0, time.UTC), start)
}
