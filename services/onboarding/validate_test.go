package onboarding

import (
	"testing"

	"petalflow/models"

	"github.com/stretchr/testify/assert"
)

func fieldNames(fields []models.FieldError) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Field)
	}
	return names
}

func TestValidateContactFieldsEmptyAnswers(t *testing.T) {
	fields := ValidateContactFields(models.SessionAnswers{})
	names := fieldNames(fields)
	assert.Contains(t, names, "brideName")
	assert.Contains(t, names, "email")
	assert.Contains(t, names, "phone")
	assert.Contains(t, names, "eventDate")
	assert.NotContains(t, names, "partnerName")
	assert.NotContains(t, names, "guestCount")
}

func TestValidateContactFieldsValid(t *testing.T) {
	fields := ValidateContactFields(models.SessionAnswers{
		BrideName:  "Jane",
		Email:      "jane@example.com",
		Phone:      "5551234567",
		EventDate:  "2025-06-01",
		GuestCount: 150,
	})
	assert.Empty(t, fields)
}

func TestValidateContactFieldsEmail(t *testing.T) {
	for _, bad := range []string{"", "plain", "no@tld", "two@@example.com", "spaces in@example.com"} {
		fields := ValidateContactFields(models.SessionAnswers{Email: bad})
		assert.Contains(t, fieldNames(fields), "email", "email %q", bad)
	}
}

func TestValidateContactFieldsPartnerNameOptional(t *testing.T) {
	base := models.SessionAnswers{
		BrideName: "Jane",
		Email:     "jane@example.com",
		Phone:     "5551234567",
		EventDate: "2025-06-01",
	}

	assert.Empty(t, ValidateContactFields(base))

	base.PartnerName = "J"
	assert.Contains(t, fieldNames(ValidateContactFields(base)), "partnerName")

	base.PartnerName = "Jo"
	assert.Empty(t, ValidateContactFields(base))
}

func TestValidateContactFieldsGuestCountRange(t *testing.T) {
	base := models.SessionAnswers{
		BrideName: "Jane",
		Email:     "jane@example.com",
		Phone:     "5551234567",
		EventDate: "2025-06-01",
	}

	base.GuestCount = 1001
	assert.Contains(t, fieldNames(ValidateContactFields(base)), "guestCount")

	base.GuestCount = -5
	assert.Contains(t, fieldNames(ValidateContactFields(base)), "guestCount")

	// Zero means unanswered, not invalid.
	base.GuestCount = 0
	assert.Empty(t, ValidateContactFields(base))
}

func TestValidateDesignFieldsFullVariant(t *testing.T) {
	fields := ValidateDesignFields(models.SessionAnswers{}, models.WizardVariantFull)
	assert.Contains(t, fieldNames(fields), "services")

	answers := models.SessionAnswers{
		Services: map[string]map[string]models.ServiceSelection{
			"personal": {
				"bouquet": {ArrangementID: "bouquet", Quantity: 0},
			},
		},
	}
	// Zero quantities do not count as a selection.
	assert.NotEmpty(t, ValidateDesignFields(answers, models.WizardVariantFull))

	answers.Services["personal"]["bouquet"] = models.ServiceSelection{ArrangementID: "bouquet", Quantity: 2}
	assert.Empty(t, ValidateDesignFields(answers, models.WizardVariantFull))
}

func TestValidateDesignFieldsQuickVariantSkipped(t *testing.T) {
	assert.Empty(t, ValidateDesignFields(models.SessionAnswers{}, models.WizardVariantQuick))
}
