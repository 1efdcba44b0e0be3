package onboarding

import (
	"regexp"
	"strings"

	"petalflow/models"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateContactFields checks the step-1 contact and event fields. Invalid
// input is still stored in the session; these rules only gate inquiry
// creation and forward navigation.
func ValidateContactFields(a models.SessionAnswers) []models.FieldError {
	var fields []models.FieldError

	if len(strings.TrimSpace(a.BrideName)) < 2 {
		fields = append(fields, models.FieldError{Field: "brideName", Message: "name must be at least 2 characters"})
	}
	if a.PartnerName != "" && len(strings.TrimSpace(a.PartnerName)) < 2 {
		fields = append(fields, models.FieldError{Field: "partnerName", Message: "name must be at least 2 characters"})
	}
	if !emailPattern.MatchString(a.Email) {
		fields = append(fields, models.FieldError{Field: "email", Message: "a valid email address is required"})
	}
	if len(strings.TrimSpace(a.Phone)) < 10 {
		fields = append(fields, models.FieldError{Field: "phone", Message: "phone must be at least 10 characters"})
	}
	if strings.TrimSpace(a.EventDate) == "" {
		fields = append(fields, models.FieldError{Field: "eventDate", Message: "event date is required"})
	}
	if a.GuestCount != 0 && (a.GuestCount < 1 || a.GuestCount > 1000) {
		fields = append(fields, models.FieldError{Field: "guestCount", Message: "guest count must be between 1 and 1000"})
	}
	return fields
}

// ValidateDesignFields checks the design-preferences step. Only the full
// wizard requires at least one service category; the quick variant skips it.
func ValidateDesignFields(a models.SessionAnswers, variant string) []models.FieldError {
	if variant != models.WizardVariantFull {
		return nil
	}
	for _, selections := range a.Services {
		for _, sel := range selections {
			if sel.Quantity > 0 {
				return nil
			}
		}
	}
	return []models.FieldError{
		{Field: "services", Message: "select at least one service"},
	}
}
