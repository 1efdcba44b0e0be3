package onboarding

import (
	"errors"
	"fmt"

	"petalflow/models"
)

// ErrVendorUnavailable marks a failed vendor lookup. It is terminal for the
// mount; the client renders a dead-end message and offers no retry.
var ErrVendorUnavailable = errors.New("vendor unavailable")

// ErrSessionNotFound is returned when a session id resolves to nothing.
var ErrSessionNotFound = errors.New("onboarding session not found or expired")

// ValidationError carries field-level failures to be surfaced inline.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return fmt.Sprintf("validation failed: %s: %s", e.Fields[0].Field, e.Fields[0].Message)
	}
	return fmt.Sprintf("validation failed on %d fields", len(e.Fields))
}

// NewValidationError wraps field errors in a ValidationError.
func NewValidationError(fields []models.FieldError) error {
	return &ValidationError{Fields: fields}
}

// NavigationError marks a blocked wizard transition.
type NavigationError struct {
	Code    string
	Message string
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNavigationError(msg string) error {
	return &NavigationError{
		Code:    "navigationBlocked",
		Message: msg,
	}
}
