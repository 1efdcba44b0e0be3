package sessionRepo

import (
	"errors"

	"petalflow/models"
)

// ErrNotFound is returned when a session does not exist or has expired.
var ErrNotFound = errors.New("onboarding session not found or expired")

// SessionRepository stores wizard sessions as single records keyed by
// session id. Writes slide the TTL so an active run never expires mid-flow.
type SessionRepository interface {
	Get(sessionID string) (*models.OnboardingSession, error)
	Save(session *models.OnboardingSession) error
	Delete(sessionID string) error
}
