package onboarding

import (
	"sync"
	"time"

	eventRepo "petalflow/database/repository/event"
	inquiryRepo "petalflow/database/repository/inquiry"
	sessionRepo "petalflow/database/repository/session"
	"petalflow/models"
	"petalflow/services/vendors"
)

// OnboardingService drives one couple's wizard run: the shared session
// record, step navigation, the inquiry-creation gate, and the debounced
// auto-save targets that come alive once an event id exists.
type OnboardingService interface {
	// MountSession creates a fresh session scoped to a vendor slug. A failed
	// vendor lookup is terminal (ErrVendorUnavailable).
	MountSession(vendorSlug, variant string) (*models.OnboardingSession, error)
	// GetSession returns the current session snapshot.
	GetSession(sessionID string) (*models.OnboardingSession, error)
	// UpdateSession shallow-merges answer fields, last-write-wins. It never
	// validates; partial and invalid input is stored as entered.
	UpdateSession(sessionID string, update models.SessionUpdate) (*models.OnboardingSession, error)
	// ResetSession clears the run so "plan another event" starts clean.
	ResetSession(sessionID string) error

	// NextStep advances the wizard one step, gated by CanProgress.
	NextStep(sessionID string) (*models.OnboardingSession, error)
	// PrevStep moves back one step, clamped at step 1.
	PrevStep(sessionID string) (*models.OnboardingSession, error)
	// GoToStep jumps directly to a step ("edit this section" links).
	GoToStep(sessionID string, step int) (*models.OnboardingSession, error)
	// AcknowledgeConfirmation dismisses the one-time inquiry confirmation.
	// Action "review" jumps straight to the final step.
	AcknowledgeConfirmation(sessionID, action string) (*models.OnboardingSession, error)
	// SubmitWizard finalizes the run from the terminal step.
	SubmitWizard(sessionID string) (*models.OnboardingSession, error)

	// CreateInquiry runs the idempotent step-1 inquiry creation gate.
	CreateInquiry(sessionID string) (*models.InquiryResponse, error)

	// QueueColorSave debounces a color-selection save for the session's event.
	QueueColorSave(sessionID string, colorScheme string, selectedColors map[string][]string) error
	// QueueArrangementSave debounces arrangement quantity changes, collapsed
	// by (arrangementId, section).
	QueueArrangementSave(sessionID string, updates []models.ArrangementUpdate) error
	// SaveStatus reports per-target auto-save state for the session's event.
	SaveStatus(sessionID string) (map[string]SaveStatus, error)
}

// ReminderScheduler enqueues the abandoned-wizard follow-up once an inquiry
// exists.
type ReminderScheduler interface {
	ScheduleAbandonedReminder(sessionID string, inquiryID int64, delay time.Duration) error
}

// DefaultOnboardingService implements OnboardingService.
type DefaultOnboardingService struct {
	Sessions  sessionRepo.SessionRepository
	Inquiries inquiryRepo.InquiryRepository
	Events    eventRepo.EventRepository
	VendorSvc vendors.VendorService
	Reminders ReminderScheduler

	// AutoSaveWindow is the debounce quiet period; defaults to one second.
	AutoSaveWindow time.Duration

	autosave autoSaveRegistry

	// Per-session locks serialize read-modify-write cycles on the session
	// blob; the inquiry gate depends on this.
	locks sync.Map
}

func (s *DefaultOnboardingService) sessionLock(sessionID string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(sessionID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (s *DefaultOnboardingService) autoSaveWindow() time.Duration {
	if s.AutoSaveWindow > 0 {
		return s.AutoSaveWindow
	}
	return time.Second
}
