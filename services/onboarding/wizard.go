package onboarding

import (
	"fmt"

	"petalflow/models"
	"petalflow/utils"

	"go.uber.org/zap"
)

// Confirmation dismissal actions.
const (
	ConfirmationActionContinue = "continue"
	ConfirmationActionReview   = "review"
)

// CanProgress reports whether the session may advance past its current step,
// with field errors explaining the block.
func CanProgress(session *models.OnboardingSession) (bool, []models.FieldError) {
	switch {
	case session.CurrentStep == 1:
		// Step 1 never unlocks before the inquiry exists.
		if session.InquiryID == nil {
			return false, []models.FieldError{
				{Field: "inquiry", Message: "inquiry must be created before continuing"},
			}
		}
		if fields := ValidateContactFields(session.Answers); len(fields) > 0 {
			return false, fields
		}
		return true, nil
	case session.Variant == models.WizardVariantFull && session.CurrentStep == 2:
		if fields := ValidateDesignFields(session.Answers, session.Variant); len(fields) > 0 {
			return false, fields
		}
		return true, nil
	default:
		return true, nil
	}
}

// NextStep advances the wizard one step, gated by CanProgress.
func (s *DefaultOnboardingService) NextStep(sessionID string) (*models.OnboardingSession, error) {
	mu := s.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.CurrentStep >= session.TotalSteps {
		return session, nil
	}

	if ok, fields := CanProgress(session); !ok {
		if session.CurrentStep == 1 && session.InquiryID == nil {
			return nil, NewNavigationError("create an inquiry before continuing")
		}
		return nil, NewValidationError(fields)
	}

	session.CurrentStep++
	if err := s.Sessions.Save(session); err != nil {
		return nil, fmt.Errorf("failed to store onboarding session: %w", err)
	}
	return session, nil
}

// PrevStep moves back one step, clamped at the first step.
func (s *DefaultOnboardingService) PrevStep(sessionID string) (*models.OnboardingSession, error) {
	mu := s.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.CurrentStep <= 1 {
		return session, nil
	}

	session.CurrentStep--
	if err := s.Sessions.Save(session); err != nil {
		return nil, fmt.Errorf("failed to store onboarding session: %w", err)
	}
	return session, nil
}

// GoToStep jumps directly to a step, used by "edit this section" links and
// by skip-to-review. The target must be within the wizard's bounds.
func (s *DefaultOnboardingService) GoToStep(sessionID string, step int) (*models.OnboardingSession, error) {
	mu := s.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if step < 1 || step > session.TotalSteps {
		return nil, NewNavigationError(fmt.Sprintf("step %d is out of range", step))
	}

	session.CurrentStep = step
	if err := s.Sessions.Save(session); err != nil {
		return nil, fmt.Errorf("failed to store onboarding session: %w", err)
	}
	return session, nil
}

// AcknowledgeConfirmation dismisses the one-time inquiry confirmation. The
// stage moves to ConfirmationShown exactly once; repeat calls are no-ops so
// re-renders never re-trigger the modal.
func (s *DefaultOnboardingService) AcknowledgeConfirmation(sessionID, action string) (*models.OnboardingSession, error) {
	mu := s.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	switch session.InquiryStage {
	case models.InquiryConfirmationShown:
		return session, nil
	case models.InquiryCreated:
		// fall through to dismiss
	default:
		return nil, NewNavigationError("no inquiry confirmation to acknowledge")
	}

	session.InquiryStage = models.InquiryConfirmationShown
	if action == ConfirmationActionReview {
		session.CurrentStep = session.TotalSteps
	}

	if err := s.Sessions.Save(session); err != nil {
		return nil, fmt.Errorf("failed to store onboarding session: %w", err)
	}
	return session, nil
}

// SubmitWizard finalizes the run from the terminal step: pending auto-saves
// are flushed, the snapshot is written, and the session flips to completed.
// The completed flag never goes back.
func (s *DefaultOnboardingService) SubmitWizard(sessionID string) (*models.OnboardingSession, error) {
	logger := utils.GetLogger()

	mu := s.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsCompleted {
		return session, nil
	}
	if session.CurrentStep != session.TotalSteps {
		return nil, NewNavigationError("wizard can only be submitted from the final step")
	}
	if session.InquiryID == nil || session.EventID == nil {
		return nil, NewNavigationError("inquiry must be created before submitting")
	}

	if err := s.autosave.flushAll(*session.EventID); err != nil {
		// Submission still proceeds; the flush error stays visible on the
		// save-status surface.
		logger.Warn("SubmitWizard: auto-save flush failed",
			zap.String("sessionId", sessionID), zap.Error(err))
	}

	snapshot := &models.EventSnapshot{
		EventID:   *session.EventID,
		InquiryID: *session.InquiryID,
		VendorID:  session.VendorID,
		SessionID: session.SessionID,
		Answers:   session.Answers,
	}
	if err := s.Events.SaveSnapshot(snapshot); err != nil {
		return nil, fmt.Errorf("failed to save event snapshot: %w", err)
	}

	if err := s.Inquiries.MarkCompleted(*session.InquiryID); err != nil {
		logger.Warn("SubmitWizard: failed to mark inquiry completed",
			zap.Int64("inquiryId", *session.InquiryID), zap.Error(err))
	}

	session.IsCompleted = true
	if err := s.Sessions.Save(session); err != nil {
		return nil, fmt.Errorf("failed to store onboarding session: %w", err)
	}

	logger.Info("SubmitWizard: wizard completed",
		zap.String("sessionId", sessionID),
		zap.Int64("inquiryId", *session.InquiryID))
	return session, nil
}
