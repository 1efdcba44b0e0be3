package onboarding

import (
	"fmt"
	"time"

	sessionRepo "petalflow/database/repository/session"
	"petalflow/models"
	"petalflow/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MountSession creates a new, mostly empty session for a vendor's wizard.
func (s *DefaultOnboardingService) MountSession(vendorSlug, variant string) (*models.OnboardingSession, error) {
	logger := utils.GetLogger()

	vendor, err := s.VendorSvc.GetVendorBySlug(vendorSlug)
	if err != nil {
		logger.Warn("MountSession: vendor lookup failed",
			zap.String("slug", vendorSlug), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrVendorUnavailable, err)
	}

	totalSteps := models.FullWizardSteps
	if variant == models.WizardVariantQuick {
		totalSteps = models.QuickWizardSteps
	} else {
		variant = models.WizardVariantFull
	}

	session := &models.OnboardingSession{
		SessionID:    uuid.New().String(),
		VendorSlug:   vendorSlug,
		VendorID:     vendor.ID,
		Variant:      variant,
		CurrentStep:  1,
		TotalSteps:   totalSteps,
		InquiryStage: models.InquiryNotCreated,
		CreatedAt:    time.Now(),
	}

	if err := s.Sessions.Save(session); err != nil {
		return nil, fmt.Errorf("failed to store onboarding session: %w", err)
	}

	logger.Info("MountSession: session created",
		zap.String("sessionId", session.SessionID),
		zap.String("vendor", vendorSlug),
		zap.String("variant", variant))
	return session, nil
}

// GetSession returns the current session snapshot.
func (s *DefaultOnboardingService) GetSession(sessionID string) (*models.OnboardingSession, error) {
	session, err := s.Sessions.Get(sessionID)
	if err != nil {
		if err == sessionRepo.ErrNotFound {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// UpdateSession shallow-merges the update into the session's answers.
// Only fields present in the payload are touched; the rest keep their last
// written value.
func (s *DefaultOnboardingService) UpdateSession(sessionID string, update models.SessionUpdate) (*models.OnboardingSession, error) {
	mu := s.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	mergeAnswers(&session.Answers, update)

	if err := s.Sessions.Save(session); err != nil {
		return nil, fmt.Errorf("failed to store onboarding session: %w", err)
	}
	return session, nil
}

func mergeAnswers(a *models.SessionAnswers, u models.SessionUpdate) {
	if u.BrideName != nil {
		a.BrideName = *u.BrideName
	}
	if u.PartnerName != nil {
		a.PartnerName = *u.PartnerName
	}
	if u.Email != nil {
		a.Email = *u.Email
	}
	if u.Phone != nil {
		a.Phone = *u.Phone
	}
	if u.ReferredBy != nil {
		a.ReferredBy = *u.ReferredBy
	}
	if u.EventDate != nil {
		a.EventDate = *u.EventDate
	}
	if u.EventType != nil {
		a.EventType = *u.EventType
	}
	if u.Venue != nil {
		a.Venue = *u.Venue
	}
	if u.GuestCount != nil {
		a.GuestCount = *u.GuestCount
	}
	if u.Budget != nil {
		a.Budget = *u.Budget
	}
	if u.Timeline != nil {
		a.Timeline = *u.Timeline
	}
	if u.Style != nil {
		a.Style = *u.Style
	}
	if u.ColorScheme != nil {
		a.ColorScheme = *u.ColorScheme
	}
	if u.SelectedColors != nil {
		a.SelectedColors = u.SelectedColors
	}
	if u.FlowerTags != nil {
		a.FlowerTags = u.FlowerTags
	}
	if u.InspirationURLs != nil {
		a.InspirationURLs = u.InspirationURLs
	}
	if u.Services != nil {
		a.Services = u.Services
	}
	if u.Notes != nil {
		a.Notes = *u.Notes
	}
}

// ResetSession discards the run entirely. The next mount generates a fresh
// session id, so nothing from the old run can leak into the new one.
func (s *DefaultOnboardingService) ResetSession(sessionID string) error {
	mu := s.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	session, err := s.GetSession(sessionID)
	if err != nil {
		if err == ErrSessionNotFound {
			return nil
		}
		return err
	}

	if session.EventID != nil {
		s.autosave.drop(*session.EventID)
	}
	if err := s.Sessions.Delete(sessionID); err != nil {
		return err
	}
	s.locks.Delete(sessionID)

	utils.GetLogger().Info("ResetSession: session cleared",
		zap.String("sessionId", sessionID))
	return nil
}
