package onboarding

import (
	"fmt"
	"time"

	"petalflow/models"
	"petalflow/utils"

	"go.uber.org/zap"
)

// AbandonedReminderDelay is how long after inquiry creation the follow-up
// fires if the wizard was never submitted.
const AbandonedReminderDelay = 24 * time.Hour

// CreateInquiry runs the step-1 creation gate. The per-session lock plus the
// stage enum make it idempotent: however many times the client fires (double
// click, repeated Enter, re-render), at most one inquiry is written and the
// session gains exactly one inquiry id. Duplicate attempts are an expected
// race, logged and answered with the existing outcome, never an error.
func (s *DefaultOnboardingService) CreateInquiry(sessionID string) (*models.InquiryResponse, error) {
	logger := utils.GetLogger()

	mu := s.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	switch session.InquiryStage {
	case models.InquiryCreated, models.InquiryConfirmationShown:
		logger.Debug("CreateInquiry: duplicate attempt suppressed",
			zap.String("sessionId", sessionID),
			zap.String("stage", session.InquiryStage.String()))
		resp := &models.InquiryResponse{Message: "Inquiry already created"}
		if session.InquiryID != nil {
			resp.Data.InquiryID = *session.InquiryID
		}
		if session.EventID != nil {
			resp.Data.EventID = *session.EventID
		}
		return resp, nil
	case models.InquiryCreating:
		// The lock serializes this whole function, so a Creating stage read
		// back from the store can only be a flight that died between writes.
		// Treat it as retryable rather than stranding the session.
		logger.Warn("CreateInquiry: stale in-flight stage, retrying",
			zap.String("sessionId", sessionID))
	}

	if fields := ValidateContactFields(session.Answers); len(fields) > 0 {
		return nil, NewValidationError(fields)
	}

	session.InquiryStage = models.InquiryCreating
	if err := s.Sessions.Save(session); err != nil {
		session.InquiryStage = models.InquiryNotCreated
		return nil, fmt.Errorf("failed to store onboarding session: %w", err)
	}

	inquiry := &models.Inquiry{
		VendorID:    session.VendorID,
		SessionID:   session.SessionID,
		BrideName:   session.Answers.BrideName,
		PartnerName: session.Answers.PartnerName,
		Email:       session.Answers.Email,
		Phone:       session.Answers.Phone,
		ReferredBy:  session.Answers.ReferredBy,
		EventDate:   session.Answers.EventDate,
		EventType:   session.Answers.EventType,
		Venue:       session.Answers.Venue,
		GuestCount:  session.Answers.GuestCount,
		Budget:      session.Answers.Budget,
		Timeline:    session.Answers.Timeline,
	}

	if err := s.Inquiries.Create(inquiry); err != nil {
		// Clear the in-flight stage so the next user-initiated submit can
		// retry. The inquiry id is never touched on failure.
		session.InquiryStage = models.InquiryNotCreated
		if saveErr := s.Sessions.Save(session); saveErr != nil {
			logger.Error("CreateInquiry: failed to roll back stage",
				zap.String("sessionId", sessionID), zap.Error(saveErr))
		}
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}

	eventID, err := s.Events.NextEventID()
	if err != nil {
		session.InquiryStage = models.InquiryNotCreated
		if saveErr := s.Sessions.Save(session); saveErr != nil {
			logger.Error("CreateInquiry: failed to roll back stage",
				zap.String("sessionId", sessionID), zap.Error(saveErr))
		}
		return nil, fmt.Errorf("failed to allocate event id: %w", err)
	}

	session.InquiryID = &inquiry.InquiryID
	session.EventID = &eventID
	session.InquiryStage = models.InquiryCreated
	if err := s.Sessions.Save(session); err != nil {
		session.InquiryID = nil
		session.EventID = nil
		session.InquiryStage = models.InquiryNotCreated
		if saveErr := s.Sessions.Save(session); saveErr != nil {
			logger.Error("CreateInquiry: failed to roll back stage",
				zap.String("sessionId", sessionID), zap.Error(saveErr))
		}
		return nil, fmt.Errorf("failed to store onboarding session: %w", err)
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleAbandonedReminder(sessionID, inquiry.InquiryID, AbandonedReminderDelay); err != nil {
			logger.Warn("CreateInquiry: failed to schedule follow-up",
				zap.String("sessionId", sessionID), zap.Error(err))
		}
	}

	logger.Info("CreateInquiry: inquiry created",
		zap.String("sessionId", sessionID),
		zap.Int64("inquiryId", inquiry.InquiryID),
		zap.Int64("eventId", eventID))

	return &models.InquiryResponse{
		Message: "Inquiry created",
		Data: models.InquiryData{
			InquiryID: inquiry.InquiryID,
			EventID:   eventID,
		},
	}, nil
}
