package onboarding

import (
	"errors"
	"testing"

	"petalflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMountSessionCreatesEmptySession(t *testing.T) {
	svc, _, _ := newTestService()

	session, err := svc.MountSession("acme-florals", models.WizardVariantFull)
	require.NoError(t, err)

	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, "acme-florals", session.VendorSlug)
	assert.Equal(t, "42", session.VendorID)
	assert.Equal(t, 1, session.CurrentStep)
	assert.Equal(t, models.FullWizardSteps, session.TotalSteps)
	assert.False(t, session.IsCompleted)
	assert.Nil(t, session.InquiryID)
	assert.Equal(t, models.InquiryNotCreated, session.InquiryStage)
}

func TestMountSessionQuickVariant(t *testing.T) {
	svc, _, _ := newTestService()

	session, err := svc.MountSession("acme-florals", models.WizardVariantQuick)
	require.NoError(t, err)
	assert.Equal(t, models.QuickWizardSteps, session.TotalSteps)
}

func TestMountSessionVendorLookupFailureIsTerminal(t *testing.T) {
	svc, _, _ := newTestService()
	svc.VendorSvc = &stubVendorService{err: errors.New("connection refused")}

	_, err := svc.MountSession("acme-florals", models.WizardVariantFull)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVendorUnavailable)
}

func TestUpdateSessionLastWriteWins(t *testing.T) {
	svc, _, _ := newTestService()
	session, err := svc.MountSession("acme-florals", models.WizardVariantFull)
	require.NoError(t, err)

	_, err = svc.UpdateSession(session.SessionID, models.SessionUpdate{
		BrideName: strPtr("Ja"),
		Email:     strPtr("jane@x.com"),
	})
	require.NoError(t, err)

	// Updates to distinct fields leave earlier writes intact.
	_, err = svc.UpdateSession(session.SessionID, models.SessionUpdate{
		Venue: strPtr("Rosewood Barn"),
	})
	require.NoError(t, err)

	// A later write to the same field replaces the earlier one.
	_, err = svc.UpdateSession(session.SessionID, models.SessionUpdate{
		BrideName: strPtr("Jane"),
	})
	require.NoError(t, err)

	got, err := svc.GetSession(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.Answers.BrideName)
	assert.Equal(t, "jane@x.com", got.Answers.Email)
	assert.Equal(t, "Rosewood Barn", got.Answers.Venue)
}

func TestUpdateSessionStoresInvalidIntermediateInput(t *testing.T) {
	svc, _, _ := newTestService()
	session, err := svc.MountSession("acme-florals", models.WizardVariantFull)
	require.NoError(t, err)

	// A single character is below the validation minimum but must still be
	// stored so navigating away and back preserves partial input.
	_, err = svc.UpdateSession(session.SessionID, models.SessionUpdate{
		BrideName: strPtr("J"),
		Email:     strPtr("not-an-email"),
	})
	require.NoError(t, err)

	got, err := svc.GetSession(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "J", got.Answers.BrideName)
	assert.Equal(t, "not-an-email", got.Answers.Email)
}

func TestUpdateSessionSurvivesRemount(t *testing.T) {
	svc, _, _ := newTestService()
	session, err := svc.MountSession("acme-florals", models.WizardVariantFull)
	require.NoError(t, err)

	_, err = svc.UpdateSession(session.SessionID, models.SessionUpdate{
		GuestCount: intPtr(120),
	})
	require.NoError(t, err)

	// A fresh read by session id stands in for a component remount.
	got, err := svc.GetSession(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 120, got.Answers.GuestCount)
}

func TestResetSessionClearsRunAndNextMountRegeneratesID(t *testing.T) {
	svc, inquiries, _ := newTestService()
	session, err := svc.MountSession("acme-florals", models.WizardVariantFull)
	require.NoError(t, err)
	require.NoError(t, fillContactStep(svc, session.SessionID))

	_, err = svc.CreateInquiry(session.SessionID)
	require.NoError(t, err)
	require.Equal(t, 1, inquiries.calls())

	require.NoError(t, svc.ResetSession(session.SessionID))

	_, err = svc.GetSession(session.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	fresh, err := svc.MountSession("acme-florals", models.WizardVariantFull)
	require.NoError(t, err)
	assert.NotEqual(t, session.SessionID, fresh.SessionID)
	assert.Nil(t, fresh.InquiryID)
	assert.False(t, fresh.IsCompleted)
	assert.Empty(t, fresh.Answers.BrideName)
}

func TestResetSessionMissingIsNoop(t *testing.T) {
	svc, _, _ := newTestService()
	assert.NoError(t, svc.ResetSession("never-existed"))
}
