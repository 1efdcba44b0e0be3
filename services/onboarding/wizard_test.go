package onboarding

import (
	"testing"

	"petalflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStepBlockedBeforeInquiry(t *testing.T) {
	svc, _, _ := newTestService()
	session, err := svc.MountSession("acme-florals", models.WizardVariantFull)
	require.NoError(t, err)
	require.NoError(t, fillContactStep(svc, session.SessionID))

	// All fields valid, but the inquiry does not exist yet.
	_, err = svc.NextStep(session.SessionID)
	require.Error(t, err)
	var nErr *NavigationError
	assert.ErrorAs(t, err, &nErr)

	got, err := svc.GetSession(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurrentStep)
}

func TestNextStepBlockedOnInvalidContactFields(t *testing.T) {
	svc, _, _ := newTestService()
	session, err := svc.MountSession("acme-florals", models.WizardVariantFull)
	require.NoError(t, err)
	require.NoError(t, fillContactStep(svc, session.SessionID))

	_, err = svc.CreateInquiry(session.SessionID)
	require.NoError(t, err)

	// Invalidate the email after creation; forward nav locks again.
	_, err = svc.UpdateSession(session.SessionID, models.SessionUpdate{
		Email: strPtr("broken"),
	})
	require.NoError(t, err)

	_, err = svc.NextStep(session.SessionID)
	require.Error(t, err)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestNextStepUnlockedOnceInquiryAndFieldsPresent(t *testing.T) {
	svc, _, _ := newTestService()
	session, err := svc.MountSession("acme-florals", models.WizardVariantFull)
	require.NoError(t, err)
	require.NoError(t, fillContactStep(svc, session.SessionID))

	_, err = svc.CreateInquiry(session.SessionID)
	require.NoError(t, err)

	got, err := svc.NextStep(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CurrentStep)
}

func TestFullVariantDesignStepRequiresServiceSelection(t *testing.T) {
	svc, _, _ := newTestService()
	session, err := svc.MountSession("acme-florals", models.WizardVariantFull)
	require.NoError(t, err)
	require.NoError(t, fillContactStep(svc, session.SessionID))
	_, err = svc.CreateInquiry(session.SessionID)
	require.NoError(t, err)
	_, err = svc.NextStep(session.SessionID)
	require.NoError(t, err)

	// Step 2 without any service selection cannot advance.
	_, err = svc.NextStep(session.SessionID)
	require.Error(t, err)

	_, err = svc.UpdateSession(session.SessionID, models.SessionUpdate{
		Services: map[string]map[string]models.ServiceSelection{
			models.SectionPersonal: {
				"bouquet-classic": {ArrangementID: "bouquet-classic", Quantity: 1},
			},
		},
	})
	require.NoError(t, err)

	got, err := svc.NextStep(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.CurrentStep)
}

func TestQuickVariantSkipsServiceRequirement(t *testing.T) {
	svc, _, _ := newTestService()
	session, err := svc.MountSession("acme-florals", models.WizardVariantQuick)
	require.NoError(t, err)
	require.NoError(t, fillContactStep(svc, session.SessionID))
	_, err = svc.CreateInquiry(session.SessionID)
	require.NoError(t, err)

	got, err := svc.NextStep(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CurrentStep)
	assert.Equal(t, got.TotalSteps, got.CurrentStep)
}

func TestPrevStepClampsAtFirst(t *testing.T) {
	svc, _, _ := newTestService()
	session, err := svc.MountSession("acme-florals", models.WizardVariantFull)
	require.NoError(t, err)

	got, err := svc.PrevStep(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurrentStep)
}

func TestNextStepClampsAtFinal(t *testing.T) {
	svc, _, _ := newTestService()
	session := mustReachFinalStep(t, svc)

	got, err := svc.NextStep(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, got.TotalSteps, got.CurrentStep)
}

func TestGoToStepBounds(t *testing.T) {
	svc, _, _ := newTestService()
	session, err := svc.MountSession("acme-florals", models.WizardVariantFull)
	require.NoError(t, err)

	_, err = svc.GoToStep(session.SessionID, 0)
	assert.Error(t, err)
	_, err = svc.GoToStep(session.SessionID, 4)
	assert.Error(t, err)

	got, err := svc.GoToStep(session.SessionID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CurrentStep)
}

func TestSkipToReviewJumpsToFinalStep(t *testing.T) {
	svc, _, _ := newTestService()
	session, err := svc.MountSession("acme-florals", models.WizardVariantFull)
	require.NoError(t, err)
	require.NoError(t, fillContactStep(svc, session.SessionID))
	_, err = svc.CreateInquiry(session.SessionID)
	require.NoError(t, err)

	got, err := svc.AcknowledgeConfirmation(session.SessionID, ConfirmationActionReview)
	require.NoError(t, err)
	assert.Equal(t, models.FullWizardSteps, got.CurrentStep)
	assert.Equal(t, models.InquiryConfirmationShown, got.InquiryStage)
}

func TestAcknowledgeConfirmationBeforeInquiryFails(t *testing.T) {
	svc, _, _ := newTestService()
	session, err := svc.MountSession("acme-florals", models.WizardVariantFull)
	require.NoError(t, err)

	_, err = svc.AcknowledgeConfirmation(session.SessionID, ConfirmationActionContinue)
	require.Error(t, err)
}

func TestSubmitWizardCompletesRun(t *testing.T) {
	svc, inquiries, events := newTestService()
	session := mustReachFinalStep(t, svc)

	got, err := svc.SubmitWizard(session.SessionID)
	require.NoError(t, err)
	assert.True(t, got.IsCompleted)

	require.Len(t, events.snapshots, 1)
	assert.Equal(t, *got.InquiryID, events.snapshots[0].InquiryID)
	assert.Equal(t, []int64{*got.InquiryID}, inquiries.completed)

	// Completion is one-way and idempotent.
	again, err := svc.SubmitWizard(session.SessionID)
	require.NoError(t, err)
	assert.True(t, again.IsCompleted)
	assert.Len(t, events.snapshots, 1)
}

func TestSubmitWizardOnlyFromFinalStep(t *testing.T) {
	svc, _, _ := newTestService()
	session, err := svc.MountSession("acme-florals", models.WizardVariantFull)
	require.NoError(t, err)
	require.NoError(t, fillContactStep(svc, session.SessionID))
	_, err = svc.CreateInquiry(session.SessionID)
	require.NoError(t, err)

	_, err = svc.SubmitWizard(session.SessionID)
	require.Error(t, err)

	got, err := svc.GetSession(session.SessionID)
	require.NoError(t, err)
	assert.False(t, got.IsCompleted)
}

// mustReachFinalStep drives a full-variant session through creation and
// skip-to-review so it sits on the terminal step.
func mustReachFinalStep(t *testing.T, svc *DefaultOnboardingService) *models.OnboardingSession {
	t.Helper()
	session, err := svc.MountSession("acme-florals", models.WizardVariantFull)
	require.NoError(t, err)
	require.NoError(t, fillContactStep(svc, session.SessionID))
	_, err = svc.CreateInquiry(session.SessionID)
	require.NoError(t, err)
	got, err := svc.AcknowledgeConfirmation(session.SessionID, ConfirmationActionReview)
	require.NoError(t, err)
	return got
}

func TestAcknowledgeConfirmationRepeatIsNoop(t *testing.T) {
	svc, _, _ := newTestService()
	session, err := svc.MountSession("acme-florals", models.WizardVariantFull)
	require.NoError(t, err)
	require.NoError(t, fillContactStep(svc, session.SessionID))
	_, err = svc.CreateInquiry(session.SessionID)
	require.NoError(t, err)

	first, err := svc.AcknowledgeConfirmation(session.SessionID, ConfirmationActionContinue)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryConfirmationShown, first.InquiryStage)
	assert.Equal(t, 1, first.CurrentStep)

	// Once shown, a late "review" ack no longer jumps the step.
	again, err := svc.AcknowledgeConfirmation(session.SessionID, ConfirmationActionReview)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryConfirmationShown, again.InquiryStage)
	assert.Equal(t, 1, again.CurrentStep)
}
