package onboarding

import (
	"errors"
	"sync"
	"testing"

	sessionRepo "petalflow/database/repository/session"
	"petalflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInquiryHappyPath(t *testing.T) {
	svc, inquiries, _ := newTestService()
	session, err := svc.MountSession("acme-florals", models.WizardVariantFull)
	require.NoError(t, err)
	require.NoError(t, fillContactStep(svc, session.SessionID))

	resp, err := svc.CreateInquiry(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, inquiries.calls())
	assert.Equal(t, int64(1), resp.Data.InquiryID)
	assert.NotZero(t, resp.Data.EventID)

	got, err := svc.GetSession(session.SessionID)
	require.NoError(t, err)
	require.NotNil(t, got.InquiryID)
	assert.Equal(t, int64(1), *got.InquiryID)
	assert.Equal(t, models.InquiryCreated, got.InquiryStage)
}

func TestCreateInquiryValidatesContactFields(t *testing.T) {
	svc, inquiries, _ := newTestService()
	session, err := svc.MountSession("acme-florals", models.WizardVariantFull)
	require.NoError(t, err)

	_, err = svc.UpdateSession(session.SessionID, models.SessionUpdate{
		BrideName: strPtr("J"),
		Email:     strPtr("nope"),
		Phone:     strPtr("123"),
	})
	require.NoError(t, err)

	_, err = svc.CreateInquiry(session.SessionID)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	fields := make(map[string]bool)
	for _, f := range vErr.Fields {
		fields[f.Field] = true
	}
	assert.True(t, fields["brideName"])
	assert.True(t, fields["email"])
	assert.True(t, fields["phone"])
	assert.True(t, fields["eventDate"])
	assert.Equal(t, 0, inquiries.calls())

	// Validation never mutates gate state.
	got, err := svc.GetSession(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryNotCreated, got.InquiryStage)
}

func TestCreateInquiryConcurrentCallsCollapseToOne(t *testing.T) {
	svc, inquiries, _ := newTestService()
	session, err := svc.MountSession("acme-florals", models.WizardVariantFull)
	require.NoError(t, err)
	require.NoError(t, fillContactStep(svc, session.SessionID))

	const attempts = 8
	var wg sync.WaitGroup
	ids := make([]int64, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := svc.CreateInquiry(session.SessionID)
			if err == nil && resp != nil {
				ids[i] = resp.Data.InquiryID
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, inquiries.calls())
	for _, id := range ids {
		assert.Equal(t, int64(1), id)
	}

	got, err := svc.GetSession(session.SessionID)
	require.NoError(t, err)
	require.NotNil(t, got.InquiryID)
	assert.Equal(t, int64(1), *got.InquiryID)
}

func TestCreateInquiryDuplicateIsSilentNoop(t *testing.T) {
	svc, inquiries, _ := newTestService()
	session, err := svc.MountSession("acme-florals", models.WizardVariantFull)
	require.NoError(t, err)
	require.NoError(t, fillContactStep(svc, session.SessionID))

	first, err := svc.CreateInquiry(session.SessionID)
	require.NoError(t, err)

	second, err := svc.CreateInquiry(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, first.Data.InquiryID, second.Data.InquiryID)
	assert.Equal(t, 1, inquiries.calls())
}

func TestCreateInquiryFailureResetsGateForRetry(t *testing.T) {
	svc, inquiries, _ := newTestService()
	session, err := svc.MountSession("acme-florals", models.WizardVariantFull)
	require.NoError(t, err)
	require.NoError(t, fillContactStep(svc, session.SessionID))

	inquiries.failCreate = errors.New("backend down")
	_, err = svc.CreateInquiry(session.SessionID)
	require.Error(t, err)

	got, err := svc.GetSession(session.SessionID)
	require.NoError(t, err)
	assert.Nil(t, got.InquiryID)
	assert.Equal(t, models.InquiryNotCreated, got.InquiryStage)

	// The next user-initiated submit succeeds.
	inquiries.failCreate = nil
	resp, err := svc.CreateInquiry(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Data.InquiryID)
	assert.Equal(t, 2, inquiries.calls())
}

func TestCreateInquirySchedulesFollowUp(t *testing.T) {
	svc, _, _ := newTestService()
	reminders := &fakeReminderScheduler{}
	svc.Reminders = reminders

	session, err := svc.MountSession("acme-florals", models.WizardVariantFull)
	require.NoError(t, err)
	require.NoError(t, fillContactStep(svc, session.SessionID))

	_, err = svc.CreateInquiry(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, reminders.scheduled)
}

// Full scenario: slug resolution, one create call with the vendor's id, the
// confirmation shown exactly once.
func TestInquiryScenarioAcmeFlorals(t *testing.T) {
	svc, inquiries, _ := newTestService()

	session, err := svc.MountSession("acme-florals", models.WizardVariantFull)
	require.NoError(t, err)
	assert.Equal(t, "42", session.VendorID)

	require.NoError(t, fillContactStep(svc, session.SessionID))

	resp, err := svc.CreateInquiry(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, inquiries.calls())
	assert.Equal(t, int64(1), resp.Data.InquiryID)

	// Confirmation pending exactly once.
	got, err := svc.GetSession(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryCreated, got.InquiryStage)

	_, err = svc.AcknowledgeConfirmation(session.SessionID, ConfirmationActionContinue)
	require.NoError(t, err)

	// A re-render acknowledging again does not re-trigger anything.
	again, err := svc.AcknowledgeConfirmation(session.SessionID, ConfirmationActionContinue)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryConfirmationShown, again.InquiryStage)
	assert.Equal(t, 1, again.CurrentStep)
}

// A stored Creating stage can only be left behind by a flight that died
// between its two writes; the next attempt must retry, not answer with a
// phantom "already created".
func TestCreateInquiryRetriesStaleInFlightStage(t *testing.T) {
	svc, inquiries, _ := newTestService()
	session, err := svc.MountSession("acme-florals", models.WizardVariantFull)
	require.NoError(t, err)
	require.NoError(t, fillContactStep(svc, session.SessionID))

	stale, err := svc.GetSession(session.SessionID)
	require.NoError(t, err)
	stale.InquiryStage = models.InquiryCreating
	require.NoError(t, svc.Sessions.Save(stale))

	resp, err := svc.CreateInquiry(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, inquiries.calls())
	assert.Equal(t, int64(1), resp.Data.InquiryID)

	got, err := svc.GetSession(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryCreated, got.InquiryStage)
	require.NotNil(t, got.InquiryID)

	// Forward navigation unblocks on the retried run.
	next, err := svc.NextStep(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 2, next.CurrentStep)
}

// Losing the final save must not leave the gate answering "already created"
// with no id; the stored Creating stage stays retryable.
func TestCreateInquiryFinalSaveFailureIsRetryable(t *testing.T) {
	svc, inquiries, _ := newTestService()
	sessions := &failingSaveSessionRepo{MemorySessionRepo: sessionRepo.NewMemorySessionRepo()}
	svc.Sessions = sessions

	session, err := svc.MountSession("acme-florals", models.WizardVariantFull)
	require.NoError(t, err)
	require.NoError(t, fillContactStep(svc, session.SessionID))

	// Saves so far: mount + update. Let the Creating write land, then fail
	// the Created write and its rollback.
	sessions.mu.Lock()
	sessions.failAfter = sessions.saves + 1
	sessions.mu.Unlock()

	_, err = svc.CreateInquiry(session.SessionID)
	require.Error(t, err)

	sessions.stopFailing()

	resp, err := svc.CreateInquiry(session.SessionID)
	require.NoError(t, err)
	assert.NotZero(t, resp.Data.InquiryID)
	assert.Equal(t, 2, inquiries.calls())

	got, err := svc.GetSession(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryCreated, got.InquiryStage)
	require.NotNil(t, got.InquiryID)
}
