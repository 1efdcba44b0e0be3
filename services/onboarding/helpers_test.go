package onboarding

import (
	"errors"
	"sync"
	"time"

	sessionRepo "petalflow/database/repository/session"
	"petalflow/models"
)

type stubVendorService struct {
	vendor *models.Vendor
	err    error
}

func (s *stubVendorService) GetVendorBySlug(slug string) (*models.Vendor, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.vendor, nil
}

func (s *stubVendorService) GetEventTypes(vendorID string) (*models.EventTypesResult, error) {
	return &models.EventTypesResult{}, nil
}

func (s *stubVendorService) GetArrangements(vendorID string) ([]models.Arrangement, error) {
	return nil, nil
}

func (s *stubVendorService) GetArrangementTypes(vendorID string) ([]models.ArrangementType, error) {
	return nil, nil
}

func (s *stubVendorService) GetColors(vendorID string) ([]models.ColorOption, error) {
	return nil, nil
}

func (s *stubVendorService) GetFlowers(vendorID string) ([]models.Flower, error) {
	return nil, nil
}

type fakeInquiryRepo struct {
	mu          sync.Mutex
	createCalls int
	failCreate  error
	lastID      int64
	completed   []int64
}

func (f *fakeInquiryRepo) Create(inquiry *models.Inquiry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.failCreate != nil {
		return f.failCreate
	}
	f.lastID++
	inquiry.InquiryID = f.lastID
	inquiry.Status = models.InquiryStatusNew
	inquiry.CreatedAt = time.Now()
	return nil
}

func (f *fakeInquiryRepo) GetByID(inquiryID int64) (*models.Inquiry, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeInquiryRepo) MarkCompleted(inquiryID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completed = append(f.completed, inquiryID)
	return nil
}

func (f *fakeInquiryRepo) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createCalls
}

type fakeEventRepo struct {
	mu          sync.Mutex
	lastEventID int64
	colorWrites []*models.EventColors
	arrWrites   [][]models.ArrangementUpdate
	snapshots   []*models.EventSnapshot
	failColors  error
}

func (f *fakeEventRepo) NextEventID() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastEventID++
	return f.lastEventID, nil
}

func (f *fakeEventRepo) UpsertColors(colors *models.EventColors) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failColors != nil {
		return f.failColors
	}
	f.colorWrites = append(f.colorWrites, colors)
	return nil
}

func (f *fakeEventRepo) GetColors(eventID int64) (*models.EventColors, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.colorWrites) == 0 {
		return nil, nil
	}
	return f.colorWrites[len(f.colorWrites)-1], nil
}

func (f *fakeEventRepo) ApplyArrangementUpdates(eventID int64, updates []models.ArrangementUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.arrWrites = append(f.arrWrites, updates)
	return nil
}

func (f *fakeEventRepo) GetArrangements(eventID int64) ([]models.EventArrangement, error) {
	return nil, nil
}

func (f *fakeEventRepo) SaveSnapshot(snapshot *models.EventSnapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snapshots = append(f.snapshots, snapshot)
	return nil
}

func (f *fakeEventRepo) GetSnapshot(eventID int64) (*models.EventSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.snapshots) == 0 {
		return nil, errors.New("no snapshot")
	}
	return f.snapshots[len(f.snapshots)-1], nil
}

func (f *fakeEventRepo) colorWriteCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.colorWrites)
}

func (f *fakeEventRepo) lastColorWrite() *models.EventColors {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.colorWrites) == 0 {
		return nil
	}
	return f.colorWrites[len(f.colorWrites)-1]
}

func (f *fakeEventRepo) arrWriteCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.arrWrites)
}

type fakeReminderScheduler struct {
	mu        sync.Mutex
	scheduled []int64
}

func (f *fakeReminderScheduler) ScheduleAbandonedReminder(sessionID string, inquiryID int64, delay time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scheduled = append(f.scheduled, inquiryID)
	return nil
}

// failingSaveSessionRepo fails every save once more than failAfter have
// landed, simulating a session store dying mid-operation.
type failingSaveSessionRepo struct {
	*sessionRepo.MemorySessionRepo
	mu        sync.Mutex
	failAfter int
	saves     int
}

func (r *failingSaveSessionRepo) Save(session *models.OnboardingSession) error {
	r.mu.Lock()
	r.saves++
	fail := r.failAfter > 0 && r.saves > r.failAfter
	r.mu.Unlock()
	if fail {
		return errors.New("session store unavailable")
	}
	return r.MemorySessionRepo.Save(session)
}

func (r *failingSaveSessionRepo) stopFailing() {
	r.mu.Lock()
	r.failAfter = 0
	r.mu.Unlock()
}

func newTestService() (*DefaultOnboardingService, *fakeInquiryRepo, *fakeEventRepo) {
	inquiries := &fakeInquiryRepo{}
	events := &fakeEventRepo{}
	svc := &DefaultOnboardingService{
		Sessions:  sessionRepo.NewMemorySessionRepo(),
		Inquiries: inquiries,
		Events:    events,
		VendorSvc: &stubVendorService{
			vendor: &models.Vendor{
				ID:           "42",
				Slug:         "acme-florals",
				BusinessName: "Acme Florals",
			},
		},
		Reminders:      &fakeReminderScheduler{},
		AutoSaveWindow: 40 * time.Millisecond,
	}
	return svc, inquiries, events
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// fillContactStep merges valid step-1 answers into the session.
func fillContactStep(svc *DefaultOnboardingService, sessionID string) error {
	_, err := svc.UpdateSession(sessionID, models.SessionUpdate{
		BrideName: strPtr("Jane"),
		Email:     strPtr("jane@x.com"),
		Phone:     strPtr("5551234567"),
		EventDate: strPtr("2025-06-01"),
	})
	return err
}
