package models

import "time"

// InquiryStage is the lifecycle of the inquiry-creation gate for one session.
// It moves forward except on failed creation attempts, which roll it back to
// NotCreated so a later submit can retry.
type InquiryStage int

const (
	InquiryNotCreated InquiryStage = iota
	InquiryCreating
	InquiryCreated
	InquiryConfirmationShown
)

func (s InquiryStage) String() string {
	switch s {
	case InquiryNotCreated:
		return "not_created"
	case InquiryCreating:
		return "creating"
	case InquiryCreated:
		return "created"
	case InquiryConfirmationShown:
		return "confirmation_shown"
	}
	return "unknown"
}

const (
	WizardVariantFull  = "full"
	WizardVariantQuick = "quick"

	FullWizardSteps  = 3
	QuickWizardSteps = 2
)

// OnboardingSession holds everything one wizard run has collected, plus the
// control fields the wizard controller navigates by. It lives in the session
// cache as a single JSON blob and survives page reloads within its TTL.
type OnboardingSession struct {
	SessionID  string `json:"sessionId"`
	VendorSlug string `json:"vendorSlug"`
	VendorID   string `json:"vendorId"`
	Variant    string `json:"variant"`

	CurrentStep int  `json:"currentStep"`
	TotalSteps  int  `json:"totalSteps"`
	IsCompleted bool `json:"isCompleted"`

	InquiryID    *int64       `json:"inquiryId,omitempty"`
	EventID      *int64       `json:"eventId,omitempty"`
	InquiryStage InquiryStage `json:"inquiryStage"`

	Answers SessionAnswers `json:"answers"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SessionAnswers is the free-form per-step data. Fields are merged
// last-write-wins; invalid intermediate values are stored as entered so
// navigating away and back preserves partial input.
type SessionAnswers struct {
	BrideName   string `json:"brideName,omitempty"`
	PartnerName string `json:"partnerName,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	ReferredBy  string `json:"referredBy,omitempty"`

	EventDate  string `json:"eventDate,omitempty"`
	EventType  string `json:"eventType,omitempty"`
	Venue      string `json:"venue,omitempty"`
	GuestCount int    `json:"guestCount,omitempty"`
	Budget     string `json:"budget,omitempty"`
	Timeline   string `json:"timeline,omitempty"`

	Style           string              `json:"style,omitempty"`
	ColorScheme     string              `json:"colorScheme,omitempty"`
	SelectedColors  map[string][]string `json:"selectedColors,omitempty"`
	FlowerTags      []string            `json:"flowerTags,omitempty"`
	InspirationURLs []string            `json:"inspirationUrls,omitempty"`

	// Service selections keyed by section, then arrangement id.
	Services map[string]map[string]ServiceSelection `json:"services,omitempty"`

	Notes string `json:"notes,omitempty"`
}

// ServiceSelection is one chosen arrangement within a section.
type ServiceSelection struct {
	ArrangementID string `json:"arrangementId"`
	Quantity      int    `json:"quantity"`
	SlotNo        int    `json:"slotNo,omitempty"`
}

// SessionUpdate is the shallow-merge payload accepted by the update
// operation. Nil pointers leave the corresponding field untouched.
type SessionUpdate struct {
	BrideName   *string `json:"brideName,omitempty"`
	PartnerName *string `json:"partnerName,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	ReferredBy  *string `json:"referredBy,omitempty"`

	EventDate  *string `json:"eventDate,omitempty"`
	EventType  *string `json:"eventType,omitempty"`
	Venue      *string `json:"venue,omitempty"`
	GuestCount *int    `json:"guestCount,omitempty"`
	Budget     *string `json:"budget,omitempty"`
	Timeline   *string `json:"timeline,omitempty"`

	Style           *string             `json:"style,omitempty"`
	ColorScheme     *string             `json:"colorScheme,omitempty"`
	SelectedColors  map[string][]string `json:"selectedColors,omitempty"`
	FlowerTags      []string            `json:"flowerTags,omitempty"`
	InspirationURLs []string            `json:"inspirationUrls,omitempty"`

	Services map[string]map[string]ServiceSelection `json:"services,omitempty"`

	Notes *string `json:"notes,omitempty"`
}

// ArrangementUpdate is one pending service-selection change bound for the
// auto-save coordinator. Batches are collapsed by (arrangementId, section)
// so only the latest quantity per pair is flushed.
type ArrangementUpdate struct {
	ArrangementID string `json:"arrangementId"`
	Section       string `json:"section"`
	Quantity      int    `json:"quantity"`
	Action        string `json:"action"` // "upsert" or "delete"
	SlotNo        int    `json:"slotNo,omitempty"`
}

const (
	ArrangementActionUpsert = "upsert"
	ArrangementActionDelete = "delete"
)
