package models

import "time"

// Inquiry is the sales-lead record created from step-1 contact and event
// data. Creation is the single idempotency-critical write of the wizard.
type Inquiry struct {
	InquiryID int64  `bson:"inquiryId" json:"inquiryId"`
	VendorID  string `bson:"vendorId" json:"vendorId"`
	SessionID string `bson:"sessionId" json:"sessionId"`

	BrideName   string `bson:"brideName" json:"brideName"`
	PartnerName string `bson:"partnerName" json:"partnerName,omitempty"`
	Email       string `bson:"email" json:"email"`
	Phone       string `bson:"phone" json:"phone"`
	ReferredBy  string `bson:"referredBy" json:"referredBy,omitempty"`

	EventDate  string `bson:"eventDate" json:"eventDate"`
	EventType  string `bson:"eventType" json:"eventType,omitempty"`
	Venue      string `bson:"venue" json:"venue,omitempty"`
	GuestCount int    `bson:"guestCount" json:"guestCount,omitempty"`
	Budget     string `bson:"budget" json:"budget,omitempty"`
	Timeline   string `bson:"timeline" json:"timeline,omitempty"`

	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

const (
	InquiryStatusNew       = "new"
	InquiryStatusCompleted = "completed"
)

// InquiryResponse is the create-inquiry result shape the wizard client
// consumes.
type InquiryResponse struct {
	Message string      `json:"message"`
	Data    InquiryData `json:"data"`
}

type InquiryData struct {
	InquiryID int64 `json:"inquiryId"`
	EventID   int64 `json:"eventId"`
}

// FieldError is one backend validation failure surfaced inline next to the
// offending field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
