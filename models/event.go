package models

import "time"

// EventColors is the auto-save target for the couple's color selections,
// one document per event.
type EventColors struct {
	EventID        int64               `bson:"eventId" json:"eventId"`
	ColorScheme    string              `bson:"colorScheme" json:"colorScheme"`
	SelectedColors map[string][]string `bson:"selectedColors" json:"selectedColors"`
	UpdatedAt      time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// EventArrangement is one persisted arrangement selection for an event,
// keyed by (eventId, arrangementId, section).
type EventArrangement struct {
	EventID       int64     `bson:"eventId" json:"eventId"`
	ArrangementID string    `bson:"arrangementId" json:"arrangementId"`
	Section       string    `bson:"section" json:"section"`
	Quantity      int       `bson:"quantity" json:"quantity"`
	SlotNo        int       `bson:"slotNo" json:"slotNo,omitempty"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// EventSnapshot is the finalized record written when the wizard's terminal
// step is submitted; the completion view reads it wholesale.
type EventSnapshot struct {
	EventID     int64          `bson:"eventId" json:"eventId"`
	InquiryID   int64          `bson:"inquiryId" json:"inquiryId"`
	VendorID    string         `bson:"vendorId" json:"vendorId"`
	SessionID   string         `bson:"sessionId" json:"sessionId"`
	Answers     SessionAnswers `bson:"answers" json:"answers"`
	CompletedAt time.Time      `bson:"completedAt" json:"completedAt"`
}

// Inspiration is one reference image attached to an event, either an
// uploaded file or a pasted URL.
type Inspiration struct {
	ID        string    `bson:"id" json:"id"`
	EventID   int64     `bson:"eventId" json:"eventId"`
	URL       string    `bson:"url" json:"url"`
	Source    string    `bson:"source" json:"source"` // "upload" or "link"
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
