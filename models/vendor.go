package models

import "time"

// Vendor is one florist storefront on the platform. Wizard sessions are
// always scoped to a vendor resolved by slug before anything else renders.
type Vendor struct {
	ID            string `bson:"id" json:"id"`
	Slug          string `bson:"slug" json:"slug"`
	BusinessName  string `bson:"businessName" json:"business_name"`
	BusinessEmail string `bson:"businessEmail" json:"business_email"`
	BusinessPhone string `bson:"businessPhone" json:"business_phone,omitempty"`
	City          string `bson:"city" json:"city,omitempty"`
	Active        bool   `bson:"active" json:"active"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

// EventType is a vendor-configurable event category ("Wedding", "Elopement").
type EventType struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// EventTypesResult carries the list plus whether it is the platform default
// fallback rather than the vendor's own configuration.
type EventTypesResult struct {
	EventTypes []EventType `json:"eventTypes"`
	IsDefault  bool        `json:"isDefault"`
}
