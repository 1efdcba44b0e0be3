package models

// Arrangement is one orderable floral piece in a vendor's catalog.
type Arrangement struct {
	ID          string  `bson:"id" json:"id"`
	VendorID    string  `bson:"vendorId" json:"vendorId"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description,omitempty"`
	TypeID      string  `bson:"typeId" json:"typeId,omitempty"`
	Section     string  `bson:"section" json:"section"`
	Price       float64 `bson:"price" json:"price"`
	ImageURL    string  `bson:"imageUrl" json:"imageUrl,omitempty"`
}

// ArrangementType groups arrangements ("Bouquets", "Centerpieces").
type ArrangementType struct {
	ID       string `bson:"id" json:"id"`
	VendorID string `bson:"vendorId" json:"vendorId"`
	Name     string `bson:"name" json:"name"`
}

// ColorOption is a selectable catalog color with its hue for family bucketing.
type ColorOption struct {
	ID       string  `bson:"id" json:"id"`
	VendorID string  `bson:"vendorId" json:"vendorId"`
	Name     string  `bson:"name" json:"name"`
	Hex      string  `bson:"hex" json:"hex"`
	Hue      float64 `bson:"hue" json:"hue"`
	Family   string  `bson:"family" json:"family,omitempty"`
}

// Flower is a taggable stem in the vendor's catalog.
type Flower struct {
	ID       string   `bson:"id" json:"id"`
	VendorID string   `bson:"vendorId" json:"vendorId"`
	Name     string   `bson:"name" json:"name"`
	Seasons  []string `bson:"seasons" json:"seasons,omitempty"`
}

// Wizard sections arrangements are bucketed into.
const (
	SectionCeremony  = "ceremony"
	SectionReception = "reception"
	SectionPersonal  = "personal"
	SectionOther     = "other"
)
