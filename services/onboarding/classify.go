package onboarding

import (
	"math"
	"strings"

	"petalflow/models"
)

// sectionKeywords buckets arrangement text into wizard sections. Order
// matters: personal pieces mention tables ("sweetheart table bouquet")
// rarely, but ceremony and reception terms overlap more, so personal wins
// first.
var sectionOrder = []string{
	models.SectionPersonal,
	models.SectionCeremony,
	models.SectionReception,
}

var sectionKeywords = map[string][]string{
	models.SectionPersonal: {
		"bouquet", "boutonniere", "corsage", "flower crown", "hair flower",
		"toss", "pocket square",
	},
	models.SectionCeremony: {
		"arch", "arbor", "chuppah", "aisle", "altar", "ceremony", "pew",
		"petal", "welcome sign",
	},
	models.SectionReception: {
		"centerpiece", "garland", "table", "reception", "cake", "bar top",
		"escort card", "sweetheart", "installation",
	},
}

// SectionForText buckets free arrangement text into a wizard section by
// keyword match; unmatched text lands in "other".
func SectionForText(text string) string {
	lowered := strings.ToLower(text)
	for _, section := range sectionOrder {
		for _, kw := range sectionKeywords[section] {
			if strings.Contains(lowered, kw) {
				return section
			}
		}
	}
	return models.SectionOther
}

// Color families in hue order around the wheel.
const (
	FamilyRed    = "red"
	FamilyOrange = "orange"
	FamilyYellow = "yellow"
	FamilyGreen  = "green"
	FamilyBlue   = "blue"
	FamilyPurple = "purple"
	FamilyPink   = "pink"
)

// ColorFamilyForHue buckets a hue in degrees into a named color family.
// Hues outside [0, 360) are normalized first.
func ColorFamilyForHue(hue float64) string {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	switch {
	case h < 15 || h >= 345:
		return FamilyRed
	case h < 45:
		return FamilyOrange
	case h < 70:
		return FamilyYellow
	case h < 170:
		return FamilyGreen
	case h < 255:
		return FamilyBlue
	case h < 290:
		return FamilyPurple
	default:
		return FamilyPink
	}
}
