package onboarding

import (
	"testing"

	"petalflow/models"

	"github.com/stretchr/testify/assert"
)

func TestSectionForText(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Bridal Bouquet", models.SectionPersonal},
		{"groom boutonniere", models.SectionPersonal},
		{"Ceremony Arch", models.SectionCeremony},
		{"aisle petals", models.SectionCeremony},
		{"Low Centerpiece", models.SectionReception},
		{"cake flowers", models.SectionReception},
		// Personal keywords win over reception ones.
		{"sweetheart table bouquet", models.SectionPersonal},
		{"delivery fee", models.SectionOther},
		{"", models.SectionOther},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SectionForText(tc.text), "text %q", tc.text)
	}
}

func TestColorFamilyForHue(t *testing.T) {
	cases := []struct {
		hue  float64
		want string
	}{
		{0, FamilyRed},
		{350, FamilyRed},
		{14.9, FamilyRed},
		{30, FamilyOrange},
		{60, FamilyYellow},
		{120, FamilyGreen},
		{200, FamilyBlue},
		{270, FamilyPurple},
		{320, FamilyPink},
		// Out-of-range hues wrap around the wheel.
		{360, FamilyRed},
		{-10, FamilyRed},
		{480, FamilyGreen},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ColorFamilyForHue(tc.hue), "hue %v", tc.hue)
	}
}
