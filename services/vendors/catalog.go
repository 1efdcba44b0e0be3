package vendors

import (
	"fmt"

	"petalflow/models"
)

// GetArrangements returns a vendor's arrangements, bucketing any without an
// explicit section via the injected classifier.
func (s *DefaultVendorService) GetArrangements(vendorID string) ([]models.Arrangement, error) {
	arrangements, err := s.CatalogRepo.GetArrangements(vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load arrangements: %w", err)
	}
	if s.SectionFor != nil {
		for i := range arrangements {
			if arrangements[i].Section == "" {
				arrangements[i].Section = s.SectionFor(arrangements[i].Name + " " + arrangements[i].Description)
			}
		}
	}
	return arrangements, nil
}

// GetArrangementTypes returns a vendor's arrangement groupings.
func (s *DefaultVendorService) GetArrangementTypes(vendorID string) ([]models.ArrangementType, error) {
	types, err := s.CatalogRepo.GetArrangementTypes(vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load arrangement types: %w", err)
	}
	return types, nil
}

// GetColors returns a vendor's colors, filling in hue-derived families.
func (s *DefaultVendorService) GetColors(vendorID string) ([]models.ColorOption, error) {
	colors, err := s.CatalogRepo.GetColors(vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load colors: %w", err)
	}
	if s.FamilyFor != nil {
		for i := range colors {
			if colors[i].Family == "" {
				colors[i].Family = s.FamilyFor(colors[i].Hue)
			}
		}
	}
	return colors, nil
}

// GetFlowers returns a vendor's flower catalog.
func (s *DefaultVendorService) GetFlowers(vendorID string) ([]models.Flower, error) {
	flowers, err := s.CatalogRepo.GetFlowers(vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load flowers: %w", err)
	}
	return flowers, nil
}
