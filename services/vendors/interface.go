package vendors

import (
	vendorRepo "petalflow/database/repository/vendors"
	"petalflow/models"

	"github.com/go-redis/redis/v8"
)

// VendorService resolves florist storefronts and serves their read-only
// catalog to the wizard.
type VendorService interface {
	// GetVendorBySlug resolves a vendor; absence is terminal for the wizard.
	GetVendorBySlug(slug string) (*models.Vendor, error)
	// GetEventTypes returns the vendor's event types, falling back to the
	// platform default list when the vendor has none configured.
	GetEventTypes(vendorID string) (*models.EventTypesResult, error)

	GetArrangements(vendorID string) ([]models.Arrangement, error)
	GetArrangementTypes(vendorID string) ([]models.ArrangementType, error)
	GetColors(vendorID string) ([]models.ColorOption, error)
	GetFlowers(vendorID string) ([]models.Flower, error)
}

// DefaultVendorService implements VendorService.
type DefaultVendorService struct {
	Repo        vendorRepo.VendorRepository
	CatalogRepo vendorRepo.CatalogRepository
	CacheClient *redis.Client

	// SectionFor buckets an arrangement into a wizard section when the
	// catalog document has none. FamilyFor buckets a color by hue. Both are
	// injected from the wizard core so catalog enrichment stays pure.
	SectionFor func(text string) string
	FamilyFor  func(hue float64) string
}
