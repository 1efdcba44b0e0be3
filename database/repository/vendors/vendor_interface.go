package vendorRepo

import "petalflow/models"

// VendorRepository defines methods for vendor data access.
type VendorRepository interface {
	// GetBySlug retrieves a vendor by its public slug.
	GetBySlug(slug string) (*models.Vendor, error)
	// GetByID retrieves a vendor by its unique ID.
	GetByID(id string) (*models.Vendor, error)
	// GetEventTypes retrieves a vendor's configured event types. An empty
	// result means the vendor has not configured any.
	GetEventTypes(vendorID string) ([]models.EventType, error)
}

// CatalogRepository defines read-only, vendor-scoped catalog access.
type CatalogRepository interface {
	GetArrangements(vendorID string) ([]models.Arrangement, error)
	GetArrangementTypes(vendorID string) ([]models.ArrangementType, error)
	GetColors(vendorID string) ([]models.ColorOption, error)
	GetFlowers(vendorID string) ([]models.Flower, error)
}
