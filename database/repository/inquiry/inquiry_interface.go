package inquiryRepo

import "petalflow/models"

// InquiryRepository defines methods for sales-lead persistence.
type InquiryRepository interface {
	// Create inserts a new inquiry and assigns it the next inquiry id.
	Create(inquiry *models.Inquiry) error
	// GetByID retrieves an inquiry by its numeric id.
	GetByID(inquiryID int64) (*models.Inquiry, error)
	// MarkCompleted flips an inquiry's status once its wizard run finishes.
	MarkCompleted(inquiryID int64) error
}
