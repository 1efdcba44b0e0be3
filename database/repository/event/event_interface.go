package eventRepo

import "petalflow/models"

// EventRepository persists the auto-save targets and the final snapshot for
// one planned event.
type EventRepository interface {
	// NextEventID allocates an event id for a freshly created inquiry.
	NextEventID() (int64, error)
	// UpsertColors replaces the event's color selections.
	UpsertColors(colors *models.EventColors) error
	// GetColors retrieves the event's color selections, nil when unset.
	GetColors(eventID int64) (*models.EventColors, error)
	// ApplyArrangementUpdates applies a collapsed batch of quantity changes.
	ApplyArrangementUpdates(eventID int64, updates []models.ArrangementUpdate) error
	// GetArrangements lists the event's current arrangement selections.
	GetArrangements(eventID int64) ([]models.EventArrangement, error)
	// SaveSnapshot writes the finalized wizard record.
	SaveSnapshot(snapshot *models.EventSnapshot) error
	// GetSnapshot retrieves the finalized record for the completion view.
	GetSnapshot(eventID int64) (*models.EventSnapshot, error)
}
