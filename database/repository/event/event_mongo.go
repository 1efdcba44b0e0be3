package eventRepo

import (
	"context"
	"fmt"
	"time"

	"petalflow/database"
	"petalflow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoEventRepo implements EventRepository using MongoDB.
type MongoEventRepo struct {
	colors       *mongo.Collection
	arrangements *mongo.Collection
	snapshots    *mongo.Collection
	counters     *mongo.Collection
}

// NewMongoEventRepo creates a new instance of EventRepository using MongoDB.
func NewMongoEventRepo() EventRepository {
	db := database.MongoClient.Database("petalflow")
	repo := &MongoEventRepo{
		colors:       db.Collection("event_colors"),
		arrangements: db.Collection("event_arrangements"),
		snapshots:    db.Collection("event_snapshots"),
		counters:     db.Collection("counters"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoEventRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.colors.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "eventId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create colors index: %w", err)
	}

	if _, err := r.arrangements.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "eventId", Value: 1},
			{Key: "arrangementId", Value: 1},
			{Key: "section", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create arrangements index: %w", err)
	}

	if _, err := r.snapshots.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "eventId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create snapshot index: %w", err)
	}
	return nil
}

// NextEventID atomically allocates the next event id.
func (r *MongoEventRepo) NextEventID() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"name": "events"},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("failed to advance event sequence: %w", err)
	}
	return doc.Seq, nil
}

// UpsertColors replaces the event's color selections.
func (r *MongoEventRepo) UpsertColors(colors *models.EventColors) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	colors.UpdatedAt = time.Now()
	_, err := r.colors.UpdateOne(ctx,
		bson.M{"eventId": colors.EventID},
		bson.M{"$set": colors},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert colors for event %d: %w", colors.EventID, err)
	}
	return nil
}

// GetColors retrieves the event's color selections.
func (r *MongoEventRepo) GetColors(eventID int64) (*models.EventColors, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var colors models.EventColors
	if err := r.colors.FindOne(ctx, bson.M{"eventId": eventID}).Decode(&colors); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch colors for event %d: %w", eventID, err)
	}
	return &colors, nil
}

// ApplyArrangementUpdates applies a collapsed batch of quantity changes as a
// single bulk write. Upserts replace quantities; deletes remove the pair.
func (r *MongoEventRepo) ApplyArrangementUpdates(eventID int64, updates []models.ArrangementUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	writes := make([]mongo.WriteModel, 0, len(updates))
	for _, u := range updates {
		filter := bson.M{
			"eventId":       eventID,
			"arrangementId": u.ArrangementID,
			"section":       u.Section,
		}
		if u.Action == models.ArrangementActionDelete {
			writes = append(writes, mongo.NewDeleteOneModel().SetFilter(filter))
			continue
		}
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(filter).
			SetUpdate(bson.M{"$set": bson.M{
				"quantity":  u.Quantity,
				"slotNo":    u.SlotNo,
				"updatedAt": now,
			}}).
			SetUpsert(true))
	}

	if _, err := r.arrangements.BulkWrite(ctx, writes); err != nil {
		return fmt.Errorf("failed to apply arrangement updates for event %d: %w", eventID, err)
	}
	return nil
}

// GetArrangements lists the event's current arrangement selections.
func (r *MongoEventRepo) GetArrangements(eventID int64) ([]models.EventArrangement, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.arrangements.Find(ctx, bson.M{"eventId": eventID})
	if err != nil {
		return nil, fmt.Errorf("failed to query arrangements for event %d: %w", eventID, err)
	}
	defer cursor.Close(ctx)

	var out []models.EventArrangement
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode arrangements for event %d: %w", eventID, err)
	}
	return out, nil
}

// SaveSnapshot writes the finalized wizard record.
func (r *MongoEventRepo) SaveSnapshot(snapshot *models.EventSnapshot) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	snapshot.CompletedAt = time.Now()
	_, err := r.snapshots.UpdateOne(ctx,
		bson.M{"eventId": snapshot.EventID},
		bson.M{"$set": snapshot},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot for event %d: %w", snapshot.EventID, err)
	}
	return nil
}

// GetSnapshot retrieves the finalized record for the completion view.
func (r *MongoEventRepo) GetSnapshot(eventID int64) (*models.EventSnapshot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var snapshot models.EventSnapshot
	if err := r.snapshots.FindOne(ctx, bson.M{"eventId": eventID}).Decode(&snapshot); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("snapshot for event %d not found", eventID)
		}
		return nil, fmt.Errorf("failed to fetch snapshot for event %d: %w", eventID, err)
	}
	return &snapshot, nil
}
