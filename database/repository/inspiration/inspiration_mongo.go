package inspirationRepo

import (
	"context"
	"fmt"
	"time"

	"petalflow/database"
	"petalflow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// InspirationRepository defines methods for event inspiration images.
type InspirationRepository interface {
	ListByEvent(eventID int64) ([]models.Inspiration, error)
	Create(inspiration *models.Inspiration) error
	Delete(id string) error
}

// MongoInspirationRepo implements InspirationRepository using MongoDB.
type MongoInspirationRepo struct {
	coll *mongo.Collection
}

// NewMongoInspirationRepo creates a new instance of InspirationRepository using MongoDB.
func NewMongoInspirationRepo() InspirationRepository {
	return &MongoInspirationRepo{
		coll: database.MongoClient.Database("petalflow").Collection("inspirations"),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ListByEvent retrieves all inspirations attached to an event.
func (r *MongoInspirationRepo) ListByEvent(eventID int64) ([]models.Inspiration, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"eventId": eventID})
	if err != nil {
		return nil, fmt.Errorf("failed to query inspirations for event %d: %w", eventID, err)
	}
	defer cursor.Close(ctx)

	var out []models.Inspiration
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode inspirations for event %d: %w", eventID, err)
	}
	return out, nil
}

// Create inserts a new inspiration document.
func (r *MongoInspirationRepo) Create(inspiration *models.Inspiration) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	inspiration.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, inspiration); err != nil {
		return fmt.Errorf("failed to create inspiration: %w", err)
	}
	return nil
}

// Delete removes an inspiration by its id.
func (r *MongoInspirationRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete inspiration %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("inspiration %s not found", id)
	}
	return nil
}
