package vendorRepo

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

// MongoVendorRepo implements VendorRepository using MongoDB.
type MongoVendorRepo struct {
	coll           *mongo.Collection
	eventTypesColl *mongo.Collection
}

// NewMongoVendorRepo creates a new instance of VendorRepository using MongoDB.
func NewMongoVendorRepo() VendorRepository {
	db := database.MongoClient.Database("petalflow")
	repo := &MongoVendorRepo{
		coll:           db.Collection("vendors"),
		eventTypesColl: db.Collection("vendor_event_types"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoVendorRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	_, err := r.eventTypesColl.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "vendorId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create event type index: %w", err)
	}
	return nil
}

// GetBySlug retrieves a vendor by its public slug.
func (r *MongoVendorRepo) GetBySlug(slug string) (*models.Vendor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var vendor models.Vendor
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&vendor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("vendor with slug %s not found", slug)
		}
		return nil, fmt.Errorf("failed to fetch vendor with slug %s: %w", slug, err)
	}
	return &vendor, nil
}

// GetByID retrieves a vendor by its unique ID.
func (r *MongoVendorRepo) GetByID(id string) (*models.Vendor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var vendor models.Vendor
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&vendor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("vendor with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch vendor with id %s: %w", id, err)
	}
	return &vendor, nil
}

// GetEventTypes retrieves a vendor's configured event types.
func (r *MongoVendorRepo) GetEventTypes(vendorID string) ([]models.EventType, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.eventTypesColl.Find(ctx, bson.M{"vendorId": vendorID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event types for vendor %s: %w", vendorID, err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID   string `bson:"id"`
		Name string `bson:"name"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode event types: %w", err)
	}

	eventTypes := make([]models.EventType, 0, len(docs))
	for _, d := range docs {
		eventTypes = append(eventTypes, models.EventType{ID: d.ID, Name: d.Name})
	}
	return eventTypes, nil
}
