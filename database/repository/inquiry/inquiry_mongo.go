package inquiryRepo

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

// MongoInquiryRepo implements InquiryRepository using MongoDB.
type MongoInquiryRepo struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

// NewMongoInquiryRepo creates a new instance of InquiryRepository using MongoDB.
func NewMongoInquiryRepo() InquiryRepository {
	db := database.MongoClient.Database("petalflow")
	repo := &MongoInquiryRepo{
		coll:     db.Collection("inquiries"),
		counters: db.Collection("counters"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoInquiryRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "inquiryId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "sessionId", Value: 1}}},
		{Keys: bson.D{{Key: "vendorId", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// nextID atomically increments and returns the named sequence.
func (r *MongoInquiryRepo) nextID(ctx context.Context, name string) (int64, error) {
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"name": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("failed to advance %s sequence: %w", name, err)
	}
	return doc.Seq, nil
}

// Create inserts a new inquiry document with the next sequential id.
func (r *MongoInquiryRepo) Create(inquiry *models.Inquiry) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	id, err := r.nextID(ctx, "inquiries")
	if err != nil {
		return err
	}
	inquiry.InquiryID = id
	inquiry.Status = models.InquiryStatusNew
	inquiry.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, inquiry); err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}
	return nil
}

// GetByID retrieves an inquiry by its numeric id.
func (r *MongoInquiryRepo) GetByID(inquiryID int64) (*models.Inquiry, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var inquiry models.Inquiry
	if err := r.coll.FindOne(ctx, bson.M{"inquiryId": inquiryID}).Decode(&inquiry); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("inquiry %d not found", inquiryID)
		}
		return nil, fmt.Errorf("failed to fetch inquiry %d: %w", inquiryID, err)
	}
	return &inquiry, nil
}

// MarkCompleted flips an inquiry's status to completed.
func (r *MongoInquiryRepo) MarkCompleted(inquiryID int64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"inquiryId": inquiryID},
		bson.M{"$set": bson.M{"status": models.InquiryStatusCompleted}},
	)
	if err != nil {
		return fmt.Errorf("failed to update inquiry %d: %w", inquiryID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("inquiry %d not found", inquiryID)
	}
	return nil
}
