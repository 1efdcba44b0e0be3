package vendorRepo

import (
	"fmt"
	"time"

	"petalflow/database"
	"petalflow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	arrangements     *mongo.Collection
	arrangementTypes *mongo.Collection
	colors           *mongo.Collection
	flowers          *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database("petalflow")
	return &MongoCatalogRepo{
		arrangements:     db.Collection("arrangements"),
		arrangementTypes: db.Collection("arrangement_types"),
		colors:           db.Collection("colors"),
		flowers:          db.Collection("flowers"),
	}
}

func (r *MongoCatalogRepo) findByVendor(coll *mongo.Collection, vendorID string, out interface{}) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := coll.Find(ctx, bson.M{"vendorId": vendorID})
	if err != nil {
		return fmt.Errorf("failed to query %s for vendor %s: %w", coll.Name(), vendorID, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode %s for vendor %s: %w", coll.Name(), vendorID, err)
	}
	return nil
}

// GetArrangements retrieves all arrangements in a vendor's catalog.
func (r *MongoCatalogRepo) GetArrangements(vendorID string) ([]models.Arrangement, error) {
	var out []models.Arrangement
	if err := r.findByVendor(r.arrangements, vendorID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetArrangementTypes retrieves a vendor's arrangement groupings.
func (r *MongoCatalogRepo) GetArrangementTypes(vendorID string) ([]models.ArrangementType, error) {
	var out []models.ArrangementType
	if err := r.findByVendor(r.arrangementTypes, vendorID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetColors retrieves a vendor's selectable colors.
func (r *MongoCatalogRepo) GetColors(vendorID string) ([]models.ColorOption, error) {
	var out []models.ColorOption
	if err := r.findByVendor(r.colors, vendorID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetFlowers retrieves a vendor's flower catalog.
func (r *MongoCatalogRepo) GetFlowers(vendorID string) ([]models.Flower, error) {
	var out []models.Flower
	if err := r.findByVendor(r.flowers, vendorID, &out); err != nil {
		return nil, err
	}
	return out, nil
}
