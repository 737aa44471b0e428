package farmerRepo

import (
	"fmt"
	"time"

	"farmmarket/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetAll retrieves all farmers.
func (r *MongoFarmerRepo) GetAll() ([]models.Farmer, error) {
	return r.find(bson.M{})
}

// GetOrganic retrieves all organic certified farmers.
func (r *MongoFarmerRepo) GetOrganic() ([]models.Farmer, error) {
	return r.find(bson.M{"organicCertified": true})
}

// SearchByFarmName retrieves farmers whose farm name contains the query,
// case-insensitively.
func (r *MongoFarmerRepo) SearchByFarmName(farmName string) ([]models.Farmer, error) {
	filter := bson.M{"farmName": bson.M{
		"$regex": primitive.Regex{Pattern: farmName, Options: "i"},
	}}
	return r.find(filter)
}

func (r *MongoFarmerRepo) find(filter bson.M) ([]models.Farmer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch farmers: %w", err)
	}
	defer cursor.Close(ctx)

	var farmers []models.Farmer
	if err := cursor.All(ctx, &farmers); err != nil {
		return nil, fmt.Errorf("failed to decode farmers: %w", err)
	}
	return farmers, nil
}
