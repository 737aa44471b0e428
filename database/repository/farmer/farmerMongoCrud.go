// File: database/repository/farmer/farmerMongoCrud.go
package farmerRepo

import (
	"fmt"
	"time"

	"farmmarket/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetByID retrieves a farmer by its unique ID.
func (r *MongoFarmerRepo) GetByID(id string) (*models.Farmer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var farmer models.Farmer
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&farmer)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch farmer with id %s: %w", id, err)
	}
	return &farmer, nil
}

// GetByUserID retrieves the farmer profile owned by a user.
func (r *MongoFarmerRepo) GetByUserID(userID string) (*models.Farmer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var farmer models.Farmer
	err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&farmer)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch farmer for user %s: %w", userID, err)
	}
	return &farmer, nil
}

// Create inserts a new farmer document.
func (r *MongoFarmerRepo) Create(farmer *models.Farmer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	farmer.CreatedAt = now
	farmer.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, farmer)
	if err != nil {
		return fmt.Errorf("failed to create farmer: %w", err)
	}
	return nil
}

// Update modifies an existing farmer document.
func (r *MongoFarmerRepo) Update(farmer *models.Farmer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	farmer.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": farmer.ID}, bson.M{"$set": farmer})
	if err != nil {
		return fmt.Errorf("failed to update farmer with id %s: %w", farmer.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("farmer with id %s not found", farmer.ID)
	}
	return nil
}

// Delete removes a farmer document by its ID.
func (r *MongoFarmerRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete farmer with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("farmer with id %s not found", id)
	}
	return nil
}
