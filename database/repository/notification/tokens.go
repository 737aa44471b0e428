package notificationRepo

import (
	"fmt"
	"time"

	"farmmarket/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDeviceTokenRepo implements DeviceTokenRepository using MongoDB.
type MongoDeviceTokenRepo struct {
	coll *mongo.Collection
}

// NewMongoDeviceTokenRepo creates a new DeviceTokenRepository using MongoDB.
func NewMongoDeviceTokenRepo() DeviceTokenRepository {
	coll := collection("device_tokens")
	repo := &MongoDeviceTokenRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "isActive", Value: 1}}},
	}
	_, err := coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// DeactivateByToken deactivates every registration of the given token
// string, across all users. A token is never active twice.
func (r *MongoDeviceTokenRepo) DeactivateByToken(token string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}}
	_, err := r.coll.UpdateMany(ctx, bson.M{"token": token}, update)
	if err != nil {
		return fmt.Errorf("failed to deactivate device token: %w", err)
	}
	return nil
}

// Create inserts a new device token registration.
func (r *MongoDeviceTokenRepo) Create(t *models.DeviceToken) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, t)
	if err != nil {
		return fmt.Errorf("failed to create device token: %w", err)
	}
	return nil
}

// ListActiveByUser returns a user's active device tokens.
func (r *MongoDeviceTokenRepo) ListActiveByUser(userID string) ([]models.DeviceToken, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID, "isActive": true})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch device tokens for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var tokens []models.DeviceToken
	if err := cursor.All(ctx, &tokens); err != nil {
		return nil, fmt.Errorf("failed to decode device tokens: %w", err)
	}
	return tokens, nil
}
