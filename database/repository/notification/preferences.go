package notificationRepo

import (
	"fmt"
	"time"

	"farmmarket/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPreferenceRepo implements PreferenceRepository using MongoDB.
type MongoPreferenceRepo struct {
	coll *mongo.Collection
}

// NewMongoPreferenceRepo creates a new PreferenceRepository using MongoDB.
func NewMongoPreferenceRepo() PreferenceRepository {
	coll := collection("notification_preferences")
	repo := &MongoPreferenceRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// GetByUserID retrieves a user's preference record, or nil when it has not
// been materialized yet.
func (r *MongoPreferenceRepo) GetByUserID(userID string) (*models.NotificationPreferences, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.NotificationPreferences
	err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch preferences for user %s: %w", userID, err)
	}
	return &p, nil
}

// Save upserts the singleton preference record for the owning user.
func (r *MongoPreferenceRepo) Save(p *models.NotificationPreferences) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	if p.ID == "" {
		p.ID = uuid.NewString()
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"userId": p.UserID},
		bson.M{"$set": p},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to save preferences for user %s: %w", p.UserID, err)
	}
	return nil
}
