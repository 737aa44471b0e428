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

// MongoTemplateRepo implements TemplateRepository using MongoDB.
type MongoTemplateRepo struct {
	coll *mongo.Collection
}

// NewMongoTemplateRepo creates a new TemplateRepository using MongoDB.
func NewMongoTemplateRepo() TemplateRepository {
	coll := collection("notification_templates")
	repo := &MongoTemplateRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// GetActiveByName retrieves an active template by its unique name.
func (r *MongoTemplateRepo) GetActiveByName(name string) (*models.NotificationTemplate, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var t models.NotificationTemplate
	err := r.coll.FindOne(ctx, bson.M{"name": name, "isActive": true}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch template %q: %w", name, err)
	}
	return &t, nil
}

// UpsertByName inserts the template or updates the existing one with the
// same name, so re-seeding never duplicates.
func (r *MongoTemplateRepo) UpsertByName(t *models.NotificationTemplate) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	update := bson.M{
		"$set": bson.M{
			"category":        t.Category,
			"channel":         t.Channel,
			"subjectTemplate": t.SubjectTemplate,
			"bodyTemplate":    t.BodyTemplate,
			"variables":       t.Variables,
			"isActive":        t.IsActive,
			"updatedAt":       now,
		},
		"$setOnInsert": bson.M{
			"id":        t.ID,
			"name":      t.Name,
			"createdAt": now,
		},
	}
	_, err := r.coll.UpdateOne(ctx, bson.M{"name": t.Name}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert template %q: %w", t.Name, err)
	}
	return nil
}
