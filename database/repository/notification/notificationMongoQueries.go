package notificationRepo

import (
	"fmt"
	"time"

	"farmmarket/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListByUser returns a user's notifications ordered newest-first, with
// optional channel/category/unread filters and skip/limit pagination.
func (r *MongoNotificationRepo) ListByUser(userID string, f NotificationFilter) ([]models.Notification, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"userId": userID}
	if f.Channel != "" {
		filter["channel"] = f.Channel
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.UnreadOnly {
		filter["status"] = bson.M{"$ne": models.StatusRead}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if f.Offset > 0 {
		opts.SetSkip(f.Offset)
	}
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return notifications, nil
}

// CountUnreadInApp counts the user's in-app notifications whose status is
// not read. Unread is an in-app-only concept.
func (r *MongoNotificationRepo) CountUnreadInApp(userID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"userId":  userID,
		"channel": models.ChannelInApp,
		"status":  bson.M{"$ne": models.StatusRead},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications for user %s: %w", userID, err)
	}
	return count, nil
}
