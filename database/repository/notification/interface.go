package notificationRepo

import (
	"time"

	"farmmarket/models"
)

// NotificationFilter narrows ListByUser results.
type NotificationFilter struct {
	Channel    models.NotificationChannel
	Category   models.NotificationCategory
	UnreadOnly bool
	Limit      int64
	Offset     int64
}

// NotificationRepository defines data access for notification records.
type NotificationRepository interface {
	// Create inserts a new notification record.
	Create(n *models.Notification) error
	// GetByID retrieves a notification by its unique ID.
	GetByID(id string) (*models.Notification, error)
	// MarkSent records a successful handoff to the transport.
	MarkSent(id string, at time.Time) error
	// MarkFailed records a failed delivery attempt: status becomes failed,
	// the error message is stored and the retry counter is incremented.
	MarkFailed(id string, reason string, at time.Time) error
	// MarkRead flips the record to read, scoped to the owning user.
	// Returns whether a row was affected.
	MarkRead(id, userID string, at time.Time) (bool, error)
	// ListByUser returns a user's notifications newest-first.
	ListByUser(userID string, f NotificationFilter) ([]models.Notification, error)
	// CountUnreadInApp counts the user's in-app notifications not yet read.
	CountUnreadInApp(userID string) (int64, error)
}

// TemplateRepository defines data access for notification templates.
type TemplateRepository interface {
	// GetActiveByName retrieves an active template by its unique name.
	GetActiveByName(name string) (*models.NotificationTemplate, error)
	// UpsertByName inserts the template or updates the existing one with
	// the same name.
	UpsertByName(t *models.NotificationTemplate) error
}

// PreferenceRepository defines data access for user notification preferences.
type PreferenceRepository interface {
	// GetByUserID retrieves a user's preference record, or nil when the
	// record has not been materialized yet.
	GetByUserID(userID string) (*models.NotificationPreferences, error)
	// Save upserts the singleton preference record for the owning user.
	Save(p *models.NotificationPreferences) error
}

// DeviceTokenRepository defines data access for push device tokens.
type DeviceTokenRepository interface {
	// DeactivateByToken deactivates every registration of the given token
	// string, across all users.
	DeactivateByToken(token string) error
	// Create inserts a new device token registration.
	Create(t *models.DeviceToken) error
	// ListActiveByUser returns a user's active device tokens.
	ListActiveByUser(userID string) ([]models.DeviceToken, error)
}
