package notification

import (
	"context"

	notificationRepo "farmmarket/database/repository/notification"
	"farmmarket/models"
	"farmmarket/services/realtime"
)

// SendInput carries the parameters of a single notification send.
type SendInput struct {
	Channel      models.NotificationChannel  `json:"channel" binding:"required"`
	Category     models.NotificationCategory `json:"category" binding:"required"`
	Title        string                      `json:"title"`
	Message      string                      `json:"message"`
	TemplateName string                      `json:"templateName,omitempty"`
	TemplateData map[string]any              `json:"templateData,omitempty"`
	Data         map[string]string           `json:"data,omitempty"`
	// RecipientOverride bypasses channel-based recipient resolution.
	RecipientOverride string `json:"recipientOverride,omitempty"`
}

// ListOptions narrows GetUserNotifications results.
type ListOptions struct {
	Channel    models.NotificationChannel
	Category   models.NotificationCategory
	UnreadOnly bool
	Limit      int64
	Offset     int64
}

// NotificationService orchestrates notification creation, preference
// filtering, template rendering and per-channel delivery.
type NotificationService interface {
	// SendNotification creates and dispatches one notification. It returns
	// the pending record before delivery completes, or (nil, nil) when the
	// user's preferences block the send.
	SendNotification(ctx context.Context, userID string, in SendInput) (*models.Notification, error)
	// SendBulkNotification sends to many users sequentially; per-user
	// failures are logged and skipped. Only created records are returned.
	SendBulkNotification(ctx context.Context, userIDs []string, in SendInput) ([]models.Notification, error)
	// GetUserNotifications returns a user's notifications newest-first.
	GetUserNotifications(ctx context.Context, userID string, opts ListOptions) ([]models.Notification, error)
	// GetUnreadCount counts the user's unread in-app notifications.
	GetUnreadCount(ctx context.Context, userID string) (int64, error)
	// MarkAsRead marks a notification read, scoped to the owning user.
	MarkAsRead(ctx context.Context, notificationID, userID string) (bool, error)
	// GetPreferences returns the user's preference record, materializing
	// the defaults on first access.
	GetPreferences(ctx context.Context, userID string) (*models.NotificationPreferences, error)
	// UpdatePreferences merges a partial update into the user's preference
	// record, creating it from defaults if absent.
	UpdatePreferences(ctx context.Context, userID string, upd models.PreferencesUpdate) (*models.NotificationPreferences, error)
	// RegisterDeviceToken registers a push target, deactivating any prior
	// registration of the same token string.
	RegisterDeviceToken(ctx context.Context, userID, token, platform string) (*models.DeviceToken, error)
	// SeedDefaultTemplates idempotently upserts the default template catalog.
	SeedDefaultTemplates(ctx context.Context) error
}

// UserDirectory is the slice of the user service the orchestrator needs.
type UserDirectory interface {
	GetUserByID(userID string) (*models.User, error)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Users     UserDirectory
	Repo      notificationRepo.NotificationRepository
	Templates notificationRepo.TemplateRepository
	Prefs     notificationRepo.PreferenceRepository
	Tokens    notificationRepo.DeviceTokenRepository
	Email     EmailProvider
	Push      PushProvider
	Realtime  realtime.Publisher
}
