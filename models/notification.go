package models

import "time"

// NotificationChannel is the delivery medium for a notification.
type NotificationChannel string

const (
	ChannelEmail NotificationChannel = "email"
	ChannelPush  NotificationChannel = "push"
	ChannelInApp NotificationChannel = "in_app"
)

// NotificationCategory is the business classification of a notification.
type NotificationCategory string

const (
	CategoryOrder     NotificationCategory = "order"
	CategoryProduct   NotificationCategory = "product"
	CategoryAccount   NotificationCategory = "account"
	CategoryMarketing NotificationCategory = "marketing"
	CategorySystem    NotificationCategory = "system"
)

// NotificationStatus tracks the delivery lifecycle of a notification.
// Transitions only move forward: pending -> sent/failed, sent -> read.
type NotificationStatus string

const (
	StatusPending   NotificationStatus = "pending"
	StatusSent      NotificationStatus = "sent"
	StatusDelivered NotificationStatus = "delivered"
	StatusFailed    NotificationStatus = "failed"
	StatusRead      NotificationStatus = "read"
)

// Notification is a single delivery record.
type Notification struct {
	ID         string               `bson:"id" json:"id"`
	UserID     string               `bson:"userId" json:"userId"`
	TemplateID string               `bson:"templateId,omitempty" json:"templateId,omitempty"`
	Channel    NotificationChannel  `bson:"channel" json:"channel"`
	Category   NotificationCategory `bson:"category" json:"category"`
	Status     NotificationStatus   `bson:"status" json:"status"`
	Title      string               `bson:"title" json:"title"`
	Message    string               `bson:"message" json:"message"`
	Data       map[string]string    `bson:"data,omitempty" json:"data,omitempty"`

	// Recipient is an email address, a user ID (in-app), or empty for push,
	// where device tokens are resolved at delivery time.
	Recipient   string     `bson:"recipient" json:"recipient"`
	SentAt      *time.Time `bson:"sentAt,omitempty" json:"sentAt,omitempty"`
	DeliveredAt *time.Time `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
	ReadAt      *time.Time `bson:"readAt,omitempty" json:"readAt,omitempty"`

	ErrorMessage string `bson:"errorMessage,omitempty" json:"errorMessage,omitempty"`
	RetryCount   int    `bson:"retryCount" json:"retryCount"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// NotificationTemplate is a named, reusable (subject, body) pattern.
type NotificationTemplate struct {
	ID              string               `bson:"id" json:"id"`
	Name            string               `bson:"name" json:"name"`
	Category        NotificationCategory `bson:"category" json:"category"`
	Channel         NotificationChannel  `bson:"channel" json:"channel"`
	SubjectTemplate string               `bson:"subjectTemplate,omitempty" json:"subjectTemplate,omitempty"`
	BodyTemplate    string               `bson:"bodyTemplate" json:"bodyTemplate"`

	// Variables documents the expected placeholder names; it is not enforced.
	Variables map[string]string `bson:"variables,omitempty" json:"variables,omitempty"`
	IsActive  bool              `bson:"isActive" json:"isActive"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// NotificationPreferences is the singleton per-user preference record.
type NotificationPreferences struct {
	ID     string `bson:"id" json:"id"`
	UserID string `bson:"userId" json:"userId"`

	// Email preferences.
	EmailEnabled   bool `bson:"emailEnabled" json:"emailEnabled"`
	EmailOrders    bool `bson:"emailOrders" json:"emailOrders"`
	EmailProducts  bool `bson:"emailProducts" json:"emailProducts"`
	EmailAccount   bool `bson:"emailAccount" json:"emailAccount"`
	EmailMarketing bool `bson:"emailMarketing" json:"emailMarketing"`
	EmailSystem    bool `bson:"emailSystem" json:"emailSystem"`

	// Push preferences.
	PushEnabled   bool `bson:"pushEnabled" json:"pushEnabled"`
	PushOrders    bool `bson:"pushOrders" json:"pushOrders"`
	PushProducts  bool `bson:"pushProducts" json:"pushProducts"`
	PushAccount   bool `bson:"pushAccount" json:"pushAccount"`
	PushMarketing bool `bson:"pushMarketing" json:"pushMarketing"`
	PushSystem    bool `bson:"pushSystem" json:"pushSystem"`

	// In-app preferences.
	InAppEnabled   bool `bson:"inAppEnabled" json:"inAppEnabled"`
	InAppOrders    bool `bson:"inAppOrders" json:"inAppOrders"`
	InAppProducts  bool `bson:"inAppProducts" json:"inAppProducts"`
	InAppAccount   bool `bson:"inAppAccount" json:"inAppAccount"`
	InAppMarketing bool `bson:"inAppMarketing" json:"inAppMarketing"`
	InAppSystem    bool `bson:"inAppSystem" json:"inAppSystem"`

	// Quiet hours, "HH:MM" local times.
	QuietHoursEnabled bool   `bson:"quietHoursEnabled" json:"quietHoursEnabled"`
	QuietHoursStart   string `bson:"quietHoursStart,omitempty" json:"quietHoursStart,omitempty"`
	QuietHoursEnd     string `bson:"quietHoursEnd,omitempty" json:"quietHoursEnd,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DefaultNotificationPreferences returns the preference record materialized
// on first access. Marketing defaults off everywhere, push product updates
// default off, everything else defaults on.
func DefaultNotificationPreferences(userID string) *NotificationPreferences {
	return &NotificationPreferences{
		UserID: userID,

		EmailEnabled:   true,
		EmailOrders:    true,
		EmailProducts:  true,
		EmailAccount:   true,
		EmailMarketing: false,
		EmailSystem:    true,

		PushEnabled:   true,
		PushOrders:    true,
		PushProducts:  false,
		PushAccount:   true,
		PushMarketing: false,
		PushSystem:    true,

		InAppEnabled:   true,
		InAppOrders:    true,
		InAppProducts:  true,
		InAppAccount:   true,
		InAppMarketing: false,
		InAppSystem:    true,

		QuietHoursEnabled: false,
	}
}

// PreferencesUpdate carries a partial preference update. Only non-nil
// fields overwrite stored values.
type PreferencesUpdate struct {
	EmailEnabled   *bool `json:"emailEnabled,omitempty"`
	EmailOrders    *bool `json:"emailOrders,omitempty"`
	EmailProducts  *bool `json:"emailProducts,omitempty"`
	EmailAccount   *bool `json:"emailAccount,omitempty"`
	EmailMarketing *bool `json:"emailMarketing,omitempty"`
	EmailSystem    *bool `json:"emailSystem,omitempty"`

	PushEnabled   *bool `json:"pushEnabled,omitempty"`
	PushOrders    *bool `json:"pushOrders,omitempty"`
	PushProducts  *bool `json:"pushProducts,omitempty"`
	PushAccount   *bool `json:"pushAccount,omitempty"`
	PushMarketing *bool `json:"pushMarketing,omitempty"`
	PushSystem    *bool `json:"pushSystem,omitempty"`

	InAppEnabled   *bool `json:"inAppEnabled,omitempty"`
	InAppOrders    *bool `json:"inAppOrders,omitempty"`
	InAppProducts  *bool `json:"inAppProducts,omitempty"`
	InAppAccount   *bool `json:"inAppAccount,omitempty"`
	InAppMarketing *bool `json:"inAppMarketing,omitempty"`
	InAppSystem    *bool `json:"inAppSystem,omitempty"`

	QuietHoursEnabled *bool   `json:"quietHoursEnabled,omitempty"`
	QuietHoursStart   *string `json:"quietHoursStart,omitempty"`
	QuietHoursEnd     *string `json:"quietHoursEnd,omitempty"`
}

// DeviceToken is a push-delivery target. A token string is only ever
// active under one registration at a time.
type DeviceToken struct {
	ID       string `bson:"id" json:"id"`
	UserID   string `bson:"userId" json:"userId"`
	Token    string `bson:"token" json:"token"`
	Platform string `bson:"platform" json:"platform"` // "ios", "android", "web"
	IsActive bool   `bson:"isActive" json:"isActive"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
