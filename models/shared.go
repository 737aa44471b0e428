package models

// ReminderPayload is the asynq task payload for a scheduled reminder
// notification. It re-enters the normal send pipeline when fired.
type ReminderPayload struct {
	UserID       string               `json:"userId"`
	Channel      NotificationChannel  `json:"channel"`
	Category     NotificationCategory `json:"category"`
	Title        string               `json:"title"`
	Body         string               `json:"body"`
	TemplateName string               `json:"templateName,omitempty"`
	FireDate     string               `json:"fireDate,omitempty"`
}
