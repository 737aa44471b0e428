package realtime

import "context"

// Event is a message pushed to a user's live connection.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// Event types emitted by the notification pipeline.
const (
	EventNewNotification   = "new_notification"
	EventUnreadCountUpdate = "unread_count_update"
)

// Publisher is a best-effort per-user event sink. Publishing to a user with
// no live connection simply drops the event; implementations never return
// delivery feedback to callers.
type Publisher interface {
	Publish(ctx context.Context, userID string, event Event)
}
