package notification

import (
	"context"
	"fmt"
	"time"

	notificationRepo "farmmarket/database/repository/notification"
	"farmmarket/models"
	"farmmarket/services/realtime"
	"farmmarket/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SendNotification creates and dispatches one notification.
//
// The returned record is still pending: delivery runs on a detached
// goroutine and callers observe the outcome by re-reading the record. A
// send blocked by preferences returns (nil, nil) with no record persisted.
func (s *DefaultNotificationService) SendNotification(ctx context.Context, userID string, in SendInput) (*models.Notification, error) {
	logger := utils.GetLogger()

	user, err := s.Users.GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user %s: %w", userID, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	prefs, err := s.Prefs.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences for user %s: %w", userID, err)
	}

	if !ShouldSend(prefs, in.Channel, in.Category) {
		logger.Info("Notification blocked by user preferences",
			zap.String("userId", userID),
			zap.String("channel", string(in.Channel)),
			zap.String("category", string(in.Category)))
		return nil, nil
	}

	// Quiet hours are observed but not enforced; the send proceeds.
	if IsQuietHours(prefs, time.Now()) {
		logger.Info("Notification sent during quiet hours",
			zap.String("userId", userID))
	}

	title, message := in.Title, in.Message
	var templateID string
	if in.TemplateName != "" {
		tmpl, err := s.Templates.GetActiveByName(in.TemplateName)
		if err != nil {
			return nil, fmt.Errorf("failed to load template %q: %w", in.TemplateName, err)
		}
		if tmpl != nil {
			templateID = tmpl.ID
			if in.TemplateData != nil {
				title, message = Render(tmpl, in.TemplateData)
			}
		}
	}

	recipient := in.RecipientOverride
	if recipient == "" {
		recipient = resolveRecipient(user, in.Channel)
	}

	notif := &models.Notification{
		ID:         uuid.NewString(),
		UserID:     userID,
		TemplateID: templateID,
		Channel:    in.Channel,
		Category:   in.Category,
		Status:     models.StatusPending,
		Title:      title,
		Message:    message,
		Data:       in.Data,
		Recipient:  recipient,
	}

	if err := s.Repo.Create(notif); err != nil {
		return nil, fmt.Errorf("failed to persist notification: %w", err)
	}

	// Fire-and-forget delivery; the caller gets the pending record now.
	go s.deliver(notif)

	if notif.Channel == models.ChannelInApp {
		s.publishNewNotification(ctx, notif)
	}

	return notif, nil
}

// resolveRecipient derives the delivery address from the channel. Push
// recipients stay empty: device tokens are resolved at delivery time.
func resolveRecipient(user *models.User, channel models.NotificationChannel) string {
	switch channel {
	case models.ChannelEmail:
		return user.Email
	case models.ChannelInApp:
		return user.ID
	default:
		return ""
	}
}

// SendBulkNotification sends to many users sequentially in the given
// order. Per-user failures are logged and skipped; blocked sends are
// omitted from the result.
func (s *DefaultNotificationService) SendBulkNotification(ctx context.Context, userIDs []string, in SendInput) ([]models.Notification, error) {
	logger := utils.GetLogger()

	var notifications []models.Notification
	for _, userID := range userIDs {
		notif, err := s.SendNotification(ctx, userID, in)
		if err != nil {
			logger.Error("Failed to send notification in bulk",
				zap.String("userId", userID), zap.Error(err))
			continue
		}
		if notif != nil {
			notifications = append(notifications, *notif)
		}
	}
	return notifications, nil
}

// GetUserNotifications returns a user's notifications newest-first.
func (s *DefaultNotificationService) GetUserNotifications(ctx context.Context, userID string, opts ListOptions) ([]models.Notification, error) {
	return s.Repo.ListByUser(userID, notificationRepo.NotificationFilter{
		Channel:    opts.Channel,
		Category:   opts.Category,
		UnreadOnly: opts.UnreadOnly,
		Limit:      opts.Limit,
		Offset:     opts.Offset,
	})
}

// GetUnreadCount counts the user's unread in-app notifications.
func (s *DefaultNotificationService) GetUnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.Repo.CountUnreadInApp(userID)
}

// MarkAsRead marks a notification read, scoped to the owning user. A false
// return covers both not-found and not-owned.
func (s *DefaultNotificationService) MarkAsRead(ctx context.Context, notificationID, userID string) (bool, error) {
	updated, err := s.Repo.MarkRead(notificationID, userID, time.Now())
	if err != nil {
		return false, err
	}
	if updated {
		s.publishUnreadCount(ctx, userID)
	}
	return updated, nil
}

// GetPreferences returns the user's preference record, materializing the
// defaults on first access.
func (s *DefaultNotificationService) GetPreferences(ctx context.Context, userID string) (*models.NotificationPreferences, error) {
	prefs, err := s.Prefs.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		prefs = models.DefaultNotificationPreferences(userID)
		if err := s.Prefs.Save(prefs); err != nil {
			return nil, err
		}
	}
	return prefs, nil
}

// UpdatePreferences merges a partial update into the user's preference
// record. Absent fields keep their stored values.
func (s *DefaultNotificationService) UpdatePreferences(ctx context.Context, userID string, upd models.PreferencesUpdate) (*models.NotificationPreferences, error) {
	prefs, err := s.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyPreferencesUpdate(prefs, upd)

	if err := s.Prefs.Save(prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

func applyPreferencesUpdate(prefs *models.NotificationPreferences, upd models.PreferencesUpdate) {
	setBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}

	setBool(&prefs.EmailEnabled, upd.EmailEnabled)
	setBool(&prefs.EmailOrders, upd.EmailOrders)
	setBool(&prefs.EmailProducts, upd.EmailProducts)
	setBool(&prefs.EmailAccount, upd.EmailAccount)
	setBool(&prefs.EmailMarketing, upd.EmailMarketing)
	setBool(&prefs.EmailSystem, upd.EmailSystem)

	setBool(&prefs.PushEnabled, upd.PushEnabled)
	setBool(&prefs.PushOrders, upd.PushOrders)
	setBool(&prefs.PushProducts, upd.PushProducts)
	setBool(&prefs.PushAccount, upd.PushAccount)
	setBool(&prefs.PushMarketing, upd.PushMarketing)
	setBool(&prefs.PushSystem, upd.PushSystem)

	setBool(&prefs.InAppEnabled, upd.InAppEnabled)
	setBool(&prefs.InAppOrders, upd.InAppOrders)
	setBool(&prefs.InAppProducts, upd.InAppProducts)
	setBool(&prefs.InAppAccount, upd.InAppAccount)
	setBool(&prefs.InAppMarketing, upd.InAppMarketing)
	setBool(&prefs.InAppSystem, upd.InAppSystem)

	setBool(&prefs.QuietHoursEnabled, upd.QuietHoursEnabled)
	if upd.QuietHoursStart != nil {
		prefs.QuietHoursStart = *upd.QuietHoursStart
	}
	if upd.QuietHoursEnd != nil {
		prefs.QuietHoursEnd = *upd.QuietHoursEnd
	}
}

// RegisterDeviceToken registers a push target. Any prior registration of
// the same token string, for any user, is deactivated first so a handset
// changing owners stops receiving the previous owner's pushes.
func (s *DefaultNotificationService) RegisterDeviceToken(ctx context.Context, userID, token, platform string) (*models.DeviceToken, error) {
	if err := s.Tokens.DeactivateByToken(token); err != nil {
		return nil, err
	}

	deviceToken := &models.DeviceToken{
		ID:       uuid.NewString(),
		UserID:   userID,
		Token:    token,
		Platform: platform,
		IsActive: true,
	}
	if err := s.Tokens.Create(deviceToken); err != nil {
		return nil, err
	}
	return deviceToken, nil
}

// SeedDefaultTemplates idempotently upserts the default template catalog.
func (s *DefaultNotificationService) SeedDefaultTemplates(ctx context.Context) error {
	logger := utils.GetLogger()

	for _, tmpl := range DefaultTemplates() {
		t := tmpl
		if err := s.Templates.UpsertByName(&t); err != nil {
			return fmt.Errorf("failed to seed template %q: %w", t.Name, err)
		}
	}
	logger.Info("Seeded default notification templates",
		zap.Int("count", len(DefaultTemplates())))
	return nil
}

func (s *DefaultNotificationService) publishNewNotification(ctx context.Context, notif *models.Notification) {
	if s.Realtime == nil {
		return
	}
	count, err := s.Repo.CountUnreadInApp(notif.UserID)
	if err != nil {
		utils.GetLogger().Warn("Failed to count unread notifications",
			zap.String("userId", notif.UserID), zap.Error(err))
	}
	s.Realtime.Publish(ctx, notif.UserID, realtime.Event{
		Type: realtime.EventNewNotification,
		Payload: map[string]any{
			"notification": notif,
			"unreadCount":  count,
		},
	})
}

func (s *DefaultNotificationService) publishUnreadCount(ctx context.Context, userID string) {
	if s.Realtime == nil {
		return
	}
	count, err := s.Repo.CountUnreadInApp(userID)
	if err != nil {
		utils.GetLogger().Warn("Failed to count unread notifications",
			zap.String("userId", userID), zap.Error(err))
		return
	}
	s.Realtime.Publish(ctx, userID, realtime.Event{
		Type:    realtime.EventUnreadCountUpdate,
		Payload: map[string]any{"unreadCount": count},
	})
}
