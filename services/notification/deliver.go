package notification

import (
	"time"

	"farmmarket/models"
	"farmmarket/utils"

	"go.uber.org/zap"
)

// deliver runs on a detached goroutine, one per notification. It is the
// only writer of the record's pending-to-terminal transition.
func (s *DefaultNotificationService) deliver(notif *models.Notification) {
	logger := utils.GetLogger()

	var success bool
	switch notif.Channel {
	case models.ChannelEmail:
		success = s.Email.Send(notif.Recipient, notif.Title, notif.Message)

	case models.ChannelPush:
		tokens, err := s.Tokens.ListActiveByUser(notif.UserID)
		if err != nil {
			logger.Error("Failed to load device tokens",
				zap.String("userId", notif.UserID), zap.Error(err))
		}
		for _, token := range tokens {
			s.Push.Send(token.Token, token.Platform, notif.Title, notif.Message, notif.Data)
		}
		// Sent as long as at least one active token existed; the
		// per-token outcomes are not folded in.
		success = len(tokens) > 0

	case models.ChannelInApp:
		// Persisting the record is the delivery.
		success = true
	}

	now := time.Now()
	if success {
		if err := s.Repo.MarkSent(notif.ID, now); err != nil {
			logger.Error("Failed to update notification status",
				zap.String("id", notif.ID), zap.Error(err))
		}
		return
	}

	if err := s.Repo.MarkFailed(notif.ID, "Delivery failed", now); err != nil {
		logger.Error("Failed to update notification status",
			zap.String("id", notif.ID), zap.Error(err))
	}
}
