package realtime

import (
	"context"
	"encoding/json"

	"farmmarket/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisPublisher fans events out over Redis pub/sub. Gateway processes
// holding the user's live connection subscribe to the per-user channel;
// with no subscriber the publish is a no-op, which matches the best-effort
// contract.
type RedisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher creates a publisher on the given Redis client.
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

// ChannelForUser returns the pub/sub channel carrying a user's events.
func ChannelForUser(userID string) string {
	return "realtime:user:" + userID
}

// Publish sends one event to the user's channel. Failures are logged and
// swallowed.
func (p *RedisPublisher) Publish(ctx context.Context, userID string, event Event) {
	logger := utils.GetLogger()

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to encode realtime event",
			zap.String("userId", userID), zap.Error(err))
		return
	}
	if err := p.client.Publish(ctx, ChannelForUser(userID), payload).Err(); err != nil {
		logger.Warn("Failed to publish realtime event",
			zap.String("userId", userID), zap.Error(err))
	}
}
