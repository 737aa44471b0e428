package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is a snapshot of the marketplace's external dependencies:
// the Mongo database behind the repositories, the Redis cache, and the
// Redis realtime pub/sub instance.
type HealthStatus struct {
	Database  bool      `json:"database"`
	Cache     bool      `json:"cache"`
	Realtime  bool      `json:"realtime"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
func StartHealthMonitor(cache, realtime *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			status := HealthStatus{
				Database:  mongoClient.Ping(ctx, nil) == nil,
				Cache:     cache.Ping(ctx).Err() == nil,
				Realtime:  realtime.Ping(ctx).Err() == nil,
				CheckedAt: time.Now(),
			}

			mu.Lock()
			currentHealth = status
			mu.Unlock()
		}
	}()
}
