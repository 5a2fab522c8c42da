package quota

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/platewise/backend/internal/models"
)

// RedisTracker keeps the daily counter in Redis under one key per calendar
// date. INCR is atomic, which closes the check-then-increment race the
// StoreTracker accepts. Keys expire two days after creation so stale dates
// clean themselves up.
type RedisTracker struct {
	redis *redis.Client
	limit int
	now   func() time.Time
}

// NewRedisTracker creates a Redis-backed tracker with the given daily limit.
func NewRedisTracker(client *redis.Client, limit int) *RedisTracker {
	return &RedisTracker{redis: client, limit: limit, now: time.Now}
}

func (t *RedisTracker) key() string {
	return fmt.Sprintf("quota:remote:%s", t.now().Format(models.UsageDateLayout))
}

// Allow implements Tracker. Fails closed on Redis errors.
func (t *RedisTracker) Allow(ctx context.Context) bool {
	count, err := t.redis.Get(ctx, t.key()).Int()
	if err == redis.Nil {
		return true
	}
	if err != nil {
		log.Printf("quota: reading redis counter: %v", err)
		return false
	}
	return count < t.limit
}

// Record implements Tracker using an atomic INCR.
func (t *RedisTracker) Record(ctx context.Context) {
	pipe := t.redis.Pipeline()
	pipe.Incr(ctx, t.key())
	pipe.Expire(ctx, t.key(), 48*time.Hour)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("quota: incrementing redis counter: %v", err)
	}
}

// Stats implements Tracker.
func (t *RedisTracker) Stats(ctx context.Context) (models.UsageStats, error) {
	count, err := t.redis.Get(ctx, t.key()).Int()
	if err == redis.Nil {
		count = 0
	} else if err != nil {
		return models.UsageStats{Limit: t.limit}, err
	}
	return models.UsageStats{
		ID:    usageStatsID,
		Date:  t.now().Format(models.UsageDateLayout),
		Count: count,
		Limit: t.limit,
	}, nil
}
