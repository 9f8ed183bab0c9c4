package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/timeline-service/pkg/logger"
)

const versionKey = "timeline:global:ver"

// TimelinePageCache caches rendered global timeline pages in Redis.
//
// Keys are namespaced by a version counter: page entries live under
// timeline:global:v<ver>:page:<n>, and invalidation is a single INCR on the
// version key, which orphans the whole namespace at once (old entries just
// age out via TTL). Partial per-page invalidation is deliberately not
// supported.
//
// The cache is an optimization, never a correctness dependency: every Redis
// failure degrades to a miss and the caller composes the page live.
type TimelinePageCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTimelinePageCache(client *redis.Client, ttl time.Duration) *TimelinePageCache {
	return &TimelinePageCache{client: client, ttl: ttl}
}

func (c *TimelinePageCache) pageKey(ctx context.Context, page int) (string, error) {
	ver, err := c.client.Get(ctx, versionKey).Result()
	if err == redis.Nil {
		ver = "0"
	} else if err != nil {
		return "", err
	}
	return fmt.Sprintf("timeline:global:v%s:page:%d", ver, page), nil
}

// GetGlobal returns the cached payload for a global timeline page.
// Any error counts as a miss.
func (c *TimelinePageCache) GetGlobal(ctx context.Context, page int) ([]byte, bool) {
	key, err := c.pageKey(ctx, page)
	if err != nil {
		logger.Warn("timeline cache get degraded", zap.Error(err))
		return nil, false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("timeline cache get degraded", zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

// SetGlobal stores a rendered page, best effort.
func (c *TimelinePageCache) SetGlobal(ctx context.Context, page int, payload []byte) {
	key, err := c.pageKey(ctx, page)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		logger.Warn("timeline cache set failed", zap.Error(err))
	}
}

// Invalidate drops the entire namespace by bumping the version counter.
// Called on every post mutation and by the admin clear endpoint.
func (c *TimelinePageCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		logger.Warn("timeline cache invalidate failed", zap.Error(err))
	}
}
