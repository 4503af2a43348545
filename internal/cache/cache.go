// Package cache provides the Redis-backed feed page cache.
//
// Only the index feed is cached: it is identical for every visitor and by
// far the most requested page. Entries live for a short TTL so new posts
// surface quickly. Every Redis failure degrades to a cache miss; the site
// must keep working with Redis down.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/yatube/api/internal/config"
	"github.com/yatube/api/internal/model"
)

// FeedCache caches rendered feed pages in Redis
type FeedCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFeedCache creates a Redis feed cache. Returns nil when caching is
// disabled; callers treat a nil cache as "always miss".
func NewFeedCache(cfg config.CacheConfig) *FeedCache {
	if !cfg.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &FeedCache{
		client: client,
		ttl:    cfg.IndexTTL,
	}
}

// Ping verifies the Redis connection
func (c *FeedCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the Redis connection
func (c *FeedCache) Close() error {
	return c.client.Close()
}

// GetFeed returns a cached feed page, or a miss on any failure
func (c *FeedCache) GetFeed(ctx context.Context, key string) (*model.Feed, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("feed cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var feed model.Feed
	if err := json.Unmarshal(data, &feed); err != nil {
		slog.Warn("feed cache entry corrupt", "key", key, "error", err)
		return nil, false
	}
	return &feed, true
}

// SetFeed stores a feed page with the configured TTL. Failures are logged
// and otherwise ignored.
func (c *FeedCache) SetFeed(ctx context.Context, key string, feed *model.Feed) {
	data, err := json.Marshal(feed)
	if err != nil {
		slog.Warn("feed cache encode failed", "key", key, "error", err)
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		slog.Warn("feed cache write failed", "key", key, "error", err)
	}
}
