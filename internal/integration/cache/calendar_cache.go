// Package cache implements Redis-backed caching for rendered month views.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/billwise/backend/internal/application/adapter"
)

// calendarCache implements the adapter.CalendarCache interface using Redis.
// Keys follow "calendar:<user-id>:<YYYY-MM>@<as-of-date>".
type calendarCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCalendarCache creates a new Redis-backed calendar cache.
func NewCalendarCache(client *redis.Client, ttl time.Duration) adapter.CalendarCache {
	return &calendarCache{
		client: client,
		ttl:    ttl,
	}
}

func cacheKey(userID uuid.UUID, view string) string {
	return fmt.Sprintf("calendar:%s:%s", userID, view)
}

// Get retrieves a cached month view. Returns (nil, nil) on cache miss.
func (c *calendarCache) Get(ctx context.Context, userID uuid.UUID, view string) ([]byte, error) {
	payload, err := c.client.Get(ctx, cacheKey(userID, view)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return payload, nil
}

// Set stores a rendered month view with the configured TTL.
func (c *calendarCache) Set(ctx context.Context, userID uuid.UUID, view string, payload []byte) error {
	return c.client.Set(ctx, cacheKey(userID, view), payload, c.ttl).Err()
}

// InvalidateUser drops all cached views for a user.
func (c *calendarCache) InvalidateUser(ctx context.Context, userID uuid.UUID) error {
	pattern := fmt.Sprintf("calendar:%s:*", userID)

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
