package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/polkiloo/panganku/internal/domain/model"
)

const (
	keyPrefix = "order_status:"
	// TTL bounds how long a status lookup may be served without touching the database.
	TTL = 5 * time.Minute

	maxSetAttempts = 3
)

// RedisStatusCache stores order status snapshots as JSON strings.
type RedisStatusCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisStatusCache wraps a redis client.
func NewRedisStatusCache(client redis.UniversalClient) *RedisStatusCache {
	return &RedisStatusCache{client: client, ttl: TTL}
}

// Key returns the redis key of an order status.
func Key(orderID string) string {
	return keyPrefix + orderID
}

// Get returns the cached snapshot or nil on a miss.
func (c *RedisStatusCache) Get(ctx context.Context, orderID string) (*model.StatusSnapshot, error) {
	raw, err := c.client.Get(ctx, Key(orderID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snapshot model.StatusSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Set stores the snapshot with the cache TTL unless a newer snapshot of the
// same order is already cached. Concurrent writers retry on a WATCH conflict.
func (c *RedisStatusCache) Set(ctx context.Context, snapshot model.StatusSnapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	key := Key(snapshot.OrderID)

	store := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return err
		default:
			var cached model.StatusSnapshot
			if json.Unmarshal(current, &cached) == nil && cached.UpdatedAt.After(snapshot.UpdatedAt) {
				return nil
			}
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, c.ttl)
			return nil
		})
		return err
	}

	for i := 0; i < maxSetAttempts; i++ {
		err = c.client.Watch(ctx, store, key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return err
}

// NopStatusCache never stores anything.
type NopStatusCache struct{}

// Get always misses.
func (NopStatusCache) Get(context.Context, string) (*model.StatusSnapshot, error) { return nil, nil }

// Set discards the snapshot.
func (NopStatusCache) Set(context.Context, model.StatusSnapshot) error { return nil }
