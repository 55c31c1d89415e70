package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"github.com/polkiloo/panganku/internal/config"
	"github.com/polkiloo/panganku/internal/domain/model"
)

func newTestCache(t *testing.T) (*RedisStatusCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStatusCache(client), srv
}

func TestRedisStatusCacheRoundTrip(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	snapshot := model.StatusSnapshot{
		OrderID:   "o1",
		UserID:    "u1",
		Status:    model.OrderStatusShipped,
		UpdatedAt: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
	}
	require.NoError(t, c.Set(ctx, snapshot))

	assert.True(t, srv.Exists("order_status:o1"))
	assert.Equal(t, TTL, srv.TTL("order_status:o1"))

	got, err := c.Get(ctx, "o1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, snapshot.UserID, got.UserID)
	assert.Equal(t, snapshot.Status, got.Status)
	assert.True(t, snapshot.UpdatedAt.Equal(got.UpdatedAt))
}

func TestRedisStatusCacheMissAndExpiry(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	got, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, c.Set(ctx, model.StatusSnapshot{OrderID: "o2", Status: model.OrderStatusProcessing}))
	srv.FastForward(TTL + time.Second)

	got, err = c.Get(ctx, "o2")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStatusCacheKeepsNewestSnapshot(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()
	shippedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, c.Set(ctx, model.StatusSnapshot{OrderID: "o3", Status: model.OrderStatusShipped, UpdatedAt: shippedAt}))
	// A slower writer finishing late with the earlier PROCESSING state.
	require.NoError(t, c.Set(ctx, model.StatusSnapshot{OrderID: "o3", Status: model.OrderStatusProcessing, UpdatedAt: shippedAt.Add(-time.Second)}))

	got, err := c.Get(ctx, "o3")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, model.OrderStatusShipped, got.Status)

	completedAt := shippedAt.Add(time.Minute)
	require.NoError(t, c.Set(ctx, model.StatusSnapshot{OrderID: "o3", Status: model.OrderStatusCompleted, UpdatedAt: completedAt}))
	got, err = c.Get(ctx, "o3")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCompleted, got.Status)

	require.NoError(t, srv.Set("order_status:o4", "garbage"))
	require.NoError(t, c.Set(ctx, model.StatusSnapshot{OrderID: "o4", Status: model.OrderStatusProcessing}))
	got, err = c.Get(ctx, "o4")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusProcessing, got.Status)
}

func TestRedisStatusCacheErrors(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, srv.Set("order_status:bad", "not-json"))
	_, err := c.Get(ctx, "bad")
	assert.Error(t, err)

	srv.Close()
	_, err = c.Get(ctx, "o1")
	assert.Error(t, err)
	assert.Error(t, c.Set(ctx, model.StatusSnapshot{OrderID: "o1"}))
}

func TestNopStatusCache(t *testing.T) {
	var c NopStatusCache
	require.NoError(t, c.Set(context.Background(), model.StatusSnapshot{OrderID: "o1"}))
	got, err := c.Get(context.Background(), "o1")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestNewStatusCacheFromConfig(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	disabled := newStatusCache(cacheParams{Lifecycle: fxtest.NewLifecycle(t), Config: &config.Config{}, Logger: logger})
	assert.IsType(t, NopStatusCache{}, disabled)

	srv := miniredis.RunT(t)
	lc := fxtest.NewLifecycle(t)
	enabled := newStatusCache(cacheParams{Lifecycle: lc, Config: &config.Config{RedisAddr: srv.Addr()}, Logger: logger})
	require.IsType(t, &RedisStatusCache{}, enabled)

	lc.RequireStart()
	require.NoError(t, enabled.Set(context.Background(), model.StatusSnapshot{OrderID: "o3", Status: model.OrderStatusCompleted}))
	assert.True(t, srv.Exists(Key("o3")))
	lc.RequireStop()
}
