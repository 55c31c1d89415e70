package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/polkiloo/panganku/internal/config"
	"github.com/polkiloo/panganku/internal/usecase"
)

// Module provides the order status cache used by the order use case.
var Module = fx.Provide(newStatusCache)

type cacheParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newStatusCache(p cacheParams) usecase.StatusCache {
	if p.Config.RedisAddr == "" {
		p.Logger.Info("status cache disabled")
		return NopStatusCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:         p.Config.RedisAddr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				p.Logger.Warn("redis unreachable, status lookups fall back to the database",
					slog.String("addr", p.Config.RedisAddr), slog.String("error", err.Error()))
			}
			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return NewRedisStatusCache(client)
}
