package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/panganku/internal/adapter/cache"
	"github.com/polkiloo/panganku/internal/adapter/events"
	"github.com/polkiloo/panganku/internal/adapter/wsrelay"
	"github.com/polkiloo/panganku/internal/app"
	"github.com/polkiloo/panganku/internal/config"
	"github.com/polkiloo/panganku/internal/logger"
	"github.com/polkiloo/panganku/internal/pkg/auth"
	"github.com/polkiloo/panganku/internal/relay"
	"github.com/polkiloo/panganku/internal/server/http/router"
	"github.com/polkiloo/panganku/internal/storage/postgres"
	"github.com/polkiloo/panganku/internal/usecase"
	"github.com/polkiloo/panganku/internal/worker"
)

// Module composes the API process.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		cache.Module,
		wsrelay.Module,
		events.Module,
		worker.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

// RelayModule composes the realtime relay process.
func RelayModule(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.RelayModule,
		logger.Module,
		relay.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
