package worker

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/panganku/internal/config"
	"github.com/polkiloo/panganku/internal/usecase"
)

// SinkGroup is the fx value group collecting notifier sinks.
const SinkGroup = `group:"notify_sinks"`

// Module provides the dispatcher and exposes it as the use case notifier.
var Module = fx.Provide(
	newDispatcher,
	func(d *Dispatcher) usecase.Notifier { return d },
)

type dispatcherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Sinks  []Sink `group:"notify_sinks"`
}

func newDispatcher(p dispatcherParams) *Dispatcher {
	return NewDispatcher(p.Sinks, p.Config.NotifyWorkers, p.Config.NotifyQueueSize, p.Config.NotifyTimeout, p.Logger)
}
