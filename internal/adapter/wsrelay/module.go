package wsrelay

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/panganku/internal/config"
	"github.com/polkiloo/panganku/internal/worker"
)

// Module registers the relay client as a notifier sink.
var Module = fx.Provide(
	fx.Annotate(newSink, fx.ResultTags(worker.SinkGroup)),
)

type sinkParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// newSink returns a nil sink when no relay is configured.
func newSink(p sinkParams) (worker.Sink, error) {
	if p.Config.RelayURL == "" {
		p.Logger.Info("realtime relay disabled")
		return nil, nil
	}
	client, err := NewHTTPClient(p.Config.RelayURL, p.Logger)
	if err != nil {
		return nil, err
	}
	return client, nil
}
