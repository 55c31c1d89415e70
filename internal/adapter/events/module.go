package events

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/panganku/internal/config"
	"github.com/polkiloo/panganku/internal/worker"
)

// Module registers the Kafka publisher as a notifier sink when brokers are configured.
var Module = fx.Provide(
	fx.Annotate(newSink, fx.ResultTags(worker.SinkGroup)),
)

type sinkParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newSink(p sinkParams) worker.Sink {
	if len(p.Config.KafkaBrokers) == 0 {
		p.Logger.Info("kafka publisher disabled")
		return nil
	}
	publisher := NewPublisher(NewKafkaWriter(p.Config.KafkaBrokers))
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})
	p.Logger.Info("kafka publisher enabled", slog.String("topic", Topic), slog.Any("brokers", p.Config.KafkaBrokers))
	return publisher
}
