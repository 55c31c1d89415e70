package relay

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"go.uber.org/fx"

	"github.com/polkiloo/panganku/internal/config"
)

// Module wires the realtime relay process.
var Module = fx.Options(
	fx.Provide(
		NewHub,
		newServer,
		newHTTPServer,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.RelayConfig
	Hub    *Hub
	Logger *slog.Logger
}

func newServer(p serverParams) *Server {
	return NewServer(p.Hub, p.Config.CORSOrigins, p.Logger)
}

type httpServerParams struct {
	fx.In

	Config *config.RelayConfig
	Server *Server
}

func newHTTPServer(p httpServerParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.Address,
		Handler: p.Server.Handler(p.Config.CORSOrigins),
	}
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	HTTP       *http.Server
	Hub        *Hub
	Config     *config.RelayConfig
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting relay", slog.String("addr", p.HTTP.Addr))
			go func() {
				if err := p.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("relay server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			err := p.HTTP.Shutdown(shutdownCtx)
			p.Hub.Close()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("relay stopped")
			return nil
		},
	})
}
