package relay

import (
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/polkiloo/panganku/internal/config"
)

func TestModuleStartsAndStops(t *testing.T) {
	cfg := &config.RelayConfig{Address: "127.0.0.1:0", CORSOrigins: []string{"*"}, ShutdownTimeout: time.Second}
	var hub *Hub
	app := fxtest.New(t,
		fx.Supply(cfg),
		fx.Provide(func() *slog.Logger { return discardLogger() }),
		Module,
		fx.Populate(&hub),
	)
	app.RequireStart()
	if hub == nil {
		t.Fatal("expected hub to be provided")
	}
	app.RequireStop()
}
