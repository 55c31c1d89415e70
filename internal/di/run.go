package di

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/fx"
)

// Run starts app and blocks until ctx is done or the app asks to shut down.
// Stop gets a context without deadline so lifecycle hooks apply SHUTDOWN_TIMEOUT.
func Run(ctx context.Context, app *fx.App, name string, stderr io.Writer) error {
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("%s failed to start: %w", name, err)
	}

	select {
	case <-ctx.Done():
	case sig := <-app.Wait():
		if sig.ExitCode != 0 {
			fmt.Fprintf(stderr, "%s shutting down with code %d\n", name, sig.ExitCode)
		}
	}

	if err := app.Stop(context.Background()); err != nil {
		return fmt.Errorf("%s failed to stop: %w", name, err)
	}
	return nil
}
