package di

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/fx"
)

type stopRecord struct {
	stopped     bool
	hadDeadline bool
}

func newRunApp(t *testing.T, rec *stopRecord, onStart func(fx.Shutdowner) error) *fx.App {
	t.Helper()
	return fx.New(
		fx.NopLogger,
		fx.Invoke(func(lc fx.Lifecycle, s fx.Shutdowner) {
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error { return onStart(s) },
				OnStop: func(ctx context.Context) error {
					rec.stopped = true
					_, rec.hadDeadline = ctx.Deadline()
					return nil
				},
			})
		}),
	)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	var rec stopRecord
	app := newRunApp(t, &rec, func(fx.Shutdowner) error { return nil })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	time.AfterFunc(20*time.Millisecond, cancel)

	var stderr bytes.Buffer
	if err := Run(ctx, app, "api", &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !rec.stopped {
		t.Fatal("expected stop hooks to run")
	}
	if rec.hadDeadline {
		t.Fatal("stop context must leave the deadline to SHUTDOWN_TIMEOUT")
	}
	if stderr.Len() != 0 {
		t.Fatalf("unexpected output %q", stderr.String())
	}
}

func TestRunReportsShutdownExitCode(t *testing.T) {
	var rec stopRecord
	app := newRunApp(t, &rec, func(s fx.Shutdowner) error {
		_ = s.Shutdown(fx.ExitCode(3))
		return nil
	})

	var stderr bytes.Buffer
	if err := Run(context.Background(), app, "relay", &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !rec.stopped {
		t.Fatal("expected stop hooks to run")
	}
	if got := stderr.String(); got != "relay shutting down with code 3\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunStartFailure(t *testing.T) {
	var rec stopRecord
	errPort := errors.New("port in use")
	app := newRunApp(t, &rec, func(fx.Shutdowner) error { return errPort })

	err := Run(context.Background(), app, "api", &bytes.Buffer{})
	if !errors.Is(err, errPort) || !strings.HasPrefix(err.Error(), "api failed to start") {
		t.Fatalf("unexpected error %v", err)
	}
}
