package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/panganku/internal/domain/model"
)

const defaultDeliveryTimeout = 3 * time.Second

// Sink delivers a committed event to one downstream system.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, event model.Event) error
}

// Dispatcher fans committed events out to sinks on a bounded worker pool.
// Notify never blocks: events that do not fit into the queue are dropped.
type Dispatcher struct {
	sinks   []Sink
	workers int
	timeout time.Duration
	logger  *slog.Logger

	jobs   chan model.Event
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewDispatcher constructs the notifier worker pool. Nil sinks are skipped.
func NewDispatcher(sinks []Sink, workers, queueSize int, timeout time.Duration, logger *slog.Logger) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	if timeout <= 0 {
		timeout = defaultDeliveryTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	active := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			active = append(active, s)
		}
	}
	return &Dispatcher{
		sinks:   active,
		workers: workers,
		timeout: timeout,
		logger:  logger,
		jobs:    make(chan model.Event, queueSize),
	}
}

// Notify enqueues event for delivery.
func (d *Dispatcher) Notify(event model.Event) {
	if len(d.sinks) == 0 {
		return
	}
	select {
	case d.jobs <- event:
	default:
		d.logger.Warn("notify queue full, event dropped",
			slog.String("event", string(event.Kind)),
			slog.String("order_id", event.OrderID),
			slog.String("user_id", event.UserID))
	}
}

// Start launches the delivery workers.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop cancels in-flight deliveries and waits for workers to exit.
// Events still queued are discarded.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
	if pending := len(d.jobs); pending > 0 {
		d.logger.Warn("notifier stopped with queued events", slog.Int("pending", pending))
	}
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-d.jobs:
			d.deliver(ctx, event)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, event model.Event) {
	for _, sink := range d.sinks {
		deliveryCtx, cancel := context.WithTimeout(ctx, d.timeout)
		err := sink.Deliver(deliveryCtx, event)
		cancel()
		if err != nil {
			d.logger.Warn("event delivery failed",
				slog.String("sink", sink.Name()),
				slog.String("event", string(event.Kind)),
				slog.String("order_id", event.OrderID),
				slog.String("user_id", event.UserID),
				slog.String("error", err.Error()))
		}
	}
}
