package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polkiloo/panganku/internal/domain/model"
)

type recordingSink struct {
	name string
	err  error
	wait bool

	mu     sync.Mutex
	events []model.Event
	errs   []error
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) Deliver(ctx context.Context, event model.Event) error {
	if s.wait {
		<-ctx.Done()
		s.mu.Lock()
		s.errs = append(s.errs, ctx.Err())
		s.mu.Unlock()
		return ctx.Err()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return s.err
}

func (s *recordingSink) received() []model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Event(nil), s.events...)
}

func (s *recordingSink) deadlines() []error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]error(nil), s.errs...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func orderEvent(id string) model.Event {
	return model.Event{Kind: model.EventOrderUpdate, OrderID: id, UserID: "u1", Status: model.OrderStatusProcessing}
}

func TestNewDispatcherDefaults(t *testing.T) {
	d := NewDispatcher([]Sink{nil, &recordingSink{name: "relay"}}, 0, 0, 0, nil)
	assert.Equal(t, 1, d.workers)
	assert.Equal(t, 1, cap(d.jobs))
	assert.Equal(t, defaultDeliveryTimeout, d.timeout)
	assert.Len(t, d.sinks, 1)
}

func TestDispatcherDeliversToEverySink(t *testing.T) {
	relay := &recordingSink{name: "relay", err: errors.New("relay down")}
	kafka := &recordingSink{name: "kafka"}
	d := NewDispatcher([]Sink{relay, kafka}, 2, 8, time.Second, discardLogger())

	d.Start(context.Background())
	defer d.Stop()

	d.Notify(orderEvent("o1"))
	d.Notify(model.Event{Kind: model.EventNotificationNew, UserID: "u1"})

	assert.Eventually(t, func() bool {
		return len(relay.received()) == 2 && len(kafka.received()) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestDispatcherBoundsEachDelivery(t *testing.T) {
	slow := &recordingSink{name: "slow", wait: true}
	d := NewDispatcher([]Sink{slow}, 1, 4, 20*time.Millisecond, discardLogger())
	d.Start(context.Background())
	defer d.Stop()

	d.Notify(orderEvent("o1"))

	assert.Eventually(t, func() bool { return len(slow.deadlines()) == 1 }, time.Second, 5*time.Millisecond)
	assert.ErrorIs(t, slow.deadlines()[0], context.DeadlineExceeded)
}

func TestDispatcherDropsWhenQueueFull(t *testing.T) {
	sink := &recordingSink{name: "relay"}
	d := NewDispatcher([]Sink{sink}, 1, 1, time.Second, discardLogger())

	d.Notify(orderEvent("o1"))
	d.Notify(orderEvent("o2"))

	d.Start(context.Background())
	defer d.Stop()

	assert.Eventually(t, func() bool { return len(sink.received()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	got := sink.received()
	require.Len(t, got, 1)
	assert.Equal(t, "o1", got[0].OrderID)
}

func TestDispatcherWithoutSinksIgnoresEvents(t *testing.T) {
	d := NewDispatcher(nil, 1, 1, time.Second, discardLogger())
	d.Notify(orderEvent("o1"))
	d.Notify(orderEvent("o2"))
	assert.Zero(t, len(d.jobs))
}

func TestDispatcherStopIsIdempotent(t *testing.T) {
	d := NewDispatcher([]Sink{&recordingSink{name: "relay"}}, 2, 2, time.Second, discardLogger())
	d.Start(context.Background())
	d.Start(context.Background())
	d.Stop()
	d.Stop()
}
