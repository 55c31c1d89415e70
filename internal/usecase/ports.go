package usecase

import (
	"context"

	"github.com/polkiloo/panganku/internal/domain/model"
)

// Notifier relays committed events to realtime clients. Notify must not block.
type Notifier interface {
	Notify(event model.Event)
}

// StatusCache keeps recently seen order statuses.
// Get returns nil without error on a miss.
type StatusCache interface {
	Get(ctx context.Context, orderID string) (*model.StatusSnapshot, error)
	Set(ctx context.Context, snapshot model.StatusSnapshot) error
}

// NopNotifier drops every event.
type NopNotifier struct{}

// Notify implements Notifier.
func (NopNotifier) Notify(model.Event) {}
