package model

import "time"

// Notification is an append-only message addressed to a user.
type Notification struct {
	ID        string
	UserID    string
	OrderID   *string
	Message   string
	Read      bool
	CreatedAt time.Time
}

// EventKind names a realtime event.
type EventKind string

const (
	EventOrderUpdate     EventKind = "order:update"
	EventNotificationNew EventKind = "notification:new"
)

// Event is handed to the best-effort notifier after a committed change.
type Event struct {
	Kind         EventKind
	OrderID      string
	UserID       string
	Status       OrderStatus
	Notification *Notification
}

// OrderUpdated builds an order:update event for a committed transition.
func OrderUpdated(t Transition) Event {
	n := t.Notification
	return Event{
		Kind:         EventOrderUpdate,
		OrderID:      t.Order.ID,
		UserID:       t.Order.UserID,
		Status:       t.Order.Status,
		Notification: &n,
	}
}

// NotificationCreated builds a notification:new event for the notification owner.
func NotificationCreated(n Notification) Event {
	return Event{Kind: EventNotificationNew, UserID: n.UserID, Notification: &n}
}
