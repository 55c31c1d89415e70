package dto

import (
	"time"

	"github.com/polkiloo/panganku/internal/domain/model"
)

// Notification is the wire form of a notification, shared by the API and the relay.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	OrderID   *string   `json:"orderId"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewNotification converts a domain notification.
func NewNotification(n model.Notification) Notification {
	return Notification{
		ID:        n.ID,
		UserID:    n.UserID,
		OrderID:   n.OrderID,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

// NewNotificationList converts a slice of domain notifications.
func NewNotificationList(items []model.Notification) []Notification {
	out := make([]Notification, 0, len(items))
	for _, n := range items {
		out = append(out, NewNotification(n))
	}
	return out
}

// OrderNotice is posted to the relay /notify/order trigger.
type OrderNotice struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// ReplyNotice is posted to the relay /notify/reply trigger.
type ReplyNotice struct {
	UserID       string       `json:"userId"`
	Notification Notification `json:"notification"`
}
