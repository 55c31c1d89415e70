package repository

import (
	"context"

	"github.com/polkiloo/panganku/internal/domain/model"
)

// NotificationRepository stores user notifications.
type NotificationRepository interface {
	Create(ctx context.Context, userID, message string, orderID *string) (*model.Notification, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]model.Notification, error)
	MarkRead(ctx context.Context, userID, id string) error
}
