package usecase

import (
	"context"

	"github.com/polkiloo/panganku/internal/domain/model"
	"github.com/polkiloo/panganku/internal/domain/repository"
)

// FeedLimit caps the notification feed.
const FeedLimit = 50

// NotificationUseCase exposes the notification feed of a user.
type NotificationUseCase struct {
	notifications repository.NotificationRepository
}

// NewNotificationUseCase constructs NotificationUseCase.
func NewNotificationUseCase(notifications repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications}
}

// List returns the newest notifications of a user.
func (u *NotificationUseCase) List(ctx context.Context, userID string) ([]model.Notification, error) {
	return u.notifications.ListByUser(ctx, userID, FeedLimit)
}

// MarkRead flags a notification of the user as read.
func (u *NotificationUseCase) MarkRead(ctx context.Context, userID, id string) error {
	return u.notifications.MarkRead(ctx, userID, id)
}
