package repository

import (
	"context"

	"github.com/polkiloo/panganku/internal/domain/model"
)

// ReviewRepository stores product reviews and admin replies.
type ReviewRepository interface {
	Create(ctx context.Context, review model.Review) (*model.Review, error)
	ListByProduct(ctx context.Context, productID string) ([]model.Review, error)
	// Reply stores the admin answer and the author notification in one transaction.
	Reply(ctx context.Context, reviewID, reply, message string) (*model.ReviewReply, error)
}
