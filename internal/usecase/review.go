package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/panganku/internal/domain/errors"
	"github.com/polkiloo/panganku/internal/domain/model"
	"github.com/polkiloo/panganku/internal/domain/repository"
)

// ReviewUseCase handles product reviews and admin replies.
type ReviewUseCase struct {
	reviews  repository.ReviewRepository
	products repository.ProductRepository
	notifier Notifier
}

// NewReviewUseCase constructs ReviewUseCase.
func NewReviewUseCase(reviews repository.ReviewRepository, products repository.ProductRepository, notifier Notifier) *ReviewUseCase {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &ReviewUseCase{reviews: reviews, products: products, notifier: notifier}
}

// Create stores a review of an existing product.
func (u *ReviewUseCase) Create(ctx context.Context, userID, productID string, rating int, comment string) (*model.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, domainErrors.ErrValidation
	}
	if _, err := u.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return u.reviews.Create(ctx, model.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
	})
}

// ListByProduct returns reviews of a product, newest first.
func (u *ReviewUseCase) ListByProduct(ctx context.Context, productID string) ([]model.Review, error) {
	return u.reviews.ListByProduct(ctx, productID)
}

// Reply stores an admin answer and pushes a notification to the review author.
func (u *ReviewUseCase) Reply(ctx context.Context, reviewID, reply string) (*model.ReviewReply, error) {
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return nil, domainErrors.ErrValidation
	}
	result, err := u.reviews.Reply(ctx, reviewID, reply, fmt.Sprintf("Admin membalas ulasan Anda: %q", reply))
	if err != nil {
		return nil, err
	}
	u.notifier.Notify(model.NotificationCreated(result.Notification))
	return result, nil
}
