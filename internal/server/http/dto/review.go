package dto

import (
	"time"

	"github.com/polkiloo/panganku/internal/domain/model"
)

// ReviewRequest rates a product.
type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

// ReplyRequest is the admin answer to a review.
type ReplyRequest struct {
	Reply string `json:"reply" validate:"required,max=2000"`
}

// ReviewResponse is the public view of a review.
type ReviewResponse struct {
	ID        string     `json:"id"`
	ProductID string     `json:"productId"`
	UserID    string     `json:"userId"`
	UserName  string     `json:"userName,omitempty"`
	Rating    int        `json:"rating"`
	Comment   string     `json:"comment"`
	Reply     *string    `json:"reply"`
	RepliedAt *time.Time `json:"repliedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// NewReviewResponse converts a domain review.
func NewReviewResponse(r model.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		ProductID: r.ProductID,
		UserID:    r.UserID,
		UserName:  r.UserName,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Reply:     r.Reply,
		RepliedAt: r.RepliedAt,
		CreatedAt: r.CreatedAt,
	}
}
