package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/panganku/internal/server/http/dto"
)

// ReviewHandler serves product reviews.
type ReviewHandler struct {
	facade ReviewFacade
}

// NewReviewHandler constructs ReviewHandler.
func NewReviewHandler(facade ReviewFacade) *ReviewHandler {
	return &ReviewHandler{facade: facade}
}

// List handles GET /products/:id/reviews.
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.facade.Reviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, dto.NewReviewResponse(r))
	}
	c.JSON(http.StatusOK, resp)
}

// Create handles POST /products/:id/reviews.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.ReviewRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	review, err := h.facade.CreateReview(c.Request.Context(), CurrentPrincipal(c).UserID, c.Param("id"), req.Rating, req.Comment)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewReviewResponse(*review))
}

// Reply handles POST /admin/reviews/:id/reply.
func (h *ReviewHandler) Reply(c *gin.Context) {
	var req dto.ReplyRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	result, err := h.facade.ReplyReview(c.Request.Context(), c.Param("id"), req.Reply)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewReviewResponse(result.Review))
}
