package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/panganku/internal/server/http/dto"
)

// PaymentHandler receives payment gateway webhooks.
type PaymentHandler struct {
	facade OrderFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade OrderFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// Notification handles POST /payment/notification.
// Duplicate or non-final notifications are acknowledged with 200 so the gateway stops retrying.
func (h *PaymentHandler) Notification(c *gin.Context) {
	var req dto.PaymentNotification
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	tr, err := h.facade.HandlePayment(c.Request.Context(), req.ToModel())
	if err != nil {
		writeError(c, err)
		return
	}
	if tr == nil {
		c.JSON(http.StatusOK, dto.PaymentResponse{Success: true, Message: "Notification acknowledged", OrderID: req.OrderID})
		return
	}
	c.JSON(http.StatusOK, dto.PaymentResponse{
		Success: true,
		Message: "Order status updated",
		OrderID: tr.Order.ID,
		Status:  string(tr.Order.Status),
	})
}
