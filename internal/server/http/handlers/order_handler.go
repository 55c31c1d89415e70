package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/panganku/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

type statusUpdatedResponse struct {
	Message string            `json:"message"`
	Order   dto.OrderResponse `json:"order"`
}

// AdminUpdateStatus handles PATCH /admin/order/:id.
func (h *OrderHandler) AdminUpdateStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	tr, err := h.facade.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, statusUpdatedResponse{Message: "Order status updated", Order: dto.NewOrderResponse(tr.Order)})
}

// UpdateOwnStatus handles PATCH /profile/order/:id.
func (h *OrderHandler) UpdateOwnStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	principal := CurrentPrincipal(c)
	tr, err := h.facade.UpdateOwnOrderStatus(c.Request.Context(), principal.UserID, c.Param("id"), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, statusUpdatedResponse{Message: "Order status updated", Order: dto.NewOrderResponse(tr.Order)})
}

// List handles GET /profile/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context(), CurrentPrincipal(c).UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderList(orders))
}

// Get handles GET /profile/order/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), CurrentPrincipal(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(*order))
}

// Status handles GET /orders/:id/status.
func (h *OrderHandler) Status(c *gin.Context) {
	snapshot, err := h.facade.OrderStatus(c.Request.Context(), CurrentPrincipal(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewStatusResponse(*snapshot))
}

// AdminList handles GET /admin/orders.
func (h *OrderHandler) AdminList(c *gin.Context) {
	orders, err := h.facade.AllOrders(c.Request.Context(), c.Query("status"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderList(orders))
}
