package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/panganku/internal/server/http/dto"
)

// CartHandler edits the cart of the caller.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Get handles GET /cart.
func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.facade.Cart(c.Request.Context(), CurrentPrincipal(c).UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(*cart))
}

// AddItem handles POST /cart/items.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	cart, err := h.facade.AddCartItem(c.Request.Context(), CurrentPrincipal(c).UserID, req.ProductID, req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(*cart))
}

// SetItem handles PATCH /cart/items/:itemId.
func (h *CartHandler) SetItem(c *gin.Context) {
	var req dto.SetCartItemRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	cart, err := h.facade.SetCartItem(c.Request.Context(), CurrentPrincipal(c).UserID, c.Param("itemId"), *req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(*cart))
}

// RemoveItem handles DELETE /cart/items/:itemId.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart, err := h.facade.RemoveCartItem(c.Request.Context(), CurrentPrincipal(c).UserID, c.Param("itemId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(*cart))
}

// Checkout handles POST /cart/checkout.
func (h *CartHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	order, err := h.facade.Checkout(c.Request.Context(), CurrentPrincipal(c).UserID, req.AddressID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(*order))
}
