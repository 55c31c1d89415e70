package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/panganku/internal/server/http/dto"
)

// ProfileHandler serves addresses and the notification feed.
type ProfileHandler struct {
	facade ProfileFacade
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(facade ProfileFacade) *ProfileHandler {
	return &ProfileHandler{facade: facade}
}

// Addresses handles GET /profile/addresses.
func (h *ProfileHandler) Addresses(c *gin.Context) {
	addresses, err := h.facade.Addresses(c.Request.Context(), CurrentPrincipal(c).UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	resp := make([]dto.AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		resp = append(resp, dto.NewAddressResponse(a))
	}
	c.JSON(http.StatusOK, resp)
}

// CreateAddress handles POST /profile/addresses.
func (h *ProfileHandler) CreateAddress(c *gin.Context) {
	var req dto.AddressRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	address, err := h.facade.CreateAddress(c.Request.Context(), req.ToModel(CurrentPrincipal(c).UserID, ""))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAddressResponse(*address))
}

// UpdateAddress handles PUT /profile/addresses/:id.
func (h *ProfileHandler) UpdateAddress(c *gin.Context) {
	var req dto.AddressRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	address, err := h.facade.UpdateAddress(c.Request.Context(), req.ToModel(CurrentPrincipal(c).UserID, c.Param("id")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAddressResponse(*address))
}

// DeleteAddress handles DELETE /profile/addresses/:id.
func (h *ProfileHandler) DeleteAddress(c *gin.Context) {
	if err := h.facade.DeleteAddress(c.Request.Context(), CurrentPrincipal(c).UserID, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Notifications handles GET /notifications.
func (h *ProfileHandler) Notifications(c *gin.Context) {
	items, err := h.facade.Notifications(c.Request.Context(), CurrentPrincipal(c).UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewNotificationList(items))
}

// MarkRead handles PATCH /notifications/:id/read.
func (h *ProfileHandler) MarkRead(c *gin.Context) {
	if err := h.facade.MarkNotificationRead(c.Request.Context(), CurrentPrincipal(c).UserID, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
