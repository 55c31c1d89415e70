package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/panganku/internal/domain/model"
)

// StatusUpdateRequest carries a manual status change.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse is one order line.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// OrderResponse is the public view of an order or cart.
type OrderResponse struct {
	ID           string              `json:"id,omitempty"`
	UserID       string              `json:"userId"`
	Status       string              `json:"status"`
	Subtotal     decimal.Decimal     `json:"subtotal"`
	ShippingCost decimal.Decimal     `json:"shippingCost"`
	Total        decimal.Decimal     `json:"total"`
	AddressID    *string             `json:"addressId,omitempty"`
	Items        []OrderItemResponse `json:"items"`
	CreatedAt    *time.Time          `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time          `json:"updatedAt,omitempty"`
}

// StatusResponse answers a status lookup.
type StatusResponse struct {
	OrderID   string    `json:"orderId"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewOrderResponse converts a domain order.
func NewOrderResponse(o model.Order) OrderResponse {
	resp := OrderResponse{
		ID:           o.ID,
		UserID:       o.UserID,
		Status:       string(o.Status),
		Subtotal:     o.Subtotal(),
		ShippingCost: o.ShippingCost,
		Total:        o.Total,
		AddressID:    o.AddressID,
		Items:        make([]OrderItemResponse, 0, len(o.Items)),
	}
	if !o.CreatedAt.IsZero() {
		created, updated := o.CreatedAt, o.UpdatedAt
		resp.CreatedAt, resp.UpdatedAt = &created, &updated
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal(),
		})
	}
	return resp
}

// NewOrderList converts a slice of domain orders.
func NewOrderList(orders []model.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderResponse(o))
	}
	return out
}

// NewStatusResponse converts a status snapshot.
func NewStatusResponse(s model.StatusSnapshot) StatusResponse {
	return StatusResponse{OrderID: s.OrderID, Status: string(s.Status), UpdatedAt: s.UpdatedAt}
}
