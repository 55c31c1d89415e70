package repository

import (
	"context"

	"github.com/polkiloo/panganku/internal/domain/model"
)

// DecideFunc inspects the locked order and returns the change to apply.
// A nil change leaves the order untouched.
type DecideFunc func(order model.Order) (*model.StatusChange, error)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*model.Order, error)
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
	List(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	// TransitionStatus locks the order, asks decide for a change and applies the status,
	// the stock effect and the notification row in one transaction. It returns nil when
	// decide chose not to change anything.
	TransitionStatus(ctx context.Context, orderID string, decide DecideFunc) (*model.Transition, error)
}

// CartRepository edits the single PENDING order of a user.
type CartRepository interface {
	GetPending(ctx context.Context, userID string) (*model.Order, error)
	AddItem(ctx context.Context, userID, productID string, quantity int, policy model.ShippingPolicy) (*model.Order, error)
	SetItemQuantity(ctx context.Context, userID, itemID string, quantity int, policy model.ShippingPolicy) (*model.Order, error)
	RemoveItem(ctx context.Context, userID, itemID string, policy model.ShippingPolicy) (*model.Order, error)
	Checkout(ctx context.Context, userID, addressID string, policy model.ShippingPolicy) (*model.Order, error)
}
