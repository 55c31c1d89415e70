package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/polkiloo/panganku/internal/domain/errors"
	"github.com/polkiloo/panganku/internal/domain/model"
	"github.com/polkiloo/panganku/internal/domain/repository"
)

// CartUseCase manages the PENDING order that acts as the shopping cart.
type CartUseCase struct {
	carts  repository.CartRepository
	policy model.ShippingPolicy
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository, policy model.ShippingPolicy) *CartUseCase {
	return &CartUseCase{carts: carts, policy: policy}
}

// Get returns the cart of a user. A user without a cart gets an empty one.
func (u *CartUseCase) Get(ctx context.Context, userID string) (*model.Order, error) {
	cart, err := u.carts.GetPending(ctx, userID)
	if errors.Is(err, domainErrors.ErrNotFound) {
		return &model.Order{UserID: userID, Status: model.OrderStatusPending}, nil
	}
	return cart, err
}

// AddItem puts quantity units of a product into the cart.
func (u *CartUseCase) AddItem(ctx context.Context, userID, productID string, quantity int) (*model.Order, error) {
	if strings.TrimSpace(productID) == "" || quantity < 1 {
		return nil, domainErrors.ErrValidation
	}
	return u.carts.AddItem(ctx, userID, productID, quantity, u.policy)
}

// SetItemQuantity changes a cart line. Zero removes the line.
func (u *CartUseCase) SetItemQuantity(ctx context.Context, userID, itemID string, quantity int) (*model.Order, error) {
	if quantity < 0 {
		return nil, domainErrors.ErrValidation
	}
	return u.carts.SetItemQuantity(ctx, userID, itemID, quantity, u.policy)
}

// RemoveItem deletes a cart line.
func (u *CartUseCase) RemoveItem(ctx context.Context, userID, itemID string) (*model.Order, error) {
	return u.carts.RemoveItem(ctx, userID, itemID, u.policy)
}

// Checkout attaches the shipping address and locks in totals. The order stays PENDING
// until the payment gateway settles it.
func (u *CartUseCase) Checkout(ctx context.Context, userID, addressID string) (*model.Order, error) {
	if strings.TrimSpace(addressID) == "" {
		return nil, domainErrors.ErrValidation
	}
	return u.carts.Checkout(ctx, userID, addressID, u.policy)
}
