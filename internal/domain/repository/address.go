package repository

import (
	"context"

	"github.com/polkiloo/panganku/internal/domain/model"
)

// AddressRepository manages shipping addresses of a user.
type AddressRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.Address, error)
	Create(ctx context.Context, address model.Address) (*model.Address, error)
	Update(ctx context.Context, address model.Address) (*model.Address, error)
	Delete(ctx context.Context, userID, id string) error
}
