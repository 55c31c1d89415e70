package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/panganku/internal/domain/errors"
	"github.com/polkiloo/panganku/internal/domain/model"
	"github.com/polkiloo/panganku/internal/domain/repository"
)

// AddressUseCase manages shipping addresses.
type AddressUseCase struct {
	addresses repository.AddressRepository
}

// NewAddressUseCase constructs AddressUseCase.
func NewAddressUseCase(addresses repository.AddressRepository) *AddressUseCase {
	return &AddressUseCase{addresses: addresses}
}

// List returns addresses of a user, default first.
func (u *AddressUseCase) List(ctx context.Context, userID string) ([]model.Address, error) {
	return u.addresses.ListByUser(ctx, userID)
}

// Create stores a new address for the user.
func (u *AddressUseCase) Create(ctx context.Context, a model.Address) (*model.Address, error) {
	if err := validateAddress(&a); err != nil {
		return nil, err
	}
	return u.addresses.Create(ctx, a)
}

// Update replaces an address owned by the user.
func (u *AddressUseCase) Update(ctx context.Context, a model.Address) (*model.Address, error) {
	if a.ID == "" {
		return nil, domainErrors.ErrValidation
	}
	if err := validateAddress(&a); err != nil {
		return nil, err
	}
	return u.addresses.Update(ctx, a)
}

// Delete removes an address owned by the user.
func (u *AddressUseCase) Delete(ctx context.Context, userID, id string) error {
	return u.addresses.Delete(ctx, userID, id)
}

func validateAddress(a *model.Address) error {
	for _, field := range []*string{&a.Label, &a.Recipient, &a.Phone, &a.Street, &a.City, &a.Province, &a.PostalCode} {
		*field = strings.TrimSpace(*field)
	}
	if a.UserID == "" || a.Recipient == "" || a.Phone == "" || a.Street == "" || a.City == "" {
		return domainErrors.ErrValidation
	}
	return nil
}
