package dto

import "github.com/polkiloo/panganku/internal/domain/model"

// AddressRequest is the create/update payload of a shipping address.
type AddressRequest struct {
	Label      string `json:"label" validate:"max=50"`
	Recipient  string `json:"recipient" validate:"required"`
	Phone      string `json:"phone" validate:"required,max=20"`
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode" validate:"max=10"`
	IsDefault  bool   `json:"isDefault"`
}

// ToModel converts the request into an address of userID.
func (r AddressRequest) ToModel(userID, id string) model.Address {
	return model.Address{
		ID:         id,
		UserID:     userID,
		Label:      r.Label,
		Recipient:  r.Recipient,
		Phone:      r.Phone,
		Street:     r.Street,
		City:       r.City,
		Province:   r.Province,
		PostalCode: r.PostalCode,
		IsDefault:  r.IsDefault,
	}
}

// AddressResponse is the public view of an address.
type AddressResponse struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Recipient  string `json:"recipient"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
	IsDefault  bool   `json:"isDefault"`
}

// NewAddressResponse converts a domain address.
func NewAddressResponse(a model.Address) AddressResponse {
	return AddressResponse{
		ID:         a.ID,
		Label:      a.Label,
		Recipient:  a.Recipient,
		Phone:      a.Phone,
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		PostalCode: a.PostalCode,
		IsDefault:  a.IsDefault,
	}
}
