package dto

// AddCartItemRequest puts a product into the cart.
type AddCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// SetCartItemRequest changes the quantity of a cart line. Zero removes it.
type SetCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required,gte=0"`
}

// CheckoutRequest selects the shipping address.
type CheckoutRequest struct {
	AddressID string `json:"addressId" validate:"required"`
}
