package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("conflict")

	// ErrInvalidStatus is returned for a status value outside the accepted set.
	ErrInvalidStatus = errors.New("invalid status value")
	// ErrInvalidTransition is returned when the order cannot move to the requested status.
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidSignature  = errors.New("invalid payment signature")
)
