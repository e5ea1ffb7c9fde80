package order

import "errors"

var (
	ErrNotFound      = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrInvalidPhone  = errors.New("invalid phone number")
	ErrInvalidSide   = errors.New("side must be client or manager")
	ErrValidation    = errors.New("missing required order fields")
)
