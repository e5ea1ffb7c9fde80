package ticket

import "errors"

var (
	ErrNotFound      = errors.New("ticket not found")
	ErrInvalidStatus = errors.New("invalid ticket status")
	ErrInvalidSide   = errors.New("side must be client or manager")
	ErrValidation    = errors.New("missing required ticket fields")
)
