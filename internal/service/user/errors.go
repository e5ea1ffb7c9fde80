package user

import "errors"

var (
	ErrNotFound     = errors.New("user not found")
	ErrInvalidPhone = errors.New("invalid phone number")
)
