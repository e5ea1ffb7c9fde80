package chat

import "errors"

var (
	ErrThreadNotFound    = errors.New("chat thread not found")
	ErrInvalidThreadType = errors.New("thread type must be order or ticket")
	ErrInvalidSender     = errors.New("sender must be client or manager")
	ErrEmptyMessage      = errors.New("message needs either text or a file")
	ErrMixedPayload      = errors.New("message cannot carry both text and a file")
	ErrDiscussionClosed  = errors.New("discussion is closed for this order")
)
