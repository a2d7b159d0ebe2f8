package errors

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrToolNotFound   = errors.New("tool not found")
)
