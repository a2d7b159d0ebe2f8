package errors

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrOrderNotFound    = errors.New("order not found")
	ErrStoreTimeout     = errors.New("order store timed out")
	ErrStoreUnavailable = errors.New("order store unavailable")
)
