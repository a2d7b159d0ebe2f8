package errors

import "errors"

var (
	ErrMissingCredential = errors.New("authorization credential missing")
	ErrInvalidCredential = errors.New("authorization credential invalid")
	ErrOwnershipMismatch = errors.New("declared email does not match authenticated identity")
	ErrInvalidRequest    = errors.New("invalid request")
)
