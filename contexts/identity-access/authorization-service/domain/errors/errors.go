package errors

import "errors"

var (
	ErrInvalidRequest      = errors.New("invalid request")
	ErrRoleNotFound        = errors.New("role not found")
	ErrRoleAlreadyAssigned = errors.New("role already assigned")
	ErrRoleNotAssigned     = errors.New("role not assigned")
	ErrForbidden           = errors.New("forbidden")
)
