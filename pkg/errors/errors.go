package errors

import "errors"

var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidID    = errors.New("invalid id format")
	ErrUnauthorized = errors.New("unauthorized")
	ErrDuplicate    = errors.New("resource already exists")
	ErrValidation   = errors.New("validation failed")
)
