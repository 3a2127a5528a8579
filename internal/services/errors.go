package services

import "errors"

// Sentinel errors mapped to HTTP status codes by the handlers.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
)
