package services

import "errors"

// Sentinel errors mapped to HTTP statuses at the handler boundary.
var (
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("forbidden")
	ErrValidation          = errors.New("validation failed")
	ErrLimitReached        = errors.New("company user limit reached")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrDuplicate           = errors.New("already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)
