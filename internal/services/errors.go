package services

import (
	"errors"

	"shopmart/internal/repositories"
)

var (
	// ErrValidation marks requests rejected before any storage I/O happened.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials covers unknown emails and wrong passwords alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicate marks unique-constraint style conflicts (email, category name).
	ErrDuplicate = errors.New("already exists")

	ErrForbidden = errors.New("forbidden")
	ErrNotFound  = errors.New("not found")

	// ErrInsufficientStock is the storage sentinel re-exported so handlers
	// can match it without importing the repositories package.
	ErrInsufficientStock = repositories.ErrInsufficientStock
)
