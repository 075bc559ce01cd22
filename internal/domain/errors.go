package domain

import "errors"

// Domain-specific errors for business logic validation.
var (
	// Valuation errors
	ErrValuationNotFound = errors.New("valuation not found")
	ErrInvalidKind       = errors.New("invalid valuation kind")
	ErrInvalidID         = errors.New("invalid valuation id")

	// Validation errors
	ErrValidation = errors.New("validation failed")

	// Infrastructure errors
	ErrDatabaseUnavailable = errors.New("database unavailable")
)
