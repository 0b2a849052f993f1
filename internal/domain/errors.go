// Package domain defines the core catalog entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is the base error of every validation failure.
	// The specific validation errors below wrap it, so callers can match
	// the whole class with errors.Is(err, ErrValidation).
	ErrValidation = errors.New("validation failed")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = fmt.Errorf("%w: invalid email format", ErrValidation)

	// ErrInvalidRating is returned when a rating is outside the valid range.
	ErrInvalidRating = fmt.Errorf("%w: rating outside valid range", ErrValidation)

	// ErrNilBook is returned when a nil book is passed where a book is required.
	ErrNilBook = errors.New("book cannot be nil")
)
