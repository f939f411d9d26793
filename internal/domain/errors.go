package domain

import "errors"

var (
	// Validation errors
	ErrEmptyText   = errors.New("text cannot be empty")
	ErrTextTooLong = errors.New("text exceeds 200 characters")

	// Business logic errors
	ErrNotFound = errors.New("todo not found")
)
