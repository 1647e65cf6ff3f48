// Package domain defines the user aggregate: validated value objects,
// the immutable User entity, and user-specific domain errors.
package domain

import (
	"github.com/allisson/people/internal/errors"
)

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same email already exists.
	// Raised by the persistence layer when the unique email constraint fires.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")

	// ErrUserEmailTaken indicates the duplicate-email pre-check failed.
	// Maps to not found rather than conflict to preserve the public API contract.
	ErrUserEmailTaken = errors.Wrap(errors.ErrNotFound, "user with email already exists")
)

// newValidationError builds a user validation failure carrying the first
// violated rule's message.
func newValidationError(message string) error {
	return errors.Wrap(errors.ErrInvalidInput, "user validation failed: "+message)
}

// newValidationErrorf builds a formatted user validation failure.
func newValidationErrorf(format string, args ...any) error {
	return errors.Wrapf(errors.ErrInvalidInput, "user validation failed: "+format, args...)
}
