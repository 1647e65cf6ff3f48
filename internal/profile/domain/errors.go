// Package domain defines the profile aggregate: the immutable Profile
// entity, its three-way optional update semantics, and profile-specific
// domain errors.
package domain

import (
	"github.com/allisson/people/internal/errors"
)

// Domain-specific errors for profile operations.
var (
	// ErrProfileNotFound indicates the requested profile does not exist.
	ErrProfileNotFound = errors.Wrap(errors.ErrNotFound, "profile not found")

	// ErrProfileAlreadyExists indicates a profile already exists for the user.
	// Raised by the persistence layer when the unique user_id constraint fires.
	ErrProfileAlreadyExists = errors.Wrap(errors.ErrConflict, "profile already exists")
)

// newValidationError builds a profile validation failure carrying the first
// violated rule's message.
func newValidationError(message string) error {
	return errors.Wrap(errors.ErrInvalidInput, "profile validation failed: "+message)
}

// newValidationErrorf builds a formatted profile validation failure.
func newValidationErrorf(format string, args ...any) error {
	return errors.Wrapf(errors.ErrInvalidInput, "profile validation failed: "+format, args...)
}
