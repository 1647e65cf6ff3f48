// Package usecase defines the interfaces and implementations for profile
// management use cases. Use cases orchestrate operations between repositories
// and domain services, including the lazy creation of default profiles.
package usecase

import (
	"context"

	"github.com/google/uuid"

	profileDomain "github.com/allisson/people/internal/profile/domain"
	userDomain "github.com/allisson/people/internal/user/domain"
)

// ProfileRepository defines the interface for Profile persistence operations.
type ProfileRepository interface {
	Create(ctx context.Context, profile profileDomain.Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (profileDomain.Profile, error)
	Update(ctx context.Context, profile profileDomain.Profile) error
}

// UserRepository defines the subset of user persistence needed to resolve
// profile owners.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (userDomain.User, error)
}

// ProfileUseCase defines the interface for profile management business logic.
type ProfileUseCase interface {
	// GetByUserID returns the user's profile, creating a default one on
	// first access.
	GetByUserID(ctx context.Context, userID uuid.UUID) (profileDomain.Profile, error)
	// Update applies a partial update to the user's profile, creating a
	// default one first when none exists.
	Update(ctx context.Context, userID uuid.UUID, data profileDomain.UpdateProfileData) (profileDomain.Profile, error)
	// EnsureProfile guarantees the user has a profile and returns it.
	EnsureProfile(ctx context.Context, userID uuid.UUID) (profileDomain.Profile, error)
	// RefreshGravatar re-derives the avatar URL from the user's current
	// email address.
	RefreshGravatar(ctx context.Context, userID uuid.UUID) (profileDomain.Profile, error)
}
