// Package usecase defines the interfaces and implementations for user
// management use cases. Use cases orchestrate user persistence together with
// the profile lifecycle that every user carries.
package usecase

import (
	"context"

	"github.com/google/uuid"

	profileDomain "github.com/allisson/people/internal/profile/domain"
	userDomain "github.com/allisson/people/internal/user/domain"
)

// UserRepository defines the interface for User persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user userDomain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (userDomain.User, error)
	GetByEmail(ctx context.Context, email string) (userDomain.User, error)
	List(ctx context.Context) ([]userDomain.User, error)
	Update(ctx context.Context, user userDomain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProfileManager defines the profile operations the user use case depends
// on. Satisfied by the profile use case.
type ProfileManager interface {
	EnsureProfile(ctx context.Context, userID uuid.UUID) (profileDomain.Profile, error)
	RefreshGravatar(ctx context.Context, userID uuid.UUID) (profileDomain.Profile, error)
}

// UserWithProfile pairs a user with their profile for responses that embed
// both.
type UserWithProfile struct {
	User    userDomain.User
	Profile profileDomain.Profile
}

// UserUseCase defines the interface for user management business logic.
type UserUseCase interface {
	// Create registers a new user and their default profile.
	Create(ctx context.Context, name, email string) (UserWithProfile, error)
	// List returns all users without profiles.
	List(ctx context.Context) ([]userDomain.User, error)
	// ListWithProfiles returns all users, lazily creating missing profiles.
	ListWithProfiles(ctx context.Context) ([]UserWithProfile, error)
	// Get returns a single user without the profile.
	Get(ctx context.Context, id uuid.UUID) (userDomain.User, error)
	// GetWithProfile returns a single user with their profile, lazily
	// creating it when missing.
	GetWithProfile(ctx context.Context, id uuid.UUID) (UserWithProfile, error)
	// Update applies a partial update, refreshing the profile avatar when
	// the email changes.
	Update(ctx context.Context, id uuid.UUID, data userDomain.UpdateUserData) (UserWithProfile, error)
	// Delete removes a user and, through the database cascade, their
	// profile.
	Delete(ctx context.Context, id uuid.UUID) error
}
