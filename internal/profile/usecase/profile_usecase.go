package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/people/internal/database"
	profileDomain "github.com/allisson/people/internal/profile/domain"
	"github.com/allisson/people/internal/profile/service"
	userDomain "github.com/allisson/people/internal/user/domain"
)

// Placeholder content for profiles created on first access.
const (
	defaultBio        = "Add a short bio to share more about yourself."
	defaultPosition   = "Not specified"
	defaultDepartment = "Not specified"
)

// profileUseCase implements the ProfileUseCase interface.
type profileUseCase struct {
	txManager   database.TxManager
	profileRepo ProfileRepository
	userRepo    UserRepository
}

// NewProfileUseCase creates a new ProfileUseCase.
func NewProfileUseCase(
	txManager database.TxManager,
	profileRepo ProfileRepository,
	userRepo UserRepository,
) ProfileUseCase {
	return &profileUseCase{
		txManager:   txManager,
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// GetByUserID returns the user's profile, creating a default one on first
// access.
func (p *profileUseCase) GetByUserID(ctx context.Context, userID uuid.UUID) (profileDomain.Profile, error) {
	return p.EnsureProfile(ctx, userID)
}

// EnsureProfile guarantees the user has a profile and returns it. The owning
// user must exist.
func (p *profileUseCase) EnsureProfile(ctx context.Context, userID uuid.UUID) (profileDomain.Profile, error) {
	user, err := p.userRepo.GetByID(ctx, userID)
	if err != nil {
		return profileDomain.Profile{}, err
	}

	profile, err := p.profileRepo.GetByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, profileDomain.ErrProfileNotFound) {
		return profileDomain.Profile{}, err
	}

	return p.createDefaultProfile(ctx, user)
}

// Update applies a partial update to the user's profile, creating a default
// one first when none exists. The whole operation runs in a transaction so a
// lazily created profile and its update land together.
func (p *profileUseCase) Update(
	ctx context.Context,
	userID uuid.UUID,
	data profileDomain.UpdateProfileData,
) (profileDomain.Profile, error) {
	var updated profileDomain.Profile

	err := p.txManager.WithTx(ctx, func(txCtx context.Context) error {
		profile, err := p.EnsureProfile(txCtx, userID)
		if err != nil {
			return err
		}

		updated, err = profile.Update(data)
		if err != nil {
			return err
		}

		return p.profileRepo.Update(txCtx, updated)
	})
	if err != nil {
		return profileDomain.Profile{}, err
	}

	return updated, nil
}

// RefreshGravatar re-derives the avatar URL from the user's current email
// address. Called after a user changes their email.
func (p *profileUseCase) RefreshGravatar(ctx context.Context, userID uuid.UUID) (profileDomain.Profile, error) {
	var updated profileDomain.Profile

	err := p.txManager.WithTx(ctx, func(txCtx context.Context) error {
		user, err := p.userRepo.GetByID(txCtx, userID)
		if err != nil {
			return err
		}

		profile, err := p.profileRepo.GetByUserID(txCtx, userID)
		if err != nil {
			// A default profile derives its avatar from the current email
			if errors.Is(err, profileDomain.ErrProfileNotFound) {
				updated, err = p.createDefaultProfile(txCtx, user)
				return err
			}
			return err
		}

		gravatarURL := service.GravatarURL(user.Email().Value())
		updated, err = profile.Update(profileDomain.UpdateProfileData{GravatarURL: &gravatarURL})
		if err != nil {
			return err
		}

		return p.profileRepo.Update(txCtx, updated)
	})
	if err != nil {
		return profileDomain.Profile{}, err
	}

	return updated, nil
}

// createDefaultProfile builds and persists the placeholder profile for a
// user. A concurrent creation loses the race gracefully and returns the
// stored row.
func (p *profileUseCase) createDefaultProfile(ctx context.Context, user userDomain.User) (profileDomain.Profile, error) {
	profile, err := profileDomain.NewProfile(profileDomain.NewProfileData{
		ID:          uuid.New().String(),
		UserID:      user.ID().String(),
		Bio:         defaultBio,
		Position:    defaultPosition,
		Department:  defaultDepartment,
		GravatarURL: service.GravatarURL(user.Email().Value()),
	})
	if err != nil {
		return profileDomain.Profile{}, err
	}

	if err := p.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, profileDomain.ErrProfileAlreadyExists) {
			return p.profileRepo.GetByUserID(ctx, user.ID())
		}
		return profileDomain.Profile{}, err
	}

	return profile, nil
}
