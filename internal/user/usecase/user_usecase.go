package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/people/internal/database"
	profileDomain "github.com/allisson/people/internal/profile/domain"
	userDomain "github.com/allisson/people/internal/user/domain"
)

// userUseCase implements the UserUseCase interface.
type userUseCase struct {
	txManager database.TxManager
	userRepo  UserRepository
	profiles  ProfileManager
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	profiles ProfileManager,
) UserUseCase {
	return &userUseCase{
		txManager: txManager,
		userRepo:  userRepo,
		profiles:  profiles,
	}
}

// Create registers a new user and their default profile. The user row and
// the profile land in the same transaction.
func (u *userUseCase) Create(ctx context.Context, name, email string) (UserWithProfile, error) {
	user, err := userDomain.NewUser(uuid.New().String(), name, email)
	if err != nil {
		return UserWithProfile{}, err
	}

	if err := u.checkEmailAvailable(ctx, user.Email().Value()); err != nil {
		return UserWithProfile{}, err
	}

	var result UserWithProfile
	err = u.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.Create(txCtx, user); err != nil {
			// The unique constraint backstops the pre-check under concurrency
			if errors.Is(err, userDomain.ErrUserAlreadyExists) {
				return userDomain.ErrUserEmailTaken
			}
			return err
		}

		profile, err := u.profiles.EnsureProfile(txCtx, user.ID())
		if err != nil {
			return err
		}

		result = UserWithProfile{User: user, Profile: profile}
		return nil
	})
	if err != nil {
		return UserWithProfile{}, err
	}

	return result, nil
}

// List returns all users without profiles.
func (u *userUseCase) List(ctx context.Context) ([]userDomain.User, error) {
	return u.userRepo.List(ctx)
}

// ListWithProfiles returns all users with their profiles, lazily creating
// the missing ones.
func (u *userUseCase) ListWithProfiles(ctx context.Context) ([]UserWithProfile, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]UserWithProfile, 0, len(users))
	for _, user := range users {
		profile, err := u.profiles.EnsureProfile(ctx, user.ID())
		if err != nil {
			return nil, err
		}
		result = append(result, UserWithProfile{User: user, Profile: profile})
	}

	return result, nil
}

// Get returns a single user without the profile.
func (u *userUseCase) Get(ctx context.Context, id uuid.UUID) (userDomain.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// GetWithProfile returns a single user with their profile, lazily creating
// it when missing.
func (u *userUseCase) GetWithProfile(ctx context.Context, id uuid.UUID) (UserWithProfile, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return UserWithProfile{}, err
	}

	profile, err := u.profiles.EnsureProfile(ctx, id)
	if err != nil {
		return UserWithProfile{}, err
	}

	return UserWithProfile{User: user, Profile: profile}, nil
}

// Update applies a partial update. When the email changes, the profile
// avatar is re-derived inside the same transaction.
func (u *userUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	data userDomain.UpdateUserData,
) (UserWithProfile, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return UserWithProfile{}, err
	}

	updated, err := user.Update(data)
	if err != nil {
		return UserWithProfile{}, err
	}

	emailChanged := !updated.Email().Equals(user.Email())
	if emailChanged {
		if err := u.checkEmailAvailable(ctx, updated.Email().Value()); err != nil {
			return UserWithProfile{}, err
		}
	}

	var result UserWithProfile
	err = u.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.Update(txCtx, updated); err != nil {
			if errors.Is(err, userDomain.ErrUserAlreadyExists) {
				return userDomain.ErrUserEmailTaken
			}
			return err
		}

		var profile profileDomain.Profile
		var err error
		if emailChanged {
			profile, err = u.profiles.RefreshGravatar(txCtx, id)
		} else {
			profile, err = u.profiles.EnsureProfile(txCtx, id)
		}
		if err != nil {
			return err
		}

		result = UserWithProfile{User: updated, Profile: profile}
		return nil
	})
	if err != nil {
		return UserWithProfile{}, err
	}

	return result, nil
}

// Delete removes a user. The profile row cascades at the database level.
func (u *userUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.userRepo.Delete(ctx, id)
}

// checkEmailAvailable fails with ErrUserEmailTaken when another user already
// owns the address.
func (u *userUseCase) checkEmailAvailable(ctx context.Context, email string) error {
	_, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return userDomain.ErrUserEmailTaken
	}
	if !errors.Is(err, userDomain.ErrUserNotFound) {
		return err
	}
	return nil
}
