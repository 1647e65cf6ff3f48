package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/people/internal/errors"
	profileDomain "github.com/allisson/people/internal/profile/domain"
	userDomain "github.com/allisson/people/internal/user/domain"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user userDomain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (userDomain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(userDomain.User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (userDomain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(userDomain.User), args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context) ([]userDomain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]userDomain.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user userDomain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockProfileManager struct {
	mock.Mock
}

func (m *mockProfileManager) EnsureProfile(ctx context.Context, userID uuid.UUID) (profileDomain.Profile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(profileDomain.Profile), args.Error(1)
}

func (m *mockProfileManager) RefreshGravatar(ctx context.Context, userID uuid.UUID) (profileDomain.Profile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(profileDomain.Profile), args.Error(1)
}

// fakeTxManager runs the callback directly without a real transaction.
type fakeTxManager struct{}

func (fakeTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestUser(t *testing.T) userDomain.User {
	t.Helper()

	user, err := userDomain.NewUser(uuid.New().String(), "Jane Doe", "jane@example.com")
	require.NoError(t, err)
	return user
}

func newTestProfile(t *testing.T, userID uuid.UUID) profileDomain.Profile {
	t.Helper()

	profile, err := profileDomain.NewProfile(profileDomain.NewProfileData{
		ID:          uuid.New().String(),
		UserID:      userID.String(),
		Bio:         "Backend engineer working on internal tooling.",
		Position:    "Software Engineer",
		Department:  "Engineering",
		GravatarURL: "https://www.gravatar.com/avatar/abc?d=identicon",
	})
	require.NoError(t, err)
	return profile
}

func TestUserUseCase_Create(t *testing.T) {
	t.Run("creates a user with a default profile", func(t *testing.T) {
		userRepo := &mockUserRepository{}
		profiles := &mockProfileManager{}
		useCase := NewUserUseCase(fakeTxManager{}, userRepo, profiles)

		userRepo.On("GetByEmail", mock.Anything, "jane@example.com").
			Return(userDomain.User{}, userDomain.ErrUserNotFound)
		userRepo.On("Create", mock.Anything, mock.AnythingOfType("domain.User")).Return(nil)
		profiles.On("EnsureProfile", mock.Anything, mock.AnythingOfType("uuid.UUID")).
			Return(newTestProfile(t, uuid.New()), nil)

		result, err := useCase.Create(context.Background(), "Jane Doe", "Jane@Example.COM")
		require.NoError(t, err)

		assert.Equal(t, "Jane Doe", result.User.Name().Value())
		assert.Equal(t, "jane@example.com", result.User.Email().Value())
		userRepo.AssertExpectations(t)
		profiles.AssertExpectations(t)
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		userRepo := &mockUserRepository{}
		profiles := &mockProfileManager{}
		useCase := NewUserUseCase(fakeTxManager{}, userRepo, profiles)

		existing := newTestUser(t)
		userRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(existing, nil)

		_, err := useCase.Create(context.Background(), "Jane Doe", "jane@example.com")
		assert.True(t, apperrors.Is(err, userDomain.ErrUserEmailTaken))
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("maps a concurrent duplicate insert to the same error", func(t *testing.T) {
		userRepo := &mockUserRepository{}
		profiles := &mockProfileManager{}
		useCase := NewUserUseCase(fakeTxManager{}, userRepo, profiles)

		userRepo.On("GetByEmail", mock.Anything, "jane@example.com").
			Return(userDomain.User{}, userDomain.ErrUserNotFound)
		userRepo.On("Create", mock.Anything, mock.AnythingOfType("domain.User")).
			Return(userDomain.ErrUserAlreadyExists)

		_, err := useCase.Create(context.Background(), "Jane Doe", "jane@example.com")
		assert.True(t, apperrors.Is(err, userDomain.ErrUserEmailTaken))
	})

	t.Run("rejects invalid input before touching the repository", func(t *testing.T) {
		userRepo := &mockUserRepository{}
		profiles := &mockProfileManager{}
		useCase := NewUserUseCase(fakeTxManager{}, userRepo, profiles)

		_, err := useCase.Create(context.Background(), "J", "jane@example.com")
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		userRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})
}

func TestUserUseCase_List(t *testing.T) {
	userRepo := &mockUserRepository{}
	profiles := &mockProfileManager{}
	useCase := NewUserUseCase(fakeTxManager{}, userRepo, profiles)

	user := newTestUser(t)
	userRepo.On("List", mock.Anything).Return([]userDomain.User{user}, nil)

	users, err := useCase.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.True(t, user.Equals(users[0]))
}

func TestUserUseCase_ListWithProfiles(t *testing.T) {
	t.Run("pairs every user with a profile", func(t *testing.T) {
		userRepo := &mockUserRepository{}
		profiles := &mockProfileManager{}
		useCase := NewUserUseCase(fakeTxManager{}, userRepo, profiles)

		first := newTestUser(t)
		second, err := userDomain.NewUser(uuid.New().String(), "John Smith", "john@example.com")
		require.NoError(t, err)

		userRepo.On("List", mock.Anything).Return([]userDomain.User{first, second}, nil)
		profiles.On("EnsureProfile", mock.Anything, first.ID()).Return(newTestProfile(t, first.ID()), nil)
		profiles.On("EnsureProfile", mock.Anything, second.ID()).Return(newTestProfile(t, second.ID()), nil)

		result, err := useCase.ListWithProfiles(context.Background())
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, first.ID(), result[0].Profile.UserID())
		assert.Equal(t, second.ID(), result[1].Profile.UserID())
	})

	t.Run("propagates profile failures", func(t *testing.T) {
		userRepo := &mockUserRepository{}
		profiles := &mockProfileManager{}
		useCase := NewUserUseCase(fakeTxManager{}, userRepo, profiles)

		user := newTestUser(t)
		boom := errors.New("boom")

		userRepo.On("List", mock.Anything).Return([]userDomain.User{user}, nil)
		profiles.On("EnsureProfile", mock.Anything, user.ID()).Return(profileDomain.Profile{}, boom)

		_, err := useCase.ListWithProfiles(context.Background())
		assert.ErrorIs(t, err, boom)
	})
}

func TestUserUseCase_GetWithProfile(t *testing.T) {
	t.Run("returns the user with their profile", func(t *testing.T) {
		userRepo := &mockUserRepository{}
		profiles := &mockProfileManager{}
		useCase := NewUserUseCase(fakeTxManager{}, userRepo, profiles)

		user := newTestUser(t)
		profile := newTestProfile(t, user.ID())

		userRepo.On("GetByID", mock.Anything, user.ID()).Return(user, nil)
		profiles.On("EnsureProfile", mock.Anything, user.ID()).Return(profile, nil)

		result, err := useCase.GetWithProfile(context.Background(), user.ID())
		require.NoError(t, err)
		assert.True(t, user.Equals(result.User))
		assert.True(t, profile.Equals(result.Profile))
	})

	t.Run("maps a missing user to not found", func(t *testing.T) {
		userRepo := &mockUserRepository{}
		profiles := &mockProfileManager{}
		useCase := NewUserUseCase(fakeTxManager{}, userRepo, profiles)

		id := uuid.New()
		userRepo.On("GetByID", mock.Anything, id).Return(userDomain.User{}, userDomain.ErrUserNotFound)

		_, err := useCase.GetWithProfile(context.Background(), id)
		assert.True(t, apperrors.Is(err, userDomain.ErrUserNotFound))
		profiles.AssertNotCalled(t, "EnsureProfile", mock.Anything, mock.Anything)
	})
}

func TestUserUseCase_Update(t *testing.T) {
	t.Run("updates the name without touching the avatar", func(t *testing.T) {
		userRepo := &mockUserRepository{}
		profiles := &mockProfileManager{}
		useCase := NewUserUseCase(fakeTxManager{}, userRepo, profiles)

		user := newTestUser(t)
		profile := newTestProfile(t, user.ID())

		userRepo.On("GetByID", mock.Anything, user.ID()).Return(user, nil)
		userRepo.On("Update", mock.Anything, mock.AnythingOfType("domain.User")).Return(nil)
		profiles.On("EnsureProfile", mock.Anything, user.ID()).Return(profile, nil)

		name := "John Smith"
		result, err := useCase.Update(context.Background(), user.ID(), userDomain.UpdateUserData{Name: &name})
		require.NoError(t, err)

		assert.Equal(t, "John Smith", result.User.Name().Value())
		profiles.AssertNotCalled(t, "RefreshGravatar", mock.Anything, mock.Anything)
	})

	t.Run("refreshes the avatar when the email changes", func(t *testing.T) {
		userRepo := &mockUserRepository{}
		profiles := &mockProfileManager{}
		useCase := NewUserUseCase(fakeTxManager{}, userRepo, profiles)

		user := newTestUser(t)
		profile := newTestProfile(t, user.ID())

		userRepo.On("GetByID", mock.Anything, user.ID()).Return(user, nil)
		userRepo.On("GetByEmail", mock.Anything, "new@example.com").
			Return(userDomain.User{}, userDomain.ErrUserNotFound)
		userRepo.On("Update", mock.Anything, mock.AnythingOfType("domain.User")).Return(nil)
		profiles.On("RefreshGravatar", mock.Anything, user.ID()).Return(profile, nil)

		email := "new@example.com"
		result, err := useCase.Update(context.Background(), user.ID(), userDomain.UpdateUserData{Email: &email})
		require.NoError(t, err)

		assert.Equal(t, "new@example.com", result.User.Email().Value())
		profiles.AssertExpectations(t)
		profiles.AssertNotCalled(t, "EnsureProfile", mock.Anything, mock.Anything)
	})

	t.Run("treats a case-only email change as unchanged", func(t *testing.T) {
		userRepo := &mockUserRepository{}
		profiles := &mockProfileManager{}
		useCase := NewUserUseCase(fakeTxManager{}, userRepo, profiles)

		user := newTestUser(t)
		profile := newTestProfile(t, user.ID())

		userRepo.On("GetByID", mock.Anything, user.ID()).Return(user, nil)
		userRepo.On("Update", mock.Anything, mock.AnythingOfType("domain.User")).Return(nil)
		profiles.On("EnsureProfile", mock.Anything, user.ID()).Return(profile, nil)

		email := "JANE@example.com"
		_, err := useCase.Update(context.Background(), user.ID(), userDomain.UpdateUserData{Email: &email})
		require.NoError(t, err)

		userRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
		profiles.AssertNotCalled(t, "RefreshGravatar", mock.Anything, mock.Anything)
	})

	t.Run("rejects an email owned by another user", func(t *testing.T) {
		userRepo := &mockUserRepository{}
		profiles := &mockProfileManager{}
		useCase := NewUserUseCase(fakeTxManager{}, userRepo, profiles)

		user := newTestUser(t)
		other, err := userDomain.NewUser(uuid.New().String(), "John Smith", "john@example.com")
		require.NoError(t, err)

		userRepo.On("GetByID", mock.Anything, user.ID()).Return(user, nil)
		userRepo.On("GetByEmail", mock.Anything, "john@example.com").Return(other, nil)

		email := "john@example.com"
		_, err = useCase.Update(context.Background(), user.ID(), userDomain.UpdateUserData{Email: &email})
		assert.True(t, apperrors.Is(err, userDomain.ErrUserEmailTaken))
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("maps a missing user to not found", func(t *testing.T) {
		userRepo := &mockUserRepository{}
		profiles := &mockProfileManager{}
		useCase := NewUserUseCase(fakeTxManager{}, userRepo, profiles)

		id := uuid.New()
		userRepo.On("GetByID", mock.Anything, id).Return(userDomain.User{}, userDomain.ErrUserNotFound)

		name := "John Smith"
		_, err := useCase.Update(context.Background(), id, userDomain.UpdateUserData{Name: &name})
		assert.True(t, apperrors.Is(err, userDomain.ErrUserNotFound))
	})
}

func TestUserUseCase_Delete(t *testing.T) {
	t.Run("deletes the user", func(t *testing.T) {
		userRepo := &mockUserRepository{}
		profiles := &mockProfileManager{}
		useCase := NewUserUseCase(fakeTxManager{}, userRepo, profiles)

		id := uuid.New()
		userRepo.On("Delete", mock.Anything, id).Return(nil)

		assert.NoError(t, useCase.Delete(context.Background(), id))
		userRepo.AssertExpectations(t)
	})

	t.Run("maps a missing user to not found", func(t *testing.T) {
		userRepo := &mockUserRepository{}
		profiles := &mockProfileManager{}
		useCase := NewUserUseCase(fakeTxManager{}, userRepo, profiles)

		id := uuid.New()
		userRepo.On("Delete", mock.Anything, id).Return(userDomain.ErrUserNotFound)

		err := useCase.Delete(context.Background(), id)
		assert.True(t, apperrors.Is(err, userDomain.ErrUserNotFound))
	})
}
