package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/people/internal/errors"
)

func newTestUser(t *testing.T) User {
	t.Helper()

	user, err := NewUser(uuid.New().String(), "Jane Doe", "jane@example.com")
	require.NoError(t, err)
	return user
}

func TestNewUser(t *testing.T) {
	t.Run("builds a valid user with fresh timestamps", func(t *testing.T) {
		id := uuid.New().String()
		before := time.Now().UTC()

		user, err := NewUser(id, "Jane Doe", "Jane@Example.COM")
		require.NoError(t, err)

		assert.Equal(t, id, user.ID().String())
		assert.Equal(t, "Jane Doe", user.Name().Value())
		assert.Equal(t, "jane@example.com", user.Email().Value())
		assert.False(t, user.CreatedAt().Before(before))
		assert.Equal(t, user.CreatedAt(), user.UpdatedAt())
	})

	t.Run("rejects an empty ID", func(t *testing.T) {
		_, err := NewUser("  ", "Jane Doe", "jane@example.com")
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
		assert.Contains(t, err.Error(), "user ID cannot be empty")
	})

	t.Run("rejects non-v4 identifiers", func(t *testing.T) {
		for _, id := range []string{
			"not-a-uuid",
			"00000000-0000-0000-0000-000000000000",
			"a987fbc9-4bed-3078-cf07-9141ba07c9f3", // v3
		} {
			_, err := NewUser(id, "Jane Doe", "jane@example.com")
			assert.ErrorIs(t, err, errors.ErrInvalidInput, "id %q", id)
		}
	})

	t.Run("rejects an invalid name", func(t *testing.T) {
		_, err := NewUser(uuid.New().String(), "J", "jane@example.com")
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})

	t.Run("rejects an invalid email", func(t *testing.T) {
		_, err := NewUser(uuid.New().String(), "Jane Doe", "not-an-email")
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})
}

func TestUserFromPersistence(t *testing.T) {
	t.Run("rebuilds a user from stored values", func(t *testing.T) {
		id := uuid.New().String()
		createdAt := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
		updatedAt := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

		user, err := UserFromPersistence(id, "Jane Doe", "jane@example.com", createdAt, updatedAt)
		require.NoError(t, err)

		assert.Equal(t, createdAt, user.CreatedAt())
		assert.Equal(t, updatedAt, user.UpdatedAt())
	})

	t.Run("rejects createdAt after updatedAt", func(t *testing.T) {
		createdAt := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
		updatedAt := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

		_, err := UserFromPersistence(uuid.New().String(), "Jane Doe", "jane@example.com", createdAt, updatedAt)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "created date cannot be after updated date")
	})

	t.Run("re-validates corrupted rows", func(t *testing.T) {
		now := time.Now().UTC()

		_, err := UserFromPersistence(uuid.New().String(), "", "jane@example.com", now, now)
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})
}

func TestUser_Update(t *testing.T) {
	t.Run("replaces provided fields and refreshes updatedAt", func(t *testing.T) {
		user := newTestUser(t)
		name := "John Smith"
		email := "John.Smith@Example.com"

		updated, err := user.Update(UpdateUserData{Name: &name, Email: &email})
		require.NoError(t, err)

		assert.Equal(t, user.ID(), updated.ID())
		assert.Equal(t, "John Smith", updated.Name().Value())
		assert.Equal(t, "john.smith@example.com", updated.Email().Value())
		assert.Equal(t, user.CreatedAt(), updated.CreatedAt())
		assert.False(t, updated.UpdatedAt().Before(user.UpdatedAt()))
	})

	t.Run("keeps fields that are not provided", func(t *testing.T) {
		user := newTestUser(t)
		name := "John Smith"

		updated, err := user.Update(UpdateUserData{Name: &name})
		require.NoError(t, err)

		assert.Equal(t, "John Smith", updated.Name().Value())
		assert.Equal(t, user.Email(), updated.Email())
	})

	t.Run("does not mutate the receiver on error", func(t *testing.T) {
		user := newTestUser(t)
		bad := ""

		_, err := user.Update(UpdateUserData{Email: &bad})
		require.Error(t, err)
		assert.Equal(t, "jane@example.com", user.Email().Value())
	})
}

func TestUser_UpdateName(t *testing.T) {
	user := newTestUser(t)

	updated, err := user.UpdateName("John Smith")
	require.NoError(t, err)
	assert.Equal(t, "John Smith", updated.Name().Value())
	assert.Equal(t, user.Email(), updated.Email())
}

func TestUser_UpdateEmail(t *testing.T) {
	user := newTestUser(t)

	updated, err := user.UpdateEmail("new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email().Value())
	assert.Equal(t, user.Name(), updated.Name())
}

func TestUser_Equals(t *testing.T) {
	user := newTestUser(t)

	renamed, err := user.UpdateName("Someone Else")
	require.NoError(t, err)
	assert.True(t, user.Equals(renamed))

	other := newTestUser(t)
	assert.False(t, user.Equals(other))
}
