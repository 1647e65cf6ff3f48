package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the immutable user entity. All fields are validated at
// construction; mutation methods return a new instance and never touch the
// receiver.
type User struct {
	id        uuid.UUID
	name      DisplayName
	email     Email
	createdAt time.Time
	updatedAt time.Time
}

// UpdateUserData carries the optional fields of a user update. A nil field
// keeps the current value.
type UpdateUserData struct {
	Name  *string
	Email *string
}

// NewUser builds a user with freshly validated fields and both timestamps
// set to the current UTC time.
func NewUser(id, name, email string) (User, error) {
	now := time.Now().UTC()
	return buildUser(id, name, email, now, now)
}

// UserFromPersistence rebuilds a user from stored values, re-running all
// validation so corrupted rows cannot produce invalid entities.
func UserFromPersistence(id, name, email string, createdAt, updatedAt time.Time) (User, error) {
	return buildUser(id, name, email, createdAt, updatedAt)
}

func buildUser(id, name, email string, createdAt, updatedAt time.Time) (User, error) {
	userID, err := parseUserID(id)
	if err != nil {
		return User{}, err
	}

	displayName, err := NewDisplayName(name)
	if err != nil {
		return User{}, err
	}

	emailVO, err := NewEmail(email)
	if err != nil {
		return User{}, err
	}

	if createdAt.After(updatedAt) {
		return User{}, newValidationError("created date cannot be after updated date")
	}

	return User{
		id:        userID,
		name:      displayName,
		email:     emailVO,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// parseUserID validates the UUID-v4 shape of a user identifier.
func parseUserID(id string) (uuid.UUID, error) {
	if strings.TrimSpace(id) == "" {
		return uuid.Nil, newValidationError("user ID cannot be empty")
	}

	parsed, err := uuid.Parse(id)
	if err != nil || parsed.Version() != 4 || parsed.Variant() != uuid.RFC4122 {
		return uuid.Nil, newValidationErrorf("invalid UUID format: %s", id)
	}

	return parsed, nil
}

// ID returns the user identifier.
func (u User) ID() uuid.UUID {
	return u.id
}

// Name returns the display name value object.
func (u User) Name() DisplayName {
	return u.name
}

// Email returns the email value object.
func (u User) Email() Email {
	return u.email
}

// CreatedAt returns the creation timestamp.
func (u User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns the last update timestamp.
func (u User) UpdatedAt() time.Time {
	return u.updatedAt
}

// Update returns a copy with the provided fields replaced, the rest kept,
// and updatedAt refreshed. The receiver is unchanged even on error.
func (u User) Update(data UpdateUserData) (User, error) {
	name := u.name
	if data.Name != nil {
		newName, err := NewDisplayName(*data.Name)
		if err != nil {
			return User{}, err
		}
		name = newName
	}

	email := u.email
	if data.Email != nil {
		newEmail, err := NewEmail(*data.Email)
		if err != nil {
			return User{}, err
		}
		email = newEmail
	}

	return User{
		id:        u.id,
		name:      name,
		email:     email,
		createdAt: u.createdAt,
		updatedAt: time.Now().UTC(),
	}, nil
}

// UpdateName returns a copy with a new display name.
func (u User) UpdateName(name string) (User, error) {
	return u.Update(UpdateUserData{Name: &name})
}

// UpdateEmail returns a copy with a new email address.
func (u User) UpdateEmail(email string) (User, error) {
	return u.Update(UpdateUserData{Email: &email})
}

// Equals reports identity equality. Two users are the same entity when their
// IDs match, regardless of other fields.
func (u User) Equals(other User) bool {
	return u.id == other.id
}
