package domain

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OptionalString is a three-way optional update field. The zero value keeps
// the current value, ClearString clears it to null, and ReplaceString
// replaces it.
type OptionalString struct {
	Set   bool
	Value *string
}

// KeepString leaves the field unchanged.
func KeepString() OptionalString {
	return OptionalString{}
}

// ClearString sets the field to null.
func ClearString() OptionalString {
	return OptionalString{Set: true}
}

// ReplaceString sets the field to the given value.
func ReplaceString(value string) OptionalString {
	return OptionalString{Set: true, Value: &value}
}

// Profile is the immutable profile entity, linked one-to-one to a user.
// All fields are validated at construction; mutation methods return a new
// instance and never touch the receiver.
type Profile struct {
	id          uuid.UUID
	userID      uuid.UUID
	bio         string
	position    string
	department  string
	linkedinURL *string
	gravatarURL string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewProfileData carries the fields needed to build a profile.
type NewProfileData struct {
	ID          string
	UserID      string
	Bio         string
	Position    string
	Department  string
	LinkedinURL *string
	GravatarURL string
}

// UpdateProfileData carries the optional fields of a profile update. Nil
// pointer fields keep the current value; LinkedinURL follows the three-way
// OptionalString semantics.
type UpdateProfileData struct {
	Bio         *string
	Position    *string
	Department  *string
	LinkedinURL OptionalString
	GravatarURL *string
}

// NewProfile builds a profile with freshly validated fields and both
// timestamps set to the current UTC time.
func NewProfile(data NewProfileData) (Profile, error) {
	now := time.Now().UTC()
	return buildProfile(data, now, now)
}

// ProfileFromPersistence rebuilds a profile from stored values, re-running
// all validation so corrupted rows cannot produce invalid entities.
func ProfileFromPersistence(data NewProfileData, createdAt, updatedAt time.Time) (Profile, error) {
	return buildProfile(data, createdAt, updatedAt)
}

func buildProfile(data NewProfileData, createdAt, updatedAt time.Time) (Profile, error) {
	id, err := parseProfileUUID(data.ID, "profile ID")
	if err != nil {
		return Profile{}, err
	}

	userID, err := parseProfileUUID(data.UserID, "user ID")
	if err != nil {
		return Profile{}, err
	}

	if strings.TrimSpace(data.Bio) == "" {
		return Profile{}, newValidationError("bio cannot be empty")
	}

	if strings.TrimSpace(data.Position) == "" {
		return Profile{}, newValidationError("position cannot be empty")
	}

	if strings.TrimSpace(data.Department) == "" {
		return Profile{}, newValidationError("department cannot be empty")
	}

	if strings.TrimSpace(data.GravatarURL) == "" {
		return Profile{}, newValidationError("gravatar URL cannot be empty")
	}

	linkedinURL := normalizeLinkedinURL(data.LinkedinURL)
	if linkedinURL != nil && !isHTTPURL(*linkedinURL) {
		return Profile{}, newValidationError("linkedin URL must be a valid URL")
	}

	if createdAt.After(updatedAt) {
		return Profile{}, newValidationError("created date cannot be after updated date")
	}

	return Profile{
		id:          id,
		userID:      userID,
		bio:         data.Bio,
		position:    data.Position,
		department:  data.Department,
		linkedinURL: linkedinURL,
		gravatarURL: data.GravatarURL,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// parseProfileUUID validates the UUID-v4 shape of an identifier.
func parseProfileUUID(id, field string) (uuid.UUID, error) {
	if strings.TrimSpace(id) == "" {
		return uuid.Nil, newValidationErrorf("%s cannot be empty", field)
	}

	parsed, err := uuid.Parse(id)
	if err != nil || parsed.Version() != 4 || parsed.Variant() != uuid.RFC4122 {
		return uuid.Nil, newValidationErrorf("invalid UUID format for %s: %s", field, id)
	}

	return parsed, nil
}

// normalizeLinkedinURL maps empty or whitespace-only values to nil so a
// blank submission clears the field.
func normalizeLinkedinURL(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

func isHTTPURL(value string) bool {
	parsed, err := url.Parse(value)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// ID returns the profile identifier.
func (p Profile) ID() uuid.UUID {
	return p.id
}

// UserID returns the owning user identifier.
func (p Profile) UserID() uuid.UUID {
	return p.userID
}

// Bio returns the biography text.
func (p Profile) Bio() string {
	return p.bio
}

// Position returns the job position.
func (p Profile) Position() string {
	return p.position
}

// Department returns the department name.
func (p Profile) Department() string {
	return p.department
}

// LinkedinURL returns a copy of the optional LinkedIn URL, nil when unset.
func (p Profile) LinkedinURL() *string {
	if p.linkedinURL == nil {
		return nil
	}
	value := *p.linkedinURL
	return &value
}

// GravatarURL returns the derived avatar URL.
func (p Profile) GravatarURL() string {
	return p.gravatarURL
}

// CreatedAt returns the creation timestamp.
func (p Profile) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the last update timestamp.
func (p Profile) UpdatedAt() time.Time {
	return p.updatedAt
}

// Update returns a copy with the provided fields replaced, the rest kept,
// and updatedAt refreshed. The receiver is unchanged even on error.
func (p Profile) Update(data UpdateProfileData) (Profile, error) {
	next := NewProfileData{
		ID:          p.id.String(),
		UserID:      p.userID.String(),
		Bio:         p.bio,
		Position:    p.position,
		Department:  p.department,
		LinkedinURL: p.linkedinURL,
		GravatarURL: p.gravatarURL,
	}

	if data.Bio != nil {
		next.Bio = *data.Bio
	}
	if data.Position != nil {
		next.Position = *data.Position
	}
	if data.Department != nil {
		next.Department = *data.Department
	}
	if data.LinkedinURL.Set {
		next.LinkedinURL = data.LinkedinURL.Value
	}
	if data.GravatarURL != nil {
		next.GravatarURL = *data.GravatarURL
	}

	return buildProfile(next, p.createdAt, time.Now().UTC())
}

// Equals reports identity equality. Two profiles are the same entity when
// their IDs match, regardless of other fields.
func (p Profile) Equals(other Profile) bool {
	return p.id == other.id
}
