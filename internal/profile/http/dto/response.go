// Package dto provides data transfer objects for the profile HTTP layer.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// ProfileResponse represents the API response for a profile.
type ProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Bio         string    `json:"bio"`
	Position    string    `json:"position"`
	Department  string    `json:"department"`
	LinkedinURL *string   `json:"linkedinUrl"`
	GravatarURL string    `json:"gravatarUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
