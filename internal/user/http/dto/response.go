// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	"time"

	"github.com/google/uuid"

	profileDTO "github.com/allisson/people/internal/profile/http/dto"
)

// UserResponse represents the API response for a user without the profile.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserWithProfileResponse represents the API response for a user with the
// nested profile.
type UserWithProfileResponse struct {
	UserResponse
	Profile *profileDTO.ProfileResponse `json:"profile"`
}
