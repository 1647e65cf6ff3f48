// Package dto provides data transfer objects for the profile HTTP layer.
package dto

import (
	"github.com/allisson/people/internal/profile/domain"
)

// ToUpdateProfileData converts an UpdateProfileRequest DTO to the domain
// update input, translating the wire-level linkedinUrl presence into the
// three-way OptionalString.
func ToUpdateProfileData(req UpdateProfileRequest) domain.UpdateProfileData {
	data := domain.UpdateProfileData{
		Bio:        req.Bio,
		Position:   req.Position,
		Department: req.Department,
	}

	switch {
	case !req.LinkedinURL.Set:
		data.LinkedinURL = domain.KeepString()
	case !req.LinkedinURL.Valid:
		data.LinkedinURL = domain.ClearString()
	default:
		data.LinkedinURL = domain.ReplaceString(req.LinkedinURL.Value)
	}

	return data
}

// ToProfileResponse converts a domain Profile to a ProfileResponse DTO.
func ToProfileResponse(profile domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:          profile.ID(),
		UserID:      profile.UserID(),
		Bio:         profile.Bio(),
		Position:    profile.Position(),
		Department:  profile.Department(),
		LinkedinURL: profile.LinkedinURL(),
		GravatarURL: profile.GravatarURL(),
		CreatedAt:   profile.CreatedAt(),
		UpdatedAt:   profile.UpdatedAt(),
	}
}
