// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	profileDTO "github.com/allisson/people/internal/profile/http/dto"
	"github.com/allisson/people/internal/user/domain"
	"github.com/allisson/people/internal/user/usecase"
)

// ToUpdateUserData converts an UpdateUserRequest DTO to the domain update
// input.
func ToUpdateUserData(req UpdateUserRequest) domain.UpdateUserData {
	return domain.UpdateUserData{
		Name:  req.Name,
		Email: req.Email,
	}
}

// ToUserResponse converts a domain User to a UserResponse DTO.
func ToUserResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID(),
		Name:      user.Name().Value(),
		Email:     user.Email().Value(),
		CreatedAt: user.CreatedAt(),
		UpdatedAt: user.UpdatedAt(),
	}
}

// ToUserWithProfileResponse converts a use case result to the combined DTO.
func ToUserWithProfileResponse(result usecase.UserWithProfile) UserWithProfileResponse {
	profile := profileDTO.ToProfileResponse(result.Profile)
	return UserWithProfileResponse{
		UserResponse: ToUserResponse(result.User),
		Profile:      &profile,
	}
}

// ToUserWithProfileResponses converts a slice of use case results.
func ToUserWithProfileResponses(results []usecase.UserWithProfile) []UserWithProfileResponse {
	responses := make([]UserWithProfileResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, ToUserWithProfileResponse(result))
	}
	return responses
}
