// Package dto provides data transfer objects for the profile HTTP layer.
package dto

import (
	"encoding/json"
	"strings"

	validation "github.com/jellydator/validation"

	appValidation "github.com/allisson/people/internal/validation"
)

// NullableString is a JSON field that distinguishes absent, null, and a
// string value. The zero value means the field was absent from the payload.
type NullableString struct {
	Set   bool
	Valid bool
	Value string
}

// UnmarshalJSON marks the field as present and records whether it carried a
// value or an explicit null.
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true

	if string(data) == "null" {
		n.Valid = false
		n.Value = ""
		return nil
	}

	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}

	n.Valid = true
	return nil
}

// UpdateProfileRequest represents the API request for a partial profile
// update. Absent fields keep their current values; linkedinUrl follows the
// three-way absent/null/value semantics.
type UpdateProfileRequest struct {
	Bio         *string        `json:"bio"`
	Position    *string        `json:"position"`
	Department  *string        `json:"department"`
	LinkedinURL NullableString `json:"linkedinUrl"`
}

// Validate validates the UpdateProfileRequest using the jellydator/validation
// library. Only fields present in the payload are checked.
func (r *UpdateProfileRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Bio,
			appValidation.NotBlank,
			validation.Length(1, 1000).Error("bio must be at most 1000 characters"),
		),
		validation.Field(&r.Position,
			appValidation.NotBlank,
			validation.Length(2, 100).Error("position must be between 2 and 100 characters"),
		),
		validation.Field(&r.Department,
			appValidation.NotBlank,
			validation.Length(2, 100).Error("department must be between 2 and 100 characters"),
		),
	)
	if err != nil {
		return appValidation.WrapValidationError(err)
	}

	// A blank value means "clear", so only non-blank values need the URL shape
	if r.LinkedinURL.Set && r.LinkedinURL.Valid && strings.TrimSpace(r.LinkedinURL.Value) != "" {
		err := validation.Validate(r.LinkedinURL.Value,
			appValidation.HTTPURL,
			validation.Length(1, 255).Error("linkedinUrl must be at most 255 characters"),
		)
		if err != nil {
			return appValidation.WrapValidationError(err)
		}
	}

	return nil
}
