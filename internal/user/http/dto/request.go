// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/airmon/internal/auth/domain"
	appValidation "github.com/allisson/airmon/internal/validation"
)

// RegisterUserRequest represents the API request for user registration
type RegisterUserRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	UniversityID string `json:"university_id"`
}

// Validate validates the RegisterUserRequest using the jellydator/validation library
func (r *RegisterUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
		),
		validation.Field(&r.Role,
			validation.Required.Error("role is required"),
			validation.In(
				string(authDomain.RoleAdmin),
				string(authDomain.RoleOperator),
				string(authDomain.RoleCleaner),
			).Error("role must be one of: admin, operator, cleaner"),
		),
		validation.Field(&r.UniversityID,
			validation.Required.Error("university_id is required"),
			appValidation.UUID,
		),
	)
}
