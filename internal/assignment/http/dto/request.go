// Package dto provides data transfer objects for the assignment HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/allisson/airmon/internal/validation"
)

// CreateAssignmentRequest represents the API request for creating a
// cleaning assignment. ReadingID is optional and links the assignment
// to the reading that triggered it.
type CreateAssignmentRequest struct {
	Room             string `json:"room"`
	AssignedToUserID string `json:"assigned_to_user_id"`
	ReadingID        string `json:"reading_id"`
	Description      string `json:"description"`
}

// Validate checks if the assignment creation request is valid.
func (r *CreateAssignmentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Room,
			validation.Required.Error("room is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("room must be between 1 and 255 characters"),
		),
		validation.Field(&r.AssignedToUserID,
			validation.Required.Error("assigned_to_user_id is required"),
			appValidation.UUID,
		),
		validation.Field(&r.ReadingID,
			appValidation.UUID,
		),
		validation.Field(&r.Description,
			validation.Required.Error("description is required"),
			appValidation.NotBlank,
		),
	)
}
