// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	"time"

	"github.com/allisson/airmon/internal/user/domain"
)

// UserResponse represents the API response for a user. It excludes the
// password hash and provides a clean external representation of the
// user domain model.
type UserResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	UniversityID string    `json:"university_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MapUserToResponse converts a domain user to an API response.
func MapUserToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:           user.ID.String(),
		Name:         user.Name,
		Email:        user.Email,
		Role:         string(user.Role),
		UniversityID: user.UniversityID.String(),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}
