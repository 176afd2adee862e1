// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	authDomain "github.com/allisson/airmon/internal/auth/domain"
	deviceDomain "github.com/allisson/airmon/internal/device/domain"
	userDomain "github.com/allisson/airmon/internal/user/domain"
)

// UserResponse represents a user in API responses (excludes the password hash).
type UserResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	UniversityID string    `json:"university_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// MapUserToResponse converts a domain user to an API response.
func MapUserToResponse(user *userDomain.User) UserResponse {
	return UserResponse{
		ID:           user.ID.String(),
		Name:         user.Name,
		Email:        user.Email,
		Role:         string(user.Role),
		UniversityID: user.UniversityID.String(),
		CreatedAt:    user.CreatedAt,
	}
}

// LoginResponse contains the issued session token and the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RefreshResponse contains the replacement session token.
type RefreshResponse struct {
	Token string `json:"token"`
}

// VerifyResponse describes the principal carried by a valid session token.
type VerifyResponse struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	UniversityID string `json:"university_id"`
}

// MapPrincipalToVerifyResponse converts a principal to an API response.
func MapPrincipalToVerifyResponse(principal *authDomain.Principal) VerifyResponse {
	return VerifyResponse{
		UserID:       principal.UserID.String(),
		Email:        principal.Email,
		Role:         string(principal.Role),
		UniversityID: principal.UniversityID.String(),
	}
}

// DeviceResponse represents a device in API responses (excludes the token hash).
type DeviceResponse struct {
	ID           string     `json:"id"`
	HardwareID   string     `json:"hardware_id"`
	Room         string     `json:"room"`
	Model        string     `json:"model"`
	UniversityID string     `json:"university_id"`
	Status       string     `json:"status"`
	LastSeenAt   *time.Time `json:"last_seen_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// MapDeviceToResponse converts a domain device to an API response.
func MapDeviceToResponse(device *deviceDomain.Device) DeviceResponse {
	return DeviceResponse{
		ID:           device.ID.String(),
		HardwareID:   device.HardwareID,
		Room:         device.Room,
		Model:        device.Model,
		UniversityID: device.UniversityID.String(),
		Status:       string(device.Status),
		LastSeenAt:   device.LastSeenAt,
		CreatedAt:    device.CreatedAt,
	}
}

// DeviceLoginResponse contains the issued device token and the device record.
type DeviceLoginResponse struct {
	Token  string         `json:"token"`
	Device DeviceResponse `json:"device"`
}
