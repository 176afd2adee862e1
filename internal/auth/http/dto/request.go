// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/airmon/internal/validation"
)

// LoginRequest contains the user credentials for session creation.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks if the login request is valid.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required,
			customValidation.Email,
		),
		validation.Field(&r.Password,
			validation.Required,
		),
	)
}

// DeviceLoginRequest contains the device authentication factors.
type DeviceLoginRequest struct {
	HardwareID string `json:"hardware_id"`
	APIToken   string `json:"api_token"`
}

// Validate checks if the device login request is valid.
func (r *DeviceLoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.HardwareID,
			validation.Required,
			customValidation.MACAddress,
		),
		validation.Field(&r.APIToken,
			validation.Required,
		),
	)
}
