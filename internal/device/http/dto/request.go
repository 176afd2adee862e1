// Package dto provides data transfer objects for the device HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/allisson/airmon/internal/validation"
)

// RegisterDeviceRequest represents the API request for device registration.
// UniversityID is optional; when omitted the device is registered in the
// caller's own university.
type RegisterDeviceRequest struct {
	HardwareID   string `json:"hardware_id"`
	Room         string `json:"room"`
	Model        string `json:"model"`
	UniversityID string `json:"university_id"`
}

// Validate checks if the device registration request is valid.
func (r *RegisterDeviceRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.HardwareID,
			validation.Required.Error("hardware_id is required"),
			appValidation.MACAddress,
		),
		validation.Field(&r.Room,
			validation.Required.Error("room is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("room must be between 1 and 255 characters"),
		),
		validation.Field(&r.Model,
			validation.Required.Error("model is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("model must be between 1 and 255 characters"),
		),
		validation.Field(&r.UniversityID,
			appValidation.UUID,
		),
	)
}
