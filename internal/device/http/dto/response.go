// Package dto provides data transfer objects for the device HTTP layer.
package dto

import (
	"time"

	"github.com/allisson/airmon/internal/device/domain"
)

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
	UpdatedAt    time.Time  `json:"updated_at"`
}

// MapDeviceToResponse converts a domain device to an API response.
func MapDeviceToResponse(device *domain.Device) DeviceResponse {
	return DeviceResponse{
		ID:           device.ID.String(),
		HardwareID:   device.HardwareID,
		Room:         device.Room,
		Model:        device.Model,
		UniversityID: device.UniversityID.String(),
		Status:       string(device.Status),
		LastSeenAt:   device.LastSeenAt,
		CreatedAt:    device.CreatedAt,
		UpdatedAt:    device.UpdatedAt,
	}
}

// RegisterDeviceResponse carries the registered device and the plain
// possession token. The token appears here exactly once; only its hash
// is stored server-side.
type RegisterDeviceResponse struct {
	Device   DeviceResponse `json:"device"`
	APIToken string         `json:"api_token"`
}

// ListDevicesResponse represents a paginated list of devices in API responses.
type ListDevicesResponse struct {
	Data []DeviceResponse `json:"data"`
}

// MapDevicesToListResponse converts a slice of domain devices to a list response.
func MapDevicesToListResponse(devices []*domain.Device) ListDevicesResponse {
	data := make([]DeviceResponse, 0, len(devices))
	for _, device := range devices {
		data = append(data, MapDeviceToResponse(device))
	}

	return ListDevicesResponse{
		Data: data,
	}
}
