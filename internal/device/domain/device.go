// Package domain defines the sensor device domain entities and types.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/airmon/internal/errors"
)

// DeviceStatus is the liveness status of a sensor device.
type DeviceStatus string

const (
	// DeviceStatusConnected marks a device that authenticated recently.
	DeviceStatusConnected DeviceStatus = "connected"

	// DeviceStatusDisconnected is the initial status of a registered device.
	DeviceStatusDisconnected DeviceStatus = "disconnected"
)

// Device represents a registered air-quality sensor. APITokenHash holds
// the Argon2id hash of the possession token; the plaintext is shown once
// at registration and never stored.
type Device struct {
	ID           uuid.UUID
	HardwareID   string
	APITokenHash string
	Room         string
	Model        string
	UniversityID uuid.UUID
	Status       DeviceStatus
	LastSeenAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Domain-specific errors for device operations.
var (
	// ErrDeviceNotFound indicates the requested device does not exist.
	ErrDeviceNotFound = errors.Wrap(errors.ErrNotFound, "device not found")

	// ErrDeviceAlreadyExists indicates a device with the same hardware ID is already registered.
	ErrDeviceAlreadyExists = errors.Wrap(errors.ErrConflict, "device already exists")
)

// NormalizeHardwareID converts a MAC address to its canonical form:
// upper-case hex octets separated by colons.
func NormalizeHardwareID(hardwareID string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(hardwareID), "-", ":"))
}
