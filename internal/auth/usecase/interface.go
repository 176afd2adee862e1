// Package usecase implements business logic orchestration for authentication operations.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/airmon/internal/auth/domain"
	deviceDomain "github.com/allisson/airmon/internal/device/domain"
	userDomain "github.com/allisson/airmon/internal/user/domain"
)

// UserRepository defines the user operations the login path needs
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*userDomain.User, error)
}

// DeviceRepository defines the device operations the device login path needs
type DeviceRepository interface {
	GetByHardwareID(ctx context.Context, hardwareID string) (*deviceDomain.Device, error)
	MarkConnected(ctx context.Context, id uuid.UUID, seenAt time.Time) error
}

// LoginInput contains user credentials
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginOutput carries the issued session token and the authenticated user
type LoginOutput struct {
	Token string
	User  *userDomain.User
}

// DeviceLoginInput contains the device authentication factors: the hardware
// identifier and the possession token issued at registration
type DeviceLoginInput struct {
	HardwareID string `json:"hardware_id"`
	APIToken   string `json:"api_token"`
}

// DeviceLoginOutput carries the issued device token and the device record
type DeviceLoginOutput struct {
	Token  string
	Device *deviceDomain.Device
}

// AuthUseCase defines the user session operations
type AuthUseCase interface {
	// Login verifies the credentials and issues a user session token.
	// Unknown emails and wrong passwords fail identically.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// RefreshSession validates a user token and issues a replacement with
	// fresh timestamps.
	RefreshSession(ctx context.Context, token string) (string, error)

	// Verify validates a user token and returns the principal it carries.
	Verify(ctx context.Context, token string) (*authDomain.Principal, error)
}

// DeviceAuthUseCase defines the device session operations
type DeviceAuthUseCase interface {
	// Authenticate verifies the hardware identifier and possession token,
	// marks the device connected, and issues a device token.
	Authenticate(ctx context.Context, input DeviceLoginInput) (*DeviceLoginOutput, error)
}
