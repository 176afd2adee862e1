// Package usecase implements the device business logic and orchestrates device domain operations.
package usecase

import (
	"context"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	authService "github.com/allisson/airmon/internal/auth/service"
	"github.com/allisson/airmon/internal/device/domain"
	appValidation "github.com/allisson/airmon/internal/validation"
)

// RegisterDeviceInput contains the input data for device registration
type RegisterDeviceInput struct {
	HardwareID   string `json:"hardware_id"`
	Room         string `json:"room"`
	Model        string `json:"model"`
	UniversityID string `json:"university_id"`
}

// RegisterDeviceOutput carries the registered device plus the plain
// possession token. The token is returned exactly once; only its hash
// is persisted.
type RegisterDeviceOutput struct {
	Device   *domain.Device
	APIToken string
}

// UseCase defines the interface for device business logic operations
type UseCase interface {
	RegisterDevice(ctx context.Context, input RegisterDeviceInput) (*RegisterDeviceOutput, error)
	GetDeviceByID(ctx context.Context, id uuid.UUID) (*domain.Device, error)
	ListDevices(ctx context.Context, universityID *uuid.UUID, offset, limit int) ([]*domain.Device, error)
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}

// DeviceRepository interface defines device repository operations
type DeviceRepository interface {
	Create(ctx context.Context, device *domain.Device) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Device, error)
	GetByHardwareID(ctx context.Context, hardwareID string) (*domain.Device, error)
	List(ctx context.Context, universityID *uuid.UUID, offset, limit int) ([]*domain.Device, error)
	MarkConnected(ctx context.Context, id uuid.UUID, seenAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// DeviceUseCase handles device-related business logic
type DeviceUseCase struct {
	deviceRepo      DeviceRepository
	passwordService authService.PasswordService
}

// NewDeviceUseCase creates a new DeviceUseCase
func NewDeviceUseCase(deviceRepo DeviceRepository, passwordService authService.PasswordService) *DeviceUseCase {
	return &DeviceUseCase{
		deviceRepo:      deviceRepo,
		passwordService: passwordService,
	}
}

// validateRegisterDeviceInput validates the registration input using jellydator/validation
func (uc *DeviceUseCase) validateRegisterDeviceInput(input RegisterDeviceInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.HardwareID,
			validation.Required.Error("hardware_id is required"),
			appValidation.MACAddress,
		),
		validation.Field(&input.Room,
			validation.Required.Error("room is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("room must be between 1 and 255 characters"),
		),
		validation.Field(&input.Model,
			validation.Required.Error("model is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("model must be between 1 and 255 characters"),
		),
		validation.Field(&input.UniversityID,
			validation.Required.Error("university_id is required"),
			validation.By(func(value interface{}) error {
				s, _ := value.(string)
				if _, err := uuid.Parse(s); err != nil {
					return validation.NewError("validation_uuid", "must be a valid UUID")
				}
				return nil
			}),
		),
	)
	return appValidation.WrapValidationError(err)
}

// RegisterDevice registers a new sensor device and returns the plain
// possession token alongside the stored record.
func (uc *DeviceUseCase) RegisterDevice(ctx context.Context, input RegisterDeviceInput) (*RegisterDeviceOutput, error) {
	// Validate input
	if err := uc.validateRegisterDeviceInput(input); err != nil {
		return nil, err
	}

	plainToken, hashedToken, err := uc.passwordService.GeneratePossessionToken()
	if err != nil {
		return nil, err
	}

	device := &domain.Device{
		ID:           uuid.Must(uuid.NewV7()),
		HardwareID:   domain.NormalizeHardwareID(input.HardwareID),
		APITokenHash: hashedToken,
		Room:         strings.TrimSpace(input.Room),
		Model:        strings.TrimSpace(input.Model),
		UniversityID: uuid.MustParse(input.UniversityID),
		Status:       domain.DeviceStatusDisconnected,
	}

	// Create device - repository will return domain errors
	if err := uc.deviceRepo.Create(ctx, device); err != nil {
		return nil, err
	}

	return &RegisterDeviceOutput{
		Device:   device,
		APIToken: plainToken,
	}, nil
}

// GetDeviceByID retrieves a device by ID
func (uc *DeviceUseCase) GetDeviceByID(ctx context.Context, id uuid.UUID) (*domain.Device, error) {
	return uc.deviceRepo.GetByID(ctx, id)
}

// ListDevices retrieves devices, optionally scoped to a university
func (uc *DeviceUseCase) ListDevices(
	ctx context.Context,
	universityID *uuid.UUID,
	offset, limit int,
) ([]*domain.Device, error) {
	return uc.deviceRepo.List(ctx, universityID, offset, limit)
}

// DeleteDevice removes a device registration
func (uc *DeviceUseCase) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	return uc.deviceRepo.Delete(ctx, id)
}
