package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/airmon/internal/auth/domain"
	authService "github.com/allisson/airmon/internal/auth/service"
	deviceDomain "github.com/allisson/airmon/internal/device/domain"
	appValidation "github.com/allisson/airmon/internal/validation"
)

// deviceAuthUseCase implements DeviceAuthUseCase for sensor devices.
type deviceAuthUseCase struct {
	deviceRepo      DeviceRepository
	passwordService authService.PasswordService
	tokenService    authService.TokenService
	logger          *slog.Logger
	now             func() time.Time
}

// DeviceAuthUseCaseOption customizes a deviceAuthUseCase
type DeviceAuthUseCaseOption func(*deviceAuthUseCase)

// WithClock overrides the time source, used by tests
func WithClock(now func() time.Time) DeviceAuthUseCaseOption {
	return func(uc *deviceAuthUseCase) {
		uc.now = now
	}
}

// NewDeviceAuthUseCase creates a new DeviceAuthUseCase with the provided dependencies.
func NewDeviceAuthUseCase(
	deviceRepo DeviceRepository,
	passwordService authService.PasswordService,
	tokenService authService.TokenService,
	logger *slog.Logger,
	opts ...DeviceAuthUseCaseOption,
) DeviceAuthUseCase {
	uc := &deviceAuthUseCase{
		deviceRepo:      deviceRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		logger:          logger,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// validateDeviceLoginInput validates the device credentials using jellydator/validation
func (d *deviceAuthUseCase) validateDeviceLoginInput(input DeviceLoginInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.HardwareID,
			validation.Required.Error("hardware_id is required"),
			appValidation.MACAddress,
		),
		validation.Field(&input.APIToken,
			validation.Required.Error("api_token is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Authenticate verifies both device factors and issues a device token.
//
// Unknown hardware identifiers and wrong possession tokens both surface as
// a 401 to the caller; the distinction lives in internal logs only. The
// device is marked connected exactly once per successful authentication.
func (d *deviceAuthUseCase) Authenticate(ctx context.Context, input DeviceLoginInput) (*DeviceLoginOutput, error) {
	if err := d.validateDeviceLoginInput(input); err != nil {
		return nil, err
	}

	hardwareID := deviceDomain.NormalizeHardwareID(input.HardwareID)

	device, err := d.deviceRepo.GetByHardwareID(ctx, hardwareID)
	if err != nil {
		if errors.Is(err, deviceDomain.ErrDeviceNotFound) {
			if d.logger != nil {
				d.logger.Info("device login rejected: unknown hardware id",
					slog.String("hardware_id", hardwareID))
			}
			return nil, authDomain.ErrDeviceNotFound
		}
		return nil, err
	}

	if !d.passwordService.VerifyPassword(input.APIToken, device.APITokenHash) {
		if d.logger != nil {
			d.logger.Info("device login rejected: wrong possession token",
				slog.String("device_id", device.ID.String()))
		}
		return nil, authDomain.ErrCredentialInvalid
	}

	if err := d.deviceRepo.MarkConnected(ctx, device.ID, d.now()); err != nil {
		return nil, err
	}

	token, err := d.tokenService.IssueDeviceToken(device.ID, device.HardwareID)
	if err != nil {
		return nil, err
	}

	return &DeviceLoginOutput{
		Token:  token,
		Device: device,
	}, nil
}
