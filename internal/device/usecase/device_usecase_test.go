package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authService "github.com/allisson/airmon/internal/auth/service"
	"github.com/allisson/airmon/internal/device/domain"

	apperrors "github.com/allisson/airmon/internal/errors"
)

// MockDeviceRepository is a mock implementation of DeviceRepository
type MockDeviceRepository struct {
	mock.Mock
}

func (m *MockDeviceRepository) Create(ctx context.Context, device *domain.Device) error {
	args := m.Called(ctx, device)
	return args.Error(0)
}

func (m *MockDeviceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Device, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Device), args.Error(1)
}

func (m *MockDeviceRepository) GetByHardwareID(ctx context.Context, hardwareID string) (*domain.Device, error) {
	args := m.Called(ctx, hardwareID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Device), args.Error(1)
}

func (m *MockDeviceRepository) List(
	ctx context.Context,
	universityID *uuid.UUID,
	offset, limit int,
) ([]*domain.Device, error) {
	args := m.Called(ctx, universityID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Device), args.Error(1)
}

func (m *MockDeviceRepository) MarkConnected(ctx context.Context, id uuid.UUID, seenAt time.Time) error {
	args := m.Called(ctx, id, seenAt)
	return args.Error(0)
}

func (m *MockDeviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validRegisterDeviceInput() RegisterDeviceInput {
	return RegisterDeviceInput{
		HardwareID:   "aa:bb:cc:dd:ee:ff",
		Room:         "Library 2F",
		Model:        "AQ-900",
		UniversityID: uuid.Must(uuid.NewV7()).String(),
	}
}

func TestDeviceUseCase_RegisterDevice_Success(t *testing.T) {
	deviceRepo := &MockDeviceRepository{}
	useCase := NewDeviceUseCase(deviceRepo, authService.NewPasswordService())

	ctx := context.Background()
	input := validRegisterDeviceInput()

	deviceRepo.On("Create", ctx, mock.AnythingOfType("*domain.Device")).Return(nil)

	output, err := useCase.RegisterDevice(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", output.Device.HardwareID)
	assert.Equal(t, input.Room, output.Device.Room)
	assert.Equal(t, input.Model, output.Device.Model)
	assert.Equal(t, input.UniversityID, output.Device.UniversityID.String())
	assert.Equal(t, domain.DeviceStatusDisconnected, output.Device.Status)
	assert.Nil(t, output.Device.LastSeenAt)

	// Plain token is returned once; only the hash is stored.
	assert.NotEmpty(t, output.APIToken)
	assert.NotEmpty(t, output.Device.APITokenHash)
	assert.NotEqual(t, output.APIToken, output.Device.APITokenHash)

	deviceRepo.AssertExpectations(t)
}

func TestDeviceUseCase_RegisterDevice_NormalizesHardwareID(t *testing.T) {
	deviceRepo := &MockDeviceRepository{}
	useCase := NewDeviceUseCase(deviceRepo, authService.NewPasswordService())

	ctx := context.Background()
	input := validRegisterDeviceInput()
	input.HardwareID = " aa-bb-cc-dd-ee-ff "

	deviceRepo.On("Create", ctx, mock.AnythingOfType("*domain.Device")).Return(nil)

	output, err := useCase.RegisterDevice(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", output.Device.HardwareID)
}

func TestDeviceUseCase_RegisterDevice_ValidationErrors(t *testing.T) {
	deviceRepo := &MockDeviceRepository{}
	useCase := NewDeviceUseCase(deviceRepo, authService.NewPasswordService())

	tests := []struct {
		name   string
		mutate func(input *RegisterDeviceInput)
	}{
		{
			name:   "missing hardware id",
			mutate: func(input *RegisterDeviceInput) { input.HardwareID = "" },
		},
		{
			name:   "invalid mac address",
			mutate: func(input *RegisterDeviceInput) { input.HardwareID = "not-a-mac" },
		},
		{
			name:   "mac address with wrong octet count",
			mutate: func(input *RegisterDeviceInput) { input.HardwareID = "aa:bb:cc:dd:ee" },
		},
		{
			name:   "missing room",
			mutate: func(input *RegisterDeviceInput) { input.Room = "" },
		},
		{
			name:   "missing model",
			mutate: func(input *RegisterDeviceInput) { input.Model = "" },
		},
		{
			name:   "invalid university id",
			mutate: func(input *RegisterDeviceInput) { input.UniversityID = "not-a-uuid" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRegisterDeviceInput()
			tt.mutate(&input)

			output, err := useCase.RegisterDevice(context.Background(), input)

			assert.Nil(t, output)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		})
	}

	deviceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeviceUseCase_RegisterDevice_DuplicateHardwareID(t *testing.T) {
	deviceRepo := &MockDeviceRepository{}
	useCase := NewDeviceUseCase(deviceRepo, authService.NewPasswordService())

	ctx := context.Background()
	input := validRegisterDeviceInput()

	deviceRepo.On("Create", ctx, mock.AnythingOfType("*domain.Device")).Return(domain.ErrDeviceAlreadyExists)

	output, err := useCase.RegisterDevice(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domain.ErrDeviceAlreadyExists)

	deviceRepo.AssertExpectations(t)
}

func TestDeviceUseCase_GetDeviceByID(t *testing.T) {
	deviceRepo := &MockDeviceRepository{}
	useCase := NewDeviceUseCase(deviceRepo, authService.NewPasswordService())

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deviceID := uuid.Must(uuid.NewV7())
		expectedDevice := &domain.Device{
			ID:         deviceID,
			HardwareID: "AA:BB:CC:DD:EE:FF",
		}

		deviceRepo.On("GetByID", ctx, deviceID).Return(expectedDevice, nil).Once()

		device, err := useCase.GetDeviceByID(ctx, deviceID)

		require.NoError(t, err)
		assert.Equal(t, expectedDevice.ID, device.ID)
	})

	t.Run("not found", func(t *testing.T) {
		missingID := uuid.Must(uuid.NewV7())

		deviceRepo.On("GetByID", ctx, missingID).Return(nil, domain.ErrDeviceNotFound).Once()

		device, err := useCase.GetDeviceByID(ctx, missingID)

		assert.Nil(t, device)
		assert.ErrorIs(t, err, domain.ErrDeviceNotFound)
	})

	deviceRepo.AssertExpectations(t)
}

func TestDeviceUseCase_ListDevices(t *testing.T) {
	deviceRepo := &MockDeviceRepository{}
	useCase := NewDeviceUseCase(deviceRepo, authService.NewPasswordService())

	ctx := context.Background()
	universityID := uuid.Must(uuid.NewV7())
	expectedDevices := []*domain.Device{
		{ID: uuid.Must(uuid.NewV7()), UniversityID: universityID},
		{ID: uuid.Must(uuid.NewV7()), UniversityID: universityID},
	}

	deviceRepo.On("List", ctx, &universityID, 0, 50).Return(expectedDevices, nil)

	devices, err := useCase.ListDevices(ctx, &universityID, 0, 50)

	require.NoError(t, err)
	assert.Len(t, devices, 2)

	deviceRepo.AssertExpectations(t)
}

func TestDeviceUseCase_DeleteDevice(t *testing.T) {
	deviceRepo := &MockDeviceRepository{}
	useCase := NewDeviceUseCase(deviceRepo, authService.NewPasswordService())

	ctx := context.Background()
	deviceID := uuid.Must(uuid.NewV7())

	deviceRepo.On("Delete", ctx, deviceID).Return(nil)

	err := useCase.DeleteDevice(ctx, deviceID)

	assert.NoError(t, err)
	deviceRepo.AssertExpectations(t)
}
