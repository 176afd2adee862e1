package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	alertDomain "github.com/allisson/airmon/internal/alert/domain"
	deviceDomain "github.com/allisson/airmon/internal/device/domain"
	apperrors "github.com/allisson/airmon/internal/errors"
	"github.com/allisson/airmon/internal/reading/domain"
)

// MockTxManager is a mock implementation of database.TxManager
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Get(0) != nil {
		return args.Error(0)
	}
	// Execute the function to test the logic inside
	return fn(ctx)
}

// MockReadingRepository is a mock implementation of ReadingRepository
type MockReadingRepository struct {
	mock.Mock
}

func (m *MockReadingRepository) Create(ctx context.Context, reading *domain.AirQualityReading) error {
	args := m.Called(ctx, reading)
	return args.Error(0)
}

func (m *MockReadingRepository) ListByUniversity(
	ctx context.Context,
	universityID uuid.UUID,
	offset, limit int,
) ([]*domain.AirQualityReading, error) {
	args := m.Called(ctx, universityID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AirQualityReading), args.Error(1)
}

// MockDeviceRepository is a mock implementation of DeviceRepository
type MockDeviceRepository struct {
	mock.Mock
}

func (m *MockDeviceRepository) GetByID(ctx context.Context, id uuid.UUID) (*deviceDomain.Device, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deviceDomain.Device), args.Error(1)
}

func (m *MockDeviceRepository) MarkConnected(ctx context.Context, id uuid.UUID, seenAt time.Time) error {
	args := m.Called(ctx, id, seenAt)
	return args.Error(0)
}

// MockAlertRepository is a mock implementation of AlertRepository
type MockAlertRepository struct {
	mock.Mock
}

func (m *MockAlertRepository) Create(ctx context.Context, alert *alertDomain.Alert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func testThresholds() Thresholds {
	return Thresholds{
		CO2PoorPPM:   1000.0,
		PM25PoorUgM3: 35.0,
	}
}

func registeredDevice() *deviceDomain.Device {
	return &deviceDomain.Device{
		ID:           uuid.Must(uuid.NewV7()),
		HardwareID:   "AA:BB:CC:DD:EE:FF",
		Room:         "Library 2F",
		Model:        "AQ-900",
		UniversityID: uuid.Must(uuid.NewV7()),
		Status:       deviceDomain.DeviceStatusDisconnected,
	}
}

type readingMocks struct {
	txManager   *MockTxManager
	readingRepo *MockReadingRepository
	deviceRepo  *MockDeviceRepository
	alertRepo   *MockAlertRepository
}

func newTestReadingUseCase(opts ...ReadingUseCaseOption) (*ReadingUseCase, *readingMocks) {
	mocks := &readingMocks{
		txManager:   &MockTxManager{},
		readingRepo: &MockReadingRepository{},
		deviceRepo:  &MockDeviceRepository{},
		alertRepo:   &MockAlertRepository{},
	}
	uc := NewReadingUseCase(
		mocks.txManager, mocks.readingRepo, mocks.deviceRepo, mocks.alertRepo,
		testThresholds(), nil, opts...,
	)
	return uc, mocks
}

func TestClassifyLevel(t *testing.T) {
	tests := []struct {
		name     string
		co2      float64
		pm25     float64
		expected domain.Level
	}{
		{name: "clean air", co2: 450, pm25: 5, expected: domain.LevelGood},
		{name: "co2 at moderate bound", co2: 800, pm25: 5, expected: domain.LevelModerate},
		{name: "pm25 at moderate bound", co2: 450, pm25: 12, expected: domain.LevelModerate},
		{name: "co2 at poor bound", co2: 1000, pm25: 5, expected: domain.LevelPoor},
		{name: "pm25 at poor bound", co2: 450, pm25: 35, expected: domain.LevelPoor},
		{name: "both poor", co2: 2000, pm25: 80, expected: domain.LevelPoor},
		{name: "worst pollutant wins", co2: 450, pm25: 40, expected: domain.LevelPoor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := domain.ClassifyLevel(tt.co2, tt.pm25, 1000.0, 35.0)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestReadingUseCase_IngestReading_Success(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	uc, mocks := newTestReadingUseCase(WithClock(func() time.Time { return now }))

	ctx := context.Background()
	device := registeredDevice()
	input := IngestReadingInput{
		CO2PPM:       450,
		PM25:         5,
		TemperatureC: 21.5,
		HumidityPct:  40,
	}

	mocks.deviceRepo.On("GetByID", ctx, device.ID).Return(device, nil)
	mocks.txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
	mocks.readingRepo.On("Create", ctx, mock.MatchedBy(func(r *domain.AirQualityReading) bool {
		return r.DeviceID == device.ID &&
			r.UniversityID == device.UniversityID &&
			r.Level == domain.LevelGood &&
			r.RecordedAt.Equal(now)
	})).Return(nil)
	mocks.deviceRepo.On("MarkConnected", ctx, device.ID, now).Return(nil).Once()

	reading, err := uc.IngestReading(ctx, device.ID, input)

	require.NoError(t, err)
	assert.Equal(t, domain.LevelGood, reading.Level)
	assert.Equal(t, device.UniversityID, reading.UniversityID)

	mocks.deviceRepo.AssertExpectations(t)
	mocks.readingRepo.AssertExpectations(t)
	// Good readings never create alerts
	mocks.alertRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReadingUseCase_IngestReading_PoorLevelCreatesAlert(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	uc, mocks := newTestReadingUseCase(WithClock(func() time.Time { return now }))

	ctx := context.Background()
	device := registeredDevice()
	input := IngestReadingInput{
		CO2PPM:       1800,
		PM25:         60,
		TemperatureC: 24,
		HumidityPct:  55,
	}

	mocks.deviceRepo.On("GetByID", ctx, device.ID).Return(device, nil)
	mocks.txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
	mocks.readingRepo.On("Create", ctx, mock.MatchedBy(func(r *domain.AirQualityReading) bool {
		return r.Level == domain.LevelPoor
	})).Return(nil)
	mocks.deviceRepo.On("MarkConnected", ctx, device.ID, now).Return(nil).Once()
	mocks.alertRepo.On("Create", ctx, mock.MatchedBy(func(a *alertDomain.Alert) bool {
		return a.DeviceID == device.ID &&
			a.UniversityID == device.UniversityID &&
			a.Room == device.Room &&
			a.Status == alertDomain.AlertStatusPending
	})).Return(nil).Once()

	reading, err := uc.IngestReading(ctx, device.ID, input)

	require.NoError(t, err)
	assert.Equal(t, domain.LevelPoor, reading.Level)

	mocks.alertRepo.AssertExpectations(t)
	mocks.deviceRepo.AssertExpectations(t)
}

func TestReadingUseCase_IngestReading_UsesProvidedRecordedAt(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	uc, mocks := newTestReadingUseCase(WithClock(func() time.Time { return now }))

	ctx := context.Background()
	device := registeredDevice()
	recordedAt := now.Add(-2 * time.Minute)
	input := IngestReadingInput{CO2PPM: 450, PM25: 5, TemperatureC: 20, HumidityPct: 40, RecordedAt: &recordedAt}

	mocks.deviceRepo.On("GetByID", ctx, device.ID).Return(device, nil)
	mocks.txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
	mocks.readingRepo.On("Create", ctx, mock.MatchedBy(func(r *domain.AirQualityReading) bool {
		return r.RecordedAt.Equal(recordedAt)
	})).Return(nil)
	// Last-seen refresh uses the server clock, not the reported timestamp
	mocks.deviceRepo.On("MarkConnected", ctx, device.ID, now).Return(nil).Once()

	_, err := uc.IngestReading(ctx, device.ID, input)

	require.NoError(t, err)
	mocks.readingRepo.AssertExpectations(t)
	mocks.deviceRepo.AssertExpectations(t)
}

func TestReadingUseCase_IngestReading_ValidationErrors(t *testing.T) {
	uc, mocks := newTestReadingUseCase()

	tests := []struct {
		name  string
		input IngestReadingInput
	}{
		{
			name:  "negative co2",
			input: IngestReadingInput{CO2PPM: -1, PM25: 5, TemperatureC: 20, HumidityPct: 40},
		},
		{
			name:  "negative pm25",
			input: IngestReadingInput{CO2PPM: 450, PM25: -1, TemperatureC: 20, HumidityPct: 40},
		},
		{
			name:  "unreasonable pm25",
			input: IngestReadingInput{CO2PPM: 450, PM25: 2000, TemperatureC: 20, HumidityPct: 40},
		},
		{
			name:  "temperature out of range",
			input: IngestReadingInput{CO2PPM: 450, PM25: 5, TemperatureC: 120, HumidityPct: 40},
		},
		{
			name:  "humidity over 100",
			input: IngestReadingInput{CO2PPM: 450, PM25: 5, TemperatureC: 20, HumidityPct: 101},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reading, err := uc.IngestReading(context.Background(), uuid.Must(uuid.NewV7()), tt.input)

			assert.Nil(t, reading)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		})
	}

	mocks.deviceRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestReadingUseCase_IngestReading_DeviceNotFound(t *testing.T) {
	uc, mocks := newTestReadingUseCase()

	ctx := context.Background()
	deviceID := uuid.Must(uuid.NewV7())
	input := IngestReadingInput{CO2PPM: 450, PM25: 5, TemperatureC: 20, HumidityPct: 40}

	mocks.deviceRepo.On("GetByID", ctx, deviceID).Return(nil, deviceDomain.ErrDeviceNotFound)

	reading, err := uc.IngestReading(ctx, deviceID, input)

	assert.Nil(t, reading)
	assert.ErrorIs(t, err, deviceDomain.ErrDeviceNotFound)
	mocks.readingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReadingUseCase_IngestReading_CreateError(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	uc, mocks := newTestReadingUseCase(WithClock(func() time.Time { return now }))

	ctx := context.Background()
	device := registeredDevice()
	input := IngestReadingInput{CO2PPM: 450, PM25: 5, TemperatureC: 20, HumidityPct: 40}

	createError := apperrors.Wrap(apperrors.ErrConflict, "insert failed")

	mocks.deviceRepo.On("GetByID", ctx, device.ID).Return(device, nil)
	mocks.txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
	mocks.readingRepo.On("Create", ctx, mock.AnythingOfType("*domain.AirQualityReading")).Return(createError)

	reading, err := uc.IngestReading(ctx, device.ID, input)

	assert.Nil(t, reading)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	mocks.deviceRepo.AssertNotCalled(t, "MarkConnected", mock.Anything, mock.Anything, mock.Anything)
}

func TestReadingUseCase_ListReadings(t *testing.T) {
	uc, mocks := newTestReadingUseCase()

	ctx := context.Background()
	universityID := uuid.Must(uuid.NewV7())
	expectedReadings := []*domain.AirQualityReading{
		{ID: uuid.Must(uuid.NewV7()), UniversityID: universityID, Level: domain.LevelGood},
	}

	mocks.readingRepo.On("ListByUniversity", ctx, universityID, 0, 50).Return(expectedReadings, nil)

	readings, err := uc.ListReadings(ctx, universityID, 0, 50)

	require.NoError(t, err)
	assert.Len(t, readings, 1)
	mocks.readingRepo.AssertExpectations(t)
}
