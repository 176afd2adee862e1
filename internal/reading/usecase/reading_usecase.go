// Package usecase implements the reading business logic and orchestrates reading domain operations.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	alertDomain "github.com/allisson/airmon/internal/alert/domain"
	"github.com/allisson/airmon/internal/database"
	deviceDomain "github.com/allisson/airmon/internal/device/domain"
	"github.com/allisson/airmon/internal/reading/domain"
	appValidation "github.com/allisson/airmon/internal/validation"
)

// Thresholds holds the poor-band lower bounds used for level classification.
type Thresholds struct {
	CO2PoorPPM   float64
	PM25PoorUgM3 float64
}

// IngestReadingInput contains the measurement data sent by a device
type IngestReadingInput struct {
	CO2PPM       float64    `json:"co2_ppm"`
	PM25         float64    `json:"pm25"`
	TemperatureC float64    `json:"temperature_c"`
	HumidityPct  float64    `json:"humidity_pct"`
	RecordedAt   *time.Time `json:"recorded_at"`
}

// UseCase defines the interface for reading business logic operations
type UseCase interface {
	IngestReading(ctx context.Context, deviceID uuid.UUID, input IngestReadingInput) (*domain.AirQualityReading, error)
	ListReadings(ctx context.Context, universityID uuid.UUID, offset, limit int) ([]*domain.AirQualityReading, error)
}

// ReadingRepository interface defines reading repository operations
type ReadingRepository interface {
	Create(ctx context.Context, reading *domain.AirQualityReading) error
	ListByUniversity(ctx context.Context, universityID uuid.UUID, offset, limit int) ([]*domain.AirQualityReading, error)
}

// DeviceRepository defines the device operations the ingest path needs
type DeviceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*deviceDomain.Device, error)
	MarkConnected(ctx context.Context, id uuid.UUID, seenAt time.Time) error
}

// AlertRepository defines the alert operations the ingest path needs
type AlertRepository interface {
	Create(ctx context.Context, alert *alertDomain.Alert) error
}

// ReadingUseCase handles reading-related business logic
type ReadingUseCase struct {
	txManager   database.TxManager
	readingRepo ReadingRepository
	deviceRepo  DeviceRepository
	alertRepo   AlertRepository
	thresholds  Thresholds
	logger      *slog.Logger
	now         func() time.Time
}

// ReadingUseCaseOption customizes a ReadingUseCase
type ReadingUseCaseOption func(*ReadingUseCase)

// WithClock overrides the time source, used by tests
func WithClock(now func() time.Time) ReadingUseCaseOption {
	return func(uc *ReadingUseCase) {
		uc.now = now
	}
}

// NewReadingUseCase creates a new ReadingUseCase
func NewReadingUseCase(
	txManager database.TxManager,
	readingRepo ReadingRepository,
	deviceRepo DeviceRepository,
	alertRepo AlertRepository,
	thresholds Thresholds,
	logger *slog.Logger,
	opts ...ReadingUseCaseOption,
) *ReadingUseCase {
	uc := &ReadingUseCase{
		txManager:   txManager,
		readingRepo: readingRepo,
		deviceRepo:  deviceRepo,
		alertRepo:   alertRepo,
		thresholds:  thresholds,
		logger:      logger,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// validateIngestReadingInput validates the measurement using jellydator/validation
func (uc *ReadingUseCase) validateIngestReadingInput(input IngestReadingInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.CO2PPM,
			validation.Min(0.0).Error("co2_ppm must not be negative"),
			validation.Max(50000.0).Error("co2_ppm is unreasonably high"),
		),
		validation.Field(&input.PM25,
			validation.Min(0.0).Error("pm25 must not be negative"),
			validation.Max(1000.0).Error("pm25 is unreasonably high"),
		),
		validation.Field(&input.TemperatureC,
			validation.Min(-40.0).Error("temperature_c must be at least -40"),
			validation.Max(85.0).Error("temperature_c must be at most 85"),
		),
		validation.Field(&input.HumidityPct,
			validation.Min(0.0).Error("humidity_pct must be between 0 and 100"),
			validation.Max(100.0).Error("humidity_pct must be between 0 and 100"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// IngestReading stores a measurement reported by an authenticated device.
// The reading, the device last-seen refresh and any poor-air alert are
// committed in a single transaction.
func (uc *ReadingUseCase) IngestReading(
	ctx context.Context,
	deviceID uuid.UUID,
	input IngestReadingInput,
) (*domain.AirQualityReading, error) {
	// Validate input
	if err := uc.validateIngestReadingInput(input); err != nil {
		return nil, err
	}

	device, err := uc.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	recordedAt := now
	if input.RecordedAt != nil {
		recordedAt = *input.RecordedAt
	}

	reading := &domain.AirQualityReading{
		ID:           uuid.Must(uuid.NewV7()),
		DeviceID:     device.ID,
		UniversityID: device.UniversityID,
		CO2PPM:       input.CO2PPM,
		PM25:         input.PM25,
		TemperatureC: input.TemperatureC,
		HumidityPct:  input.HumidityPct,
		Level:        domain.ClassifyLevel(input.CO2PPM, input.PM25, uc.thresholds.CO2PoorPPM, uc.thresholds.PM25PoorUgM3),
		RecordedAt:   recordedAt,
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.readingRepo.Create(ctx, reading); err != nil {
			return err
		}

		if err := uc.deviceRepo.MarkConnected(ctx, device.ID, now); err != nil {
			return err
		}

		if reading.Level == domain.LevelPoor {
			alert := &alertDomain.Alert{
				ID:           uuid.Must(uuid.NewV7()),
				ReadingID:    reading.ID,
				DeviceID:     device.ID,
				UniversityID: device.UniversityID,
				Room:         device.Room,
				Message: fmt.Sprintf(
					"poor air quality in %s: CO2 %.0f ppm, PM2.5 %.1f ug/m3",
					device.Room, reading.CO2PPM, reading.PM25,
				),
				Status: alertDomain.AlertStatusPending,
			}
			if err := uc.alertRepo.Create(ctx, alert); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if reading.Level == domain.LevelPoor && uc.logger != nil {
		uc.logger.Warn("poor air quality reading",
			slog.String("reading_id", reading.ID.String()),
			slog.String("device_id", device.ID.String()),
			slog.String("room", device.Room),
			slog.Float64("co2_ppm", reading.CO2PPM),
			slog.Float64("pm25", reading.PM25),
		)
	}

	return reading, nil
}

// ListReadings retrieves readings for a university
func (uc *ReadingUseCase) ListReadings(
	ctx context.Context,
	universityID uuid.UUID,
	offset, limit int,
) ([]*domain.AirQualityReading, error) {
	return uc.readingRepo.ListByUniversity(ctx, universityID, offset, limit)
}
