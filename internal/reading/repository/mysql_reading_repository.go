package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/airmon/internal/database"
	"github.com/allisson/airmon/internal/reading/domain"

	apperrors "github.com/allisson/airmon/internal/errors"
)

// MySQLReadingRepository handles reading persistence for MySQL
type MySQLReadingRepository struct {
	db *sql.DB
}

// NewMySQLReadingRepository creates a new MySQLReadingRepository
func NewMySQLReadingRepository(db *sql.DB) *MySQLReadingRepository {
	return &MySQLReadingRepository{
		db: db,
	}
}

// Create inserts a new reading
func (r *MySQLReadingRepository) Create(ctx context.Context, reading *domain.AirQualityReading) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO readings
			  (id, device_id, university_id, co2_ppm, pm25, temperature_c, humidity_pct, level, recorded_at, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`

	// Convert UUIDs to bytes for MySQL BINARY(16)
	idBytes, err := reading.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}
	deviceBytes, err := reading.DeviceID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}
	universityBytes, err := reading.UniversityID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(
		ctx, query,
		idBytes, deviceBytes, universityBytes, reading.CO2PPM, reading.PM25,
		reading.TemperatureC, reading.HumidityPct, reading.Level, reading.RecordedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create reading")
	}
	return nil
}

// ListByUniversity retrieves readings for a university ordered by recency
func (r *MySQLReadingRepository) ListByUniversity(
	ctx context.Context,
	universityID uuid.UUID,
	offset, limit int,
) ([]*domain.AirQualityReading, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, device_id, university_id, co2_ppm, pm25, temperature_c, humidity_pct, level, recorded_at, created_at
			  FROM readings
			  WHERE university_id = ?
			  ORDER BY recorded_at DESC
			  LIMIT ? OFFSET ?`

	universityBytes, err := universityID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	rows, err := querier.QueryContext(ctx, query, universityBytes, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list readings")
	}
	defer rows.Close()

	var readings []*domain.AirQualityReading
	for rows.Next() {
		var reading domain.AirQualityReading
		var idBytes, deviceBytes, uniBytes []byte
		err := rows.Scan(
			&idBytes, &deviceBytes, &uniBytes, &reading.CO2PPM, &reading.PM25,
			&reading.TemperatureC, &reading.HumidityPct, &reading.Level, &reading.RecordedAt, &reading.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan reading")
		}
		if err := reading.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
		}
		if err := reading.DeviceID.UnmarshalBinary(deviceBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
		}
		if err := reading.UniversityID.UnmarshalBinary(uniBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
		}
		readings = append(readings, &reading)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate readings")
	}

	return readings, nil
}
