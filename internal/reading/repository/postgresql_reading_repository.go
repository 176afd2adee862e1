// Package repository provides data persistence implementations for reading entities.
package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/airmon/internal/database"
	"github.com/allisson/airmon/internal/reading/domain"

	apperrors "github.com/allisson/airmon/internal/errors"
)

// PostgreSQLReadingRepository handles reading persistence for PostgreSQL
type PostgreSQLReadingRepository struct {
	db *sql.DB
}

// NewPostgreSQLReadingRepository creates a new PostgreSQLReadingRepository
func NewPostgreSQLReadingRepository(db *sql.DB) *PostgreSQLReadingRepository {
	return &PostgreSQLReadingRepository{
		db: db,
	}
}

// Create inserts a new reading
func (r *PostgreSQLReadingRepository) Create(ctx context.Context, reading *domain.AirQualityReading) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO readings
			  (id, device_id, university_id, co2_ppm, pm25, temperature_c, humidity_pct, level, recorded_at, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())`

	_, err := querier.ExecContext(
		ctx, query,
		reading.ID, reading.DeviceID, reading.UniversityID, reading.CO2PPM, reading.PM25,
		reading.TemperatureC, reading.HumidityPct, reading.Level, reading.RecordedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create reading")
	}
	return nil
}

// ListByUniversity retrieves readings for a university ordered by recency
func (r *PostgreSQLReadingRepository) ListByUniversity(
	ctx context.Context,
	universityID uuid.UUID,
	offset, limit int,
) ([]*domain.AirQualityReading, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, device_id, university_id, co2_ppm, pm25, temperature_c, humidity_pct, level, recorded_at, created_at
			  FROM readings
			  WHERE university_id = $1
			  ORDER BY recorded_at DESC
			  OFFSET $2 LIMIT $3`

	rows, err := querier.QueryContext(ctx, query, universityID, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list readings")
	}
	defer rows.Close()

	var readings []*domain.AirQualityReading
	for rows.Next() {
		var reading domain.AirQualityReading
		err := rows.Scan(
			&reading.ID, &reading.DeviceID, &reading.UniversityID, &reading.CO2PPM, &reading.PM25,
			&reading.TemperatureC, &reading.HumidityPct, &reading.Level, &reading.RecordedAt, &reading.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan reading")
		}
		readings = append(readings, &reading)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate readings")
	}

	return readings, nil
}
