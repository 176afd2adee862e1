// Package repository provides data persistence implementations for device entities.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/airmon/internal/database"
	"github.com/allisson/airmon/internal/device/domain"

	apperrors "github.com/allisson/airmon/internal/errors"
)

// PostgreSQLDeviceRepository handles device persistence for PostgreSQL
type PostgreSQLDeviceRepository struct {
	db *sql.DB
}

// NewPostgreSQLDeviceRepository creates a new PostgreSQLDeviceRepository
func NewPostgreSQLDeviceRepository(db *sql.DB) *PostgreSQLDeviceRepository {
	return &PostgreSQLDeviceRepository{
		db: db,
	}
}

// Create inserts a new device
func (r *PostgreSQLDeviceRepository) Create(ctx context.Context, device *domain.Device) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO devices
			  (id, hardware_id, api_token_hash, room, model, university_id, status, last_seen_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())`

	_, err := querier.ExecContext(
		ctx, query,
		device.ID, device.HardwareID, device.APITokenHash, device.Room, device.Model,
		device.UniversityID, device.Status, device.LastSeenAt,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrDeviceAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create device")
	}
	return nil
}

// GetByID retrieves a device by ID
func (r *PostgreSQLDeviceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Device, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, hardware_id, api_token_hash, room, model, university_id, status, last_seen_at, created_at, updated_at
			  FROM devices WHERE id = $1`

	return scanDevice(querier.QueryRowContext(ctx, query, id), "failed to get device by id")
}

// GetByHardwareID retrieves a device by its normalized MAC address
func (r *PostgreSQLDeviceRepository) GetByHardwareID(ctx context.Context, hardwareID string) (*domain.Device, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, hardware_id, api_token_hash, room, model, university_id, status, last_seen_at, created_at, updated_at
			  FROM devices WHERE hardware_id = $1`

	return scanDevice(querier.QueryRowContext(ctx, query, hardwareID), "failed to get device by hardware id")
}

// List retrieves devices ordered by creation time, optionally scoped to a university
func (r *PostgreSQLDeviceRepository) List(
	ctx context.Context,
	universityID *uuid.UUID,
	offset, limit int,
) ([]*domain.Device, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, hardware_id, api_token_hash, room, model, university_id, status, last_seen_at, created_at, updated_at
			  FROM devices ORDER BY created_at DESC OFFSET $1 LIMIT $2`
	args := []any{offset, limit}
	if universityID != nil {
		query = `SELECT id, hardware_id, api_token_hash, room, model, university_id, status, last_seen_at, created_at, updated_at
				 FROM devices WHERE university_id = $1 ORDER BY created_at DESC OFFSET $2 LIMIT $3`
		args = []any{*universityID, offset, limit}
	}

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list devices")
	}
	defer rows.Close()

	var devices []*domain.Device
	for rows.Next() {
		var device domain.Device
		err := rows.Scan(
			&device.ID, &device.HardwareID, &device.APITokenHash, &device.Room, &device.Model,
			&device.UniversityID, &device.Status, &device.LastSeenAt, &device.CreatedAt, &device.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan device")
		}
		devices = append(devices, &device)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate devices")
	}

	return devices, nil
}

// MarkConnected sets the device status to connected and updates its last-seen timestamp
func (r *PostgreSQLDeviceRepository) MarkConnected(ctx context.Context, id uuid.UUID, seenAt time.Time) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE devices SET status = $1, last_seen_at = $2, updated_at = NOW() WHERE id = $3`

	result, err := querier.ExecContext(ctx, query, domain.DeviceStatusConnected, seenAt, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to mark device connected")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check affected rows")
	}
	if affected == 0 {
		return domain.ErrDeviceNotFound
	}
	return nil
}

// Delete removes a device
func (r *PostgreSQLDeviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM devices WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete device")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check affected rows")
	}
	if affected == 0 {
		return domain.ErrDeviceNotFound
	}
	return nil
}

// scanDevice scans a single device row.
func scanDevice(row *sql.Row, wrapMsg string) (*domain.Device, error) {
	var device domain.Device
	err := row.Scan(
		&device.ID, &device.HardwareID, &device.APITokenHash, &device.Room, &device.Model,
		&device.UniversityID, &device.Status, &device.LastSeenAt, &device.CreatedAt, &device.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDeviceNotFound
		}
		return nil, apperrors.Wrap(err, wrapMsg)
	}
	return &device, nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
