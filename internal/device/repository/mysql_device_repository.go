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

// MySQLDeviceRepository handles device persistence for MySQL
type MySQLDeviceRepository struct {
	db *sql.DB
}

// NewMySQLDeviceRepository creates a new MySQLDeviceRepository
func NewMySQLDeviceRepository(db *sql.DB) *MySQLDeviceRepository {
	return &MySQLDeviceRepository{
		db: db,
	}
}

// Create inserts a new device
func (r *MySQLDeviceRepository) Create(ctx context.Context, device *domain.Device) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO devices
			  (id, hardware_id, api_token_hash, room, model, university_id, status, last_seen_at, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	// Convert UUIDs to bytes for MySQL BINARY(16)
	idBytes, err := device.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}
	universityBytes, err := device.UniversityID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(
		ctx, query,
		idBytes, device.HardwareID, device.APITokenHash, device.Room, device.Model,
		universityBytes, device.Status, device.LastSeenAt,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return domain.ErrDeviceAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create device")
	}
	return nil
}

// GetByID retrieves a device by ID
func (r *MySQLDeviceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Device, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, hardware_id, api_token_hash, room, model, university_id, status, last_seen_at, created_at, updated_at
			  FROM devices WHERE id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	return scanMySQLDevice(querier.QueryRowContext(ctx, query, idBytes), "failed to get device by id")
}

// GetByHardwareID retrieves a device by its normalized MAC address
func (r *MySQLDeviceRepository) GetByHardwareID(ctx context.Context, hardwareID string) (*domain.Device, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, hardware_id, api_token_hash, room, model, university_id, status, last_seen_at, created_at, updated_at
			  FROM devices WHERE hardware_id = ?`

	return scanMySQLDevice(querier.QueryRowContext(ctx, query, hardwareID), "failed to get device by hardware id")
}

// List retrieves devices ordered by creation time, optionally scoped to a university
func (r *MySQLDeviceRepository) List(
	ctx context.Context,
	universityID *uuid.UUID,
	offset, limit int,
) ([]*domain.Device, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, hardware_id, api_token_hash, room, model, university_id, status, last_seen_at, created_at, updated_at
			  FROM devices ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args := []any{limit, offset}
	if universityID != nil {
		universityBytes, err := universityID.MarshalBinary()
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to marshal UUID")
		}
		query = `SELECT id, hardware_id, api_token_hash, room, model, university_id, status, last_seen_at, created_at, updated_at
				 FROM devices WHERE university_id = ? ORDER BY created_at DESC LIMIT ? OFFSET ?`
		args = []any{universityBytes, limit, offset}
	}

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list devices")
	}
	defer rows.Close()

	var devices []*domain.Device
	for rows.Next() {
		var device domain.Device
		var idBytes, universityBytes []byte
		err := rows.Scan(
			&idBytes, &device.HardwareID, &device.APITokenHash, &device.Room, &device.Model,
			&universityBytes, &device.Status, &device.LastSeenAt, &device.CreatedAt, &device.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan device")
		}
		if err := device.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
		}
		if err := device.UniversityID.UnmarshalBinary(universityBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
		}
		devices = append(devices, &device)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate devices")
	}

	return devices, nil
}

// MarkConnected sets the device status to connected and updates its last-seen timestamp
func (r *MySQLDeviceRepository) MarkConnected(ctx context.Context, id uuid.UUID, seenAt time.Time) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE devices SET status = ?, last_seen_at = ?, updated_at = NOW() WHERE id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query, domain.DeviceStatusConnected, seenAt, idBytes)
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
func (r *MySQLDeviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM devices WHERE id = ?`, idBytes)
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

// scanMySQLDevice scans a device row, converting BINARY(16) columns back to UUIDs.
func scanMySQLDevice(row *sql.Row, wrapMsg string) (*domain.Device, error) {
	var device domain.Device
	var idBytes, universityBytes []byte

	err := row.Scan(
		&idBytes, &device.HardwareID, &device.APITokenHash, &device.Room, &device.Model,
		&universityBytes, &device.Status, &device.LastSeenAt, &device.CreatedAt, &device.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDeviceNotFound
		}
		return nil, apperrors.Wrap(err, wrapMsg)
	}

	if err := device.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	if err := device.UniversityID.UnmarshalBinary(universityBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	return &device, nil
}

// isMySQLUniqueViolation checks if the error is a MySQL unique constraint violation
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// MySQL: "Error 1062: Duplicate entry"
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}
