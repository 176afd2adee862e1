package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/airmon/internal/alert/domain"
	"github.com/allisson/airmon/internal/database"
)

// MySQLAlertRepository handles alert persistence for MySQL
type MySQLAlertRepository struct {
	db *sql.DB
}

// NewMySQLAlertRepository creates a new MySQLAlertRepository
func NewMySQLAlertRepository(db *sql.DB) *MySQLAlertRepository {
	return &MySQLAlertRepository{
		db: db,
	}
}

// Create inserts a new alert
func (r *MySQLAlertRepository) Create(ctx context.Context, alert *domain.Alert) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO alerts
			  (id, reading_id, device_id, university_id, room, message, status, retries, last_error, notified_at, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	// Convert UUIDs to bytes for MySQL BINARY(16)
	idBytes, err := alert.ID.MarshalBinary()
	if err != nil {
		return err
	}
	readingBytes, err := alert.ReadingID.MarshalBinary()
	if err != nil {
		return err
	}
	deviceBytes, err := alert.DeviceID.MarshalBinary()
	if err != nil {
		return err
	}
	universityBytes, err := alert.UniversityID.MarshalBinary()
	if err != nil {
		return err
	}

	_, err = querier.ExecContext(ctx, query, idBytes, readingBytes, deviceBytes, universityBytes,
		alert.Room, alert.Message, alert.Status, alert.Retries, alert.LastError, alert.NotifiedAt)

	return err
}

// GetPendingAlerts retrieves pending alerts with limit, locking the rows
// so concurrent dispatchers skip them
func (r *MySQLAlertRepository) GetPendingAlerts(ctx context.Context, limit int) ([]*domain.Alert, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, reading_id, device_id, university_id, room, message, status, retries, last_error, notified_at, created_at, updated_at
			  FROM alerts
			  WHERE status = ?
			  ORDER BY created_at ASC
			  LIMIT ?
			  FOR UPDATE SKIP LOCKED`

	rows, err := querier.QueryContext(ctx, query, domain.AlertStatusPending, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	return scanMySQLAlerts(rows)
}

// ListByUniversity retrieves alerts for a university ordered by recency
func (r *MySQLAlertRepository) ListByUniversity(
	ctx context.Context,
	universityID uuid.UUID,
	offset, limit int,
) ([]*domain.Alert, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, reading_id, device_id, university_id, room, message, status, retries, last_error, notified_at, created_at, updated_at
			  FROM alerts
			  WHERE university_id = ?
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	universityBytes, err := universityID.MarshalBinary()
	if err != nil {
		return nil, err
	}

	rows, err := querier.QueryContext(ctx, query, universityBytes, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	return scanMySQLAlerts(rows)
}

// Update updates an alert
func (r *MySQLAlertRepository) Update(ctx context.Context, alert *domain.Alert) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE alerts
			  SET status = ?, retries = ?, last_error = ?, notified_at = ?, updated_at = NOW()
			  WHERE id = ?`

	idBytes, err := alert.ID.MarshalBinary()
	if err != nil {
		return err
	}

	_, err = querier.ExecContext(ctx, query, alert.Status, alert.Retries, alert.LastError,
		alert.NotifiedAt, idBytes)

	return err
}

// scanMySQLAlerts scans all rows, converting BINARY(16) columns back to UUIDs.
func scanMySQLAlerts(rows *sql.Rows) ([]*domain.Alert, error) {
	var alerts []*domain.Alert
	for rows.Next() {
		var alert domain.Alert
		var idBytes, readingBytes, deviceBytes, universityBytes []byte

		err := rows.Scan(&idBytes, &readingBytes, &deviceBytes, &universityBytes,
			&alert.Room, &alert.Message, &alert.Status, &alert.Retries, &alert.LastError,
			&alert.NotifiedAt, &alert.CreatedAt, &alert.UpdatedAt)
		if err != nil {
			return nil, err
		}

		if err := alert.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, err
		}
		if err := alert.ReadingID.UnmarshalBinary(readingBytes); err != nil {
			return nil, err
		}
		if err := alert.DeviceID.UnmarshalBinary(deviceBytes); err != nil {
			return nil, err
		}
		if err := alert.UniversityID.UnmarshalBinary(universityBytes); err != nil {
			return nil, err
		}

		alerts = append(alerts, &alert)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return alerts, nil
}
