// Package repository provides data persistence implementations for alert entities.
package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/airmon/internal/alert/domain"
	"github.com/allisson/airmon/internal/database"
)

// PostgreSQLAlertRepository handles alert persistence for PostgreSQL
type PostgreSQLAlertRepository struct {
	db *sql.DB
}

// NewPostgreSQLAlertRepository creates a new PostgreSQLAlertRepository
func NewPostgreSQLAlertRepository(db *sql.DB) *PostgreSQLAlertRepository {
	return &PostgreSQLAlertRepository{
		db: db,
	}
}

// Create inserts a new alert
func (r *PostgreSQLAlertRepository) Create(ctx context.Context, alert *domain.Alert) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO alerts
			  (id, reading_id, device_id, university_id, room, message, status, retries, last_error, notified_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query, alert.ID, alert.ReadingID, alert.DeviceID, alert.UniversityID,
		alert.Room, alert.Message, alert.Status, alert.Retries, alert.LastError, alert.NotifiedAt)

	return err
}

// GetPendingAlerts retrieves pending alerts with limit, locking the rows
// so concurrent dispatchers skip them
func (r *PostgreSQLAlertRepository) GetPendingAlerts(ctx context.Context, limit int) ([]*domain.Alert, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, reading_id, device_id, university_id, room, message, status, retries, last_error, notified_at, created_at, updated_at
			  FROM alerts
			  WHERE status = $1
			  ORDER BY created_at ASC
			  LIMIT $2
			  FOR UPDATE SKIP LOCKED`

	rows, err := querier.QueryContext(ctx, query, domain.AlertStatusPending, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	return scanAlerts(rows)
}

// ListByUniversity retrieves alerts for a university ordered by recency
func (r *PostgreSQLAlertRepository) ListByUniversity(
	ctx context.Context,
	universityID uuid.UUID,
	offset, limit int,
) ([]*domain.Alert, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, reading_id, device_id, university_id, room, message, status, retries, last_error, notified_at, created_at, updated_at
			  FROM alerts
			  WHERE university_id = $1
			  ORDER BY created_at DESC
			  OFFSET $2 LIMIT $3`

	rows, err := querier.QueryContext(ctx, query, universityID, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	return scanAlerts(rows)
}

// Update updates an alert
func (r *PostgreSQLAlertRepository) Update(ctx context.Context, alert *domain.Alert) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE alerts
			  SET status = $1, retries = $2, last_error = $3, notified_at = $4, updated_at = NOW()
			  WHERE id = $5`

	_, err := querier.ExecContext(ctx, query, alert.Status, alert.Retries, alert.LastError,
		alert.NotifiedAt, alert.ID)

	return err
}

// scanAlerts scans all rows into alert records.
func scanAlerts(rows *sql.Rows) ([]*domain.Alert, error) {
	var alerts []*domain.Alert
	for rows.Next() {
		var alert domain.Alert

		err := rows.Scan(&alert.ID, &alert.ReadingID, &alert.DeviceID, &alert.UniversityID,
			&alert.Room, &alert.Message, &alert.Status, &alert.Retries, &alert.LastError,
			&alert.NotifiedAt, &alert.CreatedAt, &alert.UpdatedAt)
		if err != nil {
			return nil, err
		}

		alerts = append(alerts, &alert)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return alerts, nil
}
