// Package repository provides data persistence implementations for assignment entities.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/airmon/internal/assignment/domain"
	"github.com/allisson/airmon/internal/database"

	apperrors "github.com/allisson/airmon/internal/errors"
)

// PostgreSQLAssignmentRepository handles assignment persistence for PostgreSQL
type PostgreSQLAssignmentRepository struct {
	db *sql.DB
}

// NewPostgreSQLAssignmentRepository creates a new PostgreSQLAssignmentRepository
func NewPostgreSQLAssignmentRepository(db *sql.DB) *PostgreSQLAssignmentRepository {
	return &PostgreSQLAssignmentRepository{
		db: db,
	}
}

// Create inserts a new assignment
func (r *PostgreSQLAssignmentRepository) Create(ctx context.Context, assignment *domain.CleaningAssignment) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO assignments
			  (id, room, assigned_to_user_id, reading_id, university_id, description, status, completed_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())`

	_, err := querier.ExecContext(
		ctx, query,
		assignment.ID, assignment.Room, assignment.AssignedToUserID, assignment.ReadingID,
		assignment.UniversityID, assignment.Description, assignment.Status, assignment.CompletedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create assignment")
	}
	return nil
}

// GetByID retrieves an assignment by ID
func (r *PostgreSQLAssignmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CleaningAssignment, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, room, assigned_to_user_id, reading_id, university_id, description, status, completed_at, created_at, updated_at
			  FROM assignments WHERE id = $1`

	var assignment domain.CleaningAssignment
	err := querier.QueryRowContext(ctx, query, id).Scan(
		&assignment.ID, &assignment.Room, &assignment.AssignedToUserID, &assignment.ReadingID,
		&assignment.UniversityID, &assignment.Description, &assignment.Status, &assignment.CompletedAt,
		&assignment.CreatedAt, &assignment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAssignmentNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get assignment by id")
	}
	return &assignment, nil
}

// ListByUniversity retrieves assignments for a university ordered by recency
func (r *PostgreSQLAssignmentRepository) ListByUniversity(
	ctx context.Context,
	universityID uuid.UUID,
	offset, limit int,
) ([]*domain.CleaningAssignment, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, room, assigned_to_user_id, reading_id, university_id, description, status, completed_at, created_at, updated_at
			  FROM assignments
			  WHERE university_id = $1
			  ORDER BY created_at DESC
			  OFFSET $2 LIMIT $3`

	rows, err := querier.QueryContext(ctx, query, universityID, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list assignments")
	}
	defer rows.Close()

	var assignments []*domain.CleaningAssignment
	for rows.Next() {
		var assignment domain.CleaningAssignment
		err := rows.Scan(
			&assignment.ID, &assignment.Room, &assignment.AssignedToUserID, &assignment.ReadingID,
			&assignment.UniversityID, &assignment.Description, &assignment.Status, &assignment.CompletedAt,
			&assignment.CreatedAt, &assignment.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan assignment")
		}
		assignments = append(assignments, &assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate assignments")
	}

	return assignments, nil
}

// Update updates an assignment
func (r *PostgreSQLAssignmentRepository) Update(ctx context.Context, assignment *domain.CleaningAssignment) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE assignments
			  SET status = $1, completed_at = $2, updated_at = NOW()
			  WHERE id = $3`

	result, err := querier.ExecContext(ctx, query, assignment.Status, assignment.CompletedAt, assignment.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update assignment")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check affected rows")
	}
	if affected == 0 {
		return domain.ErrAssignmentNotFound
	}
	return nil
}
