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

// MySQLAssignmentRepository handles assignment persistence for MySQL
type MySQLAssignmentRepository struct {
	db *sql.DB
}

// NewMySQLAssignmentRepository creates a new MySQLAssignmentRepository
func NewMySQLAssignmentRepository(db *sql.DB) *MySQLAssignmentRepository {
	return &MySQLAssignmentRepository{
		db: db,
	}
}

// Create inserts a new assignment
func (r *MySQLAssignmentRepository) Create(ctx context.Context, assignment *domain.CleaningAssignment) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO assignments
			  (id, room, assigned_to_user_id, reading_id, university_id, description, status, completed_at, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	// Convert UUIDs to bytes for MySQL BINARY(16)
	idBytes, err := assignment.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}
	assignedBytes, err := assignment.AssignedToUserID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}
	universityBytes, err := assignment.UniversityID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}
	var readingBytes []byte
	if assignment.ReadingID != nil {
		readingBytes, err = assignment.ReadingID.MarshalBinary()
		if err != nil {
			return apperrors.Wrap(err, "failed to marshal UUID")
		}
	}

	_, err = querier.ExecContext(
		ctx, query,
		idBytes, assignment.Room, assignedBytes, readingBytes, universityBytes,
		assignment.Description, assignment.Status, assignment.CompletedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create assignment")
	}
	return nil
}

// GetByID retrieves an assignment by ID
func (r *MySQLAssignmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CleaningAssignment, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, room, assigned_to_user_id, reading_id, university_id, description, status, completed_at, created_at, updated_at
			  FROM assignments WHERE id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	var assignment domain.CleaningAssignment
	var assignmentIDBytes, assignedBytes, universityBytes, readingBytes []byte
	err = querier.QueryRowContext(ctx, query, idBytes).Scan(
		&assignmentIDBytes, &assignment.Room, &assignedBytes, &readingBytes,
		&universityBytes, &assignment.Description, &assignment.Status, &assignment.CompletedAt,
		&assignment.CreatedAt, &assignment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAssignmentNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get assignment by id")
	}

	if err := unmarshalAssignmentUUIDs(&assignment, assignmentIDBytes, assignedBytes, universityBytes, readingBytes); err != nil {
		return nil, err
	}
	return &assignment, nil
}

// ListByUniversity retrieves assignments for a university ordered by recency
func (r *MySQLAssignmentRepository) ListByUniversity(
	ctx context.Context,
	universityID uuid.UUID,
	offset, limit int,
) ([]*domain.CleaningAssignment, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, room, assigned_to_user_id, reading_id, university_id, description, status, completed_at, created_at, updated_at
			  FROM assignments
			  WHERE university_id = ?
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	universityBytes, err := universityID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	rows, err := querier.QueryContext(ctx, query, universityBytes, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list assignments")
	}
	defer rows.Close()

	var assignments []*domain.CleaningAssignment
	for rows.Next() {
		var assignment domain.CleaningAssignment
		var idBytes, assignedBytes, uniBytes, readingBytes []byte
		err := rows.Scan(
			&idBytes, &assignment.Room, &assignedBytes, &readingBytes,
			&uniBytes, &assignment.Description, &assignment.Status, &assignment.CompletedAt,
			&assignment.CreatedAt, &assignment.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan assignment")
		}
		if err := unmarshalAssignmentUUIDs(&assignment, idBytes, assignedBytes, uniBytes, readingBytes); err != nil {
			return nil, err
		}
		assignments = append(assignments, &assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate assignments")
	}

	return assignments, nil
}

// Update updates an assignment
func (r *MySQLAssignmentRepository) Update(ctx context.Context, assignment *domain.CleaningAssignment) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE assignments
			  SET status = ?, completed_at = ?, updated_at = NOW()
			  WHERE id = ?`

	idBytes, err := assignment.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query, assignment.Status, assignment.CompletedAt, idBytes)
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

// unmarshalAssignmentUUIDs converts BINARY(16) columns back to UUIDs.
// readingBytes may be nil since the reading link is optional.
func unmarshalAssignmentUUIDs(
	assignment *domain.CleaningAssignment,
	idBytes, assignedBytes, universityBytes, readingBytes []byte,
) error {
	if err := assignment.ID.UnmarshalBinary(idBytes); err != nil {
		return apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	if err := assignment.AssignedToUserID.UnmarshalBinary(assignedBytes); err != nil {
		return apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	if err := assignment.UniversityID.UnmarshalBinary(universityBytes); err != nil {
		return apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	if readingBytes != nil {
		var readingID uuid.UUID
		if err := readingID.UnmarshalBinary(readingBytes); err != nil {
			return apperrors.Wrap(err, "failed to unmarshal UUID")
		}
		assignment.ReadingID = &readingID
	}
	return nil
}
