// Package domain defines the cleaning assignment domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/airmon/internal/errors"
)

// AssignmentStatus represents the lifecycle state of a cleaning assignment
type AssignmentStatus string

const (
	AssignmentStatusPending   AssignmentStatus = "pending"
	AssignmentStatusCompleted AssignmentStatus = "completed"
)

// CleaningAssignment is a cleaning task for a room, optionally linked to
// the reading that triggered it.
type CleaningAssignment struct {
	ID               uuid.UUID
	Room             string
	AssignedToUserID uuid.UUID
	ReadingID        *uuid.UUID
	UniversityID     uuid.UUID
	Description      string
	Status           AssignmentStatus
	CompletedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Domain-specific errors for assignment operations.
var (
	// ErrAssignmentNotFound indicates the requested assignment does not exist.
	ErrAssignmentNotFound = errors.Wrap(errors.ErrNotFound, "assignment not found")

	// ErrAssignmentAlreadyCompleted indicates the assignment was completed before.
	ErrAssignmentAlreadyCompleted = errors.Wrap(errors.ErrConflict, "assignment already completed")

	// ErrNotAssignmentOwner indicates the actor is neither the assigned
	// cleaner nor an admin.
	ErrNotAssignmentOwner = errors.Wrap(errors.ErrForbidden, "assignment belongs to another user")
)
