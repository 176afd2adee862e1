// Package domain defines the core user domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/airmon/internal/auth/domain"
	"github.com/allisson/airmon/internal/errors"
)

// User represents a campus user. The Password field always holds the
// Argon2id hash, never the plaintext.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Password     string
	Role         authDomain.Role
	UniversityID uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same email already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")

	// ErrInvalidRole indicates the role is not one of the known roles.
	ErrInvalidRole = errors.Wrap(errors.ErrInvalidInput, "invalid role")
)
