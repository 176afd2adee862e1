// Package domain defines authentication and authorization domain models.
// Implements signed-token authentication for human users and IoT sensor devices
// with role-based access control scoped to universities.
package domain

// TokenKind discriminates the two families of signed tokens.
// The kind claim must be checked before any other claim is trusted,
// otherwise a device token could be accepted where a user session is expected.
type TokenKind string

const (
	// TokenKindUser identifies session tokens issued to human users.
	TokenKindUser TokenKind = "user"

	// TokenKindDevice identifies tokens issued to IoT sensor devices.
	TokenKindDevice TokenKind = "device"
)

// Role defines the access level of a human user.
type Role string

const (
	// RoleAdmin grants full access, including cross-university resources.
	RoleAdmin Role = "admin"

	// RoleOperator manages devices and readings within their own university.
	RoleOperator Role = "operator"

	// RoleCleaner receives and completes cleaning assignments.
	RoleCleaner Role = "cleaner"
)

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleOperator, RoleCleaner:
		return true
	}
	return false
}
