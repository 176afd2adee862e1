package domain

import (
	"slices"

	"github.com/google/uuid"
)

// Principal is the authenticated identity attached to a request after a
// user token has been validated. Downstream handlers read it from the
// request context and never touch the raw token again.
type Principal struct {
	UserID       uuid.UUID
	Email        string
	Role         Role
	UniversityID uuid.UUID
}

// NewPrincipalFromClaims builds a Principal from validated user claims.
// Claims carrying identifiers that do not parse as UUIDs are treated as
// malformed tokens.
func NewPrincipalFromClaims(claims *Claims) (Principal, error) {
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Principal{}, ErrMalformedToken
	}

	universityID, err := uuid.Parse(claims.UniversityID)
	if err != nil {
		return Principal{}, ErrMalformedToken
	}

	return Principal{
		UserID:       userID,
		Email:        claims.Email,
		Role:         claims.Role,
		UniversityID: universityID,
	}, nil
}

// HasRole reports whether the principal's role is in the allowed set.
func (p Principal) HasRole(allowedRoles ...Role) bool {
	return slices.Contains(allowedRoles, p.Role)
}

// CanAccessUniversity reports whether the principal may act on resources
// belonging to the given university. Admins bypass the check.
func (p Principal) CanAccessUniversity(universityID uuid.UUID) bool {
	if p.Role == RoleAdmin {
		return true
	}
	return p.UniversityID == universityID
}

// DevicePrincipal is the authenticated identity attached to a request
// after a device token has been validated.
type DevicePrincipal struct {
	DeviceID   uuid.UUID
	HardwareID string
}

// NewDevicePrincipalFromClaims builds a DevicePrincipal from validated
// device claims.
func NewDevicePrincipalFromClaims(claims *Claims) (DevicePrincipal, error) {
	deviceID, err := uuid.Parse(claims.DeviceID)
	if err != nil {
		return DevicePrincipal{}, ErrMalformedToken
	}

	return DevicePrincipal{
		DeviceID:   deviceID,
		HardwareID: claims.HardwareID,
	}, nil
}
