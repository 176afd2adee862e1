package domain

import (
	"github.com/google/uuid"
)

// TokenAlgorithm is the only signature algorithm accepted by the service.
// Pinning the algorithm prevents downgrade and alg-confusion attacks.
const TokenAlgorithm = "HS256"

// TokenType is the value of the typ header field.
const TokenType = "JWT"

// Header is the fixed two-field token header.
type Header struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

// NewHeader returns the header stamped into every issued token.
func NewHeader() Header {
	return Header{Alg: TokenAlgorithm, Typ: TokenType}
}

// Claims is the payload of a signed token. It is a closed set of typed
// fields rather than an open map so a user token and a device token are
// never structurally interchangeable. Claims are created fresh per
// issuance and never mutated after signing.
type Claims struct {
	// Subject is the user ID for user tokens.
	Subject string `json:"sub,omitempty"`
	// Email is the user email for user tokens.
	Email string `json:"email,omitempty"`
	// Role is the user role for user tokens.
	Role Role `json:"role,omitempty"`
	// UniversityID scopes a user token to its university.
	UniversityID string `json:"university_id,omitempty"`

	// DeviceID is the device ID for device tokens.
	DeviceID string `json:"device_id,omitempty"`
	// HardwareID is the device MAC address for device tokens.
	HardwareID string `json:"hardware_id,omitempty"`

	// Kind discriminates user tokens from device tokens.
	Kind TokenKind `json:"kind"`
	// IssuedAt is the issuance time in epoch seconds.
	IssuedAt int64 `json:"iat"`
	// ExpiresAt is the expiry time in epoch seconds.
	ExpiresAt int64 `json:"exp"`
	// Issuer identifies the service that issued the token.
	Issuer string `json:"iss"`
}

// NewUserClaims builds the claims for a user session token.
// Timestamps and issuer are stamped by the token service at issuance.
func NewUserClaims(userID uuid.UUID, email string, role Role, universityID uuid.UUID) Claims {
	return Claims{
		Subject:      userID.String(),
		Email:        email,
		Role:         role,
		UniversityID: universityID.String(),
		Kind:         TokenKindUser,
	}
}

// NewDeviceClaims builds the claims for a device token.
// Timestamps and issuer are stamped by the token service at issuance.
func NewDeviceClaims(deviceID uuid.UUID, hardwareID string) Claims {
	return Claims{
		DeviceID:   deviceID.String(),
		HardwareID: hardwareID,
		Kind:       TokenKindDevice,
	}
}
