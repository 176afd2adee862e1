// Package service provides technical services for authentication operations.
//
// This package implements password and possession-token hashing, the
// signed-token wire codec, and HMAC-SHA256 token issuance and validation.
package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/airmon/internal/auth/domain"
)

// PasswordService defines one-way hashing and verification of plaintext
// secrets (user passwords and device possession tokens). Implementations
// must use a salted, computationally expensive hash function; hashing the
// same secret twice must produce distinct records.
type PasswordService interface {
	// HashPassword hashes a plain text secret using a secure hashing algorithm.
	// The returned record is self-describing (algorithm, cost, salt, digest).
	HashPassword(plainPassword string) (hashedPassword string, err error)

	// VerifyPassword compares a plain text secret against a hashed record.
	// Comparison is constant-time. Malformed or truncated records fail
	// closed: the method returns false and never an error.
	VerifyPassword(plainPassword string, hashedPassword string) bool

	// GeneratePossessionToken creates a new cryptographically secure random
	// possession token for a device. Returns both the plain token (shown
	// once at registration, never re-displayed) and the hashed version
	// (stored in the database).
	GeneratePossessionToken() (plainToken string, hashedToken string, err error)
}

// DecodedToken is the structural decomposition of a token string.
// The signature has not been verified; callers must treat the contents
// as untrusted until the token service has validated it.
type DecodedToken struct {
	Header    domain.Header
	Claims    domain.Claims
	Signature []byte
	// SigningInput is the first two segments as received, the exact bytes
	// the signature was computed over.
	SigningInput string
}

// TokenCodec encodes and decodes the three-part signed-token structure.
// Pure encoding, no business meaning attached.
type TokenCodec interface {
	// Encode serializes header and claims to canonical compact JSON and
	// base64url-encodes both segments without padding, returning
	// "headerPart.claimsPart" (unsigned).
	Encode(header domain.Header, claims domain.Claims) (string, error)

	// Decode splits a token on exactly two dots and decodes all three
	// segments. Any other segment count, invalid base64 or unparseable
	// JSON fails with domain.ErrMalformedToken.
	Decode(token string) (*DecodedToken, error)
}

// TokenService builds and validates signed tokens. Issuance and validation
// are pure, stateless and CPU-bound; instances are safe for concurrent use.
type TokenService interface {
	// Issue signs the claims with the configured key, stamping issued-at,
	// expires-at (now+ttl) and issuer. Returns the full token string.
	Issue(claims domain.Claims, ttl time.Duration) (string, error)

	// IssueDeviceToken issues a device-kind token with the fixed device
	// TTL, independent of the TTL used for user sessions.
	IssueDeviceToken(deviceID uuid.UUID, hardwareID string) (string, error)

	// Validate decodes the token, verifies the signature in constant time,
	// and checks expiry and issuer. Returns the claims on success.
	Validate(token string) (*domain.Claims, error)

	// ValidateUserToken validates the token and additionally rejects any
	// token whose kind is not "user".
	ValidateUserToken(token string) (*domain.Claims, error)

	// ValidateDeviceToken validates the token and additionally rejects any
	// token whose kind is not "device".
	ValidateDeviceToken(token string) (*domain.Claims, error)

	// Refresh validates a user token and re-issues a new one carrying the
	// same subject, role and university claims with fresh timestamps.
	// Device tokens are never refreshed; devices must re-authenticate with
	// their possession token instead of silently extending trust.
	Refresh(token string) (string, error)
}
