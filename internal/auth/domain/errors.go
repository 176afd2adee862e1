package domain

import (
	"github.com/allisson/airmon/internal/errors"
)

// Authentication and authorization errors.
//
// Every token and credential failure wraps ErrUnauthorized so the HTTP
// boundary collapses them into a single opaque 401 response. The named
// errors exist for logs and metrics only and are never shown to clients,
// which would otherwise give attackers an enumeration oracle.
var (
	// ErrMalformedToken indicates a token that is structurally invalid
	// (wrong segment count, bad base64, unparseable header or claims).
	ErrMalformedToken = errors.Wrap(errors.ErrUnauthorized, "malformed token")

	// ErrSignatureMismatch indicates the token signature does not match
	// the signature computed with the configured signing key.
	ErrSignatureMismatch = errors.Wrap(errors.ErrUnauthorized, "token signature mismatch")

	// ErrTokenExpired indicates the token expiry timestamp has passed.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "token expired")

	// ErrIssuerMismatch indicates the token was issued by a different issuer.
	ErrIssuerMismatch = errors.Wrap(errors.ErrUnauthorized, "token issuer mismatch")

	// ErrWrongTokenKind indicates a device token was used where a user
	// session was expected, or vice versa.
	ErrWrongTokenKind = errors.Wrap(errors.ErrUnauthorized, "wrong token kind")

	// ErrCredentialInvalid indicates a wrong password or possession token,
	// or an unknown principal. The two cases are intentionally not
	// distinguished outside internal logs.
	ErrCredentialInvalid = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrDeviceNotFound indicates no device is registered under the supplied
	// hardware identifier. Collapses to the same client-visible failure as
	// ErrCredentialInvalid.
	ErrDeviceNotFound = errors.Wrap(errors.ErrUnauthorized, "device not found")

	// ErrInsufficientRole indicates an authenticated user lacks the role
	// required by the requested operation.
	ErrInsufficientRole = errors.Wrap(errors.ErrForbidden, "insufficient role")

	// ErrUniversityAccessDenied indicates an authenticated user attempted to
	// access a resource belonging to another university.
	ErrUniversityAccessDenied = errors.Wrap(errors.ErrForbidden, "university access denied")
)
