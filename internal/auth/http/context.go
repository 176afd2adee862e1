// Package http provides HTTP middleware and handlers for authentication.
package http

import (
	"context"

	authDomain "github.com/allisson/airmon/internal/auth/domain"
)

// principalKey is a context key type for storing authenticated user principals.
type principalKey struct{}

// devicePrincipalKey is a context key type for storing authenticated device principals.
type devicePrincipalKey struct{}

// WithPrincipal stores an authenticated user principal in the context.
// Called by the authentication middleware after successful token validation.
func WithPrincipal(ctx context.Context, principal *authDomain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// GetPrincipal retrieves the authenticated user principal from the context.
// Returns (principal, true) if present, or (nil, false) if no principal was set.
func GetPrincipal(ctx context.Context) (*authDomain.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(*authDomain.Principal)
	return principal, ok
}

// WithDevicePrincipal stores an authenticated device principal in the context.
// Called by the device authentication middleware after successful token validation.
func WithDevicePrincipal(ctx context.Context, principal *authDomain.DevicePrincipal) context.Context {
	return context.WithValue(ctx, devicePrincipalKey{}, principal)
}

// GetDevicePrincipal retrieves the authenticated device principal from the context.
// Returns (principal, true) if present, or (nil, false) if no principal was set.
func GetDevicePrincipal(ctx context.Context) (*authDomain.DevicePrincipal, bool) {
	principal, ok := ctx.Value(devicePrincipalKey{}).(*authDomain.DevicePrincipal)
	return principal, ok
}
