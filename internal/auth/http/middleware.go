package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/airmon/internal/auth/domain"
	authService "github.com/allisson/airmon/internal/auth/service"
	authUseCase "github.com/allisson/airmon/internal/auth/usecase"
	apperrors "github.com/allisson/airmon/internal/errors"
	"github.com/allisson/airmon/internal/httputil"
)

// bearerToken extracts the Bearer token from the Authorization header.
// The "bearer" prefix is matched case-insensitively. Returns ("", false)
// when the header is missing or malformed.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	const bearerPrefix = "bearer "
	if len(authHeader) < len(bearerPrefix) ||
		!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := authHeader[len(bearerPrefix):]
	if token == "" {
		return "", false
	}
	return token, true
}

// AuthenticationMiddleware authenticates user sessions via Bearer token.
//
// On success the user principal is stored in the request context and can
// be read with GetPrincipal(). All token failures (missing header,
// malformed token, bad signature, expiry, wrong kind) answer with the
// same opaque 401.
func AuthenticationMiddleware(
	authUC authUseCase.AuthUseCase,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			logger.Debug("authentication failed: missing or malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		principal, err := authUC.Verify(c.Request.Context(), token)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithPrincipal(c.Request.Context(), principal)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("user_id", principal.UserID.String()),
			slog.String("role", string(principal.Role)))

		c.Next()
	}
}

// DeviceAuthenticationMiddleware authenticates sensor devices via Bearer token.
//
// Only device-kind tokens pass; a valid user session presented here is
// rejected with the same opaque 401 as any other failure. On success the
// device principal is stored in the request context.
func DeviceAuthenticationMiddleware(
	tokenService authService.TokenService,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			logger.Debug("device authentication failed: missing or malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		claims, err := tokenService.ValidateDeviceToken(token)
		if err != nil {
			logger.Debug("device authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		principal, err := authDomain.NewDevicePrincipalFromClaims(claims)
		if err != nil {
			logger.Debug("device authentication failed: bad claims", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithDevicePrincipal(c.Request.Context(), &principal)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("device authentication successful",
			slog.String("device_id", principal.DeviceID.String()))

		c.Next()
	}
}

// RequireRolesMiddleware authorizes an authenticated user against a role set.
//
// Must run after AuthenticationMiddleware. A missing principal means the
// middleware chain is miswired and answers 401; an authenticated user
// outside the allowed set answers 403.
func RequireRolesMiddleware(logger *slog.Logger, allowedRoles ...authDomain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c.Request.Context())
		if !ok || principal == nil {
			logger.Debug("authorization failed: no authenticated principal in context")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		if !principal.HasRole(allowedRoles...) {
			logger.Debug("authorization failed: insufficient role",
				slog.String("user_id", principal.UserID.String()),
				slog.String("role", string(principal.Role)))
			httputil.HandleErrorGin(c, authDomain.ErrInsufficientRole, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
