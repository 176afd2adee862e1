package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/airmon/internal/auth/http/dto"
	authUseCase "github.com/allisson/airmon/internal/auth/usecase"
	apperrors "github.com/allisson/airmon/internal/errors"
	"github.com/allisson/airmon/internal/httputil"
	customValidation "github.com/allisson/airmon/internal/validation"
)

// AuthHandler handles HTTP requests for session operations.
// It coordinates credential verification and token issuance with the
// auth use cases.
type AuthHandler struct {
	authUseCase       authUseCase.AuthUseCase
	deviceAuthUseCase authUseCase.DeviceAuthUseCase
	logger            *slog.Logger
}

// NewAuthHandler creates a new auth handler with required dependencies.
func NewAuthHandler(
	authUC authUseCase.AuthUseCase,
	deviceAuthUC authUseCase.DeviceAuthUseCase,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUseCase:       authUC,
		deviceAuthUseCase: deviceAuthUC,
		logger:            logger,
	}
}

// LoginHandler verifies user credentials and issues a session token.
// POST /v1/auth/login - No authentication required (this is the authentication endpoint).
// Returns 200 OK with the token and the authenticated user.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	input := authUseCase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}
	output, err := h.authUseCase.Login(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.LoginResponse{
		Token: output.Token,
		User:  dto.MapUserToResponse(output.User),
	}

	c.JSON(http.StatusOK, response)
}

// RefreshHandler exchanges a valid session token for a fresh one.
// POST /v1/auth/refresh - Requires a Bearer token in the Authorization header.
// Returns 200 OK with the replacement token.
func (h *AuthHandler) RefreshHandler(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	newToken, err := h.authUseCase.RefreshSession(c.Request.Context(), token)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.RefreshResponse{Token: newToken})
}

// VerifyHandler describes the principal carried by the presented token.
// GET /v1/auth/verify - Requires a Bearer token in the Authorization header.
// Returns 200 OK with the principal claims.
func (h *AuthHandler) VerifyHandler(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	principal, err := h.authUseCase.Verify(c.Request.Context(), token)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPrincipalToVerifyResponse(principal))
}

// DeviceLoginHandler verifies device possession factors and issues a device token.
// POST /v1/auth/device/login - No authentication required.
// Returns 200 OK with the token and the device record.
func (h *AuthHandler) DeviceLoginHandler(c *gin.Context) {
	var req dto.DeviceLoginRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	input := authUseCase.DeviceLoginInput{
		HardwareID: req.HardwareID,
		APIToken:   req.APIToken,
	}
	output, err := h.deviceAuthUseCase.Authenticate(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.DeviceLoginResponse{
		Token:  output.Token,
		Device: dto.MapDeviceToResponse(output.Device),
	}

	c.JSON(http.StatusOK, response)
}
