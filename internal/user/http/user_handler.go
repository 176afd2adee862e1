// Package http provides HTTP handlers for user management operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/allisson/airmon/internal/auth/domain"
	authHTTP "github.com/allisson/airmon/internal/auth/http"
	apperrors "github.com/allisson/airmon/internal/errors"
	"github.com/allisson/airmon/internal/httputil"
	"github.com/allisson/airmon/internal/user/http/dto"
	userUseCase "github.com/allisson/airmon/internal/user/usecase"
	customValidation "github.com/allisson/airmon/internal/validation"
)

// UserHandler handles HTTP requests for user management operations.
type UserHandler struct {
	userUseCase userUseCase.UseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler with required dependencies.
func NewUserHandler(userUC userUseCase.UseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUC,
		logger:      logger,
	}
}

// CreateHandler registers a new campus user.
// POST /v1/users - Requires the admin role.
// Returns 201 Created with the user record (password hash excluded).
func (h *UserHandler) CreateHandler(c *gin.Context) {
	var req dto.RegisterUserRequest

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
	input := userUseCase.RegisterUserInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Role:         req.Role,
		UniversityID: req.UniversityID,
	}
	user, err := h.userUseCase.RegisterUser(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapUserToResponse(user))
}

// GetHandler retrieves a user by ID.
// GET /v1/users/:id - Requires authentication; non-admins can only read
// users from their own university.
// Returns 200 OK with the user record.
func (h *UserHandler) GetHandler(c *gin.Context) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok || principal == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid user id: must be a valid UUID"),
			h.logger)
		return
	}

	user, err := h.userUseCase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Tenant boundary: admins read across universities, everyone else
	// stays inside their own
	if !principal.CanAccessUniversity(user.UniversityID) {
		httputil.HandleErrorGin(c, authDomain.ErrUniversityAccessDenied, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}
