// Package http provides HTTP handlers for cleaning assignment operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/airmon/internal/assignment/http/dto"
	assignmentUseCase "github.com/allisson/airmon/internal/assignment/usecase"
	authHTTP "github.com/allisson/airmon/internal/auth/http"
	apperrors "github.com/allisson/airmon/internal/errors"
	"github.com/allisson/airmon/internal/httputil"
	customValidation "github.com/allisson/airmon/internal/validation"
)

// AssignmentHandler handles HTTP requests for assignment operations.
type AssignmentHandler struct {
	assignmentUseCase assignmentUseCase.UseCase
	logger            *slog.Logger
}

// NewAssignmentHandler creates a new assignment handler with required dependencies.
func NewAssignmentHandler(assignmentUC assignmentUseCase.UseCase, logger *slog.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentUseCase: assignmentUC,
		logger:            logger,
	}
}

// CreateHandler creates a cleaning assignment in the caller's university.
// POST /v1/assignments - Requires the admin or operator role. The target
// user must be a cleaner in the same university.
// Returns 201 Created with the assignment record.
func (h *AssignmentHandler) CreateHandler(c *gin.Context) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok || principal == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.CreateAssignmentRequest

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

	input := assignmentUseCase.CreateAssignmentInput{
		Room:             req.Room,
		AssignedToUserID: req.AssignedToUserID,
		ReadingID:        req.ReadingID,
		Description:      req.Description,
	}
	assignment, err := h.assignmentUseCase.CreateAssignment(c.Request.Context(), principal, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapAssignmentToResponse(assignment))
}

// ListHandler lists assignments for the caller's university.
// GET /v1/assignments?offset=N&limit=M - Requires authentication.
// Returns 200 OK with the assignment list.
func (h *AssignmentHandler) ListHandler(c *gin.Context) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok || principal == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	assignments, err := h.assignmentUseCase.ListAssignments(c.Request.Context(), principal.UniversityID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAssignmentsToListResponse(assignments))
}

// CompleteHandler marks an assignment as completed.
// POST /v1/assignments/:id/complete - Requires authentication; only the
// assigned cleaner or an admin may complete an assignment, and completing
// twice is a conflict.
// Returns 200 OK with the completed assignment.
func (h *AssignmentHandler) CompleteHandler(c *gin.Context) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok || principal == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	assignmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid assignment id: must be a valid UUID"),
			h.logger)
		return
	}

	assignment, err := h.assignmentUseCase.CompleteAssignment(c.Request.Context(), principal, assignmentID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAssignmentToResponse(assignment))
}
