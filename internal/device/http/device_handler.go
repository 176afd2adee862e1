// Package http provides HTTP handlers for sensor device management.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/allisson/airmon/internal/auth/domain"
	authHTTP "github.com/allisson/airmon/internal/auth/http"
	"github.com/allisson/airmon/internal/device/http/dto"
	deviceUseCase "github.com/allisson/airmon/internal/device/usecase"
	apperrors "github.com/allisson/airmon/internal/errors"
	"github.com/allisson/airmon/internal/httputil"
	customValidation "github.com/allisson/airmon/internal/validation"
)

// DeviceHandler handles HTTP requests for device management operations.
type DeviceHandler struct {
	deviceUseCase deviceUseCase.UseCase
	logger        *slog.Logger
}

// NewDeviceHandler creates a new device handler with required dependencies.
func NewDeviceHandler(deviceUC deviceUseCase.UseCase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		deviceUseCase: deviceUC,
		logger:        logger,
	}
}

// CreateHandler registers a new sensor device.
// POST /v1/devices - Requires the admin or operator role. Operators may
// only register devices in their own university; admins may target any.
// Returns 201 Created with the device and the plain possession token.
// The token is shown exactly once and cannot be recovered afterwards.
func (h *DeviceHandler) CreateHandler(c *gin.Context) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok || principal == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.RegisterDeviceRequest

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

	// Default to the caller's university when none is given
	universityID := req.UniversityID
	if universityID == "" {
		universityID = principal.UniversityID.String()
	} else {
		target, err := uuid.Parse(universityID)
		if err != nil {
			httputil.HandleValidationErrorGin(c,
				fmt.Errorf("invalid university_id format: must be a valid UUID"),
				h.logger)
			return
		}
		if !principal.CanAccessUniversity(target) {
			httputil.HandleErrorGin(c, authDomain.ErrUniversityAccessDenied, h.logger)
			return
		}
	}

	input := deviceUseCase.RegisterDeviceInput{
		HardwareID:   req.HardwareID,
		Room:         req.Room,
		Model:        req.Model,
		UniversityID: universityID,
	}
	output, err := h.deviceUseCase.RegisterDevice(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.RegisterDeviceResponse{
		Device:   dto.MapDeviceToResponse(output.Device),
		APIToken: output.APIToken,
	}

	c.JSON(http.StatusCreated, response)
}

// ListHandler lists devices with pagination.
// GET /v1/devices?offset=N&limit=M - Requires authentication. Admins see
// every university; everyone else sees only their own.
// Returns 200 OK with the device list.
func (h *DeviceHandler) ListHandler(c *gin.Context) {
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

	var universityID *uuid.UUID
	if principal.Role != authDomain.RoleAdmin {
		universityID = &principal.UniversityID
	}

	devices, err := h.deviceUseCase.ListDevices(c.Request.Context(), universityID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDevicesToListResponse(devices))
}

// GetHandler retrieves a device by ID.
// GET /v1/devices/:id - Requires authentication; non-admins can only read
// devices from their own university.
// Returns 200 OK with the device record.
func (h *DeviceHandler) GetHandler(c *gin.Context) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok || principal == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid device id: must be a valid UUID"),
			h.logger)
		return
	}

	device, err := h.deviceUseCase.GetDeviceByID(c.Request.Context(), deviceID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if !principal.CanAccessUniversity(device.UniversityID) {
		httputil.HandleErrorGin(c, authDomain.ErrUniversityAccessDenied, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDeviceToResponse(device))
}

// DeleteHandler removes a device and its readings.
// DELETE /v1/devices/:id - Requires the admin role.
// Returns 204 No Content on success.
func (h *DeviceHandler) DeleteHandler(c *gin.Context) {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid device id: must be a valid UUID"),
			h.logger)
		return
	}

	if err := h.deviceUseCase.DeleteDevice(c.Request.Context(), deviceID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
