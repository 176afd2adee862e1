// Package http provides HTTP handlers for air-quality reading ingest and queries.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/airmon/internal/auth/http"
	apperrors "github.com/allisson/airmon/internal/errors"
	"github.com/allisson/airmon/internal/httputil"
	"github.com/allisson/airmon/internal/reading/http/dto"
	readingUseCase "github.com/allisson/airmon/internal/reading/usecase"
	customValidation "github.com/allisson/airmon/internal/validation"
)

// ReadingHandler handles HTTP requests for reading operations.
type ReadingHandler struct {
	readingUseCase readingUseCase.UseCase
	logger         *slog.Logger
}

// NewReadingHandler creates a new reading handler with required dependencies.
func NewReadingHandler(readingUC readingUseCase.UseCase, logger *slog.Logger) *ReadingHandler {
	return &ReadingHandler{
		readingUseCase: readingUC,
		logger:         logger,
	}
}

// IngestHandler records a measurement from an authenticated sensor device.
// POST /v1/readings - Requires a device token; the device identity comes
// from the token, never from the payload.
// Returns 201 Created with the stored reading including its level.
func (h *ReadingHandler) IngestHandler(c *gin.Context) {
	principal, ok := authHTTP.GetDevicePrincipal(c.Request.Context())
	if !ok || principal == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.IngestReadingRequest

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

	input := readingUseCase.IngestReadingInput{
		CO2PPM:       req.CO2PPM,
		PM25:         req.PM25,
		TemperatureC: req.TemperatureC,
		HumidityPct:  req.HumidityPct,
		RecordedAt:   req.RecordedAt,
	}
	reading, err := h.readingUseCase.IngestReading(c.Request.Context(), principal.DeviceID, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapReadingToResponse(reading))
}

// ListHandler lists readings for the caller's university, newest first.
// GET /v1/readings?offset=N&limit=M - Requires authentication.
// Returns 200 OK with the reading list.
func (h *ReadingHandler) ListHandler(c *gin.Context) {
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

	readings, err := h.readingUseCase.ListReadings(c.Request.Context(), principal.UniversityID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapReadingsToListResponse(readings))
}
