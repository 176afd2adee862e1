// Package http provides HTTP handlers for alert queries.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/airmon/internal/alert/http/dto"
	alertUseCase "github.com/allisson/airmon/internal/alert/usecase"
	authHTTP "github.com/allisson/airmon/internal/auth/http"
	apperrors "github.com/allisson/airmon/internal/errors"
	"github.com/allisson/airmon/internal/httputil"
)

// AlertHandler handles HTTP requests for alert queries. Alerts are
// produced by the reading ingestion path and dispatched in the
// background; this handler only exposes their history.
type AlertHandler struct {
	alertUseCase alertUseCase.UseCase
	logger       *slog.Logger
}

// NewAlertHandler creates a new alert handler with required dependencies.
func NewAlertHandler(alertUC alertUseCase.UseCase, logger *slog.Logger) *AlertHandler {
	return &AlertHandler{
		alertUseCase: alertUC,
		logger:       logger,
	}
}

// ListHandler lists alerts for the caller's university, newest first.
// GET /v1/alerts?offset=N&limit=M - Requires authentication.
// Returns 200 OK with the alert list.
func (h *AlertHandler) ListHandler(c *gin.Context) {
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

	alerts, err := h.alertUseCase.ListAlerts(c.Request.Context(), principal.UniversityID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAlertsToListResponse(alerts))
}
