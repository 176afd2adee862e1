package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	alertDomain "github.com/allisson/airmon/internal/alert/domain"
	"github.com/allisson/airmon/internal/alert/http/dto"
	authDomain "github.com/allisson/airmon/internal/auth/domain"
	authHTTP "github.com/allisson/airmon/internal/auth/http"
)

// mockAlertUseCase is a mock implementation of the alert UseCase for testing.
type mockAlertUseCase struct {
	mock.Mock
}

func (m *mockAlertUseCase) Start(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockAlertUseCase) DispatchAlerts(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockAlertUseCase) ListAlerts(
	ctx context.Context,
	universityID uuid.UUID,
	offset, limit int,
) ([]*alertDomain.Alert, error) {
	args := m.Called(ctx, universityID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*alertDomain.Alert), args.Error(1)
}

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestAlertHandler_ListHandler(t *testing.T) {
	newContext := func(principal *authDomain.Principal) (*gin.Context, *httptest.ResponseRecorder) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/v1/alerts", nil)
		if principal != nil {
			ctx := authHTTP.WithPrincipal(c.Request.Context(), principal)
			c.Request = c.Request.WithContext(ctx)
		}
		return c, w
	}

	t.Run("Success_ScopedToOwnUniversity", func(t *testing.T) {
		mockUC := &mockAlertUseCase{}
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		handler := NewAlertHandler(mockUC, logger)

		universityID := uuid.Must(uuid.NewV7())
		alerts := []*alertDomain.Alert{
			{
				ID:           uuid.Must(uuid.NewV7()),
				ReadingID:    uuid.Must(uuid.NewV7()),
				DeviceID:     uuid.Must(uuid.NewV7()),
				UniversityID: universityID,
				Room:         "B-204",
				Message:      "poor air quality in B-204: CO2 1500 ppm, PM2.5 42.0 ug/m3",
				Status:       alertDomain.AlertStatusNotified,
			},
		}

		mockUC.On("ListAlerts", mock.Anything, universityID, 0, 50).
			Return(alerts, nil).
			Once()

		c, w := newContext(&authDomain.Principal{
			UserID:       uuid.Must(uuid.NewV7()),
			Role:         authDomain.RoleOperator,
			UniversityID: universityID,
		})

		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListAlertsResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Len(t, response.Data, 1)
		assert.Equal(t, "notified", response.Data[0].Status)

		mockUC.AssertExpectations(t)
	})

	t.Run("Error_NoPrincipal", func(t *testing.T) {
		mockUC := &mockAlertUseCase{}
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		handler := NewAlertHandler(mockUC, logger)

		c, w := newContext(nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUC.AssertNotCalled(t, "ListAlerts")
	})
}
