package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	alertHTTP "github.com/allisson/airmon/internal/alert/http"
	assignmentHTTP "github.com/allisson/airmon/internal/assignment/http"
	authHTTP "github.com/allisson/airmon/internal/auth/http"
	deviceHTTP "github.com/allisson/airmon/internal/device/http"
	"github.com/allisson/airmon/internal/http"
	"github.com/allisson/airmon/internal/metrics"
	readingHTTP "github.com/allisson/airmon/internal/reading/http"
	userHTTP "github.com/allisson/airmon/internal/user/http"
)

// initHTTPServer creates the HTTP server with all handlers and middlewares wired.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	authUseCase, err := c.AuthUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for http server: %w", err)
	}

	deviceAuthUseCase, err := c.DeviceAuthUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get device auth use case for http server: %w", err)
	}

	tokenService, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for http server: %w", err)
	}

	userUseCase, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for http server: %w", err)
	}

	deviceUseCase, err := c.DeviceUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get device use case for http server: %w", err)
	}

	readingUseCase, err := c.ReadingUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get reading use case for http server: %w", err)
	}

	assignmentUseCase, err := c.AssignmentUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment use case for http server: %w", err)
	}

	alertUseCase, err := c.AlertUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get alert use case for http server: %w", err)
	}

	var loginRateLimitMiddleware gin.HandlerFunc
	if c.config.RateLimitLoginEnabled {
		loginRateLimitMiddleware = authHTTP.LoginRateLimitMiddleware(
			c.config.RateLimitLoginRequestsPerSec,
			c.config.RateLimitLoginBurst,
			logger,
		)
	}

	var metricsMiddleware gin.HandlerFunc
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}
	if provider != nil {
		metricsMiddleware = metrics.HTTPMetricsMiddleware(provider.MeterProvider(), c.config.MetricsNamespace)
	}

	server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, logger)
	server.SetupRouter(http.RouterConfig{
		AuthHandler:       authHTTP.NewAuthHandler(authUseCase, deviceAuthUseCase, logger),
		UserHandler:       userHTTP.NewUserHandler(userUseCase, logger),
		DeviceHandler:     deviceHTTP.NewDeviceHandler(deviceUseCase, logger),
		ReadingHandler:    readingHTTP.NewReadingHandler(readingUseCase, logger),
		AssignmentHandler: assignmentHTTP.NewAssignmentHandler(assignmentUseCase, logger),
		AlertHandler:      alertHTTP.NewAlertHandler(alertUseCase, logger),

		AuthMiddleware:           authHTTP.AuthenticationMiddleware(authUseCase, logger),
		DeviceAuthMiddleware:     authHTTP.DeviceAuthenticationMiddleware(tokenService, logger),
		LoginRateLimitMiddleware: loginRateLimitMiddleware,
		MetricsMiddleware:        metricsMiddleware,

		CORSEnabled:      c.config.CORSEnabled,
		CORSAllowOrigins: c.config.CORSAllowOrigins,
	})

	return server, nil
}
