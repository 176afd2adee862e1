// Package http provides HTTP server implementation and request routing.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	alertHTTP "github.com/allisson/airmon/internal/alert/http"
	assignmentHTTP "github.com/allisson/airmon/internal/assignment/http"
	authDomain "github.com/allisson/airmon/internal/auth/domain"
	authHTTP "github.com/allisson/airmon/internal/auth/http"
	deviceHTTP "github.com/allisson/airmon/internal/device/http"
	readingHTTP "github.com/allisson/airmon/internal/reading/http"
	userHTTP "github.com/allisson/airmon/internal/user/http"
)

// RouterConfig holds the handlers and middlewares wired into the router.
//
// Optional middlewares (rate limiting, metrics) may be nil and are then
// skipped during route registration.
type RouterConfig struct {
	AuthHandler       *authHTTP.AuthHandler
	UserHandler       *userHTTP.UserHandler
	DeviceHandler     *deviceHTTP.DeviceHandler
	ReadingHandler    *readingHTTP.ReadingHandler
	AssignmentHandler *assignmentHTTP.AssignmentHandler
	AlertHandler      *alertHTTP.AlertHandler

	AuthMiddleware           gin.HandlerFunc
	DeviceAuthMiddleware     gin.HandlerFunc
	LoginRateLimitMiddleware gin.HandlerFunc
	MetricsMiddleware        gin.HandlerFunc

	CORSEnabled      bool
	CORSAllowOrigins string
}

// Server represents the HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	db     *sql.DB
	logger *slog.Logger
}

// NewServer creates a new HTTP server. The database handle is used only
// by the readiness probe and may be nil in tests.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the gin router and registers all API routes.
func (s *Server) SetupRouter(cfg RouterConfig) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MetricsMiddleware != nil {
		router.Use(cfg.MetricsMiddleware)
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")

	// Public authentication endpoints. Login endpoints are IP
	// rate-limited when the middleware is configured.
	auth := v1.Group("/auth")
	{
		if cfg.LoginRateLimitMiddleware != nil {
			auth.POST("/login", cfg.LoginRateLimitMiddleware, cfg.AuthHandler.LoginHandler)
			auth.POST("/device/login", cfg.LoginRateLimitMiddleware, cfg.AuthHandler.DeviceLoginHandler)
		} else {
			auth.POST("/login", cfg.AuthHandler.LoginHandler)
			auth.POST("/device/login", cfg.AuthHandler.DeviceLoginHandler)
		}
		auth.POST("/refresh", cfg.AuthHandler.RefreshHandler)
		auth.GET("/verify", cfg.AuthHandler.VerifyHandler)
	}

	users := v1.Group("/users", cfg.AuthMiddleware)
	{
		users.POST("",
			authHTTP.RequireRolesMiddleware(s.logger, authDomain.RoleAdmin),
			cfg.UserHandler.CreateHandler)
		users.GET("/:id", cfg.UserHandler.GetHandler)
	}

	devices := v1.Group("/devices", cfg.AuthMiddleware)
	{
		devices.POST("",
			authHTTP.RequireRolesMiddleware(s.logger, authDomain.RoleAdmin, authDomain.RoleOperator),
			cfg.DeviceHandler.CreateHandler)
		devices.GET("", cfg.DeviceHandler.ListHandler)
		devices.GET("/:id", cfg.DeviceHandler.GetHandler)
		devices.DELETE("/:id",
			authHTTP.RequireRolesMiddleware(s.logger, authDomain.RoleAdmin),
			cfg.DeviceHandler.DeleteHandler)
	}

	readings := v1.Group("/readings")
	{
		// Ingestion is authenticated by device tokens, listing by
		// user sessions.
		readings.POST("", cfg.DeviceAuthMiddleware, cfg.ReadingHandler.IngestHandler)
		readings.GET("", cfg.AuthMiddleware, cfg.ReadingHandler.ListHandler)
	}

	assignments := v1.Group("/assignments", cfg.AuthMiddleware)
	{
		assignments.POST("",
			authHTTP.RequireRolesMiddleware(s.logger, authDomain.RoleAdmin, authDomain.RoleOperator),
			cfg.AssignmentHandler.CreateHandler)
		assignments.GET("", cfg.AssignmentHandler.ListHandler)
		assignments.POST("/:id/complete", cfg.AssignmentHandler.CompleteHandler)
	}

	alerts := v1.Group("/alerts", cfg.AuthMiddleware)
	{
		alerts.GET("", cfg.AlertHandler.ListHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic,
// checking the database connection.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"database": "ok"}

	if s.db == nil {
		components["database"] = "error"
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Error("readiness check failed", slog.String("error", err.Error()))
		components["database"] = "error"
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}
