// Package http provides HTTP server implementation and request handlers.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/panvault/internal/auth/http"
	authService "github.com/allisson/panvault/internal/auth/service"
	"github.com/allisson/panvault/internal/config"
	"github.com/allisson/panvault/internal/metrics"
	tokenizationHTTP "github.com/allisson/panvault/internal/tokenization/http"
)

// readinessTimeout bounds the time spent running all readiness checks.
const readinessTimeout = 2 * time.Second

// ReadinessCheck reports whether one dependency of the server can serve requests.
type ReadinessCheck func(ctx context.Context) error

// Server represents the HTTP server
type Server struct {
	server *http.Server
	router *gin.Engine
	checks map[string]ReadinessCheck
	logger *slog.Logger
}

// NewServer creates a new HTTP server. checks maps a component name to its readiness
// check; a nil check always reports the component as failing.
func NewServer(
	checks map[string]ReadinessCheck,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		checks: checks,
		logger: logger,
		server: newHTTPServer(host, port, nil),
	}
}

// newHTTPServer returns an http.Server with the timeouts shared by the API and
// metrics listeners.
func newHTTPServer(host string, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// SetupRouter builds the gin engine with the vault routes and middleware stack.
// Rate limiting runs before authentication so that credential guessing is throttled.
// The rate limiter's cleanup goroutine stops when ctx is cancelled.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	vaultHandler *tokenizationHTTP.VaultHandler,
	credentialService authService.CredentialService,
	metricsProvider *metrics.Provider,
	metricsNamespace string,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), metricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	vault := router.Group("")
	if cfg.RateLimitEnabled {
		vault.Use(authHTTP.RateLimitMiddleware(
			ctx,
			cfg.RateLimitRequestsPerSec,
			cfg.RateLimitBurst,
			s.logger,
		))
	}
	vault.Use(authHTTP.AuthenticationMiddleware(credentialService, s.logger))
	{
		vault.POST("/tokenize", vaultHandler.TokenizeHandler)
		vault.POST("/detokenize", vaultHandler.DetokenizeHandler)
		vault.POST("/charge", vaultHandler.ChargeHandler)
		vault.GET("/purchases", vaultHandler.ListPurchasesHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// healthHandler reports that the process is up.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler runs every readiness check and reports each component as "ok" or
// "error". Any failure yields 503.
func (s *Server) readinessHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	names := make([]string, 0, len(s.checks))
	for name := range s.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	ready := true
	components := make(map[string]string, len(names))
	for _, name := range names {
		check := s.checks[name]
		if check == nil {
			components[name] = "error"
			ready = false
			continue
		}
		if err := check(ctx); err != nil {
			s.logger.Warn("readiness check failed",
				slog.String("component", name),
				slog.Any("error", err),
			)
			components[name] = "error"
			ready = false
			continue
		}
		components[name] = "ok"
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "components": components})
}

// Start starts the HTTP server. It blocks until the server stops.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured: call SetupRouter first")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
