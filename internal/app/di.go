// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	authService "github.com/allisson/panvault/internal/auth/service"
	authUseCase "github.com/allisson/panvault/internal/auth/usecase"
	"github.com/allisson/panvault/internal/config"
	cryptoDomain "github.com/allisson/panvault/internal/crypto/domain"
	cryptoService "github.com/allisson/panvault/internal/crypto/service"
	"github.com/allisson/panvault/internal/database"
	"github.com/allisson/panvault/internal/http"
	"github.com/allisson/panvault/internal/metrics"
	tokenizationHTTP "github.com/allisson/panvault/internal/tokenization/http"
	"github.com/allisson/panvault/internal/tokenization/repository/bolt"
	tokenizationService "github.com/allisson/panvault/internal/tokenization/service"
	tokenizationUseCase "github.com/allisson/panvault/internal/tokenization/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	boltDB          *bolt.DB
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Keys and crypto
	vaultKey       *cryptoDomain.VaultKey
	panCipher      cryptoService.PANCipher
	tokenGenerator tokenizationService.TokenGenerator

	// Repositories
	mappingStore   tokenizationUseCase.MappingStore
	purchaseLedger tokenizationUseCase.PurchaseLedger
	storeCheck     http.ReadinessCheck
	auditLogRepo   auditLogRepository

	// Services and use cases
	credentialService authService.CredentialService
	auditSigner       authService.AuditSigner
	auditLogUseCase   authUseCase.AuditLogUseCase
	vaultUseCase      tokenizationUseCase.VaultUseCase
	vaultHandler      *tokenizationHTTP.VaultHandler

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                    sync.Mutex
	loggerInit            sync.Once
	dbInit                sync.Once
	boltDBInit            sync.Once
	metricsProviderInit   sync.Once
	businessMetricsInit   sync.Once
	vaultKeyInit          sync.Once
	panCipherInit         sync.Once
	tokenGeneratorInit    sync.Once
	storesInit            sync.Once
	auditLogRepoInit      sync.Once
	credentialServiceInit sync.Once
	auditSignerInit       sync.Once
	auditLogUseCaseInit   sync.Once
	vaultUseCaseInit      sync.Once
	vaultHandlerInit      sync.Once
	httpServerInit        sync.Once
	metricsServerInit     sync.Once
	initErrors            map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection used by the postgres and mysql stores.
// It creates and configures the database connection on first access.
func (c *Container) DB() (*sql.DB, error) {
	var err error
	c.dbInit.Do(func() {
		c.db, err = c.initDB()
		if err != nil {
			c.initErrors["db"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// BoltDB returns the bbolt vault file used by the default store.
func (c *Container) BoltDB() (*bolt.DB, error) {
	var err error
	c.boltDBInit.Do(func() {
		c.boltDB, err = bolt.Open(c.config.StorePath)
		if err != nil {
			err = fmt.Errorf("failed to open bolt store: %w", err)
			c.initErrors["boltDB"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["boltDB"]; exists {
		return nil, storedErr
	}
	return c.boltDB, nil
}

// MetricsProvider returns the OpenTelemetry metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			err = fmt.Errorf("failed to create metrics provider: %w", err)
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. A no-op recorder is returned
// when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// HTTPServer returns the HTTP server instance with its router configured.
func (c *Container) HTTPServer(ctx context.Context) (*http.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer(ctx)
		if err != nil {
			c.initErrors["httpServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}

	c.metricsServerInit.Do(func() {
		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// Servers stop first, then the audit log drains, then stores close.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.auditLogUseCase != nil {
		if err := c.auditLogUseCase.Close(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("audit log close: %w", err))
		}
	}

	if c.auditLogRepo != nil {
		if err := c.auditLogRepo.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("audit log file close: %w", err))
		}
	}

	if c.boltDB != nil {
		if err := c.boltDB.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("bolt store close: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.vaultKey != nil {
		c.vaultKey.Close()
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %w", errors.Join(shutdownErrors...))
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	if !c.config.UsesDatabase() {
		return nil, fmt.Errorf("store driver %q does not use a database", c.config.StoreDriver)
	}

	db, err := database.Connect(context.Background(), database.Config{
		Driver:             c.config.StoreDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initBusinessMetrics creates the business metrics recorder from the provider.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

// initHTTPServer creates the HTTP server with all its dependencies.
func (c *Container) initHTTPServer(ctx context.Context) (*http.Server, error) {
	logger := c.Logger()

	vaultHandler, err := c.VaultHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get vault handler for http server: %w", err)
	}

	credentialService, err := c.CredentialService()
	if err != nil {
		return nil, fmt.Errorf("failed to get credential service for http server: %w", err)
	}

	storeCheck, err := c.StoreReadinessCheck()
	if err != nil {
		return nil, fmt.Errorf("failed to get store check for http server: %w", err)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	server := http.NewServer(
		map[string]http.ReadinessCheck{
			"store":     storeCheck,
			"audit_log": c.auditLogCheck,
		},
		c.config.ServerHost,
		c.config.ServerPort,
		logger,
	)
	server.SetupRouter(ctx, c.config, vaultHandler, credentialService, provider, c.config.MetricsNamespace)

	return server, nil
}
