// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	customValidation "github.com/allisson/panvault/internal/validation"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreDriverBolt     = "bolt"
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
	StoreDriverMySQL    = "mysql"
	StoreDriverMemory   = "memory"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// VaultKey is the hex-encoded 32-byte key that encrypts every stored PAN.
	VaultKey string
	// VaultAlgorithm selects the AEAD ("aes-gcm" or "chacha20-poly1305").
	VaultAlgorithm string

	// TokenFormat selects the token generator ("alphanumeric", "hex", "uuid", "luhn").
	TokenFormat string
	// TokenLength is the generated token length. Zero uses the format default.
	TokenLength int

	// StoreDriver selects the mapping store and ledger backend.
	StoreDriver string
	// StorePath is the bbolt database file used by the bolt driver.
	StorePath string
	// TokenMapPath is the token map document used by the file driver.
	TokenMapPath string
	// PurchasesPath is the purchase ledger document used by the file driver.
	PurchasesPath string

	// DBConnectionString is the connection string for the postgres and mysql drivers.
	DBConnectionString string
	// DBMaxOpenConnections is the maximum number of open connections to the database.
	DBMaxOpenConnections int
	// DBMaxIdleConnections is the maximum number of idle connections in the database pool.
	DBMaxIdleConnections int
	// DBConnMaxLifetime is the maximum amount of time a connection may be reused.
	DBConnMaxLifetime time.Duration

	// AuthTokenHash is the Argon2id hash of the merchant bearer token.
	AuthTokenHash string

	// AuditLogPath is the append-only audit log file.
	AuditLogPath string
	// AuditBufferSize is the number of audit lines queued before new ones are dropped.
	AuditBufferSize int

	// RateLimitEnabled indicates whether per-IP rate limiting is enabled.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the number of requests allowed per second per client IP.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size for rate limiting.
	RateLimitBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int

	// VaultAPIURL is the API base URL used by the merchant commands.
	VaultAPIURL string
	// MerchantToken is the bearer token sent by the merchant commands.
	MerchantToken string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost: env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort: env.GetInt("SERVER_PORT", 8000),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Vault
		VaultKey:       env.GetString("VAULT_KEY", ""),
		VaultAlgorithm: env.GetString("VAULT_ALGORITHM", "aes-gcm"),
		TokenFormat:    env.GetString("TOKEN_FORMAT", "alphanumeric"),
		TokenLength:    env.GetInt("TOKEN_LENGTH", 32),

		// Storage
		StoreDriver:   env.GetString("STORE_DRIVER", StoreDriverBolt),
		StorePath:     env.GetString("STORE_PATH", "data/vault.db"),
		TokenMapPath:  env.GetString("TOKEN_MAP_PATH", "data/token_map.json"),
		PurchasesPath: env.GetString("PURCHASES_PATH", "data/purchases.json"),

		// Database configuration
		DBConnectionString:   env.GetString("DB_CONNECTION_STRING", ""),
		DBMaxOpenConnections: env.GetInt("DB_MAX_OPEN_CONNECTIONS", 25),
		DBMaxIdleConnections: env.GetInt("DB_MAX_IDLE_CONNECTIONS", 5),
		DBConnMaxLifetime:    env.GetDuration("DB_CONN_MAX_LIFETIME", 5, time.Minute),

		// Auth
		AuthTokenHash: env.GetString("AUTH_TOKEN_HASH", ""),

		// Audit
		AuditLogPath:    env.GetString("AUDIT_LOG_PATH", "data/audit.log"),
		AuditBufferSize: env.GetInt("AUDIT_BUFFER_SIZE", 1024),

		// Rate Limiting
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "panvault"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),

		// Merchant client
		VaultAPIURL:   env.GetString("VAULT_API_URL", "http://localhost:8000"),
		MerchantToken: env.GetString("MERCHANT_TOKEN", ""),
	}
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	case "info", "warn", "error":
		return "release"
	default:
		return "release"
	}
}

// Validate checks the settings the vault needs before it can serve requests.
// Merchant commands only need VaultAPIURL and do not call it.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.ServerPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.VaultKey,
			validation.Required.Error("VAULT_KEY is required"),
			customValidation.NoWhitespace,
			customValidation.Hex,
			validation.Length(64, 64),
		),
		validation.Field(&c.VaultAlgorithm, validation.In("aes-gcm", "chacha20-poly1305")),
		validation.Field(&c.TokenFormat, validation.In("alphanumeric", "hex", "uuid", "luhn")),
		validation.Field(&c.TokenLength, validation.Min(0)),
		validation.Field(&c.StoreDriver, validation.Required, validation.In(
			StoreDriverBolt, StoreDriverFile, StoreDriverPostgres, StoreDriverMySQL, StoreDriverMemory,
		)),
		validation.Field(&c.StorePath,
			validation.When(c.StoreDriver == StoreDriverBolt, validation.Required, customValidation.NotBlank)),
		validation.Field(&c.TokenMapPath,
			validation.When(c.StoreDriver == StoreDriverFile, validation.Required, customValidation.NotBlank)),
		validation.Field(&c.PurchasesPath,
			validation.When(c.StoreDriver == StoreDriverFile, validation.Required, customValidation.NotBlank)),
		validation.Field(&c.DBConnectionString, validation.When(c.UsesDatabase(), validation.Required)),
		validation.Field(&c.AuthTokenHash, validation.Required.Error("AUTH_TOKEN_HASH is required")),
		validation.Field(&c.AuditLogPath, validation.Required, customValidation.NotBlank),
		validation.Field(&c.AuditBufferSize, validation.Required, validation.Min(1)),
		validation.Field(&c.RateLimitRequestsPerSec, validation.When(c.RateLimitEnabled, validation.Required, validation.Min(0.0))),
		validation.Field(&c.RateLimitBurst, validation.When(c.RateLimitEnabled, validation.Required, validation.Min(1))),
	)
	return customValidation.WrapValidationError(err)
}

// UsesDatabase reports whether the store driver needs a SQL connection.
func (c *Config) UsesDatabase() bool {
	return c.StoreDriver == StoreDriverPostgres || c.StoreDriver == StoreDriverMySQL
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
