package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/allisson/panvault/internal/config"
)

// migrationsPaths maps the SQL store drivers to their migration sources.
var migrationsPaths = map[string]string{
	config.StoreDriverPostgres: "file://migrations/postgresql",
	config.StoreDriverMySQL:    "file://migrations/mysql",
}

// RunMigrations applies all pending migrations for the postgres or mysql store.
// The bolt, file and memory drivers create their buckets and files on open and have
// nothing to migrate. Returns nil if no migrations are pending.
func RunMigrations(logger *slog.Logger, driver, connectionString string) error {
	migrationsPath, ok := migrationsPaths[driver]
	if !ok {
		return fmt.Errorf("store driver %q has no migrations (expected postgres or mysql)", driver)
	}

	logger.Info("running database migrations",
		slog.String("driver", driver),
	)

	m, err := migrate.New(migrationsPath, connectionString)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}
