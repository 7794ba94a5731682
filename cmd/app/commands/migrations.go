package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/allisson/ordersaga/internal/config"
)

// MigrationsPath returns the migration source of service for the database driver.
// Each service owns its schema under migrations/<service>/<postgresql|mysql>.
func MigrationsPath(driver, service string) (string, error) {
	switch service {
	case config.ServiceOrder, config.ServiceInventory, config.ServicePayment:
	default:
		return "", fmt.Errorf("unsupported service: %s", service)
	}

	dialect := "postgresql"
	if driver == "mysql" {
		dialect = "mysql"
	}
	return fmt.Sprintf("file://migrations/%s/%s", service, dialect), nil
}

// RunMigrations applies every pending migration of service. Returns nil if there is
// nothing to apply.
func RunMigrations(logger *slog.Logger, driver, connectionString, service string) error {
	logger.Info("running database migrations",
		slog.String("driver", driver),
		slog.String("service", service),
	)

	migrationsPath, err := MigrationsPath(driver, service)
	if err != nil {
		return err
	}

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
