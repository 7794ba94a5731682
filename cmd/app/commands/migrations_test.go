package commands

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsPath(t *testing.T) {
	tests := []struct {
		driver   string
		service  string
		expected string
	}{
		{"postgres", "order", "file://migrations/order/postgresql"},
		{"postgres", "inventory", "file://migrations/inventory/postgresql"},
		{"mysql", "payment", "file://migrations/payment/mysql"},
		{"mysql", "order", "file://migrations/order/mysql"},
	}

	for _, tt := range tests {
		t.Run(tt.driver+"-"+tt.service, func(t *testing.T) {
			path, err := MigrationsPath(tt.driver, tt.service)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, path)
		})
	}

	t.Run("unsupported-service", func(t *testing.T) {
		_, err := MigrationsPath("postgres", "shipping")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported service")
	})
}

func TestRunMigrations(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	t.Run("invalid-driver", func(t *testing.T) {
		err := RunMigrations(logger, "invalid", "postgres://localhost", "order")
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to create migrate instance")
	})

	t.Run("invalid-connection-string", func(t *testing.T) {
		err := RunMigrations(logger, "postgres", "invalid-connection-string", "inventory")
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to create migrate instance")
	})

	t.Run("unsupported-service", func(t *testing.T) {
		err := RunMigrations(logger, "postgres", "postgres://localhost", "shipping")
		require.Error(t, err)
		require.Contains(t, err.Error(), "unsupported service")
	})
}
