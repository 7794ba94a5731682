// Package commands implements the CLI subcommands of a saga participant.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"

	"github.com/allisson/ordersaga/internal/app"
)

// Output formats accepted by the one-shot maintenance commands.
const (
	FormatText = "text"
	FormatJSON = "json"
)

func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

func closeMigrate(m *migrate.Migrate, logger *slog.Logger) {
	if sourceErr, dbErr := m.Close(); sourceErr != nil || dbErr != nil {
		logger.Error("failed to close migrate",
			slog.Any("source_error", sourceErr),
			slog.Any("database_error", dbErr),
		)
	}
}

// writeResult prints result as indented JSON for FormatJSON and text otherwise.
func writeResult(w io.Writer, format, text string, result map[string]any) error {
	if format != FormatJSON {
		_, err := fmt.Fprintln(w, text)
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
