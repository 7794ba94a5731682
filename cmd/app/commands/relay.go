package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// OutboxRelay is the subset of the outbox relay used by the relay command.
type OutboxRelay interface {
	Start(ctx context.Context) error
	ProcessBatch(ctx context.Context) (int, error)
}

// RunRelay runs the outbox relay on its own so relays can be scaled apart from the API.
// With once set it publishes a single batch and reports the count.
func RunRelay(
	ctx context.Context,
	relay OutboxRelay,
	logger *slog.Logger,
	writer io.Writer,
	once bool,
	format string,
) error {
	if !once {
		if err := relay.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("outbox relay failed: %w", err)
		}
		return nil
	}

	published, err := relay.ProcessBatch(ctx)
	if err != nil {
		return fmt.Errorf("failed to process outbox batch: %w", err)
	}

	logger.Info("outbox batch processed", slog.Int("published", published))

	return writeResult(
		writer,
		format,
		fmt.Sprintf("Published %d outbox event(s)", published),
		map[string]any{"published": published},
	)
}
