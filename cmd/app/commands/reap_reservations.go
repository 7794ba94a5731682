package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// ReservationReaper performs one sweep of expired reservations.
type ReservationReaper interface {
	RunOnce(ctx context.Context) (int, error)
}

// RunReapReservations releases the stock of every expired RESERVED reservation once,
// publishing inventory-failed for each affected order.
//
// Requirements: Database must be migrated and accessible.
func RunReapReservations(
	ctx context.Context,
	reaper ReservationReaper,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	released, err := reaper.RunOnce(ctx)
	if err != nil {
		return fmt.Errorf("failed to release expired reservations: %w", err)
	}

	logger.Info("reservation sweep completed", slog.Int("orders", released))

	return writeResult(
		writer,
		format,
		fmt.Sprintf("Released expired reservations of %d order(s)", released),
		map[string]any{"orders": released},
	)
}
