package usecase

import (
	"context"
	"log/slog"
	"time"
)

// Reaper periodically releases reservations that outlived their TTL, so stock held by an
// abandoned saga returns to available stock and the order is cancelled.
type Reaper struct {
	useCase  InventoryUseCase
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

// NewReaper creates a Reaper that sweeps every interval.
func NewReaper(useCase InventoryUseCase, interval time.Duration, logger *slog.Logger) *Reaper {
	return &Reaper{
		useCase:  useCase,
		interval: interval,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Start runs sweeps until ctx is cancelled.
func (r *Reaper) Start(ctx context.Context) error {
	r.logger.Info("starting reservation reaper", slog.Duration("interval", r.interval))

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("stopping reservation reaper")
			return ctx.Err()
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil {
				r.logger.Error("failed to release expired reservations", slog.Any("error", err))
			}
		}
	}
}

// RunOnce performs a single sweep and returns the number of orders released.
func (r *Reaper) RunOnce(ctx context.Context) (int, error) {
	released, err := r.useCase.ReleaseExpiredReservations(ctx, r.now())
	if err != nil {
		return released, err
	}

	if released > 0 {
		r.logger.Info("released expired reservations", slog.Int("orders", released))
	}
	return released, nil
}
