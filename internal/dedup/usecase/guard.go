// Package usecase implements the idempotent consumer guard.
package usecase

import (
	"context"
	"errors"
	"log/slog"
)

// ProcessedEventRepository defines processed event marker operations.
type ProcessedEventRepository interface {
	TryInsert(ctx context.Context, eventKey string) (bool, error)
	Delete(ctx context.Context, eventKey string) error
}

// Guard makes event handlers idempotent. A key is claimed before the handler runs
// and released again if the handler fails, so a redelivered event either runs
// once more or is skipped.
type Guard interface {
	TryStartProcessing(ctx context.Context, eventKey string) (bool, error)
	MarkFailed(ctx context.Context, eventKey string) error
	Process(ctx context.Context, eventKey string, fn func(ctx context.Context) error) error
}

type guard struct {
	repo   ProcessedEventRepository
	logger *slog.Logger
}

// NewGuard creates a new Guard
func NewGuard(repo ProcessedEventRepository, logger *slog.Logger) Guard {
	return &guard{
		repo:   repo,
		logger: logger,
	}
}

// TryStartProcessing claims eventKey. It returns false when the key was already claimed.
func (g *guard) TryStartProcessing(ctx context.Context, eventKey string) (bool, error) {
	return g.repo.TryInsert(ctx, eventKey)
}

// MarkFailed releases eventKey so the event can be processed again.
func (g *guard) MarkFailed(ctx context.Context, eventKey string) error {
	return g.repo.Delete(ctx, eventKey)
}

// Process runs fn at most once per eventKey. Duplicates return nil without calling fn.
// When fn fails the key is released and fn's error is returned.
func (g *guard) Process(ctx context.Context, eventKey string, fn func(ctx context.Context) error) error {
	started, err := g.TryStartProcessing(ctx, eventKey)
	if err != nil {
		return err
	}
	if !started {
		g.logger.Info("duplicate event skipped", slog.String("event_key", eventKey))
		return nil
	}

	if err := fn(ctx); err != nil {
		// Release with a fresh context so a cancelled handler still frees the key.
		if markErr := g.MarkFailed(context.WithoutCancel(ctx), eventKey); markErr != nil {
			g.logger.Error("failed to release event key",
				slog.String("event_key", eventKey),
				slog.Any("error", markErr),
			)
			return errors.Join(err, markErr)
		}
		return err
	}
	return nil
}
