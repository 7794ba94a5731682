// Package usecase implements the transactional outbox: enqueueing events inside
// business transactions and relaying them to the broker.
package usecase

import (
	"context"
	"time"

	"github.com/allisson/ordersaga/internal/outbox/domain"
)

// OutboxEventRepository defines outbox event persistence operations.
type OutboxEventRepository interface {
	Create(ctx context.Context, event *domain.OutboxEvent) error
	GetClaimable(
		ctx context.Context,
		maxAttempts int,
		staleBefore time.Time,
		limit int,
	) ([]*domain.OutboxEvent, error)
	MarkInProgress(ctx context.Context, ids []int64, now time.Time) error
	MarkPublished(ctx context.Context, id int64, attempt int, now time.Time) error
	MarkFailed(ctx context.Context, id int64, attempt int, lastError string, now time.Time) error
}

// Enqueuer writes events to the outbox within the caller's transaction.
type Enqueuer interface {
	Enqueue(ctx context.Context, topic, aggregateKey, eventType string, payload any) error
}
