// Package repository provides data persistence implementations for outbox entities.
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/allisson/ordersaga/internal/database"
	apperrors "github.com/allisson/ordersaga/internal/errors"
	"github.com/allisson/ordersaga/internal/outbox/domain"
)

// PostgreSQLOutboxEventRepository handles outbox event persistence for PostgreSQL
type PostgreSQLOutboxEventRepository struct {
	db *sql.DB
}

// NewPostgreSQLOutboxEventRepository creates a new PostgreSQLOutboxEventRepository
func NewPostgreSQLOutboxEventRepository(db *sql.DB) *PostgreSQLOutboxEventRepository {
	return &PostgreSQLOutboxEventRepository{
		db: db,
	}
}

// Create inserts a new outbox event in the caller's transaction.
func (r *PostgreSQLOutboxEventRepository) Create(ctx context.Context, event *domain.OutboxEvent) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO outbox_events (event_key, topic, aggregate_key, event_type, payload, trace_context,
			  status, attempt_count, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, 0, NOW(), NOW())
			  RETURNING id`

	err := querier.QueryRowContext(ctx, query, event.EventKey, event.Topic, event.AggregateKey,
		event.EventType, event.Payload, event.TraceContext, event.Status).Scan(&event.ID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return apperrors.Wrap(apperrors.ErrConflict, "outbox event key already exists")
		}
		return apperrors.Wrap(err, "failed to create outbox event")
	}
	return nil
}

// GetClaimable locks up to limit publishable rows, oldest first. A row is publishable
// while it has attempts left and is PENDING, FAILED or IN_PROGRESS since before staleBefore.
// Locked rows are skipped so concurrent relays never claim the same row.
func (r *PostgreSQLOutboxEventRepository) GetClaimable(
	ctx context.Context,
	maxAttempts int,
	staleBefore time.Time,
	limit int,
) ([]*domain.OutboxEvent, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, event_key, topic, aggregate_key, event_type, payload, trace_context, status,
			  attempt_count, last_error, created_at, updated_at, published_at
			  FROM outbox_events
			  WHERE attempt_count < $1
			  AND (status IN ($2, $3) OR (status = $4 AND updated_at < $5))
			  ORDER BY id ASC
			  LIMIT $6
			  FOR UPDATE SKIP LOCKED`

	rows, err := querier.QueryContext(ctx, query, maxAttempts,
		domain.OutboxEventStatusPending, domain.OutboxEventStatusFailed,
		domain.OutboxEventStatusInProgress, staleBefore, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query claimable outbox events")
	}
	defer rows.Close() //nolint:errcheck

	return scanOutboxEvents(rows)
}

// MarkInProgress sets the given rows IN_PROGRESS and counts one more attempt.
func (r *PostgreSQLOutboxEventRepository) MarkInProgress(ctx context.Context, ids []int64, now time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	querier := database.GetTx(ctx, r.db)

	query := `UPDATE outbox_events
			  SET status = $1, attempt_count = attempt_count + 1, updated_at = $2
			  WHERE id = ANY($3)`

	_, err := querier.ExecContext(ctx, query, domain.OutboxEventStatusInProgress, now, pq.Array(ids))
	if err != nil {
		return apperrors.Wrap(err, "failed to mark outbox events in progress")
	}
	return nil
}

// MarkPublished records a successful publish. The update only applies while the row is
// still IN_PROGRESS under the caller's claim, identified by attempt.
func (r *PostgreSQLOutboxEventRepository) MarkPublished(
	ctx context.Context,
	id int64,
	attempt int,
	now time.Time,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE outbox_events
			  SET status = $1, published_at = $2, last_error = NULL, updated_at = $2
			  WHERE id = $3 AND status = $4 AND attempt_count = $5`

	result, err := querier.ExecContext(ctx, query, domain.OutboxEventStatusPublished, now, id,
		domain.OutboxEventStatusInProgress, attempt)
	if err != nil {
		return apperrors.Wrap(err, "failed to mark outbox event published")
	}
	return checkClaim(result)
}

// MarkFailed records a failed publish with its error message, under the same claim guard
// as MarkPublished.
func (r *PostgreSQLOutboxEventRepository) MarkFailed(
	ctx context.Context,
	id int64,
	attempt int,
	lastError string,
	now time.Time,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE outbox_events
			  SET status = $1, last_error = $2, updated_at = $3
			  WHERE id = $4 AND status = $5 AND attempt_count = $6`

	result, err := querier.ExecContext(ctx, query, domain.OutboxEventStatusFailed,
		domain.TruncateError(lastError), now, id, domain.OutboxEventStatusInProgress, attempt)
	if err != nil {
		return apperrors.Wrap(err, "failed to mark outbox event failed")
	}
	return checkClaim(result)
}

// checkClaim maps an update that matched no row to ErrOutboxClaimLost.
func checkClaim(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if rows == 0 {
		return domain.ErrOutboxClaimLost
	}
	return nil
}

func scanOutboxEvents(rows *sql.Rows) ([]*domain.OutboxEvent, error) {
	var events []*domain.OutboxEvent
	for rows.Next() {
		var event domain.OutboxEvent

		err := rows.Scan(&event.ID, &event.EventKey, &event.Topic, &event.AggregateKey, &event.EventType,
			&event.Payload, &event.TraceContext, &event.Status, &event.AttemptCount, &event.LastError,
			&event.CreatedAt, &event.UpdatedAt, &event.PublishedAt)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan outbox event")
		}

		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate outbox events")
	}

	return events, nil
}
