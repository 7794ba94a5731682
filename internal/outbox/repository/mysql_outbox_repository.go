package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/allisson/ordersaga/internal/database"
	apperrors "github.com/allisson/ordersaga/internal/errors"
	"github.com/allisson/ordersaga/internal/outbox/domain"
)

// MySQLOutboxEventRepository handles outbox event persistence for MySQL
type MySQLOutboxEventRepository struct {
	db *sql.DB
}

// NewMySQLOutboxEventRepository creates a new MySQLOutboxEventRepository
func NewMySQLOutboxEventRepository(db *sql.DB) *MySQLOutboxEventRepository {
	return &MySQLOutboxEventRepository{
		db: db,
	}
}

// Create inserts a new outbox event in the caller's transaction.
func (r *MySQLOutboxEventRepository) Create(ctx context.Context, event *domain.OutboxEvent) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO outbox_events (event_key, topic, aggregate_key, event_type, payload, trace_context,
			  status, attempt_count, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, 0, NOW(6), NOW(6))`

	result, err := querier.ExecContext(ctx, query, event.EventKey, event.Topic, event.AggregateKey,
		event.EventType, event.Payload, event.TraceContext, event.Status)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return apperrors.Wrap(apperrors.ErrConflict, "outbox event key already exists")
		}
		return apperrors.Wrap(err, "failed to create outbox event")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to read outbox event id")
	}
	event.ID = id
	return nil
}

// GetClaimable locks up to limit publishable rows, oldest first, skipping rows locked
// by other relays.
func (r *MySQLOutboxEventRepository) GetClaimable(
	ctx context.Context,
	maxAttempts int,
	staleBefore time.Time,
	limit int,
) ([]*domain.OutboxEvent, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, event_key, topic, aggregate_key, event_type, payload, trace_context, status,
			  attempt_count, last_error, created_at, updated_at, published_at
			  FROM outbox_events
			  WHERE attempt_count < ?
			  AND (status IN (?, ?) OR (status = ? AND updated_at < ?))
			  ORDER BY id ASC
			  LIMIT ?
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
func (r *MySQLOutboxEventRepository) MarkInProgress(ctx context.Context, ids []int64, now time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	querier := database.GetTx(ctx, r.db)

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	query := `UPDATE outbox_events
			  SET status = ?, attempt_count = attempt_count + 1, updated_at = ?
			  WHERE id IN (` + placeholders + `)`

	args := make([]any, 0, len(ids)+2)
	args = append(args, domain.OutboxEventStatusInProgress, now)
	for _, id := range ids {
		args = append(args, id)
	}

	if _, err := querier.ExecContext(ctx, query, args...); err != nil {
		return apperrors.Wrap(err, "failed to mark outbox events in progress")
	}
	return nil
}

// MarkPublished records a successful publish while the caller's claim still holds.
func (r *MySQLOutboxEventRepository) MarkPublished(
	ctx context.Context,
	id int64,
	attempt int,
	now time.Time,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE outbox_events
			  SET status = ?, published_at = ?, last_error = NULL, updated_at = ?
			  WHERE id = ? AND status = ? AND attempt_count = ?`

	result, err := querier.ExecContext(ctx, query, domain.OutboxEventStatusPublished, now, now, id,
		domain.OutboxEventStatusInProgress, attempt)
	if err != nil {
		return apperrors.Wrap(err, "failed to mark outbox event published")
	}
	return checkClaim(result)
}

// MarkFailed records a failed publish with its error message while the caller's claim
// still holds.
func (r *MySQLOutboxEventRepository) MarkFailed(
	ctx context.Context,
	id int64,
	attempt int,
	lastError string,
	now time.Time,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE outbox_events
			  SET status = ?, last_error = ?, updated_at = ?
			  WHERE id = ? AND status = ? AND attempt_count = ?`

	result, err := querier.ExecContext(ctx, query, domain.OutboxEventStatusFailed,
		domain.TruncateError(lastError), now, id, domain.OutboxEventStatusInProgress, attempt)
	if err != nil {
		return apperrors.Wrap(err, "failed to mark outbox event failed")
	}
	return checkClaim(result)
}
