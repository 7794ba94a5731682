// Package repository provides data persistence implementations for processed event markers.
package repository

import (
	"context"
	"database/sql"

	apperrors "github.com/allisson/ordersaga/internal/errors"
)

// PostgreSQLProcessedEventRepository handles processed event markers for PostgreSQL.
// Markers are written on the connection pool, never in the caller's transaction,
// so a claimed key is visible to other consumers immediately.
type PostgreSQLProcessedEventRepository struct {
	db *sql.DB
}

// NewPostgreSQLProcessedEventRepository creates a new PostgreSQLProcessedEventRepository
func NewPostgreSQLProcessedEventRepository(db *sql.DB) *PostgreSQLProcessedEventRepository {
	return &PostgreSQLProcessedEventRepository{
		db: db,
	}
}

// TryInsert inserts a marker for eventKey and reports whether this call created it.
func (r *PostgreSQLProcessedEventRepository) TryInsert(ctx context.Context, eventKey string) (bool, error) {
	query := `INSERT INTO processed_events (event_key, processed_at)
			  VALUES ($1, NOW())
			  ON CONFLICT (event_key) DO NOTHING`

	result, err := r.db.ExecContext(ctx, query, eventKey)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to insert processed event")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to read affected rows")
	}
	return affected == 1, nil
}

// Delete removes the marker for eventKey.
func (r *PostgreSQLProcessedEventRepository) Delete(ctx context.Context, eventKey string) error {
	query := `DELETE FROM processed_events WHERE event_key = $1`

	if _, err := r.db.ExecContext(ctx, query, eventKey); err != nil {
		return apperrors.Wrap(err, "failed to delete processed event")
	}
	return nil
}
