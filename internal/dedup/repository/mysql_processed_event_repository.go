package repository

import (
	"context"
	"database/sql"

	apperrors "github.com/allisson/ordersaga/internal/errors"
)

// MySQLProcessedEventRepository handles processed event markers for MySQL.
type MySQLProcessedEventRepository struct {
	db *sql.DB
}

// NewMySQLProcessedEventRepository creates a new MySQLProcessedEventRepository
func NewMySQLProcessedEventRepository(db *sql.DB) *MySQLProcessedEventRepository {
	return &MySQLProcessedEventRepository{
		db: db,
	}
}

// TryInsert inserts a marker for eventKey and reports whether this call created it.
func (r *MySQLProcessedEventRepository) TryInsert(ctx context.Context, eventKey string) (bool, error) {
	query := `INSERT IGNORE INTO processed_events (event_key, processed_at) VALUES (?, NOW(6))`

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
func (r *MySQLProcessedEventRepository) Delete(ctx context.Context, eventKey string) error {
	query := `DELETE FROM processed_events WHERE event_key = ?`

	if _, err := r.db.ExecContext(ctx, query, eventKey); err != nil {
		return apperrors.Wrap(err, "failed to delete processed event")
	}
	return nil
}
