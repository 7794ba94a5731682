package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/allisson/ordersaga/internal/database"
	apperrors "github.com/allisson/ordersaga/internal/errors"
	"github.com/allisson/ordersaga/internal/inventory/domain"
)

// MySQLReservationRepository handles reservation persistence for MySQL
type MySQLReservationRepository struct {
	db *sql.DB
}

// NewMySQLReservationRepository creates a new MySQLReservationRepository
func NewMySQLReservationRepository(db *sql.DB) *MySQLReservationRepository {
	return &MySQLReservationRepository{
		db: db,
	}
}

// Create inserts a reservation and fills in its id.
func (r *MySQLReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO inventory_reservations (order_id, product_id, quantity, status, expires_at, created_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(ctx, query, reservation.OrderID, reservation.ProductID, reservation.Quantity,
		reservation.Status, reservation.ExpiresAt, reservation.CreatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create reservation")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get reservation id")
	}
	reservation.ID = id

	return nil
}

// ExistsForOrder reports whether the order has any reservation.
func (r *MySQLReservationRepository) ExistsForOrder(ctx context.Context, orderID int64) (bool, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM inventory_reservations WHERE order_id = ?)`

	var exists bool
	if err := querier.QueryRowContext(ctx, query, orderID).Scan(&exists); err != nil {
		return false, apperrors.Wrap(err, "failed to check reservations")
	}

	return exists, nil
}

// ListReservedForUpdate locks the order's RESERVED rows in product order.
func (r *MySQLReservationRepository) ListReservedForUpdate(
	ctx context.Context,
	orderID int64,
) ([]*domain.Reservation, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, order_id, product_id, quantity, status, expires_at, created_at
			  FROM inventory_reservations
			  WHERE order_id = ? AND status = ?
			  ORDER BY product_id ASC
			  FOR UPDATE`

	rows, err := querier.QueryContext(ctx, query, orderID, domain.ReservationStatusReserved)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list reservations")
	}
	defer rows.Close() //nolint:errcheck

	return scanReservations(rows)
}

// UpdateStatus sets the reservation status.
func (r *MySQLReservationRepository) UpdateStatus(
	ctx context.Context,
	reservationID int64,
	status domain.ReservationStatus,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE inventory_reservations SET status = ? WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, status, reservationID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update reservation status")
	}

	return requireAffected(result, domain.ErrReservationNotFound)
}

// ListExpiredOrderIDs returns up to limit distinct order ids with RESERVED rows that expired before now.
func (r *MySQLReservationRepository) ListExpiredOrderIDs(
	ctx context.Context,
	now time.Time,
	limit int,
) ([]int64, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT DISTINCT order_id
			  FROM inventory_reservations
			  WHERE status = ? AND expires_at < ?
			  ORDER BY order_id ASC
			  LIMIT ?`

	rows, err := querier.QueryContext(ctx, query, domain.ReservationStatusReserved, now, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list expired reservations")
	}
	defer rows.Close() //nolint:errcheck

	return scanIDs(rows)
}
