package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/allisson/ordersaga/internal/database"
	apperrors "github.com/allisson/ordersaga/internal/errors"
	"github.com/allisson/ordersaga/internal/inventory/domain"
)

// PostgreSQLReservationRepository handles reservation persistence for PostgreSQL
type PostgreSQLReservationRepository struct {
	db *sql.DB
}

// NewPostgreSQLReservationRepository creates a new PostgreSQLReservationRepository
func NewPostgreSQLReservationRepository(db *sql.DB) *PostgreSQLReservationRepository {
	return &PostgreSQLReservationRepository{
		db: db,
	}
}

// Create inserts a reservation and fills in its id.
func (r *PostgreSQLReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO inventory_reservations (order_id, product_id, quantity, status, expires_at, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`

	err := querier.QueryRowContext(ctx, query, reservation.OrderID, reservation.ProductID, reservation.Quantity,
		reservation.Status, reservation.ExpiresAt, reservation.CreatedAt).Scan(&reservation.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create reservation")
	}

	return nil
}

// ExistsForOrder reports whether the order has any reservation.
func (r *PostgreSQLReservationRepository) ExistsForOrder(ctx context.Context, orderID int64) (bool, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM inventory_reservations WHERE order_id = $1)`

	var exists bool
	if err := querier.QueryRowContext(ctx, query, orderID).Scan(&exists); err != nil {
		return false, apperrors.Wrap(err, "failed to check reservations")
	}

	return exists, nil
}

// ListReservedForUpdate locks the order's RESERVED rows in product order.
func (r *PostgreSQLReservationRepository) ListReservedForUpdate(
	ctx context.Context,
	orderID int64,
) ([]*domain.Reservation, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, order_id, product_id, quantity, status, expires_at, created_at
			  FROM inventory_reservations
			  WHERE order_id = $1 AND status = $2
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
func (r *PostgreSQLReservationRepository) UpdateStatus(
	ctx context.Context,
	reservationID int64,
	status domain.ReservationStatus,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE inventory_reservations SET status = $1 WHERE id = $2`

	result, err := querier.ExecContext(ctx, query, status, reservationID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update reservation status")
	}

	return requireAffected(result, domain.ErrReservationNotFound)
}

// ListExpiredOrderIDs returns up to limit distinct order ids with RESERVED rows that expired before now.
func (r *PostgreSQLReservationRepository) ListExpiredOrderIDs(
	ctx context.Context,
	now time.Time,
	limit int,
) ([]int64, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT DISTINCT order_id
			  FROM inventory_reservations
			  WHERE status = $1 AND expires_at < $2
			  ORDER BY order_id ASC
			  LIMIT $3`

	rows, err := querier.QueryContext(ctx, query, domain.ReservationStatusReserved, now, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list expired reservations")
	}
	defer rows.Close() //nolint:errcheck

	return scanIDs(rows)
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var reservation domain.Reservation

	err := row.Scan(&reservation.ID, &reservation.OrderID, &reservation.ProductID, &reservation.Quantity,
		&reservation.Status, &reservation.ExpiresAt, &reservation.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, apperrors.Wrap(err, "failed to scan reservation")
	}

	return &reservation, nil
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate reservations")
	}

	return reservations, nil
}

func scanIDs(rows *sql.Rows) ([]int64, error) {
	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan id")
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate ids")
	}

	return ids, nil
}
