// Package repository implements payment persistence for PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/allisson/ordersaga/internal/database"
	apperrors "github.com/allisson/ordersaga/internal/errors"
	"github.com/allisson/ordersaga/internal/payment/domain"
)

const paymentColumns = `id, order_id, transaction_id, amount, payment_method, status, failure_reason, created_at, updated_at`

// PostgreSQLPaymentRepository handles payment persistence for PostgreSQL
type PostgreSQLPaymentRepository struct {
	db *sql.DB
}

// NewPostgreSQLPaymentRepository creates a new PostgreSQLPaymentRepository
func NewPostgreSQLPaymentRepository(db *sql.DB) *PostgreSQLPaymentRepository {
	return &PostgreSQLPaymentRepository{
		db: db,
	}
}

// Create inserts a payment and fills in its id and timestamps.
func (r *PostgreSQLPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	querier := database.GetTx(ctx, r.db)

	now := time.Now().UTC()
	query := `INSERT INTO payments (order_id, transaction_id, amount, payment_method, status, failure_reason, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id`

	err := querier.QueryRowContext(ctx, query, payment.OrderID, nullString(payment.TransactionID), payment.Amount,
		payment.PaymentMethod, payment.Status, nullString(payment.FailureReason), now, now).Scan(&payment.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create payment")
	}

	payment.CreatedAt = now
	payment.UpdatedAt = now
	return nil
}

// GetByOrderID returns the order's payment.
func (r *PostgreSQLPaymentRepository) GetByOrderID(ctx context.Context, orderID int64) (*domain.Payment, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE order_id = $1`

	return scanPayment(querier.QueryRowContext(ctx, query, orderID))
}

// GetByOrderIDForUpdate returns the order's payment and locks its row.
func (r *PostgreSQLPaymentRepository) GetByOrderIDForUpdate(
	ctx context.Context,
	orderID int64,
) (*domain.Payment, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE order_id = $1 FOR UPDATE`

	return scanPayment(querier.QueryRowContext(ctx, query, orderID))
}

// Update persists the mutable payment fields.
func (r *PostgreSQLPaymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	querier := database.GetTx(ctx, r.db)

	now := time.Now().UTC()
	query := `UPDATE payments
			  SET amount = $1, payment_method = $2, status = $3, transaction_id = $4, failure_reason = $5, updated_at = $6
			  WHERE id = $7`

	result, err := querier.ExecContext(ctx, query, payment.Amount, payment.PaymentMethod, payment.Status,
		nullString(payment.TransactionID), nullString(payment.FailureReason), now, payment.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update payment")
	}

	if err := requireAffected(result); err != nil {
		return err
	}

	payment.UpdatedAt = now
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var payment domain.Payment
	var transactionID, failureReason sql.NullString

	err := row.Scan(
		&payment.ID,
		&payment.OrderID,
		&transactionID,
		&payment.Amount,
		&payment.PaymentMethod,
		&payment.Status,
		&failureReason,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get payment")
	}

	payment.TransactionID = transactionID.String
	payment.FailureReason = failureReason.String
	return &payment, nil
}

func requireAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rows == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
