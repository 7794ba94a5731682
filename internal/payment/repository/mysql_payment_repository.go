package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/allisson/ordersaga/internal/database"
	apperrors "github.com/allisson/ordersaga/internal/errors"
	"github.com/allisson/ordersaga/internal/payment/domain"
)

// MySQLPaymentRepository handles payment persistence for MySQL
type MySQLPaymentRepository struct {
	db *sql.DB
}

// NewMySQLPaymentRepository creates a new MySQLPaymentRepository
func NewMySQLPaymentRepository(db *sql.DB) *MySQLPaymentRepository {
	return &MySQLPaymentRepository{
		db: db,
	}
}

// Create inserts a payment and fills in its id and timestamps.
func (r *MySQLPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	querier := database.GetTx(ctx, r.db)

	now := time.Now().UTC()
	query := `INSERT INTO payments (order_id, transaction_id, amount, payment_method, status, failure_reason, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(ctx, query, payment.OrderID, nullString(payment.TransactionID), payment.Amount,
		payment.PaymentMethod, payment.Status, nullString(payment.FailureReason), now, now)
	if err != nil {
		return apperrors.Wrap(err, "failed to create payment")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get payment id")
	}

	payment.ID = id
	payment.CreatedAt = now
	payment.UpdatedAt = now
	return nil
}

// GetByOrderID returns the order's payment.
func (r *MySQLPaymentRepository) GetByOrderID(ctx context.Context, orderID int64) (*domain.Payment, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE order_id = ?`

	return scanPayment(querier.QueryRowContext(ctx, query, orderID))
}

// GetByOrderIDForUpdate returns the order's payment and locks its row.
func (r *MySQLPaymentRepository) GetByOrderIDForUpdate(ctx context.Context, orderID int64) (*domain.Payment, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE order_id = ? FOR UPDATE`

	return scanPayment(querier.QueryRowContext(ctx, query, orderID))
}

// Update persists the mutable payment fields.
func (r *MySQLPaymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	querier := database.GetTx(ctx, r.db)

	now := time.Now().UTC()
	query := `UPDATE payments
			  SET amount = ?, payment_method = ?, status = ?, transaction_id = ?, failure_reason = ?, updated_at = ?
			  WHERE id = ?`

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
