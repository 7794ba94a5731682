// Package usecase implements payment business logic: idempotent charges and refunds
// driven by the order saga or by administrators.
package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/allisson/ordersaga/internal/payment/domain"
)

// PaymentRepository defines payment persistence operations.
type PaymentRepository interface {
	// Create inserts the payment and sets its ID.
	Create(ctx context.Context, payment *domain.Payment) error

	GetByOrderID(ctx context.Context, orderID int64) (*domain.Payment, error)

	// GetByOrderIDForUpdate locks the payment row until the surrounding transaction ends.
	GetByOrderIDForUpdate(ctx context.Context, orderID int64) (*domain.Payment, error)

	// Update persists amount, method, status, transaction id and failure reason.
	Update(ctx context.Context, payment *domain.Payment) error
}

// Gateway charges and refunds through an external payment provider.
type Gateway interface {
	// Charge returns a declined result for business rejections and an error only for
	// transport failures.
	Charge(ctx context.Context, orderID int64, amount decimal.Decimal, method string) (*domain.ChargeResult, error)

	Refund(ctx context.Context, transactionID string) error
}

// PaymentUseCase defines the interface for payment business logic.
type PaymentUseCase interface {
	// InitiatePayment charges the order once. A COMPLETED or REFUNDED payment is returned
	// unchanged; a PENDING or FAILED one is charged again.
	InitiatePayment(ctx context.Context, orderID int64, amount decimal.Decimal, method string) (*domain.Payment, error)

	// ProcessInventoryReserved charges the order and enqueues payment-success or payment-failed
	// in the same transaction. A zero expiresAt never expires.
	ProcessInventoryReserved(ctx context.Context, orderID int64, amount decimal.Decimal, expiresAt time.Time) error

	// RefundPayment refunds a COMPLETED payment. Refunding a REFUNDED payment is a no-op.
	RefundPayment(ctx context.Context, orderID int64) (*domain.Payment, error)

	// ProcessRefundRequested refunds the order and enqueues refund-success, or refund-failed
	// when the payment cannot be refunded.
	ProcessRefundRequested(ctx context.Context, orderID int64) error

	GetPaymentByOrder(ctx context.Context, orderID int64) (*domain.Payment, error)
}
