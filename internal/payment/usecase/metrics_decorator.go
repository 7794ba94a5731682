package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/allisson/ordersaga/internal/metrics"
	"github.com/allisson/ordersaga/internal/payment/domain"
)

// paymentUseCaseWithMetrics decorates PaymentUseCase with metrics instrumentation.
type paymentUseCaseWithMetrics struct {
	next    PaymentUseCase
	metrics metrics.BusinessMetrics
}

// NewPaymentUseCaseWithMetrics wraps a PaymentUseCase with metrics recording.
func NewPaymentUseCaseWithMetrics(useCase PaymentUseCase, m metrics.BusinessMetrics) PaymentUseCase {
	return &paymentUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (p *paymentUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "payment", operation, status)
	p.metrics.RecordDuration(ctx, "payment", operation, time.Since(start), status)
}

// InitiatePayment records metrics for manual charges.
func (p *paymentUseCaseWithMetrics) InitiatePayment(
	ctx context.Context,
	orderID int64,
	amount decimal.Decimal,
	method string,
) (*domain.Payment, error) {
	start := time.Now()
	payment, err := p.next.InitiatePayment(ctx, orderID, amount, method)
	p.record(ctx, "payment_initiate", start, err)
	return payment, err
}

// ProcessInventoryReserved records metrics for saga charges.
func (p *paymentUseCaseWithMetrics) ProcessInventoryReserved(
	ctx context.Context,
	orderID int64,
	amount decimal.Decimal,
	expiresAt time.Time,
) error {
	start := time.Now()
	err := p.next.ProcessInventoryReserved(ctx, orderID, amount, expiresAt)
	p.record(ctx, "payment_process_reserved", start, err)
	return err
}

// RefundPayment records metrics for manual refunds.
func (p *paymentUseCaseWithMetrics) RefundPayment(ctx context.Context, orderID int64) (*domain.Payment, error) {
	start := time.Now()
	payment, err := p.next.RefundPayment(ctx, orderID)
	p.record(ctx, "payment_refund", start, err)
	return payment, err
}

// ProcessRefundRequested records metrics for saga refunds.
func (p *paymentUseCaseWithMetrics) ProcessRefundRequested(ctx context.Context, orderID int64) error {
	start := time.Now()
	err := p.next.ProcessRefundRequested(ctx, orderID)
	p.record(ctx, "payment_process_refund", start, err)
	return err
}

// GetPaymentByOrder records metrics for payment lookups.
func (p *paymentUseCaseWithMetrics) GetPaymentByOrder(ctx context.Context, orderID int64) (*domain.Payment, error) {
	start := time.Now()
	payment, err := p.next.GetPaymentByOrder(ctx, orderID)
	p.record(ctx, "payment_get", start, err)
	return payment, err
}
