package usecase

import (
	"context"
	"time"

	"github.com/allisson/ordersaga/internal/metrics"
	"github.com/allisson/ordersaga/internal/order/domain"
)

// orderUseCaseWithMetrics decorates OrderUseCase with metrics instrumentation.
type orderUseCaseWithMetrics struct {
	next    OrderUseCase
	metrics metrics.BusinessMetrics
}

// NewOrderUseCaseWithMetrics wraps an OrderUseCase with metrics recording.
func NewOrderUseCaseWithMetrics(useCase OrderUseCase, m metrics.BusinessMetrics) OrderUseCase {
	return &orderUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (o *orderUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	o.metrics.RecordOperation(ctx, "order", operation, status)
	o.metrics.RecordDuration(ctx, "order", operation, time.Since(start), status)
}

// CreateOrder records metrics for order creation.
func (o *orderUseCaseWithMetrics) CreateOrder(
	ctx context.Context,
	userID int64,
	items []domain.LineItem,
) (*domain.Order, error) {
	start := time.Now()
	order, err := o.next.CreateOrder(ctx, userID, items)
	o.record(ctx, "order_create", start, err)
	return order, err
}

// GetOrder records metrics for order retrieval.
func (o *orderUseCaseWithMetrics) GetOrder(
	ctx context.Context,
	orderID, requesterID int64,
	isAdmin bool,
) (*domain.Order, error) {
	start := time.Now()
	order, err := o.next.GetOrder(ctx, orderID, requesterID, isAdmin)
	o.record(ctx, "order_get", start, err)
	return order, err
}

// ListOrders records metrics for order listing.
func (o *orderUseCaseWithMetrics) ListOrders(
	ctx context.Context,
	requesterID int64,
	isAdmin bool,
	userID *int64,
	offset, limit int,
) ([]*domain.Order, error) {
	start := time.Now()
	orders, err := o.next.ListOrders(ctx, requesterID, isAdmin, userID, offset, limit)
	o.record(ctx, "order_list", start, err)
	return orders, err
}

// CancelOrder records metrics for user cancellations.
func (o *orderUseCaseWithMetrics) CancelOrder(ctx context.Context, orderID, requesterID int64, isAdmin bool) error {
	start := time.Now()
	err := o.next.CancelOrder(ctx, orderID, requesterID, isAdmin)
	o.record(ctx, "order_cancel", start, err)
	return err
}

// MarkPaid records metrics for payment confirmations.
func (o *orderUseCaseWithMetrics) MarkPaid(ctx context.Context, orderID int64) error {
	start := time.Now()
	err := o.next.MarkPaid(ctx, orderID)
	o.record(ctx, "order_mark_paid", start, err)
	return err
}

// CancelBySystem records metrics for saga cancellations.
func (o *orderUseCaseWithMetrics) CancelBySystem(ctx context.Context, orderID int64, reason string) error {
	start := time.Now()
	err := o.next.CancelBySystem(ctx, orderID, reason)
	o.record(ctx, "order_cancel_by_system", start, err)
	return err
}

// MarkRefundCompleted records metrics for completed refunds.
func (o *orderUseCaseWithMetrics) MarkRefundCompleted(ctx context.Context, orderID int64) error {
	start := time.Now()
	err := o.next.MarkRefundCompleted(ctx, orderID)
	o.record(ctx, "order_refund_completed", start, err)
	return err
}

// MarkRefundFailed records metrics for failed refunds.
func (o *orderUseCaseWithMetrics) MarkRefundFailed(ctx context.Context, orderID int64, reason string) error {
	start := time.Now()
	err := o.next.MarkRefundFailed(ctx, orderID, reason)
	o.record(ctx, "order_refund_failed", start, err)
	return err
}
