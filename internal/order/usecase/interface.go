// Package usecase implements order business logic: placing and cancelling orders and
// applying the saga transitions driven by payment, inventory and refund events.
package usecase

import (
	"context"

	"github.com/allisson/ordersaga/internal/catalog"
	"github.com/allisson/ordersaga/internal/order/domain"
)

// OrderRepository defines order persistence operations.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	Get(ctx context.Context, orderID int64) (*domain.Order, error)
	GetForUpdate(ctx context.Context, orderID int64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error
	List(ctx context.Context, userID *int64, offset, limit int) ([]*domain.Order, error)
}

// CatalogClient resolves product prices and availability.
type CatalogClient interface {
	GetProducts(ctx context.Context, ids []int64) (map[int64]catalog.Product, error)
}

// OrderUseCase defines order business operations.
type OrderUseCase interface {
	// CreateOrder prices items from the catalog, persists the order and enqueues order-created.
	CreateOrder(ctx context.Context, userID int64, items []domain.LineItem) (*domain.Order, error)

	// GetOrder returns an order visible to the requester.
	GetOrder(ctx context.Context, orderID, requesterID int64, isAdmin bool) (*domain.Order, error)

	// ListOrders returns orders ordered by id descending. Non-admins only see their own orders.
	ListOrders(
		ctx context.Context,
		requesterID int64,
		isAdmin bool,
		userID *int64,
		offset, limit int,
	) ([]*domain.Order, error)

	// CancelOrder cancels an order on behalf of its owner or an admin.
	// A PAID order moves to REFUND_PENDING and a refund is requested.
	CancelOrder(ctx context.Context, orderID, requesterID int64, isAdmin bool) error

	// MarkPaid moves a CREATED order to PAID, or requests a refund for a CANCELLED one.
	MarkPaid(ctx context.Context, orderID int64) error

	// CancelBySystem moves a CREATED order to CANCELLED after a saga failure. A PAID order
	// moves to REFUND_PENDING instead.
	CancelBySystem(ctx context.Context, orderID int64, reason string) error

	// MarkRefundCompleted moves a REFUND_PENDING order to CANCELLED.
	MarkRefundCompleted(ctx context.Context, orderID int64) error

	// MarkRefundFailed moves a REFUND_PENDING order to REFUND_FAILED.
	MarkRefundFailed(ctx context.Context, orderID int64, reason string) error
}
