// Package usecase implements inventory business logic: stock administration, reservations
// for the order saga and the expired reservation reaper.
package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/allisson/ordersaga/internal/inventory/domain"
)

// InventoryRepository defines stock persistence operations.
type InventoryRepository interface {
	// GetByProductID returns the stock row without locking it.
	GetByProductID(ctx context.Context, productID int64) (*domain.Inventory, error)

	// GetByProductIDForUpdate locks the stock row until the surrounding transaction ends.
	GetByProductIDForUpdate(ctx context.Context, productID int64) (*domain.Inventory, error)

	// ListByProductIDs returns the rows that exist for productIDs.
	ListByProductIDs(ctx context.Context, productIDs []int64) ([]*domain.Inventory, error)

	// AdjustStock adds the deltas to available and reserved stock.
	AdjustStock(ctx context.Context, productID int64, availableDelta, reservedDelta int) error

	// IncrementAvailable adds quantity to available stock, creating the row when missing.
	IncrementAvailable(ctx context.Context, productID int64, quantity int) error

	// SetAvailable overwrites available stock, creating the row when missing.
	SetAvailable(ctx context.Context, productID int64, quantity int) error
}

// ReservationRepository defines reservation persistence operations.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) error

	// ExistsForOrder reports whether any reservation, in any status, exists for the order.
	ExistsForOrder(ctx context.Context, orderID int64) (bool, error)

	// ListReservedForUpdate locks the order's RESERVED rows, ordered by product id.
	ListReservedForUpdate(ctx context.Context, orderID int64) ([]*domain.Reservation, error)

	UpdateStatus(ctx context.Context, reservationID int64, status domain.ReservationStatus) error

	// ListExpiredOrderIDs returns distinct order ids holding RESERVED rows that expired before now.
	ListExpiredOrderIDs(ctx context.Context, now time.Time, limit int) ([]int64, error)
}

// InventoryUseCase defines inventory business operations.
type InventoryUseCase interface {
	// ReserveStock moves stock from available to reserved for every item in one transaction.
	ReserveStock(ctx context.Context, orderID int64, items []domain.StockItem) ([]*domain.Reservation, error)

	// ReserveOrderItems reserves stock for an order-created event and enqueues the saga reply.
	ReserveOrderItems(
		ctx context.Context,
		orderID int64,
		items []domain.StockItem,
		totalAmount decimal.Decimal,
	) error

	// ConfirmReservation turns the order's RESERVED rows into CONFIRMED.
	ConfirmReservation(ctx context.Context, orderID int64) error

	// ReleaseReservation returns the order's RESERVED quantities to available stock.
	ReleaseReservation(ctx context.Context, orderID int64) error

	// ReleaseExpiredReservations releases reservations that expired before now and
	// enqueues inventory-failed for each affected order. It returns the number of orders released.
	ReleaseExpiredReservations(ctx context.Context, now time.Time) (int, error)

	// AddStock adds quantity to available stock, creating the product row when missing.
	AddStock(ctx context.Context, productID int64, quantity int) (*domain.Inventory, error)

	// SetStock overwrites available stock.
	SetStock(ctx context.Context, productID int64, quantity int) (*domain.Inventory, error)

	// GetStock returns the stock row of a product.
	GetStock(ctx context.Context, productID int64) (*domain.Inventory, error)

	// GetBatchStock returns available stock keyed by product id. Unknown products are omitted.
	GetBatchStock(ctx context.Context, productIDs []int64) (map[int64]int, error)
}
