package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/allisson/ordersaga/internal/inventory/domain"
	"github.com/allisson/ordersaga/internal/metrics"
)

// inventoryUseCaseWithMetrics decorates InventoryUseCase with metrics instrumentation.
type inventoryUseCaseWithMetrics struct {
	next    InventoryUseCase
	metrics metrics.BusinessMetrics
}

// NewInventoryUseCaseWithMetrics wraps an InventoryUseCase with metrics recording.
func NewInventoryUseCaseWithMetrics(useCase InventoryUseCase, m metrics.BusinessMetrics) InventoryUseCase {
	return &inventoryUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (i *inventoryUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	i.metrics.RecordOperation(ctx, "inventory", operation, status)
	i.metrics.RecordDuration(ctx, "inventory", operation, time.Since(start), status)
}

// ReserveStock records metrics for manual reservations.
func (i *inventoryUseCaseWithMetrics) ReserveStock(
	ctx context.Context,
	orderID int64,
	items []domain.StockItem,
) ([]*domain.Reservation, error) {
	start := time.Now()
	reservations, err := i.next.ReserveStock(ctx, orderID, items)
	i.record(ctx, "inventory_reserve", start, err)
	return reservations, err
}

// ReserveOrderItems records metrics for saga reservations.
func (i *inventoryUseCaseWithMetrics) ReserveOrderItems(
	ctx context.Context,
	orderID int64,
	items []domain.StockItem,
	totalAmount decimal.Decimal,
) error {
	start := time.Now()
	err := i.next.ReserveOrderItems(ctx, orderID, items, totalAmount)
	i.record(ctx, "inventory_reserve_order", start, err)
	return err
}

// ConfirmReservation records metrics for reservation confirmation.
func (i *inventoryUseCaseWithMetrics) ConfirmReservation(ctx context.Context, orderID int64) error {
	start := time.Now()
	err := i.next.ConfirmReservation(ctx, orderID)
	i.record(ctx, "inventory_confirm", start, err)
	return err
}

// ReleaseReservation records metrics for reservation release.
func (i *inventoryUseCaseWithMetrics) ReleaseReservation(ctx context.Context, orderID int64) error {
	start := time.Now()
	err := i.next.ReleaseReservation(ctx, orderID)
	i.record(ctx, "inventory_release", start, err)
	return err
}

// ReleaseExpiredReservations records metrics for reaper sweeps.
func (i *inventoryUseCaseWithMetrics) ReleaseExpiredReservations(ctx context.Context, now time.Time) (int, error) {
	start := time.Now()
	released, err := i.next.ReleaseExpiredReservations(ctx, now)
	i.record(ctx, "inventory_release_expired", start, err)
	return released, err
}

// AddStock records metrics for stock additions.
func (i *inventoryUseCaseWithMetrics) AddStock(
	ctx context.Context,
	productID int64,
	quantity int,
) (*domain.Inventory, error) {
	start := time.Now()
	inventory, err := i.next.AddStock(ctx, productID, quantity)
	i.record(ctx, "inventory_add_stock", start, err)
	return inventory, err
}

// SetStock records metrics for absolute stock updates.
func (i *inventoryUseCaseWithMetrics) SetStock(
	ctx context.Context,
	productID int64,
	quantity int,
) (*domain.Inventory, error) {
	start := time.Now()
	inventory, err := i.next.SetStock(ctx, productID, quantity)
	i.record(ctx, "inventory_set_stock", start, err)
	return inventory, err
}

// GetStock records metrics for stock lookups.
func (i *inventoryUseCaseWithMetrics) GetStock(ctx context.Context, productID int64) (*domain.Inventory, error) {
	start := time.Now()
	inventory, err := i.next.GetStock(ctx, productID)
	i.record(ctx, "inventory_get", start, err)
	return inventory, err
}

// GetBatchStock records metrics for batch stock lookups.
func (i *inventoryUseCaseWithMetrics) GetBatchStock(ctx context.Context, productIDs []int64) (map[int64]int, error) {
	start := time.Now()
	stock, err := i.next.GetBatchStock(ctx, productIDs)
	i.record(ctx, "inventory_get_batch", start, err)
	return stock, err
}
