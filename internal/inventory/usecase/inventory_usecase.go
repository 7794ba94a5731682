package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/allisson/ordersaga/internal/database"
	apperrors "github.com/allisson/ordersaga/internal/errors"
	"github.com/allisson/ordersaga/internal/inventory/domain"
	"github.com/allisson/ordersaga/internal/messaging"
	outboxUseCase "github.com/allisson/ordersaga/internal/outbox/usecase"
)

// ReasonReservationExpired is the inventory-failed reason published by the reaper.
const ReasonReservationExpired = "reservation expired"

// inventoryUseCase implements InventoryUseCase. Inventory rows are always locked in
// ascending product id order.
type inventoryUseCase struct {
	txManager       database.TxManager
	inventoryRepo   InventoryRepository
	reservationRepo ReservationRepository
	outbox          outboxUseCase.Enqueuer
	reservationTTL  time.Duration
	reapBatchSize   int
	logger          *slog.Logger
	now             func() time.Time
}

// NewInventoryUseCase creates a new InventoryUseCase with the provided dependencies.
func NewInventoryUseCase(
	txManager database.TxManager,
	inventoryRepo InventoryRepository,
	reservationRepo ReservationRepository,
	outbox outboxUseCase.Enqueuer,
	reservationTTL time.Duration,
	reapBatchSize int,
	logger *slog.Logger,
) InventoryUseCase {
	return &inventoryUseCase{
		txManager:       txManager,
		inventoryRepo:   inventoryRepo,
		reservationRepo: reservationRepo,
		outbox:          outbox,
		reservationTTL:  reservationTTL,
		reapBatchSize:   reapBatchSize,
		logger:          logger,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// ReserveStock reserves every item for the order in a single transaction.
func (i *inventoryUseCase) ReserveStock(
	ctx context.Context,
	orderID int64,
	items []domain.StockItem,
) ([]*domain.Reservation, error) {
	if err := validateStockItems(items); err != nil {
		return nil, err
	}

	var reservations []*domain.Reservation
	err := i.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		reservations, err = i.reserve(ctx, orderID, items)
		return err
	})
	if err != nil {
		return nil, err
	}

	return reservations, nil
}

// ReserveOrderItems reserves stock for an order and enqueues inventory-reserved in the same
// transaction. Business failures are answered with inventory-failed and are not returned,
// so the consumer does not retry a decision that will not change.
func (i *inventoryUseCase) ReserveOrderItems(
	ctx context.Context,
	orderID int64,
	items []domain.StockItem,
	totalAmount decimal.Decimal,
) error {
	err := i.txManager.WithTx(ctx, func(ctx context.Context) error {
		exists, err := i.reservationRepo.ExistsForOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if exists {
			i.logger.Info("order already has reservations", slog.Int64("order_id", orderID))
			return nil
		}

		if err := validateStockItems(items); err != nil {
			return err
		}

		reservations, err := i.reserve(ctx, orderID, items)
		if err != nil {
			return err
		}

		return i.enqueue(ctx, messaging.TopicInventoryReserved, orderID, messaging.InventoryReserved{
			OrderID:     orderID,
			TotalAmount: totalAmount,
			ExpiresAt:   reservations[0].ExpiresAt,
		})
	})
	if err == nil || !isReservationRejected(err) {
		return err
	}

	i.logger.Warn("inventory reservation rejected",
		slog.Int64("order_id", orderID),
		slog.String("reason", err.Error()),
	)

	return i.txManager.WithTx(ctx, func(ctx context.Context) error {
		return i.enqueue(ctx, messaging.TopicInventoryFailed, orderID, messaging.InventoryFailed{
			OrderID: orderID,
			Reason:  err.Error(),
		})
	})
}

// ConfirmReservation converts the order's RESERVED rows into CONFIRMED and removes their
// quantities from reserved stock.
func (i *inventoryUseCase) ConfirmReservation(ctx context.Context, orderID int64) error {
	return i.txManager.WithTx(ctx, func(ctx context.Context) error {
		confirmed, err := i.settle(ctx, orderID, domain.ReservationStatusConfirmed)
		if err != nil {
			return err
		}

		if confirmed > 0 {
			i.logger.Info("reservation confirmed",
				slog.Int64("order_id", orderID),
				slog.Int("items", confirmed),
			)
		}
		return nil
	})
}

// ReleaseReservation returns the order's RESERVED quantities to available stock.
func (i *inventoryUseCase) ReleaseReservation(ctx context.Context, orderID int64) error {
	return i.txManager.WithTx(ctx, func(ctx context.Context) error {
		released, err := i.settle(ctx, orderID, domain.ReservationStatusCancelled)
		if err != nil {
			return err
		}

		if released > 0 {
			i.logger.Info("reservation released",
				slog.Int64("order_id", orderID),
				slog.Int("items", released),
			)
		}
		return nil
	})
}

// ReleaseExpiredReservations releases one order per transaction. A failure on one order is
// logged and the sweep moves on; the order is picked up again on the next sweep.
func (i *inventoryUseCase) ReleaseExpiredReservations(ctx context.Context, now time.Time) (int, error) {
	orderIDs, err := i.reservationRepo.ListExpiredOrderIDs(ctx, now, i.reapBatchSize)
	if err != nil {
		return 0, err
	}

	released := 0
	for _, orderID := range orderIDs {
		if ctx.Err() != nil {
			return released, ctx.Err()
		}

		ok, err := i.releaseExpired(ctx, orderID, now)
		if err != nil {
			i.logger.Error("failed to release expired reservation",
				slog.Int64("order_id", orderID),
				slog.Any("error", err),
			)
			continue
		}
		if ok {
			released++
		}
	}

	return released, nil
}

// AddStock adds quantity to the product's available stock.
func (i *inventoryUseCase) AddStock(
	ctx context.Context,
	productID int64,
	quantity int,
) (*domain.Inventory, error) {
	if productID <= 0 || quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	var inventory *domain.Inventory
	err := i.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := i.inventoryRepo.IncrementAvailable(ctx, productID, quantity); err != nil {
			return err
		}

		var err error
		inventory, err = i.inventoryRepo.GetByProductID(ctx, productID)
		return err
	})
	if err != nil {
		return nil, err
	}

	i.logger.Info("stock added",
		slog.Int64("product_id", productID),
		slog.Int("quantity", quantity),
		slog.Int("available_stock", inventory.AvailableStock),
	)

	return inventory, nil
}

// SetStock overwrites the product's available stock. Reserved stock is left untouched.
func (i *inventoryUseCase) SetStock(
	ctx context.Context,
	productID int64,
	quantity int,
) (*domain.Inventory, error) {
	if productID <= 0 || quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	var inventory *domain.Inventory
	err := i.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := i.inventoryRepo.SetAvailable(ctx, productID, quantity); err != nil {
			return err
		}

		var err error
		inventory, err = i.inventoryRepo.GetByProductID(ctx, productID)
		return err
	})
	if err != nil {
		return nil, err
	}

	i.logger.Info("stock set",
		slog.Int64("product_id", productID),
		slog.Int("available_stock", inventory.AvailableStock),
	)

	return inventory, nil
}

// GetStock returns the product's stock row.
func (i *inventoryUseCase) GetStock(ctx context.Context, productID int64) (*domain.Inventory, error) {
	return i.inventoryRepo.GetByProductID(ctx, productID)
}

// GetBatchStock returns available stock for the known products among productIDs.
func (i *inventoryUseCase) GetBatchStock(ctx context.Context, productIDs []int64) (map[int64]int, error) {
	productIDs = lo.Uniq(productIDs)
	if len(productIDs) == 0 {
		return map[int64]int{}, nil
	}

	inventories, err := i.inventoryRepo.ListByProductIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	return lo.SliceToMap(inventories, func(inv *domain.Inventory) (int64, int) {
		return inv.ProductID, inv.AvailableStock
	}), nil
}

// reserve must run inside a transaction.
func (i *inventoryUseCase) reserve(
	ctx context.Context,
	orderID int64,
	items []domain.StockItem,
) ([]*domain.Reservation, error) {
	now := i.now()
	expiresAt := now.Add(i.reservationTTL)

	normalized := domain.NormalizeItems(items)
	reservations := make([]*domain.Reservation, 0, len(normalized))

	for _, item := range normalized {
		inventory, err := i.inventoryRepo.GetByProductIDForUpdate(ctx, item.ProductID)
		if err != nil {
			if apperrors.Is(err, domain.ErrInventoryNotFound) {
				return nil, apperrors.Wrap(err, fmt.Sprintf("product %d", item.ProductID))
			}
			return nil, err
		}

		if inventory.AvailableStock < item.Quantity {
			return nil, apperrors.Wrap(domain.ErrInsufficientStock, fmt.Sprintf("product %d", item.ProductID))
		}

		if err := i.inventoryRepo.AdjustStock(ctx, item.ProductID, -item.Quantity, item.Quantity); err != nil {
			return nil, err
		}

		reservation := &domain.Reservation{
			OrderID:   orderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Status:    domain.ReservationStatusReserved,
			ExpiresAt: expiresAt,
			CreatedAt: now,
		}
		if err := i.reservationRepo.Create(ctx, reservation); err != nil {
			return nil, err
		}
		reservations = append(reservations, reservation)
	}

	i.logger.Info("stock reserved",
		slog.Int64("order_id", orderID),
		slog.Int("items", len(reservations)),
		slog.Time("expires_at", expiresAt),
	)

	return reservations, nil
}

// settle locks the order's RESERVED rows and moves them to target, returning how many rows
// it touched. It must run inside a transaction.
func (i *inventoryUseCase) settle(
	ctx context.Context,
	orderID int64,
	target domain.ReservationStatus,
) (int, error) {
	reservations, err := i.reservationRepo.ListReservedForUpdate(ctx, orderID)
	if err != nil {
		return 0, err
	}

	if err := i.apply(ctx, reservations, target); err != nil {
		return 0, err
	}
	return len(reservations), nil
}

// apply moves locked reservations to target. CONFIRMED consumes the reserved quantity,
// CANCELLED returns it to available stock.
func (i *inventoryUseCase) apply(
	ctx context.Context,
	reservations []*domain.Reservation,
	target domain.ReservationStatus,
) error {
	for _, reservation := range reservations {
		if _, err := i.inventoryRepo.GetByProductIDForUpdate(ctx, reservation.ProductID); err != nil {
			return err
		}

		availableDelta := 0
		if target == domain.ReservationStatusCancelled {
			availableDelta = reservation.Quantity
		}
		if err := i.inventoryRepo.AdjustStock(ctx, reservation.ProductID, availableDelta,
			-reservation.Quantity); err != nil {
			return err
		}

		if err := i.reservationRepo.UpdateStatus(ctx, reservation.ID, target); err != nil {
			return err
		}
		reservation.Status = target
	}

	return nil
}

// releaseExpired releases one order's reservations when they are still RESERVED and expired,
// and tells the order service through inventory-failed.
func (i *inventoryUseCase) releaseExpired(ctx context.Context, orderID int64, now time.Time) (bool, error) {
	released := false

	err := i.txManager.WithTx(ctx, func(ctx context.Context) error {
		reservations, err := i.reservationRepo.ListReservedForUpdate(ctx, orderID)
		if err != nil {
			return err
		}

		expired := lo.ContainsBy(reservations, func(r *domain.Reservation) bool { return r.IsExpired(now) })
		if !expired {
			return nil
		}

		if err := i.apply(ctx, reservations, domain.ReservationStatusCancelled); err != nil {
			return err
		}

		released = true
		return i.enqueue(ctx, messaging.TopicInventoryFailed, orderID, messaging.InventoryFailed{
			OrderID: orderID,
			Reason:  ReasonReservationExpired,
		})
	})
	if err != nil {
		return false, err
	}

	if released {
		i.logger.Info("expired reservation released", slog.Int64("order_id", orderID))
	}

	return released, nil
}

func (i *inventoryUseCase) enqueue(ctx context.Context, topic string, orderID int64, payload any) error {
	return i.outbox.Enqueue(ctx, topic, strconv.FormatInt(orderID, 10), topic, payload)
}

func isReservationRejected(err error) bool {
	return apperrors.Is(err, domain.ErrInsufficientStock) ||
		apperrors.Is(err, domain.ErrInventoryNotFound) ||
		apperrors.Is(err, domain.ErrInvalidStockItems)
}

func validateStockItems(items []domain.StockItem) error {
	if len(items) == 0 {
		return domain.ErrInvalidStockItems
	}
	for _, item := range items {
		if item.ProductID <= 0 || item.Quantity <= 0 {
			return domain.ErrInvalidStockItems
		}
	}
	return nil
}
