package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/allisson/ordersaga/internal/catalog"
	"github.com/allisson/ordersaga/internal/database"
	apperrors "github.com/allisson/ordersaga/internal/errors"
	"github.com/allisson/ordersaga/internal/messaging"
	"github.com/allisson/ordersaga/internal/order/domain"
	outboxUseCase "github.com/allisson/ordersaga/internal/outbox/usecase"
)

// orderUseCase implements OrderUseCase. Every state change runs in one transaction that
// locks the order row and enqueues the resulting events.
type orderUseCase struct {
	txManager database.TxManager
	orderRepo OrderRepository
	catalog   CatalogClient
	outbox    outboxUseCase.Enqueuer
	logger    *slog.Logger
}

// NewOrderUseCase creates a new OrderUseCase with the provided dependencies.
func NewOrderUseCase(
	txManager database.TxManager,
	orderRepo OrderRepository,
	catalogClient CatalogClient,
	outbox outboxUseCase.Enqueuer,
	logger *slog.Logger,
) OrderUseCase {
	return &orderUseCase{
		txManager: txManager,
		orderRepo: orderRepo,
		catalog:   catalogClient,
		outbox:    outbox,
		logger:    logger,
	}
}

// CreateOrder prices items from the catalog, persists the order and enqueues order-created.
// Catalog failures abort the request before anything is written.
func (o *orderUseCase) CreateOrder(
	ctx context.Context,
	userID int64,
	items []domain.LineItem,
) (*domain.Order, error) {
	if err := validateLineItems(items); err != nil {
		return nil, err
	}

	productIDs := lo.Map(items, func(item domain.LineItem, _ int) int64 { return item.ProductID })
	products, err := o.catalog.GetProducts(ctx, lo.Uniq(productIDs))
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		UserID:      userID,
		Status:      domain.OrderStatusCreated,
		TotalAmount: decimal.Zero,
		Items:       make([]domain.OrderItem, 0, len(items)),
	}

	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok || product.Status != catalog.ProductStatusActive {
			return nil, apperrors.Wrap(domain.ErrProductUnavailable, fmt.Sprintf("product %d", item.ProductID))
		}

		orderItem := domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     product.Price,
		}
		order.Items = append(order.Items, orderItem)
		order.TotalAmount = order.TotalAmount.Add(orderItem.Subtotal())
	}

	err = o.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := o.orderRepo.Create(ctx, order); err != nil {
			return err
		}

		event := messaging.OrderCreated{
			OrderID:     order.ID,
			UserID:      order.UserID,
			TotalAmount: order.TotalAmount,
			Items: lo.Map(order.Items, func(item domain.OrderItem, _ int) messaging.OrderItem {
				return messaging.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity}
			}),
		}
		return o.enqueue(ctx, messaging.TopicOrderCreated, order.ID, event)
	})
	if err != nil {
		return nil, err
	}

	o.logger.Info("order created",
		slog.Int64("order_id", order.ID),
		slog.Int64("user_id", order.UserID),
		slog.String("total_amount", order.TotalAmount.StringFixed(2)),
	)

	return order, nil
}

// GetOrder returns the order when the requester owns it or is an admin.
func (o *orderUseCase) GetOrder(
	ctx context.Context,
	orderID, requesterID int64,
	isAdmin bool,
) (*domain.Order, error) {
	order, err := o.orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !isAdmin && !order.IsOwnedBy(requesterID) {
		return nil, domain.ErrOrderAccessDenied
	}

	return order, nil
}

// ListOrders returns a page of orders. Admins may list every order or filter by user;
// other requesters are restricted to their own orders.
func (o *orderUseCase) ListOrders(
	ctx context.Context,
	requesterID int64,
	isAdmin bool,
	userID *int64,
	offset, limit int,
) ([]*domain.Order, error) {
	if !isAdmin {
		if userID != nil && *userID != requesterID {
			return nil, domain.ErrOrderAccessDenied
		}
		userID = &requesterID
	}

	return o.orderRepo.List(ctx, userID, offset, limit)
}

// CancelOrder cancels an order on behalf of its owner or an admin.
func (o *orderUseCase) CancelOrder(ctx context.Context, orderID, requesterID int64, isAdmin bool) error {
	return o.withLockedOrder(ctx, orderID, func(ctx context.Context, order *domain.Order) error {
		if !isAdmin && !order.IsOwnedBy(requesterID) {
			return domain.ErrOrderAccessDenied
		}

		if !order.Status.IsCancellable() {
			return domain.ErrOrderNotCancellable
		}

		if order.Status == domain.OrderStatusPaid {
			if err := o.requestRefund(ctx, orderID); err != nil {
				return err
			}

			o.logger.Info("paid order cancelled, refund requested", slog.Int64("order_id", orderID))
			return nil
		}

		if err := o.orderRepo.UpdateStatus(ctx, orderID, domain.OrderStatusCancelled); err != nil {
			return err
		}
		if err := o.enqueue(ctx, messaging.TopicOrderCancelled, orderID,
			messaging.OrderCancelled{OrderID: orderID}); err != nil {
			return err
		}

		o.logger.Info("order cancelled", slog.Int64("order_id", orderID))
		return nil
	})
}

// MarkPaid moves a CREATED order to PAID. A charge that lands on an order that was already
// cancelled is refunded and the order stays CANCELLED.
func (o *orderUseCase) MarkPaid(ctx context.Context, orderID int64) error {
	return o.withLockedOrder(ctx, orderID, func(ctx context.Context, order *domain.Order) error {
		if order.Status == domain.OrderStatusCancelled {
			o.logger.Warn("payment succeeded for a cancelled order, requesting refund",
				slog.Int64("order_id", orderID),
			)
			return o.enqueue(ctx, messaging.TopicRefundRequested, orderID,
				messaging.RefundRequested{OrderID: orderID})
		}

		_, err := o.transition(ctx, order, domain.OrderStatusCreated, domain.OrderStatusPaid)
		return err
	})
}

// CancelBySystem moves a CREATED order to CANCELLED and enqueues order-cancelled so the
// inventory reservation is released. A PAID order only gets here when its reservation
// expired before inventory confirmed it, so the charge is refunded.
func (o *orderUseCase) CancelBySystem(ctx context.Context, orderID int64, reason string) error {
	return o.withLockedOrder(ctx, orderID, func(ctx context.Context, order *domain.Order) error {
		if order.Status == domain.OrderStatusPaid {
			o.logger.Warn("paid order lost its reservation, requesting refund",
				slog.Int64("order_id", orderID),
				slog.String("reason", reason),
			)
			return o.requestRefund(ctx, orderID)
		}

		moved, err := o.transition(ctx, order, domain.OrderStatusCreated, domain.OrderStatusCancelled)
		if err != nil || !moved {
			return err
		}

		o.logger.Info("order cancelled by saga",
			slog.Int64("order_id", orderID),
			slog.String("reason", reason),
		)
		return o.enqueue(ctx, messaging.TopicOrderCancelled, orderID, messaging.OrderCancelled{OrderID: orderID})
	})
}

// MarkRefundCompleted moves a REFUND_PENDING order to CANCELLED.
func (o *orderUseCase) MarkRefundCompleted(ctx context.Context, orderID int64) error {
	return o.withLockedOrder(ctx, orderID, func(ctx context.Context, order *domain.Order) error {
		_, err := o.transition(ctx, order, domain.OrderStatusRefundPending, domain.OrderStatusCancelled)
		return err
	})
}

// MarkRefundFailed moves a REFUND_PENDING order to REFUND_FAILED.
func (o *orderUseCase) MarkRefundFailed(ctx context.Context, orderID int64, reason string) error {
	return o.withLockedOrder(ctx, orderID, func(ctx context.Context, order *domain.Order) error {
		moved, err := o.transition(ctx, order, domain.OrderStatusRefundPending, domain.OrderStatusRefundFailed)
		if moved {
			o.logger.Warn("refund failed",
				slog.Int64("order_id", orderID),
				slog.String("reason", reason),
			)
		}
		return err
	})
}

func (o *orderUseCase) withLockedOrder(
	ctx context.Context,
	orderID int64,
	fn func(ctx context.Context, order *domain.Order) error,
) error {
	return o.txManager.WithTx(ctx, func(ctx context.Context) error {
		order, err := o.orderRepo.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		return fn(ctx, order)
	})
}

// transition moves a locked order from source to target and reports whether it did. Each
// saga event has exactly one source state; an event that finds the order anywhere else is
// stale or out of order, so it is logged and ignored.
func (o *orderUseCase) transition(
	ctx context.Context,
	order *domain.Order,
	source, target domain.OrderStatus,
) (bool, error) {
	if order.Status != source || !source.CanTransitionTo(target) {
		o.logger.Info("ignoring order transition",
			slog.Int64("order_id", order.ID),
			slog.String("status", string(order.Status)),
			slog.String("expected", string(source)),
			slog.String("to", string(target)),
		)
		return false, nil
	}

	if err := o.orderRepo.UpdateStatus(ctx, order.ID, target); err != nil {
		return false, err
	}
	order.Status = target

	o.logger.Info("order transitioned",
		slog.Int64("order_id", order.ID),
		slog.String("from", string(source)),
		slog.String("to", string(target)),
	)
	return true, nil
}

// requestRefund moves a PAID order to REFUND_PENDING, releases its stock and asks the
// payment service for a refund. It must run inside a transaction.
func (o *orderUseCase) requestRefund(ctx context.Context, orderID int64) error {
	if err := o.orderRepo.UpdateStatus(ctx, orderID, domain.OrderStatusRefundPending); err != nil {
		return err
	}
	if err := o.enqueue(ctx, messaging.TopicOrderCancelled, orderID,
		messaging.OrderCancelled{OrderID: orderID}); err != nil {
		return err
	}
	return o.enqueue(ctx, messaging.TopicRefundRequested, orderID, messaging.RefundRequested{OrderID: orderID})
}

func (o *orderUseCase) enqueue(ctx context.Context, topic string, orderID int64, payload any) error {
	return o.outbox.Enqueue(ctx, topic, strconv.FormatInt(orderID, 10), topic, payload)
}

func validateLineItems(items []domain.LineItem) error {
	if len(items) == 0 {
		return domain.ErrInvalidOrderItems
	}
	for _, item := range items {
		if item.ProductID <= 0 || item.Quantity <= 0 {
			return domain.ErrInvalidOrderItems
		}
	}
	return nil
}
