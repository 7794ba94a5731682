// Package consumer wires saga events addressed to the inventory service onto InventoryUseCase.
package consumer

import (
	"context"
	"log/slog"

	"github.com/samber/lo"
	"github.com/segmentio/kafka-go"

	dedupDomain "github.com/allisson/ordersaga/internal/dedup/domain"
	dedupUseCase "github.com/allisson/ordersaga/internal/dedup/usecase"
	"github.com/allisson/ordersaga/internal/inventory/domain"
	inventoryUseCase "github.com/allisson/ordersaga/internal/inventory/usecase"
	"github.com/allisson/ordersaga/internal/messaging"
)

// EventHandler reserves, confirms and releases stock in response to order and payment events.
type EventHandler struct {
	inventoryUseCase inventoryUseCase.InventoryUseCase
	guard            dedupUseCase.Guard
	logger           *slog.Logger
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(
	inventoryUseCase inventoryUseCase.InventoryUseCase,
	guard dedupUseCase.Guard,
	logger *slog.Logger,
) *EventHandler {
	return &EventHandler{
		inventoryUseCase: inventoryUseCase,
		guard:            guard,
		logger:           logger,
	}
}

// Register subscribes the handlers to their topics.
func (h *EventHandler) Register(subscriber messaging.Subscriber) {
	subscriber.Subscribe(messaging.TopicOrderCreated, h.HandleOrderCreated)
	subscriber.Subscribe(messaging.TopicPaymentSuccess, h.HandlePaymentSuccess)
	subscriber.Subscribe(messaging.TopicOrderCancelled, h.HandleOrderCancelled)
}

// HandleOrderCreated reserves the order's items.
func (h *EventHandler) HandleOrderCreated(ctx context.Context, msg kafka.Message) error {
	event, err := messaging.Decode[messaging.OrderCreated](msg.Value)
	if err != nil {
		return h.decodeFailed(msg, err)
	}

	items := lo.Map(event.Items, func(item messaging.OrderItem, _ int) domain.StockItem {
		return domain.StockItem{ProductID: item.ProductID, Quantity: item.Quantity}
	})

	return h.guard.Process(ctx, dedupDomain.EventKey(msg.Topic, event.OrderID), func(ctx context.Context) error {
		return h.inventoryUseCase.ReserveOrderItems(ctx, event.OrderID, items, event.TotalAmount)
	})
}

// HandlePaymentSuccess confirms the order's reservation.
func (h *EventHandler) HandlePaymentSuccess(ctx context.Context, msg kafka.Message) error {
	event, err := messaging.Decode[messaging.PaymentSuccess](msg.Value)
	if err != nil {
		return h.decodeFailed(msg, err)
	}

	return h.guard.Process(ctx, dedupDomain.EventKey(msg.Topic, event.OrderID), func(ctx context.Context) error {
		return h.inventoryUseCase.ConfirmReservation(ctx, event.OrderID)
	})
}

// HandleOrderCancelled releases the order's reservation.
func (h *EventHandler) HandleOrderCancelled(ctx context.Context, msg kafka.Message) error {
	event, err := messaging.Decode[messaging.OrderCancelled](msg.Value)
	if err != nil {
		return h.decodeFailed(msg, err)
	}

	return h.guard.Process(ctx, dedupDomain.EventKey(msg.Topic, event.OrderID), func(ctx context.Context) error {
		return h.inventoryUseCase.ReleaseReservation(ctx, event.OrderID)
	})
}

// decodeFailed logs a payload that can never be decoded before the consumer dead-letters it.
func (h *EventHandler) decodeFailed(msg kafka.Message, err error) error {
	h.logger.Error("failed to decode saga event",
		slog.String("topic", msg.Topic),
		slog.Int("partition", msg.Partition),
		slog.Int64("offset", msg.Offset),
		slog.Any("error", err),
	)
	return err
}
