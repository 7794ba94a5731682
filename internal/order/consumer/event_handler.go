// Package consumer wires saga events addressed to the order service onto OrderUseCase.
package consumer

import (
	"context"
	"log/slog"

	"github.com/segmentio/kafka-go"

	dedupDomain "github.com/allisson/ordersaga/internal/dedup/domain"
	dedupUseCase "github.com/allisson/ordersaga/internal/dedup/usecase"
	"github.com/allisson/ordersaga/internal/messaging"
	orderUseCase "github.com/allisson/ordersaga/internal/order/usecase"
)

// EventHandler applies payment, inventory and refund outcomes to orders.
// Every handler runs under the dedup guard keyed by topic and order id.
type EventHandler struct {
	orderUseCase orderUseCase.OrderUseCase
	guard        dedupUseCase.Guard
	logger       *slog.Logger
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(
	orderUseCase orderUseCase.OrderUseCase,
	guard dedupUseCase.Guard,
	logger *slog.Logger,
) *EventHandler {
	return &EventHandler{
		orderUseCase: orderUseCase,
		guard:        guard,
		logger:       logger,
	}
}

// Register subscribes the handlers to their topics.
func (h *EventHandler) Register(subscriber messaging.Subscriber) {
	subscriber.Subscribe(messaging.TopicPaymentSuccess, h.HandlePaymentSuccess)
	subscriber.Subscribe(messaging.TopicPaymentFailed, h.HandlePaymentFailed)
	subscriber.Subscribe(messaging.TopicInventoryFailed, h.HandleInventoryFailed)
	subscriber.Subscribe(messaging.TopicRefundSuccess, h.HandleRefundSuccess)
	subscriber.Subscribe(messaging.TopicRefundFailed, h.HandleRefundFailed)
}

// HandlePaymentSuccess marks the order PAID.
func (h *EventHandler) HandlePaymentSuccess(ctx context.Context, msg kafka.Message) error {
	event, err := messaging.Decode[messaging.PaymentSuccess](msg.Value)
	if err != nil {
		return h.decodeFailed(msg, err)
	}

	return h.guard.Process(ctx, dedupDomain.EventKey(msg.Topic, event.OrderID), func(ctx context.Context) error {
		return h.orderUseCase.MarkPaid(ctx, event.OrderID)
	})
}

// HandlePaymentFailed cancels the order.
func (h *EventHandler) HandlePaymentFailed(ctx context.Context, msg kafka.Message) error {
	event, err := messaging.Decode[messaging.PaymentFailed](msg.Value)
	if err != nil {
		return h.decodeFailed(msg, err)
	}

	return h.guard.Process(ctx, dedupDomain.EventKey(msg.Topic, event.OrderID), func(ctx context.Context) error {
		return h.orderUseCase.CancelBySystem(ctx, event.OrderID, event.Reason)
	})
}

// HandleInventoryFailed cancels the order.
func (h *EventHandler) HandleInventoryFailed(ctx context.Context, msg kafka.Message) error {
	event, err := messaging.Decode[messaging.InventoryFailed](msg.Value)
	if err != nil {
		return h.decodeFailed(msg, err)
	}

	return h.guard.Process(ctx, dedupDomain.EventKey(msg.Topic, event.OrderID), func(ctx context.Context) error {
		return h.orderUseCase.CancelBySystem(ctx, event.OrderID, event.Reason)
	})
}

// HandleRefundSuccess completes the refund of a cancelled paid order.
func (h *EventHandler) HandleRefundSuccess(ctx context.Context, msg kafka.Message) error {
	event, err := messaging.Decode[messaging.RefundSuccess](msg.Value)
	if err != nil {
		return h.decodeFailed(msg, err)
	}

	return h.guard.Process(ctx, dedupDomain.EventKey(msg.Topic, event.OrderID), func(ctx context.Context) error {
		return h.orderUseCase.MarkRefundCompleted(ctx, event.OrderID)
	})
}

// HandleRefundFailed marks the refund as failed.
func (h *EventHandler) HandleRefundFailed(ctx context.Context, msg kafka.Message) error {
	event, err := messaging.Decode[messaging.RefundFailed](msg.Value)
	if err != nil {
		return h.decodeFailed(msg, err)
	}

	return h.guard.Process(ctx, dedupDomain.EventKey(msg.Topic, event.OrderID), func(ctx context.Context) error {
		return h.orderUseCase.MarkRefundFailed(ctx, event.OrderID, event.Reason)
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
