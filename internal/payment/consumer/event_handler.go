// Package consumer wires saga events addressed to the payment service onto PaymentUseCase.
package consumer

import (
	"context"
	"log/slog"

	"github.com/segmentio/kafka-go"

	dedupDomain "github.com/allisson/ordersaga/internal/dedup/domain"
	dedupUseCase "github.com/allisson/ordersaga/internal/dedup/usecase"
	"github.com/allisson/ordersaga/internal/messaging"
	paymentUseCase "github.com/allisson/ordersaga/internal/payment/usecase"
)

// EventHandler charges reserved orders and refunds cancelled ones.
type EventHandler struct {
	paymentUseCase paymentUseCase.PaymentUseCase
	guard          dedupUseCase.Guard
	logger         *slog.Logger
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(
	paymentUseCase paymentUseCase.PaymentUseCase,
	guard dedupUseCase.Guard,
	logger *slog.Logger,
) *EventHandler {
	return &EventHandler{
		paymentUseCase: paymentUseCase,
		guard:          guard,
		logger:         logger,
	}
}

// Register subscribes the handlers to their topics.
func (h *EventHandler) Register(subscriber messaging.Subscriber) {
	subscriber.Subscribe(messaging.TopicInventoryReserved, h.HandleInventoryReserved)
	subscriber.Subscribe(messaging.TopicRefundRequested, h.HandleRefundRequested)
}

// HandleInventoryReserved charges the order total.
func (h *EventHandler) HandleInventoryReserved(ctx context.Context, msg kafka.Message) error {
	event, err := messaging.Decode[messaging.InventoryReserved](msg.Value)
	if err != nil {
		return h.decodeFailed(msg, err)
	}

	return h.guard.Process(ctx, dedupDomain.EventKey(msg.Topic, event.OrderID), func(ctx context.Context) error {
		return h.paymentUseCase.ProcessInventoryReserved(ctx, event.OrderID, event.TotalAmount, event.ExpiresAt)
	})
}

// HandleRefundRequested refunds the order's payment.
func (h *EventHandler) HandleRefundRequested(ctx context.Context, msg kafka.Message) error {
	event, err := messaging.Decode[messaging.RefundRequested](msg.Value)
	if err != nil {
		return h.decodeFailed(msg, err)
	}

	return h.guard.Process(ctx, dedupDomain.EventKey(msg.Topic, event.OrderID), func(ctx context.Context) error {
		return h.paymentUseCase.ProcessRefundRequested(ctx, event.OrderID)
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
