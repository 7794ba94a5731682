package messaging

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/allisson/ordersaga/internal/errors"
)

// ErrPoison marks a message that can never be handled, such as an undecodable payload.
// Poison messages skip retries and go straight to the dead-letter topic.
var ErrPoison = apperrors.New("poison message")

// OrderItem is a product line carried by OrderCreated.
type OrderItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// OrderCreated is published when an order is persisted.
type OrderCreated struct {
	OrderID     int64           `json:"orderId"`
	UserID      int64           `json:"userId"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Items       []OrderItem     `json:"items"`
}

// OrderCancelled is published when an order is cancelled by a user or the saga.
type OrderCancelled struct {
	OrderID int64 `json:"orderId"`
}

// InventoryReserved is published once all stock for an order is reserved. ExpiresAt is
// when the reaper will release the reservation.
type InventoryReserved struct {
	OrderID     int64           `json:"orderId"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	ExpiresAt   time.Time       `json:"expiresAt"`
}

// InventoryFailed is published when stock cannot be reserved or a reservation expires.
type InventoryFailed struct {
	OrderID int64  `json:"orderId"`
	Reason  string `json:"reason"`
}

// PaymentSuccess is published when a charge completes.
type PaymentSuccess struct {
	OrderID       int64  `json:"orderId"`
	TransactionID string `json:"transactionId"`
}

// PaymentFailed is published when a charge is declined.
type PaymentFailed struct {
	OrderID int64  `json:"orderId"`
	Reason  string `json:"reason"`
}

// RefundRequested is published when a paid order is cancelled.
type RefundRequested struct {
	OrderID int64 `json:"orderId"`
}

// RefundSuccess is published when a refund completes.
type RefundSuccess struct {
	OrderID       int64  `json:"orderId"`
	TransactionID string `json:"transactionId"`
}

// RefundFailed is published when a refund cannot be applied.
type RefundFailed struct {
	OrderID int64  `json:"orderId"`
	Reason  string `json:"reason"`
}

func newEvent(topic string) (any, bool) {
	switch topic {
	case TopicOrderCreated:
		return &OrderCreated{}, true
	case TopicOrderCancelled:
		return &OrderCancelled{}, true
	case TopicInventoryReserved:
		return &InventoryReserved{}, true
	case TopicInventoryFailed:
		return &InventoryFailed{}, true
	case TopicPaymentSuccess:
		return &PaymentSuccess{}, true
	case TopicPaymentFailed:
		return &PaymentFailed{}, true
	case TopicRefundRequested:
		return &RefundRequested{}, true
	case TopicRefundSuccess:
		return &RefundSuccess{}, true
	case TopicRefundFailed:
		return &RefundFailed{}, true
	default:
		return nil, false
	}
}

// DecodeEvent decodes payload into the typed event registered for topic.
// The result is a pointer to one of the event structs in this package.
func DecodeEvent(topic string, payload []byte) (any, error) {
	event, ok := newEvent(topic)
	if !ok {
		return nil, fmt.Errorf("%w: unknown topic %q", ErrPoison, topic)
	}
	if err := json.Unmarshal(payload, event); err != nil {
		return nil, fmt.Errorf("%w: decode %s payload: %v", ErrPoison, topic, err)
	}
	return event, nil
}

// Decode decodes payload into T, marking failures as poison.
func Decode[T any](payload []byte) (T, error) {
	var event T
	if err := json.Unmarshal(payload, &event); err != nil {
		return event, fmt.Errorf("%w: %v", ErrPoison, err)
	}
	return event, nil
}
