// Package domain defines the core domain models for orders.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusCreated       OrderStatus = "CREATED"
	OrderStatusPaid          OrderStatus = "PAID"
	OrderStatusDelivered     OrderStatus = "DELIVERED"
	OrderStatusCancelled     OrderStatus = "CANCELLED"
	OrderStatusRefundPending OrderStatus = "REFUND_PENDING"
	OrderStatusRefundFailed  OrderStatus = "REFUND_FAILED"
)

// transitions lists the allowed target states for each source state.
// DELIVERED is recognised but nothing transitions into or out of it.
var transitions = map[OrderStatus][]OrderStatus{
	OrderStatusCreated:       {OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaid:          {OrderStatusRefundPending},
	OrderStatusRefundPending: {OrderStatusCancelled, OrderStatusRefundFailed},
}

// CanTransitionTo reports whether the state machine allows moving from s to target.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsCancellable reports whether a user or admin may still cancel an order in this state.
func (s OrderStatus) IsCancellable() bool {
	switch s {
	case OrderStatusCreated, OrderStatusPaid:
		return true
	default:
		return false
	}
}

// Order is a customer order with its priced line items.
type Order struct {
	ID          int64
	UserID      int64
	Status      OrderStatus
	TotalAmount decimal.Decimal
	Items       []OrderItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderItem is one priced line of an order. Price is the unit price at order time.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	Price     decimal.Decimal
}

// Subtotal returns Price * Quantity.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// LineItem is a requested product and quantity before pricing.
type LineItem struct {
	ProductID int64
	Quantity  int
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID int64) bool {
	return o.UserID == userID
}
