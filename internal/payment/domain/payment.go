// Package domain defines the core domain models for payments.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// MethodCreditCard is the payment method used for saga-driven charges.
const MethodCreditCard = "CREDIT_CARD"

// Payment is the single charge attempt record of an order.
type Payment struct {
	ID            int64
	OrderID       int64
	TransactionID string
	Amount        decimal.Decimal
	PaymentMethod string
	Status        PaymentStatus
	FailureReason string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsSettled reports whether the payment reached a state a new charge must not override.
func (p *Payment) IsSettled() bool {
	return p.Status == PaymentStatusCompleted || p.Status == PaymentStatusRefunded
}

// Approve records a successful charge.
func (p *Payment) Approve(transactionID string) {
	p.Status = PaymentStatusCompleted
	p.TransactionID = transactionID
	p.FailureReason = ""
}

// Decline records a rejected charge.
func (p *Payment) Decline(reason string) {
	p.Status = PaymentStatusFailed
	p.TransactionID = ""
	p.FailureReason = reason
}

// ChargeResult is the gateway's answer to a charge.
type ChargeResult struct {
	Approved      bool
	TransactionID string
	DeclineReason string
}
