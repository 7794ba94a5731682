package domain

import (
	apperrors "github.com/allisson/ordersaga/internal/errors"
)

// Payment-specific error definitions.
var (
	// ErrPaymentNotFound indicates no payment exists for the order.
	ErrPaymentNotFound = apperrors.NewCoded(apperrors.ErrNotFound, "PAYMENT_NOT_FOUND", "payment not found")

	// ErrPaymentNotRefundable indicates the payment is not COMPLETED.
	ErrPaymentNotRefundable = apperrors.NewCoded(
		apperrors.ErrConflict,
		"PAYMENT_NOT_REFUNDABLE",
		"payment is not refundable in its current status",
	)

	// ErrInvalidPayment indicates a non-positive amount or a blank payment method.
	ErrInvalidPayment = apperrors.NewCoded(
		apperrors.ErrInvalidInput,
		"INVALID_PAYMENT",
		"payment amount must be positive and method must be set",
	)

	// ErrReservationExpired indicates the stock reservation lapsed before the order was charged.
	ErrReservationExpired = apperrors.NewCoded(
		apperrors.ErrConflict,
		"RESERVATION_EXPIRED",
		"stock reservation expired before payment",
	)
)
