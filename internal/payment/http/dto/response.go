package dto

import (
	"time"

	"github.com/allisson/ordersaga/internal/payment/domain"
)

// PaymentResponse represents a payment in API responses.
type PaymentResponse struct {
	ID            int64     `json:"id"`
	OrderID       int64     `json:"order_id"`
	TransactionID string    `json:"transaction_id,omitempty"`
	Amount        string    `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	FailureReason string    `json:"failure_reason,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MapPaymentToResponse converts a domain payment to an API response.
func MapPaymentToResponse(payment *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            payment.ID,
		OrderID:       payment.OrderID,
		TransactionID: payment.TransactionID,
		Amount:        payment.Amount.StringFixed(2),
		PaymentMethod: payment.PaymentMethod,
		Status:        string(payment.Status),
		FailureReason: payment.FailureReason,
		CreatedAt:     payment.CreatedAt,
		UpdatedAt:     payment.UpdatedAt,
	}
}
