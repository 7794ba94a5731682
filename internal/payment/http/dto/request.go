// Package dto provides data transfer objects for payment HTTP requests and responses.
package dto

import (
	validation "github.com/jellydator/validation"
	"github.com/shopspring/decimal"

	customValidation "github.com/allisson/ordersaga/internal/validation"
)

// InitiatePaymentRequest charges an order outside the saga.
type InitiatePaymentRequest struct {
	OrderID       int64           `json:"order_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
}

// Validate checks if the initiate payment request is valid.
func (r *InitiatePaymentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.OrderID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Amount, customValidation.PositiveAmount, customValidation.MaxScale(2)),
		validation.Field(&r.PaymentMethod, validation.Required, customValidation.NotBlank, validation.Length(1, 50)),
	)
}
