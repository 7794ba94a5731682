// Package dto provides data transfer objects for order HTTP requests and responses.
package dto

import (
	validation "github.com/jellydator/validation"
	"github.com/samber/lo"

	"github.com/allisson/ordersaga/internal/order/domain"
)

// OrderItemRequest is one requested product line.
type OrderItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// Validate checks if the order item is valid.
func (r OrderItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Quantity, validation.Required, validation.Min(1), validation.Max(10000)),
	)
}

// CreateOrderRequest contains the parameters for placing an order.
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

// Validate checks if the create order request is valid.
func (r *CreateOrderRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Items,
			validation.Required,
			validation.Length(1, 100),
		),
	)
}

// ToLineItems converts the request items to domain line items.
func (r *CreateOrderRequest) ToLineItems() []domain.LineItem {
	return lo.Map(r.Items, func(item OrderItemRequest, _ int) domain.LineItem {
		return domain.LineItem{ProductID: item.ProductID, Quantity: item.Quantity}
	})
}
