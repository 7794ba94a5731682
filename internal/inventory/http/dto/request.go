// Package dto provides data transfer objects for inventory HTTP requests and responses.
package dto

import (
	validation "github.com/jellydator/validation"
	"github.com/samber/lo"

	"github.com/allisson/ordersaga/internal/inventory/domain"
)

// BatchStockRequest lists the products to look up.
type BatchStockRequest struct {
	ProductIDs []int64 `json:"product_ids"`
}

// Validate checks if the batch stock request is valid.
func (r *BatchStockRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ProductIDs,
			validation.Required,
			validation.Length(1, 500),
			validation.Each(validation.Required, validation.Min(int64(1))),
		),
	)
}

// AddStockRequest adds quantity to a product's available stock.
type AddStockRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// Validate checks if the add stock request is valid.
func (r *AddStockRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ProductID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Quantity, validation.Required, validation.Min(1)),
	)
}

// SetStockRequest overwrites a product's available stock. Zero is a valid quantity.
type SetStockRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  *int  `json:"quantity"`
}

// Validate checks if the set stock request is valid.
func (r *SetStockRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ProductID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Quantity, validation.NotNil, validation.Min(0)),
	)
}

// StockItemRequest is one product line of a manual reservation.
type StockItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// Validate checks if the stock item is valid.
func (r StockItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Quantity, validation.Required, validation.Min(1)),
	)
}

// ReserveStockRequest reserves stock for an order outside the saga.
type ReserveStockRequest struct {
	OrderID int64              `json:"order_id"`
	Items   []StockItemRequest `json:"items"`
}

// Validate checks if the reserve stock request is valid.
func (r *ReserveStockRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.OrderID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Items, validation.Required, validation.Length(1, 100)),
	)
}

// ToStockItems converts the request items to domain stock items.
func (r *ReserveStockRequest) ToStockItems() []domain.StockItem {
	return lo.Map(r.Items, func(item StockItemRequest, _ int) domain.StockItem {
		return domain.StockItem{ProductID: item.ProductID, Quantity: item.Quantity}
	})
}
