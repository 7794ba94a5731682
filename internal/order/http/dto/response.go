package dto

import (
	"time"

	"github.com/samber/lo"

	"github.com/allisson/ordersaga/internal/order/domain"
)

// OrderItemResponse represents an order line in API responses.
type OrderItemResponse struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

// OrderResponse represents an order in API responses.
type OrderResponse struct {
	ID          int64               `json:"id"`
	UserID      int64               `json:"user_id"`
	Status      string              `json:"status"`
	TotalAmount string              `json:"total_amount"`
	Items       []OrderItemResponse `json:"items"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// ListOrdersResponse represents a page of orders.
type ListOrdersResponse struct {
	Data []OrderResponse `json:"data"`
}

// MapOrderToResponse converts a domain order to an API response.
func MapOrderToResponse(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:          order.ID,
		UserID:      order.UserID,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount.StringFixed(2),
		Items: lo.Map(order.Items, func(item domain.OrderItem, _ int) OrderItemResponse {
			return OrderItemResponse{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price.StringFixed(2),
			}
		}),
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
}

// MapOrdersToListResponse converts domain orders to a list response.
func MapOrdersToListResponse(orders []*domain.Order) ListOrdersResponse {
	return ListOrdersResponse{
		Data: lo.Map(orders, func(order *domain.Order, _ int) OrderResponse {
			return MapOrderToResponse(order)
		}),
	}
}
