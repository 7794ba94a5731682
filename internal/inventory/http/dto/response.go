package dto

import (
	"strconv"
	"time"

	"github.com/samber/lo"

	"github.com/allisson/ordersaga/internal/inventory/domain"
)

// InventoryResponse represents a product's stock in API responses.
type InventoryResponse struct {
	ProductID      int64     `json:"product_id"`
	AvailableStock int       `json:"available_stock"`
	ReservedStock  int       `json:"reserved_stock"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ReservationResponse represents a reservation in API responses.
type ReservationResponse struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"order_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ListReservationsResponse wraps the reservations created by a manual reserve.
type ListReservationsResponse struct {
	Data []ReservationResponse `json:"data"`
}

// BatchStockResponse maps product ids, as strings, to available stock.
type BatchStockResponse map[string]int

// MapInventoryToResponse converts a domain inventory row to an API response.
func MapInventoryToResponse(inventory *domain.Inventory) InventoryResponse {
	return InventoryResponse{
		ProductID:      inventory.ProductID,
		AvailableStock: inventory.AvailableStock,
		ReservedStock:  inventory.ReservedStock,
		UpdatedAt:      inventory.UpdatedAt,
	}
}

// MapReservationsToListResponse converts domain reservations to a list response.
func MapReservationsToListResponse(reservations []*domain.Reservation) ListReservationsResponse {
	return ListReservationsResponse{
		Data: lo.Map(reservations, func(r *domain.Reservation, _ int) ReservationResponse {
			return ReservationResponse{
				ID:        r.ID,
				OrderID:   r.OrderID,
				ProductID: r.ProductID,
				Quantity:  r.Quantity,
				Status:    string(r.Status),
				ExpiresAt: r.ExpiresAt,
			}
		}),
	}
}

// MapBatchStockToResponse converts available stock keyed by product id to a response.
func MapBatchStockToResponse(stock map[int64]int) BatchStockResponse {
	return lo.MapKeys(stock, func(_ int, productID int64) string {
		return strconv.FormatInt(productID, 10)
	})
}
