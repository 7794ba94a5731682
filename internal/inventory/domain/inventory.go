// Package domain defines the core domain models for stock and reservations.
package domain

import (
	"slices"
	"time"
)

// Inventory is the stock level of a single product.
type Inventory struct {
	ID             int64
	ProductID      int64
	AvailableStock int
	ReservedStock  int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationStatusReserved  ReservationStatus = "RESERVED"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

// Reservation holds Quantity units of a product for an order until it is
// confirmed, released or expires.
type Reservation struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	Status    ReservationStatus
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether a RESERVED reservation outlived its TTL at now.
func (r *Reservation) IsExpired(now time.Time) bool {
	return r.Status == ReservationStatusReserved && r.ExpiresAt.Before(now)
}

// StockItem is a product and the quantity to reserve.
type StockItem struct {
	ProductID int64
	Quantity  int
}

// NormalizeItems merges lines for the same product and returns them sorted by product id.
// Every caller that locks inventory rows goes through this order.
func NormalizeItems(items []StockItem) []StockItem {
	totals := make(map[int64]int, len(items))
	for _, item := range items {
		totals[item.ProductID] += item.Quantity
	}

	merged := make([]StockItem, 0, len(totals))
	for productID, quantity := range totals {
		merged = append(merged, StockItem{ProductID: productID, Quantity: quantity})
	}

	slices.SortFunc(merged, func(a, b StockItem) int {
		switch {
		case a.ProductID < b.ProductID:
			return -1
		case a.ProductID > b.ProductID:
			return 1
		default:
			return 0
		}
	})

	return merged
}
