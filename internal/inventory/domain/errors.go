package domain

import (
	apperrors "github.com/allisson/ordersaga/internal/errors"
)

// Inventory-specific error definitions.
var (
	// ErrInventoryNotFound indicates no inventory row exists for the product.
	ErrInventoryNotFound = apperrors.NewCoded(
		apperrors.ErrNotFound,
		"INVENTORY_NOT_FOUND",
		"inventory not found",
	)

	// ErrReservationNotFound indicates the reservation does not exist.
	ErrReservationNotFound = apperrors.NewCoded(
		apperrors.ErrNotFound,
		"RESERVATION_NOT_FOUND",
		"reservation not found",
	)

	// ErrInsufficientStock indicates available stock is lower than the requested quantity.
	ErrInsufficientStock = apperrors.NewCoded(
		apperrors.ErrConflict,
		"INSUFFICIENT_STOCK",
		"insufficient stock",
	)

	// ErrInvalidQuantity indicates a stock quantity outside the accepted range.
	ErrInvalidQuantity = apperrors.NewCoded(
		apperrors.ErrInvalidInput,
		"INVALID_QUANTITY",
		"quantity is out of range",
	)

	// ErrInvalidStockItems indicates an empty item list or an item with a non-positive quantity.
	ErrInvalidStockItems = apperrors.NewCoded(
		apperrors.ErrInvalidInput,
		"INVALID_STOCK_ITEMS",
		"at least one item with a positive quantity is required",
	)
)
