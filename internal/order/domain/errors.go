package domain

import (
	apperrors "github.com/allisson/ordersaga/internal/errors"
)

// Order-specific error definitions.
var (
	// ErrOrderNotFound indicates the order does not exist.
	ErrOrderNotFound = apperrors.NewCoded(apperrors.ErrNotFound, "ORDER_NOT_FOUND", "order not found")

	// ErrOrderAccessDenied indicates the requester neither owns the order nor is an admin.
	ErrOrderAccessDenied = apperrors.NewCoded(
		apperrors.ErrForbidden,
		"ORDER_ACCESS_DENIED",
		"you do not have access to this order",
	)

	// ErrOrderNotCancellable indicates the order is in a state that cannot be cancelled.
	ErrOrderNotCancellable = apperrors.NewCoded(
		apperrors.ErrConflict,
		"ORDER_NOT_CANCELLABLE",
		"order cannot be cancelled in its current status",
	)

	// ErrProductUnavailable indicates a requested product is not ACTIVE in the catalog.
	ErrProductUnavailable = apperrors.NewCoded(
		apperrors.ErrConflict,
		"PRODUCT_UNAVAILABLE",
		"product is not available",
	)

	// ErrInvalidOrderItems indicates the order has no items or an item with a non-positive quantity.
	ErrInvalidOrderItems = apperrors.NewCoded(
		apperrors.ErrInvalidInput,
		"INVALID_ORDER_ITEMS",
		"order must contain at least one item with a positive quantity",
	)
)
