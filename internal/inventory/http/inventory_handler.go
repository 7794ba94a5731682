// Package http provides HTTP handlers for stock queries, stock administration and manual
// reservation management.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/ordersaga/internal/auth/http"
	"github.com/allisson/ordersaga/internal/httputil"
	"github.com/allisson/ordersaga/internal/inventory/http/dto"
	inventoryUseCase "github.com/allisson/ordersaga/internal/inventory/usecase"
	customValidation "github.com/allisson/ordersaga/internal/validation"
)

// InventoryHandler handles HTTP requests for inventory operations.
type InventoryHandler struct {
	inventoryUseCase inventoryUseCase.InventoryUseCase
	logger           *slog.Logger
}

// NewInventoryHandler creates a new inventory handler with required dependencies.
func NewInventoryHandler(inventoryUseCase inventoryUseCase.InventoryUseCase, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{
		inventoryUseCase: inventoryUseCase,
		logger:           logger,
	}
}

// GetStockHandler returns the stock of a product.
// GET /v1/inventory/:productId - Returns 200 OK with the stock row.
func (h *InventoryHandler) GetStockHandler(c *gin.Context) {
	productID, err := httputil.ParseIDParam(c, "productId")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	inventory, err := h.inventoryUseCase.GetStock(c.Request.Context(), productID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapInventoryToResponse(inventory))
}

// BatchStockHandler returns available stock for several products.
// POST /v1/inventory/batch - Returns 200 OK with a product id to quantity map.
func (h *InventoryHandler) BatchStockHandler(c *gin.Context) {
	var req dto.BatchStockRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	stock, err := h.inventoryUseCase.GetBatchStock(c.Request.Context(), req.ProductIDs)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapBatchStockToResponse(stock))
}

// AddStockHandler adds to a product's available stock.
// POST /v1/inventory/stock/add - Admin only. Returns 200 OK with the updated stock row.
func (h *InventoryHandler) AddStockHandler(c *gin.Context) {
	var req dto.AddStockRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	inventory, err := h.inventoryUseCase.AddStock(c.Request.Context(), req.ProductID, req.Quantity)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapInventoryToResponse(inventory))
}

// SetStockHandler overwrites a product's available stock.
// PUT /v1/inventory/stock - Admin only. Returns 200 OK with the updated stock row.
func (h *InventoryHandler) SetStockHandler(c *gin.Context) {
	var req dto.SetStockRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	inventory, err := h.inventoryUseCase.SetStock(c.Request.Context(), req.ProductID, *req.Quantity)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapInventoryToResponse(inventory))
}

// ReserveHandler reserves stock for an order outside the saga.
// POST /v1/inventory/reservations - Admin only. Returns 201 Created with the reservations.
func (h *InventoryHandler) ReserveHandler(c *gin.Context) {
	var req dto.ReserveStockRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	reservations, err := h.inventoryUseCase.ReserveStock(c.Request.Context(), req.OrderID, req.ToStockItems())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapReservationsToListResponse(reservations))
}

// ConfirmHandler confirms an order's reservations.
// POST /v1/inventory/reservations/:orderId/confirm - Admin only. Returns 204 No Content.
func (h *InventoryHandler) ConfirmHandler(c *gin.Context) {
	orderID, err := httputil.ParseIDParam(c, "orderId")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.inventoryUseCase.ConfirmReservation(c.Request.Context(), orderID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// ReleaseHandler releases an order's reservations.
// POST /v1/inventory/reservations/:orderId/release - Admin only. Returns 204 No Content.
func (h *InventoryHandler) ReleaseHandler(c *gin.Context) {
	orderID, err := httputil.ParseIDParam(c, "orderId")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.inventoryUseCase.ReleaseReservation(c.Request.Context(), orderID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// RegisterRoutes mounts the inventory endpoints on an authenticated router group.
// Stock administration and reservation management require the admin role.
func (h *InventoryHandler) RegisterRoutes(v1 *gin.RouterGroup) {
	inventory := v1.Group("/inventory")
	{
		inventory.GET("/:productId", h.GetStockHandler)
		inventory.POST("/batch", h.BatchStockHandler)

		admin := inventory.Group("", authHTTP.RequireAdmin(h.logger))
		admin.POST("/stock/add", h.AddStockHandler)
		admin.PUT("/stock", h.SetStockHandler)
		admin.POST("/reservations", h.ReserveHandler)
		admin.POST("/reservations/:orderId/confirm", h.ConfirmHandler)
		admin.POST("/reservations/:orderId/release", h.ReleaseHandler)
	}
}
