// Package http provides HTTP handlers for placing, querying and cancelling orders.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/ordersaga/internal/auth/http"
	apperrors "github.com/allisson/ordersaga/internal/errors"
	"github.com/allisson/ordersaga/internal/httputil"
	"github.com/allisson/ordersaga/internal/order/http/dto"
	orderUseCase "github.com/allisson/ordersaga/internal/order/usecase"
	customValidation "github.com/allisson/ordersaga/internal/validation"
)

// OrderHandler handles HTTP requests for order operations.
// The caller identity comes from the principal stored by the authentication middleware.
type OrderHandler struct {
	orderUseCase orderUseCase.OrderUseCase
	logger       *slog.Logger
}

// NewOrderHandler creates a new order handler with required dependencies.
func NewOrderHandler(orderUseCase orderUseCase.OrderUseCase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
		logger:       logger,
	}
}

// CreateHandler places a new order for the authenticated user.
// POST /v1/orders - Returns 201 Created with the priced order.
func (h *OrderHandler) CreateHandler(c *gin.Context) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.CreateOrderRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	order, err := h.orderUseCase.CreateOrder(c.Request.Context(), principal.UserID, req.ToLineItems())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapOrderToResponse(order))
}

// GetHandler retrieves an order by ID.
// GET /v1/orders/:id - Owner or admin only. Returns 200 OK with the order.
func (h *OrderHandler) GetHandler(c *gin.Context) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	orderID, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	order, err := h.orderUseCase.GetOrder(c.Request.Context(), orderID, principal.UserID, principal.IsAdmin())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapOrderToResponse(order))
}

// ListHandler lists orders with pagination.
// GET /v1/orders?user_id=&offset=&limit= - Admins may filter by any user.
// Returns 200 OK with a page of orders.
func (h *OrderHandler) ListHandler(c *gin.Context) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	userID, err := httputil.ParseOptionalIDQuery(c, "user_id")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	orders, err := h.orderUseCase.ListOrders(
		c.Request.Context(),
		principal.UserID,
		principal.IsAdmin(),
		userID,
		offset,
		limit,
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapOrdersToListResponse(orders))
}

// CancelHandler cancels an order.
// POST /v1/orders/:id/cancel - Owner or admin only. Returns 204 No Content.
func (h *OrderHandler) CancelHandler(c *gin.Context) {
	principal, ok := authHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	orderID, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	err = h.orderUseCase.CancelOrder(c.Request.Context(), orderID, principal.UserID, principal.IsAdmin())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Return 204 No Content with empty body
	c.Data(http.StatusNoContent, "application/json", nil)
}

// RegisterRoutes mounts the order endpoints on an authenticated router group.
func (h *OrderHandler) RegisterRoutes(v1 *gin.RouterGroup) {
	orders := v1.Group("/orders")
	{
		orders.POST("", h.CreateHandler)
		orders.GET("", h.ListHandler)
		orders.GET("/:id", h.GetHandler)
		orders.POST("/:id/cancel", h.CancelHandler)
	}
}
