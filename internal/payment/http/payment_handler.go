// Package http provides HTTP handlers for manual charges, refunds and payment lookups.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/ordersaga/internal/auth/http"
	"github.com/allisson/ordersaga/internal/httputil"
	"github.com/allisson/ordersaga/internal/payment/http/dto"
	paymentUseCase "github.com/allisson/ordersaga/internal/payment/usecase"
	customValidation "github.com/allisson/ordersaga/internal/validation"
)

// PaymentHandler handles HTTP requests for payment operations.
type PaymentHandler struct {
	paymentUseCase paymentUseCase.PaymentUseCase
	logger         *slog.Logger
}

// NewPaymentHandler creates a new payment handler with required dependencies.
func NewPaymentHandler(paymentUseCase paymentUseCase.PaymentUseCase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
		logger:         logger,
	}
}

// InitiateHandler charges an order.
// POST /v1/payments - Admin only. Returns 201 Created with the payment, which may be FAILED
// when the gateway declined the charge.
func (h *PaymentHandler) InitiateHandler(c *gin.Context) {
	var req dto.InitiatePaymentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	payment, err := h.paymentUseCase.InitiatePayment(c.Request.Context(), req.OrderID, req.Amount, req.PaymentMethod)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapPaymentToResponse(payment))
}

// GetByOrderHandler returns an order's payment.
// GET /v1/payments/orders/:orderId - Returns 200 OK with the payment.
func (h *PaymentHandler) GetByOrderHandler(c *gin.Context) {
	orderID, err := httputil.ParseIDParam(c, "orderId")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	payment, err := h.paymentUseCase.GetPaymentByOrder(c.Request.Context(), orderID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPaymentToResponse(payment))
}

// RefundHandler refunds an order's payment.
// POST /v1/payments/orders/:orderId/refund - Admin only. Returns 200 OK with the payment.
func (h *PaymentHandler) RefundHandler(c *gin.Context) {
	orderID, err := httputil.ParseIDParam(c, "orderId")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	payment, err := h.paymentUseCase.RefundPayment(c.Request.Context(), orderID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPaymentToResponse(payment))
}

// RegisterRoutes mounts the payment endpoints on an authenticated router group.
func (h *PaymentHandler) RegisterRoutes(v1 *gin.RouterGroup) {
	payments := v1.Group("/payments")
	{
		payments.GET("/orders/:orderId", h.GetByOrderHandler)

		admin := payments.Group("", authHTTP.RequireAdmin(h.logger))
		admin.POST("", h.InitiateHandler)
		admin.POST("/orders/:orderId/refund", h.RefundHandler)
	}
}
