// Package gateway provides payment gateway implementations.
package gateway

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/allisson/ordersaga/internal/payment/domain"
)

// Decline reasons returned by SimulatedGateway.
const (
	ReasonInvalidAmount = "invalid amount"
	ReasonLimitExceeded = "amount exceeds gateway limit"
)

// SimulatedGateway approves any positive amount up to a configured limit.
type SimulatedGateway struct {
	maxAmount decimal.Decimal
	logger    *slog.Logger
}

// NewSimulatedGateway creates a SimulatedGateway approving amounts up to maxAmount.
func NewSimulatedGateway(maxAmount decimal.Decimal, logger *slog.Logger) *SimulatedGateway {
	return &SimulatedGateway{
		maxAmount: maxAmount,
		logger:    logger,
	}
}

// Charge approves the amount with a fresh transaction id or declines it.
func (g *SimulatedGateway) Charge(
	ctx context.Context,
	orderID int64,
	amount decimal.Decimal,
	method string,
) (*domain.ChargeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch {
	case !amount.IsPositive():
		return &domain.ChargeResult{DeclineReason: ReasonInvalidAmount}, nil
	case amount.GreaterThan(g.maxAmount):
		return &domain.ChargeResult{DeclineReason: ReasonLimitExceeded}, nil
	}

	transactionID := uuid.NewString()
	g.logger.Debug("charge approved",
		slog.Int64("order_id", orderID),
		slog.String("method", method),
		slog.String("transaction_id", transactionID),
	)

	return &domain.ChargeResult{Approved: true, TransactionID: transactionID}, nil
}

// Refund always succeeds.
func (g *SimulatedGateway) Refund(ctx context.Context, transactionID string) error {
	return ctx.Err()
}
