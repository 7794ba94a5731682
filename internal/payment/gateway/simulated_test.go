package gateway

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway() *SimulatedGateway {
	return NewSimulatedGateway(decimal.NewFromInt(1000), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSimulatedGateway_Charge(t *testing.T) {
	ctx := context.Background()

	t.Run("approves amounts within the limit", func(t *testing.T) {
		result, err := newTestGateway().Charge(ctx, 7001, decimal.RequireFromString("1000.00"), "CREDIT_CARD")

		require.NoError(t, err)
		assert.True(t, result.Approved)
		_, parseErr := uuid.Parse(result.TransactionID)
		assert.NoError(t, parseErr)
	})

	t.Run("declines amounts over the limit", func(t *testing.T) {
		result, err := newTestGateway().Charge(ctx, 7001, decimal.RequireFromString("1000.01"), "CREDIT_CARD")

		require.NoError(t, err)
		assert.False(t, result.Approved)
		assert.Equal(t, ReasonLimitExceeded, result.DeclineReason)
		assert.Empty(t, result.TransactionID)
	})

	t.Run("declines non-positive amounts", func(t *testing.T) {
		result, err := newTestGateway().Charge(ctx, 7001, decimal.Zero, "CREDIT_CARD")

		require.NoError(t, err)
		assert.False(t, result.Approved)
		assert.Equal(t, ReasonInvalidAmount, result.DeclineReason)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := newTestGateway().Charge(cancelled, 7001, decimal.NewFromInt(10), "CREDIT_CARD")

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSimulatedGateway_Refund(t *testing.T) {
	assert.NoError(t, newTestGateway().Refund(context.Background(), "tx-1"))
}
