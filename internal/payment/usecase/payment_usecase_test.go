package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	databaseMocks "github.com/allisson/ordersaga/internal/database/mocks"
	apperrors "github.com/allisson/ordersaga/internal/errors"
	"github.com/allisson/ordersaga/internal/messaging"
	outboxMocks "github.com/allisson/ordersaga/internal/outbox/usecase/mocks"
	"github.com/allisson/ordersaga/internal/payment/domain"
	paymentMocks "github.com/allisson/ordersaga/internal/payment/usecase/mocks"
)

type paymentTestDeps struct {
	txManager *databaseMocks.MockTxManager
	payments  *paymentMocks.MockPaymentRepository
	gateway   *paymentMocks.MockGateway
	outbox    *outboxMocks.MockEnqueuer
	useCase   PaymentUseCase
}

func newPaymentTestDeps(t *testing.T) *paymentTestDeps {
	t.Helper()
	deps := &paymentTestDeps{
		txManager: databaseMocks.NewMockTxManager(t),
		payments:  paymentMocks.NewMockPaymentRepository(t),
		gateway:   paymentMocks.NewMockGateway(t),
		outbox:    outboxMocks.NewMockEnqueuer(t),
	}
	deps.useCase = NewPaymentUseCase(
		deps.txManager,
		deps.payments,
		deps.gateway,
		deps.outbox,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return deps
}

func (d *paymentTestDeps) passThroughTx() {
	d.txManager.EXPECT().
		WithTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestPaymentUseCase_InitiatePayment(t *testing.T) {
	ctx := context.Background()
	amount := decimal.RequireFromString("150.00")

	t.Run("Success: creates a pending payment and completes it", func(t *testing.T) {
		deps := newPaymentTestDeps(t)
		deps.passThroughTx()

		deps.payments.EXPECT().GetByOrderIDForUpdate(mock.Anything, int64(7001)).
			Return(nil, domain.ErrPaymentNotFound).Once()
		deps.payments.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
				return p.OrderID == 7001 && p.Status == domain.PaymentStatusPending && p.Amount.Equal(amount)
			})).
			RunAndReturn(func(_ context.Context, p *domain.Payment) error {
				p.ID = 1
				return nil
			}).
			Once()
		deps.gateway.EXPECT().Charge(mock.Anything, int64(7001), amount, "PIX").
			Return(&domain.ChargeResult{Approved: true, TransactionID: "tx-1"}, nil).Once()
		deps.payments.EXPECT().
			Update(mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
				return p.ID == 1 && p.Status == domain.PaymentStatusCompleted && p.TransactionID == "tx-1"
			})).
			Return(nil).
			Once()

		payment, err := deps.useCase.InitiatePayment(ctx, 7001, amount, "PIX")

		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusCompleted, payment.Status)
		assert.Equal(t, "tx-1", payment.TransactionID)
	})

	t.Run("Success: settled payment is returned unchanged", func(t *testing.T) {
		deps := newPaymentTestDeps(t)
		deps.passThroughTx()
		existing := &domain.Payment{
			ID:            1,
			OrderID:       7001,
			Amount:        decimal.RequireFromString("99.00"),
			Status:        domain.PaymentStatusCompleted,
			TransactionID: "tx-1",
		}

		deps.payments.EXPECT().GetByOrderIDForUpdate(mock.Anything, int64(7001)).Return(existing, nil).Once()

		payment, err := deps.useCase.InitiatePayment(ctx, 7001, amount, "PIX")

		require.NoError(t, err)
		assert.Same(t, existing, payment)
		assert.True(t, payment.Amount.Equal(decimal.RequireFromString("99.00")))
	})

	t.Run("Success: failed payment is charged again with the new amount", func(t *testing.T) {
		deps := newPaymentTestDeps(t)
		deps.passThroughTx()
		existing := &domain.Payment{
			ID:            1,
			OrderID:       7001,
			Amount:        decimal.RequireFromString("200000.00"),
			PaymentMethod: domain.MethodCreditCard,
			Status:        domain.PaymentStatusFailed,
			FailureReason: "amount exceeds gateway limit",
		}

		deps.payments.EXPECT().GetByOrderIDForUpdate(mock.Anything, int64(7001)).Return(existing, nil).Once()
		deps.gateway.EXPECT().Charge(mock.Anything, int64(7001), amount, "PIX").
			Return(&domain.ChargeResult{Approved: true, TransactionID: "tx-2"}, nil).Once()
		deps.payments.EXPECT().Update(mock.Anything, existing).Return(nil).Once()

		payment, err := deps.useCase.InitiatePayment(ctx, 7001, amount, "PIX")

		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusCompleted, payment.Status)
		assert.Equal(t, "PIX", payment.PaymentMethod)
		assert.True(t, payment.Amount.Equal(amount))
		assert.Empty(t, payment.FailureReason)
	})

	t.Run("Success: declined charge is stored as failed", func(t *testing.T) {
		deps := newPaymentTestDeps(t)
		deps.passThroughTx()

		deps.payments.EXPECT().GetByOrderIDForUpdate(mock.Anything, int64(7001)).
			Return(nil, domain.ErrPaymentNotFound).Once()
		deps.payments.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		deps.gateway.EXPECT().Charge(mock.Anything, int64(7001), amount, "PIX").
			Return(&domain.ChargeResult{DeclineReason: "amount exceeds gateway limit"}, nil).Once()
		deps.payments.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()

		payment, err := deps.useCase.InitiatePayment(ctx, 7001, amount, "PIX")

		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusFailed, payment.Status)
		assert.Equal(t, "amount exceeds gateway limit", payment.FailureReason)
	})

	t.Run("Error: invalid input", func(t *testing.T) {
		deps := newPaymentTestDeps(t)

		_, err := deps.useCase.InitiatePayment(ctx, 7001, decimal.Zero, "PIX")
		assert.ErrorIs(t, err, domain.ErrInvalidPayment)

		_, err = deps.useCase.InitiatePayment(ctx, 7001, amount, "  ")
		assert.ErrorIs(t, err, domain.ErrInvalidPayment)

		_, err = deps.useCase.InitiatePayment(ctx, 0, amount, "PIX")
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error: gateway failure aborts the transaction", func(t *testing.T) {
		deps := newPaymentTestDeps(t)
		deps.passThroughTx()
		gatewayErr := errors.New("connection reset")

		deps.payments.EXPECT().GetByOrderIDForUpdate(mock.Anything, int64(7001)).
			Return(nil, domain.ErrPaymentNotFound).Once()
		deps.payments.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		deps.gateway.EXPECT().Charge(mock.Anything, int64(7001), amount, "PIX").Return(nil, gatewayErr).Once()

		payment, err := deps.useCase.InitiatePayment(ctx, 7001, amount, "PIX")

		assert.ErrorIs(t, err, gatewayErr)
		assert.Nil(t, payment)
	})
}

func TestPaymentUseCase_ProcessInventoryReserved(t *testing.T) {
	ctx := context.Background()
	amount := decimal.RequireFromString("150.00")
	expiresAt := time.Now().Add(time.Hour)

	t.Run("Success: completed charge enqueues payment-success", func(t *testing.T) {
		deps := newPaymentTestDeps(t)
		deps.passThroughTx()

		deps.payments.EXPECT().GetByOrderIDForUpdate(mock.Anything, int64(7001)).
			Return(nil, domain.ErrPaymentNotFound).Once()
		deps.payments.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		deps.gateway.EXPECT().Charge(mock.Anything, int64(7001), amount, domain.MethodCreditCard).
			Return(&domain.ChargeResult{Approved: true, TransactionID: "tx-1"}, nil).Once()
		deps.payments.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		deps.outbox.EXPECT().
			Enqueue(mock.Anything, messaging.TopicPaymentSuccess, "7001", messaging.TopicPaymentSuccess,
				messaging.PaymentSuccess{OrderID: 7001, TransactionID: "tx-1"}).
			Return(nil).
			Once()

		err := deps.useCase.ProcessInventoryReserved(ctx, 7001, amount, expiresAt)

		assert.NoError(t, err)
	})

	t.Run("Success: declined charge enqueues payment-failed", func(t *testing.T) {
		deps := newPaymentTestDeps(t)
		deps.passThroughTx()

		deps.payments.EXPECT().GetByOrderIDForUpdate(mock.Anything, int64(7001)).
			Return(nil, domain.ErrPaymentNotFound).Once()
		deps.payments.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		deps.gateway.EXPECT().Charge(mock.Anything, int64(7001), amount, domain.MethodCreditCard).
			Return(&domain.ChargeResult{DeclineReason: "amount exceeds gateway limit"}, nil).Once()
		deps.payments.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		deps.outbox.EXPECT().
			Enqueue(mock.Anything, messaging.TopicPaymentFailed, "7001", messaging.TopicPaymentFailed,
				messaging.PaymentFailed{OrderID: 7001, Reason: "amount exceeds gateway limit"}).
			Return(nil).
			Once()

		err := deps.useCase.ProcessInventoryReserved(ctx, 7001, amount, expiresAt)

		assert.NoError(t, err)
	})

	t.Run("Success: refunded payment enqueues nothing", func(t *testing.T) {
		deps := newPaymentTestDeps(t)
		deps.passThroughTx()

		deps.payments.EXPECT().GetByOrderIDForUpdate(mock.Anything, int64(7001)).
			Return(&domain.Payment{OrderID: 7001, Status: domain.PaymentStatusRefunded}, nil).Once()

		err := deps.useCase.ProcessInventoryReserved(ctx, 7001, amount, expiresAt)

		assert.NoError(t, err)
	})

	t.Run("Success: expired reservation is declined without charging", func(t *testing.T) {
		deps := newPaymentTestDeps(t)
		deps.passThroughTx()

		deps.outbox.EXPECT().
			Enqueue(mock.Anything, messaging.TopicPaymentFailed, "7001", messaging.TopicPaymentFailed,
				messaging.PaymentFailed{OrderID: 7001, Reason: domain.ErrReservationExpired.Error()}).
			Return(nil).
			Once()

		err := deps.useCase.ProcessInventoryReserved(ctx, 7001, amount, time.Now().Add(-time.Minute))

		assert.NoError(t, err)
	})

	t.Run("Success: zero expiry is charged", func(t *testing.T) {
		deps := newPaymentTestDeps(t)
		deps.passThroughTx()

		deps.payments.EXPECT().GetByOrderIDForUpdate(mock.Anything, int64(7001)).
			Return(&domain.Payment{OrderID: 7001, Status: domain.PaymentStatusCompleted, TransactionID: "tx-1"}, nil).
			Once()
		deps.outbox.EXPECT().
			Enqueue(mock.Anything, messaging.TopicPaymentSuccess, "7001", messaging.TopicPaymentSuccess,
				messaging.PaymentSuccess{OrderID: 7001, TransactionID: "tx-1"}).
			Return(nil).
			Once()

		err := deps.useCase.ProcessInventoryReserved(ctx, 7001, amount, time.Time{})

		assert.NoError(t, err)
	})

	t.Run("Error: outbox failure is returned", func(t *testing.T) {
		deps := newPaymentTestDeps(t)
		deps.passThroughTx()
		outboxErr := errors.New("insert failed")

		deps.payments.EXPECT().GetByOrderIDForUpdate(mock.Anything, int64(7001)).
			Return(&domain.Payment{OrderID: 7001, Status: domain.PaymentStatusCompleted, TransactionID: "tx-1"}, nil).
			Once()
		deps.outbox.EXPECT().
			Enqueue(mock.Anything, messaging.TopicPaymentSuccess, "7001", messaging.TopicPaymentSuccess, mock.Anything).
			Return(outboxErr).
			Once()

		err := deps.useCase.ProcessInventoryReserved(ctx, 7001, amount, expiresAt)

		assert.ErrorIs(t, err, outboxErr)
	})
}

func TestPaymentUseCase_RefundPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: completed payment is refunded", func(t *testing.T) {
		deps := newPaymentTestDeps(t)
		deps.passThroughTx()
		existing := &domain.Payment{ID: 1, OrderID: 7001, Status: domain.PaymentStatusCompleted, TransactionID: "tx-1"}

		deps.payments.EXPECT().GetByOrderIDForUpdate(mock.Anything, int64(7001)).Return(existing, nil).Once()
		deps.gateway.EXPECT().Refund(mock.Anything, "tx-1").Return(nil).Once()
		deps.payments.EXPECT().Update(mock.Anything, existing).Return(nil).Once()

		payment, err := deps.useCase.RefundPayment(ctx, 7001)

		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusRefunded, payment.Status)
	})

	t.Run("Success: refunded payment is a no-op", func(t *testing.T) {
		deps := newPaymentTestDeps(t)
		deps.passThroughTx()
		existing := &domain.Payment{ID: 1, OrderID: 7001, Status: domain.PaymentStatusRefunded, TransactionID: "tx-1"}

		deps.payments.EXPECT().GetByOrderIDForUpdate(mock.Anything, int64(7001)).Return(existing, nil).Once()

		payment, err := deps.useCase.RefundPayment(ctx, 7001)

		require.NoError(t, err)
		assert.Same(t, existing, payment)
	})

	t.Run("Error: failed payment is not refundable", func(t *testing.T) {
		deps := newPaymentTestDeps(t)
		deps.passThroughTx()

		deps.payments.EXPECT().GetByOrderIDForUpdate(mock.Anything, int64(7001)).
			Return(&domain.Payment{OrderID: 7001, Status: domain.PaymentStatusFailed}, nil).Once()

		payment, err := deps.useCase.RefundPayment(ctx, 7001)

		assert.ErrorIs(t, err, domain.ErrPaymentNotRefundable)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.Nil(t, payment)
	})

	t.Run("Error: gateway refund failure", func(t *testing.T) {
		deps := newPaymentTestDeps(t)
		deps.passThroughTx()
		gatewayErr := errors.New("timeout")

		deps.payments.EXPECT().GetByOrderIDForUpdate(mock.Anything, int64(7001)).
			Return(&domain.Payment{OrderID: 7001, Status: domain.PaymentStatusCompleted, TransactionID: "tx-1"}, nil).
			Once()
		deps.gateway.EXPECT().Refund(mock.Anything, "tx-1").Return(gatewayErr).Once()

		_, err := deps.useCase.RefundPayment(ctx, 7001)

		assert.ErrorIs(t, err, gatewayErr)
	})
}

func TestPaymentUseCase_ProcessRefundRequested(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: refund enqueues refund-success", func(t *testing.T) {
		deps := newPaymentTestDeps(t)
		deps.passThroughTx()

		deps.payments.EXPECT().GetByOrderIDForUpdate(mock.Anything, int64(7001)).
			Return(&domain.Payment{OrderID: 7001, Status: domain.PaymentStatusCompleted, TransactionID: "tx-1"}, nil).
			Once()
		deps.gateway.EXPECT().Refund(mock.Anything, "tx-1").Return(nil).Once()
		deps.payments.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		deps.outbox.EXPECT().
			Enqueue(mock.Anything, messaging.TopicRefundSuccess, "7001", messaging.TopicRefundSuccess,
				messaging.RefundSuccess{OrderID: 7001, TransactionID: "tx-1"}).
			Return(nil).
			Once()

		err := deps.useCase.ProcessRefundRequested(ctx, 7001)

		assert.NoError(t, err)
	})

	t.Run("Success: missing payment enqueues refund-failed", func(t *testing.T) {
		deps := newPaymentTestDeps(t)
		deps.passThroughTx()

		deps.payments.EXPECT().GetByOrderIDForUpdate(mock.Anything, int64(7001)).
			Return(nil, domain.ErrPaymentNotFound).Once()
		deps.outbox.EXPECT().
			Enqueue(mock.Anything, messaging.TopicRefundFailed, "7001", messaging.TopicRefundFailed,
				messaging.RefundFailed{OrderID: 7001, Reason: "payment not found"}).
			Return(nil).
			Once()

		err := deps.useCase.ProcessRefundRequested(ctx, 7001)

		assert.NoError(t, err)
	})

	t.Run("Success: non-refundable payment enqueues refund-failed", func(t *testing.T) {
		deps := newPaymentTestDeps(t)
		deps.passThroughTx()

		deps.payments.EXPECT().GetByOrderIDForUpdate(mock.Anything, int64(7001)).
			Return(&domain.Payment{OrderID: 7001, Status: domain.PaymentStatusPending}, nil).Once()
		deps.outbox.EXPECT().
			Enqueue(mock.Anything, messaging.TopicRefundFailed, "7001", messaging.TopicRefundFailed,
				messaging.RefundFailed{OrderID: 7001, Reason: domain.ErrPaymentNotRefundable.Error()}).
			Return(nil).
			Once()

		err := deps.useCase.ProcessRefundRequested(ctx, 7001)

		assert.NoError(t, err)
	})

	t.Run("Error: infrastructure failure is returned for retry", func(t *testing.T) {
		deps := newPaymentTestDeps(t)
		deps.passThroughTx()
		dbErr := errors.New("connection refused")

		deps.payments.EXPECT().GetByOrderIDForUpdate(mock.Anything, int64(7001)).Return(nil, dbErr).Once()

		err := deps.useCase.ProcessRefundRequested(ctx, 7001)

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestPaymentUseCase_GetPaymentByOrder(t *testing.T) {
	deps := newPaymentTestDeps(t)
	expected := &domain.Payment{ID: 1, OrderID: 7001}

	deps.payments.EXPECT().GetByOrderID(mock.Anything, int64(7001)).Return(expected, nil).Once()

	payment, err := deps.useCase.GetPaymentByOrder(context.Background(), 7001)

	require.NoError(t, err)
	assert.Equal(t, expected, payment)
}
