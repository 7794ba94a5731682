package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/ordersaga/internal/catalog"
	databaseMocks "github.com/allisson/ordersaga/internal/database/mocks"
	apperrors "github.com/allisson/ordersaga/internal/errors"
	"github.com/allisson/ordersaga/internal/messaging"
	"github.com/allisson/ordersaga/internal/order/domain"
	orderMocks "github.com/allisson/ordersaga/internal/order/usecase/mocks"
	outboxMocks "github.com/allisson/ordersaga/internal/outbox/usecase/mocks"
)

type orderTestDeps struct {
	txManager *databaseMocks.MockTxManager
	repo      *orderMocks.MockOrderRepository
	catalog   *orderMocks.MockCatalogClient
	outbox    *outboxMocks.MockEnqueuer
	useCase   OrderUseCase
}

func newOrderTestDeps(t *testing.T) *orderTestDeps {
	t.Helper()
	deps := &orderTestDeps{
		txManager: databaseMocks.NewMockTxManager(t),
		repo:      orderMocks.NewMockOrderRepository(t),
		catalog:   orderMocks.NewMockCatalogClient(t),
		outbox:    outboxMocks.NewMockEnqueuer(t),
	}
	deps.useCase = NewOrderUseCase(
		deps.txManager,
		deps.repo,
		deps.catalog,
		deps.outbox,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return deps
}

func (d *orderTestDeps) passThroughTx() {
	d.txManager.EXPECT().
		WithTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestOrderUseCase_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: prices items and enqueues order-created", func(t *testing.T) {
		deps := newOrderTestDeps(t)
		items := []domain.LineItem{
			{ProductID: 1, Quantity: 3},
			{ProductID: 2, Quantity: 1},
			{ProductID: 1, Quantity: 1},
		}

		deps.catalog.EXPECT().
			GetProducts(ctx, []int64{1, 2}).
			Return(map[int64]catalog.Product{
				1: {ID: 1, Price: decimal.RequireFromString("10.50"), Status: catalog.ProductStatusActive},
				2: {ID: 2, Price: decimal.RequireFromString("4.00"), Status: catalog.ProductStatusActive},
			}, nil).
			Once()
		deps.passThroughTx()
		deps.repo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(o *domain.Order) bool {
				return o.UserID == 42 && o.Status == domain.OrderStatusCreated && len(o.Items) == 3
			})).
			RunAndReturn(func(_ context.Context, o *domain.Order) error {
				o.ID = 7001
				return nil
			}).
			Once()
		deps.outbox.EXPECT().
			Enqueue(mock.Anything, messaging.TopicOrderCreated, "7001", messaging.TopicOrderCreated,
				mock.MatchedBy(func(event messaging.OrderCreated) bool {
					return event.OrderID == 7001 &&
						event.UserID == 42 &&
						event.TotalAmount.Equal(decimal.RequireFromString("46.00")) &&
						len(event.Items) == 3 &&
						event.Items[0] == messaging.OrderItem{ProductID: 1, Quantity: 3}
				})).
			Return(nil).
			Once()

		order, err := deps.useCase.CreateOrder(ctx, 42, items)

		require.NoError(t, err)
		assert.Equal(t, int64(7001), order.ID)
		assert.True(t, decimal.RequireFromString("46.00").Equal(order.TotalAmount))
		assert.True(t, decimal.RequireFromString("10.50").Equal(order.Items[0].Price))
	})

	t.Run("Error: empty items", func(t *testing.T) {
		deps := newOrderTestDeps(t)

		order, err := deps.useCase.CreateOrder(ctx, 42, nil)

		assert.Nil(t, order)
		assert.ErrorIs(t, err, domain.ErrInvalidOrderItems)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error: non-positive quantity", func(t *testing.T) {
		deps := newOrderTestDeps(t)

		_, err := deps.useCase.CreateOrder(ctx, 42, []domain.LineItem{{ProductID: 1, Quantity: 0}})

		assert.ErrorIs(t, err, domain.ErrInvalidOrderItems)
	})

	t.Run("Error: inactive product", func(t *testing.T) {
		deps := newOrderTestDeps(t)

		deps.catalog.EXPECT().
			GetProducts(ctx, []int64{1}).
			Return(map[int64]catalog.Product{
				1: {ID: 1, Price: decimal.RequireFromString("10.00"), Status: "INACTIVE"},
			}, nil).
			Once()

		_, err := deps.useCase.CreateOrder(ctx, 42, []domain.LineItem{{ProductID: 1, Quantity: 1}})

		assert.ErrorIs(t, err, domain.ErrProductUnavailable)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("Error: catalog failure persists nothing", func(t *testing.T) {
		deps := newOrderTestDeps(t)
		catalogErr := apperrors.NewCoded(apperrors.ErrUnavailable, catalog.CodeCatalogUnavailable, "catalog down")

		deps.catalog.EXPECT().
			GetProducts(ctx, []int64{1}).
			Return(nil, catalogErr).
			Once()

		_, err := deps.useCase.CreateOrder(ctx, 42, []domain.LineItem{{ProductID: 1, Quantity: 1}})

		assert.ErrorIs(t, err, apperrors.ErrUnavailable)
	})

	t.Run("Error: enqueue failure aborts the transaction", func(t *testing.T) {
		deps := newOrderTestDeps(t)
		enqueueErr := errors.New("marshal failed")

		deps.catalog.EXPECT().
			GetProducts(ctx, []int64{1}).
			Return(map[int64]catalog.Product{
				1: {ID: 1, Price: decimal.RequireFromString("10.00"), Status: catalog.ProductStatusActive},
			}, nil).
			Once()
		deps.passThroughTx()
		deps.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		deps.outbox.EXPECT().
			Enqueue(mock.Anything, messaging.TopicOrderCreated, mock.Anything, mock.Anything, mock.Anything).
			Return(enqueueErr).
			Once()

		order, err := deps.useCase.CreateOrder(ctx, 42, []domain.LineItem{{ProductID: 1, Quantity: 1}})

		assert.Nil(t, order)
		assert.ErrorIs(t, err, enqueueErr)
	})
}

func TestOrderUseCase_GetOrder(t *testing.T) {
	ctx := context.Background()
	order := &domain.Order{ID: 7001, UserID: 42, Status: domain.OrderStatusCreated}

	t.Run("Success: owner", func(t *testing.T) {
		deps := newOrderTestDeps(t)
		deps.repo.EXPECT().Get(ctx, int64(7001)).Return(order, nil).Once()

		result, err := deps.useCase.GetOrder(ctx, 7001, 42, false)

		require.NoError(t, err)
		assert.Equal(t, order, result)
	})

	t.Run("Success: admin", func(t *testing.T) {
		deps := newOrderTestDeps(t)
		deps.repo.EXPECT().Get(ctx, int64(7001)).Return(order, nil).Once()

		_, err := deps.useCase.GetOrder(ctx, 7001, 1, true)

		require.NoError(t, err)
	})

	t.Run("Error: other user", func(t *testing.T) {
		deps := newOrderTestDeps(t)
		deps.repo.EXPECT().Get(ctx, int64(7001)).Return(order, nil).Once()

		result, err := deps.useCase.GetOrder(ctx, 7001, 7, false)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrOrderAccessDenied)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("Error: not found", func(t *testing.T) {
		deps := newOrderTestDeps(t)
		deps.repo.EXPECT().Get(ctx, int64(7001)).Return(nil, domain.ErrOrderNotFound).Once()

		_, err := deps.useCase.GetOrder(ctx, 7001, 42, false)

		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}

func TestOrderUseCase_ListOrders(t *testing.T) {
	ctx := context.Background()
	orders := []*domain.Order{{ID: 2, UserID: 42}, {ID: 1, UserID: 42}}

	t.Run("Success: non-admin is scoped to own orders", func(t *testing.T) {
		deps := newOrderTestDeps(t)
		deps.repo.EXPECT().
			List(ctx, mock.MatchedBy(func(userID *int64) bool { return userID != nil && *userID == 42 }), 0, 50).
			Return(orders, nil).
			Once()

		result, err := deps.useCase.ListOrders(ctx, 42, false, nil, 0, 50)

		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("Success: admin lists all", func(t *testing.T) {
		deps := newOrderTestDeps(t)
		deps.repo.EXPECT().List(ctx, (*int64)(nil), 10, 20).Return(orders, nil).Once()

		_, err := deps.useCase.ListOrders(ctx, 1, true, nil, 10, 20)

		require.NoError(t, err)
	})

	t.Run("Success: admin filters by user", func(t *testing.T) {
		deps := newOrderTestDeps(t)
		userID := int64(42)
		deps.repo.EXPECT().List(ctx, &userID, 0, 50).Return(orders, nil).Once()

		_, err := deps.useCase.ListOrders(ctx, 1, true, &userID, 0, 50)

		require.NoError(t, err)
	})

	t.Run("Error: non-admin asking for another user", func(t *testing.T) {
		deps := newOrderTestDeps(t)
		other := int64(7)

		_, err := deps.useCase.ListOrders(ctx, 42, false, &other, 0, 50)

		assert.ErrorIs(t, err, domain.ErrOrderAccessDenied)
	})
}

func TestOrderUseCase_CancelOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: created order is cancelled", func(t *testing.T) {
		deps := newOrderTestDeps(t)
		deps.passThroughTx()
		deps.repo.EXPECT().
			GetForUpdate(mock.Anything, int64(7001)).
			Return(&domain.Order{ID: 7001, UserID: 42, Status: domain.OrderStatusCreated}, nil).
			Once()
		deps.repo.EXPECT().UpdateStatus(mock.Anything, int64(7001), domain.OrderStatusCancelled).Return(nil).Once()
		deps.outbox.EXPECT().
			Enqueue(mock.Anything, messaging.TopicOrderCancelled, "7001", messaging.TopicOrderCancelled,
				messaging.OrderCancelled{OrderID: 7001}).
			Return(nil).
			Once()

		err := deps.useCase.CancelOrder(ctx, 7001, 42, false)

		require.NoError(t, err)
	})

	t.Run("Success: paid order requests refund", func(t *testing.T) {
		deps := newOrderTestDeps(t)
		deps.passThroughTx()
		deps.repo.EXPECT().
			GetForUpdate(mock.Anything, int64(7001)).
			Return(&domain.Order{ID: 7001, UserID: 42, Status: domain.OrderStatusPaid}, nil).
			Once()
		deps.repo.EXPECT().
			UpdateStatus(mock.Anything, int64(7001), domain.OrderStatusRefundPending).
			Return(nil).
			Once()
		deps.outbox.EXPECT().
			Enqueue(mock.Anything, messaging.TopicOrderCancelled, "7001", messaging.TopicOrderCancelled,
				messaging.OrderCancelled{OrderID: 7001}).
			Return(nil).
			Once()
		deps.outbox.EXPECT().
			Enqueue(mock.Anything, messaging.TopicRefundRequested, "7001", messaging.TopicRefundRequested,
				messaging.RefundRequested{OrderID: 7001}).
			Return(nil).
			Once()

		err := deps.useCase.CancelOrder(ctx, 7001, 1, true)

		require.NoError(t, err)
	})

	t.Run("Error: other user", func(t *testing.T) {
		deps := newOrderTestDeps(t)
		deps.passThroughTx()
		deps.repo.EXPECT().
			GetForUpdate(mock.Anything, int64(7001)).
			Return(&domain.Order{ID: 7001, UserID: 42, Status: domain.OrderStatusCreated}, nil).
			Once()

		err := deps.useCase.CancelOrder(ctx, 7001, 7, false)

		assert.ErrorIs(t, err, domain.ErrOrderAccessDenied)
	})

	for _, status := range []domain.OrderStatus{
		domain.OrderStatusDelivered,
		domain.OrderStatusCancelled,
		domain.OrderStatusRefundPending,
		domain.OrderStatusRefundFailed,
	} {
		t.Run("Error: not cancellable from "+string(status), func(t *testing.T) {
			deps := newOrderTestDeps(t)
			deps.passThroughTx()
			deps.repo.EXPECT().
				GetForUpdate(mock.Anything, int64(7001)).
				Return(&domain.Order{ID: 7001, UserID: 42, Status: status}, nil).
				Once()

			err := deps.useCase.CancelOrder(ctx, 7001, 42, false)

			assert.ErrorIs(t, err, domain.ErrOrderNotCancellable)
			assert.ErrorIs(t, err, apperrors.ErrConflict)
		})
	}

	t.Run("Error: not found", func(t *testing.T) {
		deps := newOrderTestDeps(t)
		deps.passThroughTx()
		deps.repo.EXPECT().GetForUpdate(mock.Anything, int64(7001)).Return(nil, domain.ErrOrderNotFound).Once()

		err := deps.useCase.CancelOrder(ctx, 7001, 42, false)

		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}

func TestOrderUseCase_EventTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("MarkPaid moves CREATED to PAID", func(t *testing.T) {
		deps := newOrderTestDeps(t)
		deps.passThroughTx()
		deps.repo.EXPECT().
			GetForUpdate(mock.Anything, int64(7001)).
			Return(&domain.Order{ID: 7001, Status: domain.OrderStatusCreated}, nil).
			Once()
		deps.repo.EXPECT().UpdateStatus(mock.Anything, int64(7001), domain.OrderStatusPaid).Return(nil).Once()

		require.NoError(t, deps.useCase.MarkPaid(ctx, 7001))
	})

	t.Run("MarkPaid on a cancelled order requests a refund", func(t *testing.T) {
		deps := newOrderTestDeps(t)
		deps.passThroughTx()
		deps.repo.EXPECT().
			GetForUpdate(mock.Anything, int64(7001)).
			Return(&domain.Order{ID: 7001, Status: domain.OrderStatusCancelled}, nil).
			Once()
		deps.outbox.EXPECT().
			Enqueue(mock.Anything, messaging.TopicRefundRequested, "7001", messaging.TopicRefundRequested,
				messaging.RefundRequested{OrderID: 7001}).
			Return(nil).
			Once()

		require.NoError(t, deps.useCase.MarkPaid(ctx, 7001))
	})

	t.Run("MarkPaid is a no-op when already paid", func(t *testing.T) {
		deps := newOrderTestDeps(t)
		deps.passThroughTx()
		deps.repo.EXPECT().
			GetForUpdate(mock.Anything, int64(7001)).
			Return(&domain.Order{ID: 7001, Status: domain.OrderStatusPaid}, nil).
			Once()

		require.NoError(t, deps.useCase.MarkPaid(ctx, 7001))
	})

	t.Run("CancelBySystem cancels and enqueues order-cancelled", func(t *testing.T) {
		deps := newOrderTestDeps(t)
		deps.passThroughTx()
		deps.repo.EXPECT().
			GetForUpdate(mock.Anything, int64(7001)).
			Return(&domain.Order{ID: 7001, Status: domain.OrderStatusCreated}, nil).
			Once()
		deps.repo.EXPECT().UpdateStatus(mock.Anything, int64(7001), domain.OrderStatusCancelled).Return(nil).Once()
		deps.outbox.EXPECT().
			Enqueue(mock.Anything, messaging.TopicOrderCancelled, "7001", messaging.TopicOrderCancelled,
				messaging.OrderCancelled{OrderID: 7001}).
			Return(nil).
			Once()

		require.NoError(t, deps.useCase.CancelBySystem(ctx, 7001, "insufficient stock"))
	})

	t.Run("CancelBySystem refunds a paid order whose reservation expired", func(t *testing.T) {
		deps := newOrderTestDeps(t)
		deps.passThroughTx()
		deps.repo.EXPECT().
			GetForUpdate(mock.Anything, int64(7001)).
			Return(&domain.Order{ID: 7001, Status: domain.OrderStatusPaid}, nil).
			Once()
		deps.repo.EXPECT().
			UpdateStatus(mock.Anything, int64(7001), domain.OrderStatusRefundPending).
			Return(nil).
			Once()
		deps.outbox.EXPECT().
			Enqueue(mock.Anything, messaging.TopicOrderCancelled, "7001", messaging.TopicOrderCancelled,
				messaging.OrderCancelled{OrderID: 7001}).
			Return(nil).
			Once()
		deps.outbox.EXPECT().
			Enqueue(mock.Anything, messaging.TopicRefundRequested, "7001", messaging.TopicRefundRequested,
				messaging.RefundRequested{OrderID: 7001}).
			Return(nil).
			Once()

		require.NoError(t, deps.useCase.CancelBySystem(ctx, 7001, "reservation expired"))
	})

	t.Run("MarkRefundCompleted moves REFUND_PENDING to CANCELLED", func(t *testing.T) {
		deps := newOrderTestDeps(t)
		deps.passThroughTx()
		deps.repo.EXPECT().
			GetForUpdate(mock.Anything, int64(7001)).
			Return(&domain.Order{ID: 7001, Status: domain.OrderStatusRefundPending}, nil).
			Once()
		deps.repo.EXPECT().UpdateStatus(mock.Anything, int64(7001), domain.OrderStatusCancelled).Return(nil).Once()

		require.NoError(t, deps.useCase.MarkRefundCompleted(ctx, 7001))
	})

	t.Run("MarkRefundFailed moves REFUND_PENDING to REFUND_FAILED", func(t *testing.T) {
		deps := newOrderTestDeps(t)
		deps.passThroughTx()
		deps.repo.EXPECT().
			GetForUpdate(mock.Anything, int64(7001)).
			Return(&domain.Order{ID: 7001, Status: domain.OrderStatusRefundPending}, nil).
			Once()
		deps.repo.EXPECT().UpdateStatus(mock.Anything, int64(7001), domain.OrderStatusRefundFailed).Return(nil).Once()

		require.NoError(t, deps.useCase.MarkRefundFailed(ctx, 7001, "payment not refundable"))
	})

	// Each event accepts one source state. Finding the order elsewhere leaves it untouched
	// and enqueues nothing; the mocks fail on any UpdateStatus or Enqueue call.
	ignored := []struct {
		name   string
		status domain.OrderStatus
		apply  func(uc OrderUseCase) error
	}{
		{
			name:   "CancelBySystem ignores a REFUND_PENDING order",
			status: domain.OrderStatusRefundPending,
			apply:  func(uc OrderUseCase) error { return uc.CancelBySystem(ctx, 7001, "insufficient stock") },
		},
		{
			name:   "CancelBySystem ignores a CANCELLED order",
			status: domain.OrderStatusCancelled,
			apply:  func(uc OrderUseCase) error { return uc.CancelBySystem(ctx, 7001, "payment declined") },
		},
		{
			name:   "MarkRefundCompleted ignores a CREATED order",
			status: domain.OrderStatusCreated,
			apply:  func(uc OrderUseCase) error { return uc.MarkRefundCompleted(ctx, 7001) },
		},
		{
			name:   "MarkRefundCompleted ignores a CANCELLED order",
			status: domain.OrderStatusCancelled,
			apply:  func(uc OrderUseCase) error { return uc.MarkRefundCompleted(ctx, 7001) },
		},
		{
			name:   "MarkRefundFailed ignores a CREATED order",
			status: domain.OrderStatusCreated,
			apply:  func(uc OrderUseCase) error { return uc.MarkRefundFailed(ctx, 7001, "payment not refundable") },
		},
		{
			name:   "MarkRefundFailed ignores a CANCELLED order",
			status: domain.OrderStatusCancelled,
			apply:  func(uc OrderUseCase) error { return uc.MarkRefundFailed(ctx, 7001, "payment not refundable") },
		},
		{
			name:   "MarkPaid ignores a REFUND_PENDING order",
			status: domain.OrderStatusRefundPending,
			apply:  func(uc OrderUseCase) error { return uc.MarkPaid(ctx, 7001) },
		},
	}
	for _, tt := range ignored {
		t.Run(tt.name, func(t *testing.T) {
			deps := newOrderTestDeps(t)
			deps.passThroughTx()
			deps.repo.EXPECT().
				GetForUpdate(mock.Anything, int64(7001)).
				Return(&domain.Order{ID: 7001, Status: tt.status}, nil).
				Once()

			require.NoError(t, tt.apply(deps.useCase))
		})
	}

	t.Run("Error: unknown order is returned for retry", func(t *testing.T) {
		deps := newOrderTestDeps(t)
		deps.passThroughTx()
		deps.repo.EXPECT().GetForUpdate(mock.Anything, int64(7001)).Return(nil, domain.ErrOrderNotFound).Once()

		err := deps.useCase.MarkPaid(ctx, 7001)

		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})

	t.Run("Error: update failure", func(t *testing.T) {
		deps := newOrderTestDeps(t)
		dbErr := errors.New("connection reset")
		deps.passThroughTx()
		deps.repo.EXPECT().
			GetForUpdate(mock.Anything, int64(7001)).
			Return(&domain.Order{ID: 7001, Status: domain.OrderStatusCreated}, nil).
			Once()
		deps.repo.EXPECT().UpdateStatus(mock.Anything, int64(7001), domain.OrderStatusPaid).Return(dbErr).Once()

		err := deps.useCase.MarkPaid(ctx, 7001)

		assert.ErrorIs(t, err, dbErr)
	})
}
