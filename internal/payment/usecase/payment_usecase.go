package usecase

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/allisson/ordersaga/internal/database"
	apperrors "github.com/allisson/ordersaga/internal/errors"
	"github.com/allisson/ordersaga/internal/messaging"
	outboxUseCase "github.com/allisson/ordersaga/internal/outbox/usecase"
	"github.com/allisson/ordersaga/internal/payment/domain"
)

// paymentUseCase implements PaymentUseCase.
type paymentUseCase struct {
	txManager   database.TxManager
	paymentRepo PaymentRepository
	gateway     Gateway
	outbox      outboxUseCase.Enqueuer
	logger      *slog.Logger
	now         func() time.Time
}

// NewPaymentUseCase creates a new PaymentUseCase with the provided dependencies.
func NewPaymentUseCase(
	txManager database.TxManager,
	paymentRepo PaymentRepository,
	gateway Gateway,
	outbox outboxUseCase.Enqueuer,
	logger *slog.Logger,
) PaymentUseCase {
	return &paymentUseCase{
		txManager:   txManager,
		paymentRepo: paymentRepo,
		gateway:     gateway,
		outbox:      outbox,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// InitiatePayment validates the request and charges the order in a transaction.
func (p *paymentUseCase) InitiatePayment(
	ctx context.Context,
	orderID int64,
	amount decimal.Decimal,
	method string,
) (*domain.Payment, error) {
	if orderID <= 0 || !amount.IsPositive() || strings.TrimSpace(method) == "" {
		return nil, domain.ErrInvalidPayment
	}

	var payment *domain.Payment
	err := p.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		payment, err = p.charge(ctx, orderID, amount, method)
		return err
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}

// ProcessInventoryReserved charges the reserved order by credit card. A reservation that
// expired before the charge is declined without calling the gateway, since the reaper has
// already released its stock.
func (p *paymentUseCase) ProcessInventoryReserved(
	ctx context.Context,
	orderID int64,
	amount decimal.Decimal,
	expiresAt time.Time,
) error {
	return p.txManager.WithTx(ctx, func(ctx context.Context) error {
		if !expiresAt.IsZero() && !p.now().Before(expiresAt) {
			p.logger.Warn("reservation expired before charge",
				slog.Int64("order_id", orderID),
				slog.Time("expires_at", expiresAt),
			)
			return p.enqueue(ctx, messaging.TopicPaymentFailed, orderID, messaging.PaymentFailed{
				OrderID: orderID,
				Reason:  domain.ErrReservationExpired.Error(),
			})
		}

		payment, err := p.charge(ctx, orderID, amount, domain.MethodCreditCard)
		if err != nil {
			return err
		}

		switch payment.Status {
		case domain.PaymentStatusCompleted:
			return p.enqueue(ctx, messaging.TopicPaymentSuccess, orderID, messaging.PaymentSuccess{
				OrderID:       orderID,
				TransactionID: payment.TransactionID,
			})
		case domain.PaymentStatusFailed:
			return p.enqueue(ctx, messaging.TopicPaymentFailed, orderID, messaging.PaymentFailed{
				OrderID: orderID,
				Reason:  payment.FailureReason,
			})
		default:
			p.logger.Warn("payment already refunded, ignoring inventory reservation",
				slog.Int64("order_id", orderID),
			)
			return nil
		}
	})
}

// RefundPayment refunds the order's payment in a transaction.
func (p *paymentUseCase) RefundPayment(ctx context.Context, orderID int64) (*domain.Payment, error) {
	var payment *domain.Payment
	err := p.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		payment, err = p.refund(ctx, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}

// ProcessRefundRequested refunds the order and reports the outcome to the saga. Business
// rejections are answered with refund-failed and are not returned.
func (p *paymentUseCase) ProcessRefundRequested(ctx context.Context, orderID int64) error {
	err := p.txManager.WithTx(ctx, func(ctx context.Context) error {
		payment, err := p.refund(ctx, orderID)
		if err != nil {
			return err
		}

		return p.enqueue(ctx, messaging.TopicRefundSuccess, orderID, messaging.RefundSuccess{
			OrderID:       orderID,
			TransactionID: payment.TransactionID,
		})
	})
	if err == nil || !isRefundRejected(err) {
		return err
	}

	p.logger.Warn("refund rejected",
		slog.Int64("order_id", orderID),
		slog.String("reason", err.Error()),
	)

	return p.txManager.WithTx(ctx, func(ctx context.Context) error {
		return p.enqueue(ctx, messaging.TopicRefundFailed, orderID, messaging.RefundFailed{
			OrderID: orderID,
			Reason:  err.Error(),
		})
	})
}

// GetPaymentByOrder returns the order's payment.
func (p *paymentUseCase) GetPaymentByOrder(ctx context.Context, orderID int64) (*domain.Payment, error) {
	return p.paymentRepo.GetByOrderID(ctx, orderID)
}

// charge must run inside a transaction.
func (p *paymentUseCase) charge(
	ctx context.Context,
	orderID int64,
	amount decimal.Decimal,
	method string,
) (*domain.Payment, error) {
	payment, err := p.paymentRepo.GetByOrderIDForUpdate(ctx, orderID)
	switch {
	case err == nil:
		if payment.IsSettled() {
			p.logger.Info("payment already settled",
				slog.Int64("order_id", orderID),
				slog.String("status", string(payment.Status)),
			)
			return payment, nil
		}
		payment.Amount = amount
		payment.PaymentMethod = method
	case apperrors.Is(err, domain.ErrPaymentNotFound):
		payment = &domain.Payment{
			OrderID:       orderID,
			Amount:        amount,
			PaymentMethod: method,
			Status:        domain.PaymentStatusPending,
		}
		if err := p.paymentRepo.Create(ctx, payment); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	result, err := p.gateway.Charge(ctx, orderID, amount, method)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to charge payment")
	}

	if result.Approved {
		payment.Approve(result.TransactionID)
		p.logger.Info("payment completed",
			slog.Int64("order_id", orderID),
			slog.String("transaction_id", result.TransactionID),
		)
	} else {
		payment.Decline(result.DeclineReason)
		p.logger.Warn("payment declined",
			slog.Int64("order_id", orderID),
			slog.String("reason", result.DeclineReason),
		)
	}

	if err := p.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// refund must run inside a transaction.
func (p *paymentUseCase) refund(ctx context.Context, orderID int64) (*domain.Payment, error) {
	payment, err := p.paymentRepo.GetByOrderIDForUpdate(ctx, orderID)
	if err != nil {
		return nil, err
	}

	switch payment.Status {
	case domain.PaymentStatusRefunded:
		return payment, nil
	case domain.PaymentStatusCompleted:
	default:
		return nil, domain.ErrPaymentNotRefundable
	}

	if err := p.gateway.Refund(ctx, payment.TransactionID); err != nil {
		return nil, apperrors.Wrap(err, "failed to refund payment")
	}

	payment.Status = domain.PaymentStatusRefunded
	if err := p.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	p.logger.Info("payment refunded",
		slog.Int64("order_id", orderID),
		slog.String("transaction_id", payment.TransactionID),
	)

	return payment, nil
}

func (p *paymentUseCase) enqueue(ctx context.Context, topic string, orderID int64, payload any) error {
	return p.outbox.Enqueue(ctx, topic, strconv.FormatInt(orderID, 10), topic, payload)
}

func isRefundRejected(err error) bool {
	return apperrors.Is(err, domain.ErrPaymentNotRefundable) ||
		apperrors.Is(err, domain.ErrPaymentNotFound)
}
