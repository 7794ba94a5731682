package app

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	paymentConsumer "github.com/allisson/ordersaga/internal/payment/consumer"
	"github.com/allisson/ordersaga/internal/payment/gateway"
	paymentHTTP "github.com/allisson/ordersaga/internal/payment/http"
	paymentRepository "github.com/allisson/ordersaga/internal/payment/repository"
	paymentUseCase "github.com/allisson/ordersaga/internal/payment/usecase"
)

type paymentComponents struct {
	paymentRepo         paymentUseCase.PaymentRepository
	paymentGateway      paymentUseCase.Gateway
	paymentUseCase      paymentUseCase.PaymentUseCase
	paymentHandler      *paymentHTTP.PaymentHandler
	paymentEventHandler *paymentConsumer.EventHandler

	paymentRepoInit         sync.Once
	paymentGatewayInit      sync.Once
	paymentUseCaseInit      sync.Once
	paymentHandlerInit      sync.Once
	paymentEventHandlerInit sync.Once
}

// PaymentRepository returns the payment repository based on database driver.
func (c *Container) PaymentRepository() (paymentUseCase.PaymentRepository, error) {
	var err error
	c.paymentRepoInit.Do(func() {
		c.paymentRepo, err = c.initPaymentRepository()
		if err != nil {
			c.initErrors["paymentRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["paymentRepo"]; exists {
		return nil, storedErr
	}
	return c.paymentRepo, nil
}

// PaymentGateway returns the simulated payment gateway.
func (c *Container) PaymentGateway() paymentUseCase.Gateway {
	c.paymentGatewayInit.Do(func() {
		c.paymentGateway = gateway.NewSimulatedGateway(
			decimal.NewFromFloat(c.config.PaymentGatewayMaxAmount),
			c.Logger(),
		)
	})
	return c.paymentGateway
}

// PaymentUseCase returns the payment use case.
func (c *Container) PaymentUseCase() (paymentUseCase.PaymentUseCase, error) {
	var err error
	c.paymentUseCaseInit.Do(func() {
		c.paymentUseCase, err = c.initPaymentUseCase()
		if err != nil {
			c.initErrors["paymentUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["paymentUseCase"]; exists {
		return nil, storedErr
	}
	return c.paymentUseCase, nil
}

// PaymentHandler returns the HTTP handler for payment operations.
func (c *Container) PaymentHandler() (*paymentHTTP.PaymentHandler, error) {
	var err error
	c.paymentHandlerInit.Do(func() {
		c.paymentHandler, err = c.initPaymentHandler()
		if err != nil {
			c.initErrors["paymentHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["paymentHandler"]; exists {
		return nil, storedErr
	}
	return c.paymentHandler, nil
}

// PaymentEventHandler returns the saga event handler of the payment service.
func (c *Container) PaymentEventHandler() (*paymentConsumer.EventHandler, error) {
	var err error
	c.paymentEventHandlerInit.Do(func() {
		c.paymentEventHandler, err = c.initPaymentEventHandler()
		if err != nil {
			c.initErrors["paymentEventHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["paymentEventHandler"]; exists {
		return nil, storedErr
	}
	return c.paymentEventHandler, nil
}

func (c *Container) initPaymentRepository() (paymentUseCase.PaymentRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for payment repository: %w", err)
	}

	switch c.config.DBDriver {
	case driverMySQL:
		return paymentRepository.NewMySQLPaymentRepository(db), nil
	case driverPostgres:
		return paymentRepository.NewPostgreSQLPaymentRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initPaymentUseCase() (paymentUseCase.PaymentUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for payment use case: %w", err)
	}

	paymentRepo, err := c.PaymentRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get payment repository for payment use case: %w", err)
	}

	outbox, err := c.OutboxEnqueuer()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox enqueuer for payment use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for payment use case: %w", err)
	}

	useCase := paymentUseCase.NewPaymentUseCase(txManager, paymentRepo, c.PaymentGateway(), outbox, c.Logger())
	return paymentUseCase.NewPaymentUseCaseWithMetrics(useCase, businessMetrics), nil
}

func (c *Container) initPaymentHandler() (*paymentHTTP.PaymentHandler, error) {
	useCase, err := c.PaymentUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get payment use case for payment handler: %w", err)
	}
	return paymentHTTP.NewPaymentHandler(useCase, c.Logger()), nil
}

func (c *Container) initPaymentEventHandler() (*paymentConsumer.EventHandler, error) {
	useCase, err := c.PaymentUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get payment use case for payment event handler: %w", err)
	}

	guard, err := c.Guard()
	if err != nil {
		return nil, fmt.Errorf("failed to get guard for payment event handler: %w", err)
	}

	return paymentConsumer.NewEventHandler(useCase, guard, c.Logger()), nil
}
