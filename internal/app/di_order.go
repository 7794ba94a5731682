package app

import (
	"fmt"
	"sync"

	"github.com/allisson/ordersaga/internal/catalog"
	orderConsumer "github.com/allisson/ordersaga/internal/order/consumer"
	orderHTTP "github.com/allisson/ordersaga/internal/order/http"
	orderRepository "github.com/allisson/ordersaga/internal/order/repository"
	orderUseCase "github.com/allisson/ordersaga/internal/order/usecase"
)

type orderComponents struct {
	orderRepo         orderUseCase.OrderRepository
	catalogClient     orderUseCase.CatalogClient
	orderUseCase      orderUseCase.OrderUseCase
	orderHandler      *orderHTTP.OrderHandler
	orderEventHandler *orderConsumer.EventHandler

	orderRepoInit         sync.Once
	catalogClientInit     sync.Once
	orderUseCaseInit      sync.Once
	orderHandlerInit      sync.Once
	orderEventHandlerInit sync.Once
}

// OrderRepository returns the order repository based on database driver.
func (c *Container) OrderRepository() (orderUseCase.OrderRepository, error) {
	var err error
	c.orderRepoInit.Do(func() {
		c.orderRepo, err = c.initOrderRepository()
		if err != nil {
			c.initErrors["orderRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["orderRepo"]; exists {
		return nil, storedErr
	}
	return c.orderRepo, nil
}

// CatalogClient returns the product catalog client.
func (c *Container) CatalogClient() orderUseCase.CatalogClient {
	c.catalogClientInit.Do(func() {
		c.catalogClient = catalog.NewHTTPClient(catalog.Config{
			BaseURL:                 c.config.CatalogBaseURL,
			ConnectTimeout:          c.config.CatalogConnectTimeout,
			ReadTimeout:             c.config.CatalogReadTimeout,
			RetryMaxAttempts:        c.config.CatalogRetryMaxAttempts,
			RetryBackoff:            c.config.CatalogRetryBackoff,
			BreakerFailureThreshold: c.config.CatalogBreakerFailureThreshold,
			BreakerTimeout:          c.config.CatalogBreakerTimeout,
		}, c.Logger())
	})
	return c.catalogClient
}

// OrderUseCase returns the order use case.
func (c *Container) OrderUseCase() (orderUseCase.OrderUseCase, error) {
	var err error
	c.orderUseCaseInit.Do(func() {
		c.orderUseCase, err = c.initOrderUseCase()
		if err != nil {
			c.initErrors["orderUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["orderUseCase"]; exists {
		return nil, storedErr
	}
	return c.orderUseCase, nil
}

// OrderHandler returns the HTTP handler for order operations.
func (c *Container) OrderHandler() (*orderHTTP.OrderHandler, error) {
	var err error
	c.orderHandlerInit.Do(func() {
		c.orderHandler, err = c.initOrderHandler()
		if err != nil {
			c.initErrors["orderHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["orderHandler"]; exists {
		return nil, storedErr
	}
	return c.orderHandler, nil
}

// OrderEventHandler returns the saga event handler of the order service.
func (c *Container) OrderEventHandler() (*orderConsumer.EventHandler, error) {
	var err error
	c.orderEventHandlerInit.Do(func() {
		c.orderEventHandler, err = c.initOrderEventHandler()
		if err != nil {
			c.initErrors["orderEventHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["orderEventHandler"]; exists {
		return nil, storedErr
	}
	return c.orderEventHandler, nil
}

func (c *Container) initOrderRepository() (orderUseCase.OrderRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for order repository: %w", err)
	}

	switch c.config.DBDriver {
	case driverMySQL:
		return orderRepository.NewMySQLOrderRepository(db), nil
	case driverPostgres:
		return orderRepository.NewPostgreSQLOrderRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initOrderUseCase() (orderUseCase.OrderUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for order use case: %w", err)
	}

	orderRepo, err := c.OrderRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get order repository for order use case: %w", err)
	}

	outbox, err := c.OutboxEnqueuer()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox enqueuer for order use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for order use case: %w", err)
	}

	useCase := orderUseCase.NewOrderUseCase(txManager, orderRepo, c.CatalogClient(), outbox, c.Logger())
	return orderUseCase.NewOrderUseCaseWithMetrics(useCase, businessMetrics), nil
}

func (c *Container) initOrderHandler() (*orderHTTP.OrderHandler, error) {
	useCase, err := c.OrderUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get order use case for order handler: %w", err)
	}
	return orderHTTP.NewOrderHandler(useCase, c.Logger()), nil
}

func (c *Container) initOrderEventHandler() (*orderConsumer.EventHandler, error) {
	useCase, err := c.OrderUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get order use case for order event handler: %w", err)
	}

	guard, err := c.Guard()
	if err != nil {
		return nil, fmt.Errorf("failed to get guard for order event handler: %w", err)
	}

	return orderConsumer.NewEventHandler(useCase, guard, c.Logger()), nil
}
