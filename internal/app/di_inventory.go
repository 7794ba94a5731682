package app

import (
	"fmt"
	"sync"

	inventoryConsumer "github.com/allisson/ordersaga/internal/inventory/consumer"
	inventoryHTTP "github.com/allisson/ordersaga/internal/inventory/http"
	inventoryRepository "github.com/allisson/ordersaga/internal/inventory/repository"
	inventoryUseCase "github.com/allisson/ordersaga/internal/inventory/usecase"
)

type inventoryComponents struct {
	inventoryRepo         inventoryUseCase.InventoryRepository
	reservationRepo       inventoryUseCase.ReservationRepository
	inventoryUseCase      inventoryUseCase.InventoryUseCase
	reaper                *inventoryUseCase.Reaper
	inventoryHandler      *inventoryHTTP.InventoryHandler
	inventoryEventHandler *inventoryConsumer.EventHandler

	inventoryRepoInit         sync.Once
	reservationRepoInit       sync.Once
	inventoryUseCaseInit      sync.Once
	reaperInit                sync.Once
	inventoryHandlerInit      sync.Once
	inventoryEventHandlerInit sync.Once
}

// InventoryRepository returns the inventory repository based on database driver.
func (c *Container) InventoryRepository() (inventoryUseCase.InventoryRepository, error) {
	var err error
	c.inventoryRepoInit.Do(func() {
		c.inventoryRepo, err = c.initInventoryRepository()
		if err != nil {
			c.initErrors["inventoryRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["inventoryRepo"]; exists {
		return nil, storedErr
	}
	return c.inventoryRepo, nil
}

// ReservationRepository returns the reservation repository based on database driver.
func (c *Container) ReservationRepository() (inventoryUseCase.ReservationRepository, error) {
	var err error
	c.reservationRepoInit.Do(func() {
		c.reservationRepo, err = c.initReservationRepository()
		if err != nil {
			c.initErrors["reservationRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["reservationRepo"]; exists {
		return nil, storedErr
	}
	return c.reservationRepo, nil
}

// InventoryUseCase returns the inventory use case.
func (c *Container) InventoryUseCase() (inventoryUseCase.InventoryUseCase, error) {
	var err error
	c.inventoryUseCaseInit.Do(func() {
		c.inventoryUseCase, err = c.initInventoryUseCase()
		if err != nil {
			c.initErrors["inventoryUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["inventoryUseCase"]; exists {
		return nil, storedErr
	}
	return c.inventoryUseCase, nil
}

// Reaper returns the expired reservation reaper.
func (c *Container) Reaper() (*inventoryUseCase.Reaper, error) {
	var err error
	c.reaperInit.Do(func() {
		var useCase inventoryUseCase.InventoryUseCase
		useCase, err = c.InventoryUseCase()
		if err != nil {
			err = fmt.Errorf("failed to get inventory use case for reaper: %w", err)
			c.initErrors["reaper"] = err
			return
		}
		c.reaper = inventoryUseCase.NewReaper(useCase, c.config.ReservationReaperInterval, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["reaper"]; exists {
		return nil, storedErr
	}
	return c.reaper, nil
}

// InventoryHandler returns the HTTP handler for inventory operations.
func (c *Container) InventoryHandler() (*inventoryHTTP.InventoryHandler, error) {
	var err error
	c.inventoryHandlerInit.Do(func() {
		c.inventoryHandler, err = c.initInventoryHandler()
		if err != nil {
			c.initErrors["inventoryHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["inventoryHandler"]; exists {
		return nil, storedErr
	}
	return c.inventoryHandler, nil
}

// InventoryEventHandler returns the saga event handler of the inventory service.
func (c *Container) InventoryEventHandler() (*inventoryConsumer.EventHandler, error) {
	var err error
	c.inventoryEventHandlerInit.Do(func() {
		c.inventoryEventHandler, err = c.initInventoryEventHandler()
		if err != nil {
			c.initErrors["inventoryEventHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["inventoryEventHandler"]; exists {
		return nil, storedErr
	}
	return c.inventoryEventHandler, nil
}

func (c *Container) initInventoryRepository() (inventoryUseCase.InventoryRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for inventory repository: %w", err)
	}

	switch c.config.DBDriver {
	case driverMySQL:
		return inventoryRepository.NewMySQLInventoryRepository(db), nil
	case driverPostgres:
		return inventoryRepository.NewPostgreSQLInventoryRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initReservationRepository() (inventoryUseCase.ReservationRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for reservation repository: %w", err)
	}

	switch c.config.DBDriver {
	case driverMySQL:
		return inventoryRepository.NewMySQLReservationRepository(db), nil
	case driverPostgres:
		return inventoryRepository.NewPostgreSQLReservationRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initInventoryUseCase() (inventoryUseCase.InventoryUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for inventory use case: %w", err)
	}

	inventoryRepo, err := c.InventoryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory repository for inventory use case: %w", err)
	}

	reservationRepo, err := c.ReservationRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation repository for inventory use case: %w", err)
	}

	outbox, err := c.OutboxEnqueuer()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox enqueuer for inventory use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for inventory use case: %w", err)
	}

	useCase := inventoryUseCase.NewInventoryUseCase(
		txManager,
		inventoryRepo,
		reservationRepo,
		outbox,
		c.config.ReservationTTL,
		c.config.ReservationReaperBatchSize,
		c.Logger(),
	)
	return inventoryUseCase.NewInventoryUseCaseWithMetrics(useCase, businessMetrics), nil
}

func (c *Container) initInventoryHandler() (*inventoryHTTP.InventoryHandler, error) {
	useCase, err := c.InventoryUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory use case for inventory handler: %w", err)
	}
	return inventoryHTTP.NewInventoryHandler(useCase, c.Logger()), nil
}

func (c *Container) initInventoryEventHandler() (*inventoryConsumer.EventHandler, error) {
	useCase, err := c.InventoryUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory use case for inventory event handler: %w", err)
	}

	guard, err := c.Guard()
	if err != nil {
		return nil, fmt.Errorf("failed to get guard for inventory event handler: %w", err)
	}

	return inventoryConsumer.NewEventHandler(useCase, guard, c.Logger()), nil
}
