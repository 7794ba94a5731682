// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/allisson/ordersaga/internal/config"
	"github.com/allisson/ordersaga/internal/database"
	dedupRepository "github.com/allisson/ordersaga/internal/dedup/repository"
	dedupUseCase "github.com/allisson/ordersaga/internal/dedup/usecase"
	"github.com/allisson/ordersaga/internal/http"
	"github.com/allisson/ordersaga/internal/messaging"
	"github.com/allisson/ordersaga/internal/metrics"
	outboxRepository "github.com/allisson/ordersaga/internal/outbox/repository"
	outboxUseCase "github.com/allisson/ordersaga/internal/outbox/usecase"
)

const (
	driverPostgres = "postgres"
	driverMySQL    = "mysql"

	dbConnectTimeout   = 10 * time.Second
	redriveIdleTimeout = 5 * time.Second
	redriveGroupSuffix = "-redrive"
)

// EventRegistrar subscribes a participant's event handlers to the consumer.
type EventRegistrar interface {
	Register(subscriber messaging.Subscriber)
}

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
// Participant components (order, inventory, payment) live in di_<service>.go.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics
	tracerProvider  *sdktrace.TracerProvider
	kafkaWriter     *kafka.Writer
	publisher       messaging.Publisher

	// Managers
	txManager database.TxManager

	// Outbox and dedup
	outboxRepo         outboxUseCase.OutboxEventRepository
	outboxEnqueuer     outboxUseCase.Enqueuer
	relay              *outboxUseCase.Relay
	processedEventRepo dedupUseCase.ProcessedEventRepository
	guard              dedupUseCase.Guard
	consumer           *messaging.Consumer
	redriver           *messaging.Redriver

	// Order participant
	orderComponents

	// Inventory participant
	inventoryComponents

	// Payment participant
	paymentComponents

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                     sync.Mutex
	loggerInit             sync.Once
	dbInit                 sync.Once
	txManagerInit          sync.Once
	metricsProviderInit    sync.Once
	businessMetricsInit    sync.Once
	tracerProviderInit     sync.Once
	kafkaWriterInit        sync.Once
	publisherInit          sync.Once
	outboxRepoInit         sync.Once
	outboxEnqueuerInit     sync.Once
	relayInit              sync.Once
	processedEventRepoInit sync.Once
	guardInit              sync.Once
	consumerInit           sync.Once
	redriverInit           sync.Once
	httpServerInit         sync.Once
	metricsServerInit      sync.Once
	initErrors             map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
// It creates and configures the database connection on first access.
func (c *Container) DB() (*sql.DB, error) {
	var err error
	c.dbInit.Do(func() {
		c.db, err = c.initDB()
		if err != nil {
			c.initErrors["db"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
// It requires a database connection to be initialized first.
func (c *Container) TxManager() (database.TxManager, error) {
	var err error
	c.txManagerInit.Do(func() {
		c.txManager, err = c.initTxManager()
		if err != nil {
			c.initErrors["txManager"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["txManager"]; exists {
		return nil, storedErr
	}
	return c.txManager, nil
}

// MetricsProvider returns the Prometheus backed meter provider.
// It returns nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder, a no-op one when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// TracerProvider returns the tracer provider installed as the global one.
// It returns nil when tracing is disabled.
func (c *Container) TracerProvider() (*sdktrace.TracerProvider, error) {
	var err error
	c.tracerProviderInit.Do(func() {
		c.tracerProvider, err = c.initTracerProvider()
		if err != nil {
			c.initErrors["tracerProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tracerProvider"]; exists {
		return nil, storedErr
	}
	return c.tracerProvider, nil
}

// KafkaWriter returns the shared broker writer.
func (c *Container) KafkaWriter() *kafka.Writer {
	c.kafkaWriterInit.Do(func() {
		c.kafkaWriter = messaging.NewKafkaWriter(c.kafkaConfig(c.config.KafkaConsumerGroup))
	})
	return c.kafkaWriter
}

// Publisher returns the broker publisher used by the relay, the redriver and dead-lettering.
func (c *Container) Publisher() messaging.Publisher {
	c.publisherInit.Do(func() {
		c.publisher = messaging.NewKafkaPublisher(c.KafkaWriter())
	})
	return c.publisher
}

// OutboxRepository returns the outbox event repository for the configured driver.
func (c *Container) OutboxRepository() (outboxUseCase.OutboxEventRepository, error) {
	var err error
	c.outboxRepoInit.Do(func() {
		c.outboxRepo, err = c.initOutboxRepository()
		if err != nil {
			c.initErrors["outboxRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["outboxRepo"]; exists {
		return nil, storedErr
	}
	return c.outboxRepo, nil
}

// OutboxEnqueuer returns the enqueuer use cases write events with.
func (c *Container) OutboxEnqueuer() (outboxUseCase.Enqueuer, error) {
	var err error
	c.outboxEnqueuerInit.Do(func() {
		c.outboxEnqueuer, err = c.initOutboxEnqueuer()
		if err != nil {
			c.initErrors["outboxEnqueuer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["outboxEnqueuer"]; exists {
		return nil, storedErr
	}
	return c.outboxEnqueuer, nil
}

// Relay returns the outbox relay.
func (c *Container) Relay() (*outboxUseCase.Relay, error) {
	var err error
	c.relayInit.Do(func() {
		c.relay, err = c.initRelay()
		if err != nil {
			c.initErrors["relay"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["relay"]; exists {
		return nil, storedErr
	}
	return c.relay, nil
}

// ProcessedEventRepository returns the dedup repository for the configured driver.
func (c *Container) ProcessedEventRepository() (dedupUseCase.ProcessedEventRepository, error) {
	var err error
	c.processedEventRepoInit.Do(func() {
		c.processedEventRepo, err = c.initProcessedEventRepository()
		if err != nil {
			c.initErrors["processedEventRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["processedEventRepo"]; exists {
		return nil, storedErr
	}
	return c.processedEventRepo, nil
}

// Guard returns the dedup guard shared by the event handlers.
func (c *Container) Guard() (dedupUseCase.Guard, error) {
	var err error
	c.guardInit.Do(func() {
		c.guard, err = c.initGuard()
		if err != nil {
			c.initErrors["guard"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["guard"]; exists {
		return nil, storedErr
	}
	return c.guard, nil
}

// Consumer returns the broker consumer with the participant's handlers subscribed.
func (c *Container) Consumer() (*messaging.Consumer, error) {
	var err error
	c.consumerInit.Do(func() {
		c.consumer, err = c.initConsumer()
		if err != nil {
			c.initErrors["consumer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["consumer"]; exists {
		return nil, storedErr
	}
	return c.consumer, nil
}

// Redriver returns the dead-letter redriver.
func (c *Container) Redriver() *messaging.Redriver {
	c.redriverInit.Do(func() {
		c.redriver = messaging.NewRedriver(
			messaging.NewKafkaReaderFactory(c.kafkaConfig(c.config.KafkaConsumerGroup+redriveGroupSuffix)),
			c.Publisher(),
			redriveIdleTimeout,
			c.Logger(),
		)
	})
	return c.redriver
}

// HTTPServer returns the API server with the participant's routes mounted.
func (c *Container) HTTPServer(ctx context.Context) (*http.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer(ctx)
		if err != nil {
			c.initErrors["httpServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		c.metricsServer, err = c.initMetricsServer()
		if err != nil {
			c.initErrors["metricsServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.kafkaWriter != nil {
		if err := c.kafkaWriter.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("kafka writer close: %w", err))
		}
	}

	if c.tracerProvider != nil {
		if err := c.tracerProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("tracer provider shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %w", errors.Join(shutdownErrors...))
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler).With(slog.String("service", c.config.ServiceName))
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
	defer cancel()

	db, err := database.Connect(ctx, database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initTxManager creates the transaction manager using the database connection.
func (c *Container) initTxManager() (database.TxManager, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
	}
	return database.NewTxManager(db), nil
}

func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := metrics.NewProvider(c.config.MetricsNamespace, c.config.ServiceName)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

// kafkaConfig returns the broker settings for a reader group or the writer.
func (c *Container) kafkaConfig(groupID string) messaging.KafkaConfig {
	return messaging.KafkaConfig{
		Brokers:      c.config.GetKafkaBrokers(),
		ClientID:     c.config.KafkaClientID,
		GroupID:      groupID,
		WriteTimeout: c.config.KafkaWriteTimeout,
	}
}

// initOutboxRepository selects the outbox repository based on the database driver.
func (c *Container) initOutboxRepository() (outboxUseCase.OutboxEventRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for outbox repository: %w", err)
	}

	switch c.config.DBDriver {
	case driverMySQL:
		return outboxRepository.NewMySQLOutboxEventRepository(db), nil
	case driverPostgres:
		return outboxRepository.NewPostgreSQLOutboxEventRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initOutboxEnqueuer() (outboxUseCase.Enqueuer, error) {
	outboxRepo, err := c.OutboxRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox repository for enqueuer: %w", err)
	}
	return outboxUseCase.NewEnqueuer(outboxRepo, c.Logger()), nil
}

func (c *Container) initRelay() (*outboxUseCase.Relay, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for relay: %w", err)
	}

	outboxRepo, err := c.OutboxRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox repository for relay: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for relay: %w", err)
	}

	relayConfig := outboxUseCase.RelayConfig{
		Interval:          c.config.OutboxInterval,
		BatchSize:         c.config.OutboxBatchSize,
		MaxAttempts:       c.config.OutboxMaxAttempts,
		InProgressTimeout: c.config.OutboxInProgressTimeout,
	}

	return outboxUseCase.NewRelay(
		relayConfig,
		txManager,
		outboxRepo,
		c.Publisher(),
		businessMetrics,
		c.Logger(),
	), nil
}

// initProcessedEventRepository selects the dedup repository based on the database driver.
func (c *Container) initProcessedEventRepository() (dedupUseCase.ProcessedEventRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for processed event repository: %w", err)
	}

	switch c.config.DBDriver {
	case driverMySQL:
		return dedupRepository.NewMySQLProcessedEventRepository(db), nil
	case driverPostgres:
		return dedupRepository.NewPostgreSQLProcessedEventRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initGuard() (dedupUseCase.Guard, error) {
	repo, err := c.ProcessedEventRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get processed event repository for guard: %w", err)
	}
	return dedupUseCase.NewGuard(repo, c.Logger()), nil
}

func (c *Container) initConsumer() (*messaging.Consumer, error) {
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for consumer: %w", err)
	}

	registrar, err := c.EventRegistrar()
	if err != nil {
		return nil, fmt.Errorf("failed to get event handlers for consumer: %w", err)
	}

	consumer := messaging.NewConsumer(
		messaging.NewKafkaReaderFactory(c.kafkaConfig(c.config.KafkaConsumerGroup)),
		c.Publisher(),
		messaging.ConsumerConfig{
			RetryMaxAttempts: c.config.ConsumerRetryMaxAttempts,
			RetryBackoff:     c.config.ConsumerRetryBackoff,
		},
		businessMetrics,
		c.Logger(),
	)
	registrar.Register(consumer)

	return consumer, nil
}

func (c *Container) initHTTPServer(ctx context.Context) (*http.Server, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	metricsProvider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	registrar, err := c.RouteRegistrar()
	if err != nil {
		return nil, fmt.Errorf("failed to get routes for http server: %w", err)
	}

	server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, c.Logger())
	if metricsProvider != nil {
		server.SetupRouter(ctx, c.config, metricsProvider.MeterProvider(), registrar)
	} else {
		server.SetupRouter(ctx, c.config, nil, registrar)
	}

	return server, nil
}

func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	metricsProvider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}
	if metricsProvider == nil {
		return nil, errors.New("metrics are disabled")
	}

	return http.NewMetricsServer(
		c.config.ServerHost,
		c.config.MetricsPort,
		c.Logger(),
		metricsProvider,
	), nil
}

// RouteRegistrar returns the HTTP handler of the configured participant.
func (c *Container) RouteRegistrar() (http.RouteRegistrar, error) {
	switch c.config.ServiceName {
	case config.ServiceOrder:
		return c.OrderHandler()
	case config.ServiceInventory:
		return c.InventoryHandler()
	case config.ServicePayment:
		return c.PaymentHandler()
	default:
		return nil, fmt.Errorf("unsupported service: %s", c.config.ServiceName)
	}
}

// EventRegistrar returns the event handler of the configured participant.
func (c *Container) EventRegistrar() (EventRegistrar, error) {
	switch c.config.ServiceName {
	case config.ServiceOrder:
		return c.OrderEventHandler()
	case config.ServiceInventory:
		return c.InventoryEventHandler()
	case config.ServicePayment:
		return c.PaymentEventHandler()
	default:
		return nil, fmt.Errorf("unsupported service: %s", c.config.ServiceName)
	}
}
