package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/allisson/ordersaga/internal/app"
	"github.com/allisson/ordersaga/internal/config"
)

const shutdownTimeout = 30 * time.Second

var errComponentStopped = errors.New("stopped before shutdown")

// component is a long-running part of the server process. shutdown is nil for
// workers that stop on context cancellation alone.
type component struct {
	name     string
	start    func(ctx context.Context) error
	shutdown func(ctx context.Context) error
}

// RunServer starts the participant selected by SERVICE_NAME: the API and metrics
// servers, the outbox relay, the broker consumer and, for inventory, the
// reservation reaper. Blocks until SIGINT/SIGTERM or until a component fails.
func RunServer(ctx context.Context, version string) error {
	cfg := config.Load()

	// Set Gin mode based on log level
	gin.SetMode(cfg.GetGinMode())

	container := app.NewContainer(cfg)

	logger := container.Logger()
	logger.Info("starting server",
		slog.String("version", version),
		slog.String("service", cfg.ServiceName),
	)

	defer closeContainer(container, logger)

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, err := serverComponents(ctx, container)
	if err != nil {
		return err
	}

	return runComponents(ctx, logger, shutdownTimeout, components)
}

// serverComponents builds the components enabled by configuration.
func serverComponents(ctx context.Context, container *app.Container) ([]component, error) {
	cfg := container.Config()

	if _, err := container.TracerProvider(); err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	server, err := container.HTTPServer(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize HTTP server: %w", err)
	}
	components := []component{{name: "api server", start: server.Start, shutdown: server.Shutdown}}

	if cfg.MetricsEnabled {
		metricsServer, err := container.MetricsServer()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize metrics server: %w", err)
		}
		components = append(components, component{
			name:     "metrics server",
			start:    metricsServer.Start,
			shutdown: metricsServer.Shutdown,
		})
	}

	if cfg.OutboxRelayEnabled {
		relay, err := container.Relay()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize outbox relay: %w", err)
		}
		components = append(components, component{name: "outbox relay", start: relay.Start})
	}

	if cfg.ConsumerEnabled {
		consumer, err := container.Consumer()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize consumer: %w", err)
		}
		components = append(components, component{name: "consumer", start: consumer.Start})
	}

	if cfg.ServiceName == config.ServiceInventory && cfg.ReservationReaperEnabled {
		reaper, err := container.Reaper()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize reservation reaper: %w", err)
		}
		components = append(components, component{name: "reservation reaper", start: reaper.Start})
	}

	return components, nil
}

// runComponents starts every component under one errgroup. When ctx is cancelled or
// any component fails, components with a shutdown hook are stopped within timeout.
func runComponents(
	ctx context.Context,
	logger *slog.Logger,
	timeout time.Duration,
	components []component,
) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, comp := range components {
		g.Go(func() error {
			if err := comp.start(gctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("component failed", slog.String("component", comp.name), slog.Any("error", err))
				return fmt.Errorf("%s: %w", comp.name, err)
			}
			if gctx.Err() == nil {
				return fmt.Errorf("%s: %w", comp.name, errComponentStopped)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Int("components", len(components)))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		var shutdownErrors []error
		for _, comp := range components {
			if comp.shutdown == nil {
				continue
			}
			if err := comp.shutdown(shutdownCtx); err != nil {
				shutdownErrors = append(shutdownErrors, fmt.Errorf("%s shutdown: %w", comp.name, err))
			}
		}
		return errors.Join(shutdownErrors...)
	})

	return g.Wait()
}
