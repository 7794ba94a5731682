package commands

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type mockRelay struct {
	mock.Mock
}

func (m *mockRelay) Start(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockRelay) ProcessBatch(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockReaper struct {
	mock.Mock
}

func (m *mockReaper) RunOnce(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockRedriver struct {
	mock.Mock
}

func (m *mockRedriver) Redrive(ctx context.Context, topic string, limit int) (int, error) {
	args := m.Called(ctx, topic, limit)
	return args.Int(0), args.Error(1)
}

func TestRunRelay(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("once-text-output", func(t *testing.T) {
		relay := &mockRelay{}
		relay.On("ProcessBatch", ctx).Return(7, nil)

		var out bytes.Buffer
		err := RunRelay(ctx, relay, logger, &out, true, "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Published 7 outbox event(s)")
		relay.AssertExpectations(t)
	})

	t.Run("once-json-output", func(t *testing.T) {
		relay := &mockRelay{}
		relay.On("ProcessBatch", ctx).Return(3, nil)

		var out bytes.Buffer
		err := RunRelay(ctx, relay, logger, &out, true, "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), `"published": 3`)
		relay.AssertExpectations(t)
	})

	t.Run("once-error", func(t *testing.T) {
		relay := &mockRelay{}
		relay.On("ProcessBatch", ctx).Return(0, errors.New("db down"))

		err := RunRelay(ctx, relay, logger, &bytes.Buffer{}, true, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to process outbox batch")
	})

	t.Run("loop-stops-on-cancel", func(t *testing.T) {
		relay := &mockRelay{}
		relay.On("Start", ctx).Return(context.Canceled)

		err := RunRelay(ctx, relay, logger, &bytes.Buffer{}, false, "text")

		require.NoError(t, err)
		relay.AssertExpectations(t)
	})

	t.Run("loop-error", func(t *testing.T) {
		relay := &mockRelay{}
		relay.On("Start", ctx).Return(errors.New("boom"))

		err := RunRelay(ctx, relay, logger, &bytes.Buffer{}, false, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "outbox relay failed")
	})
}

func TestRunReapReservations(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("text-output", func(t *testing.T) {
		reaper := &mockReaper{}
		reaper.On("RunOnce", ctx).Return(2, nil)

		var out bytes.Buffer
		err := RunReapReservations(ctx, reaper, logger, &out, "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Released expired reservations of 2 order(s)")
		reaper.AssertExpectations(t)
	})

	t.Run("json-output", func(t *testing.T) {
		reaper := &mockReaper{}
		reaper.On("RunOnce", ctx).Return(0, nil)

		var out bytes.Buffer
		err := RunReapReservations(ctx, reaper, logger, &out, "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), `"orders": 0`)
	})

	t.Run("error", func(t *testing.T) {
		reaper := &mockReaper{}
		reaper.On("RunOnce", ctx).Return(0, errors.New("db down"))

		err := RunReapReservations(ctx, reaper, logger, &bytes.Buffer{}, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to release expired reservations")
	})
}

func TestRunRedriveDLT(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("text-output", func(t *testing.T) {
		redriver := &mockRedriver{}
		redriver.On("Redrive", ctx, "order-created", 0).Return(4, nil)

		var out bytes.Buffer
		err := RunRedriveDLT(ctx, redriver, logger, &out, " order-created ", 0, "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Redrove 4 message(s)")
		redriver.AssertExpectations(t)
	})

	t.Run("json-output", func(t *testing.T) {
		redriver := &mockRedriver{}
		redriver.On("Redrive", ctx, "payment-success.DLT", 10).Return(1, nil)

		var out bytes.Buffer
		err := RunRedriveDLT(ctx, redriver, logger, &out, "payment-success.DLT", 10, "json")

		require.NoError(t, err)
		assert.Contains(t, out.String(), `"redriven": 1`)
		assert.Contains(t, out.String(), `"topic": "payment-success.DLT"`)
	})

	t.Run("missing-topic", func(t *testing.T) {
		redriver := &mockRedriver{}
		err := RunRedriveDLT(ctx, redriver, logger, &bytes.Buffer{}, " ", 0, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "topic is required")
		redriver.AssertNotCalled(t, "Redrive", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("negative-limit", func(t *testing.T) {
		redriver := &mockRedriver{}
		err := RunRedriveDLT(ctx, redriver, logger, &bytes.Buffer{}, "order-created", -1, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "limit must be zero or a positive number")
	})

	t.Run("redrive-error", func(t *testing.T) {
		redriver := &mockRedriver{}
		redriver.On("Redrive", ctx, "order-created", 0).Return(2, errors.New("broker down"))

		err := RunRedriveDLT(ctx, redriver, logger, &bytes.Buffer{}, "order-created", 0, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to redrive order-created")
	})
}

// blockingComponent runs until its context is cancelled or shutdown is called.
func blockingComponent(name string, shutdowns *atomic.Int32) component {
	stop := make(chan struct{})
	return component{
		name: name,
		start: func(ctx context.Context) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-stop:
				return nil
			}
		},
		shutdown: func(ctx context.Context) error {
			shutdowns.Add(1)
			close(stop)
			return nil
		},
	}
}

func TestRunComponents(t *testing.T) {
	logger := slog.Default()

	t.Run("stops every component on cancellation", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		var shutdowns atomic.Int32
		worker := component{
			name: "worker",
			start: func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			},
		}

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- runComponents(ctx, logger, time.Second, []component{
				blockingComponent("api server", &shutdowns),
				blockingComponent("metrics server", &shutdowns),
				worker,
			})
		}()

		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("components did not stop")
		}
		assert.Equal(t, int32(2), shutdowns.Load())
	})

	t.Run("a failing component stops the others", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		var shutdowns atomic.Int32
		failing := component{
			name:  "consumer",
			start: func(ctx context.Context) error { return errors.New("reader failed") },
		}

		err := runComponents(context.Background(), logger, time.Second, []component{
			blockingComponent("api server", &shutdowns),
			failing,
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "consumer: reader failed")
		assert.Equal(t, int32(1), shutdowns.Load())
	})

	t.Run("an early exit is reported", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		err := runComponents(context.Background(), logger, time.Second, []component{{
			name:  "outbox relay",
			start: func(ctx context.Context) error { return nil },
		}})

		require.ErrorIs(t, err, errComponentStopped)
	})

	t.Run("shutdown errors are returned", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := runComponents(ctx, logger, time.Second, []component{{
			name: "api server",
			start: func(ctx context.Context) error {
				<-ctx.Done()
				return nil
			},
			shutdown: func(ctx context.Context) error { return errors.New("listener busy") },
		}})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "api server shutdown: listener busy")
	})
}
