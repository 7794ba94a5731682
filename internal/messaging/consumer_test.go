package messaging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/goleak"

	apperrors "github.com/allisson/ordersaga/internal/errors"
	"github.com/allisson/ordersaga/internal/metrics"
	metricsMocks "github.com/allisson/ordersaga/internal/metrics/mocks"
)

func newTestConsumer(readers map[string]*fakeReader, dlt *fakePublisher) *Consumer {
	factory := func(topic string) MessageReader {
		return readers[topic]
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewConsumer(
		factory,
		dlt,
		ConsumerConfig{RetryMaxAttempts: 3, RetryBackoff: time.Millisecond},
		metrics.NewNoOpBusinessMetrics(),
		logger,
	)
}

func TestConsumer_HandleMessage(t *testing.T) {
	msg := kafka.Message{
		Topic:     TopicOrderCreated,
		Partition: 2,
		Offset:    17,
		Key:       []byte("7001"),
		Value:     []byte(`{"orderId":7001}`),
		Headers:   []kafka.Header{{Key: HeaderEventType, Value: []byte(TopicOrderCreated)}},
	}

	t.Run("Success: handled on first attempt", func(t *testing.T) {
		dlt := &fakePublisher{}
		consumer := newTestConsumer(nil, dlt)
		calls := 0

		err := consumer.HandleMessage(context.Background(), msg, func(ctx context.Context, m kafka.Message) error {
			calls++
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.Empty(t, dlt.Published())
	})

	t.Run("Success: transient error retried", func(t *testing.T) {
		dlt := &fakePublisher{}
		consumer := newTestConsumer(nil, dlt)
		calls := 0

		err := consumer.HandleMessage(context.Background(), msg, func(ctx context.Context, m kafka.Message) error {
			calls++
			if calls < 3 {
				return apperrors.ErrUnavailable
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
		assert.Empty(t, dlt.Published())
	})

	t.Run("Dead-lettered after retries are exhausted", func(t *testing.T) {
		dlt := &fakePublisher{}
		consumer := newTestConsumer(nil, dlt)
		calls := 0

		err := consumer.HandleMessage(context.Background(), msg, func(ctx context.Context, m kafka.Message) error {
			calls++
			return errors.New("database timeout")
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
		published := dlt.Published()
		require.Len(t, published, 1)
		assert.Equal(t, "order-created.DLT", published[0].Topic)
		assert.Equal(t, "7001", published[0].Key)
		assert.Equal(t, msg.Value, published[0].Value)
		assert.Equal(t, TopicOrderCreated, published[0].Headers[HeaderDLTOriginalTopic])
		assert.Equal(t, "2", published[0].Headers[HeaderDLTOriginalPartition])
		assert.Equal(t, "17", published[0].Headers[HeaderDLTOriginalOffset])
		assert.Equal(t, "database timeout", published[0].Headers[HeaderDLTExceptionMessage])
		assert.NotEmpty(t, published[0].Headers[HeaderDLTTimestamp])
		assert.Equal(t, TopicOrderCreated, published[0].Headers[HeaderEventType])
	})

	t.Run("Dead-lettered message is counted", func(t *testing.T) {
		businessMetrics := metricsMocks.NewMockBusinessMetrics(t)
		consumer := NewConsumer(
			nil,
			&fakePublisher{},
			ConsumerConfig{RetryMaxAttempts: 1, RetryBackoff: time.Millisecond},
			businessMetrics,
			slog.New(slog.NewTextHandler(io.Discard, nil)),
		)

		businessMetrics.EXPECT().RecordOperation(mock.Anything, "messaging", "consume", "dlt").Once()
		businessMetrics.EXPECT().
			RecordDuration(mock.Anything, "messaging", "consume", mock.Anything, "dlt").
			Once()
		businessMetrics.EXPECT().
			RecordSagaEvent(mock.Anything, TopicOrderCreated, metrics.OutcomeDeadLettered).
			Once()

		err := consumer.HandleMessage(context.Background(), msg, func(ctx context.Context, m kafka.Message) error {
			return apperrors.ErrInvalidInput
		})

		require.NoError(t, err)
	})

	t.Run("Poison message skips retries", func(t *testing.T) {
		dlt := &fakePublisher{}
		consumer := newTestConsumer(nil, dlt)
		calls := 0

		err := consumer.HandleMessage(context.Background(), msg, func(ctx context.Context, m kafka.Message) error {
			calls++
			_, err := Decode[OrderCreated]([]byte("garbage"))
			return err
		})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.Len(t, dlt.Published(), 1)
	})

	t.Run("Error: dead-letter publish failure is returned", func(t *testing.T) {
		dlt := &fakePublisher{err: errors.New("broker down")}
		consumer := newTestConsumer(nil, dlt)

		err := consumer.HandleMessage(context.Background(), msg, func(ctx context.Context, m kafka.Message) error {
			return apperrors.ErrInvalidInput
		})

		assert.ErrorContains(t, err, "broker down")
	})

	t.Run("Handler sees remote trace context", func(t *testing.T) {
		prev := otel.GetTextMapPropagator()
		otel.SetTextMapPropagator(propagation.TraceContext{})
		defer otel.SetTextMapPropagator(prev)

		traced := msg
		traced.Headers = []kafka.Header{{
			Key:   "traceparent",
			Value: []byte("00-4bf92f3577b34da6a3ce929b0e0e4736-00f067aa0ba902b7-01"),
		}}
		consumer := newTestConsumer(nil, &fakePublisher{})

		var traceID string
		err := consumer.HandleMessage(context.Background(), traced, func(ctx context.Context, m kafka.Message) error {
			traceID = trace.SpanContextFromContext(ctx).TraceID().String()
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, "4bf92f3577b34da6a3ce929b0e0e4736", traceID)
	})
}

func TestConsumer_Start(t *testing.T) {
	defer goleak.VerifyNone(t)

	t.Run("Error: no subscriptions", func(t *testing.T) {
		consumer := newTestConsumer(nil, &fakePublisher{})

		err := consumer.Start(context.Background())

		assert.Error(t, err)
	})

	t.Run("Dispatches every topic and commits each message", func(t *testing.T) {
		created := newFakeReader(
			kafka.Message{Topic: TopicOrderCreated, Offset: 0, Value: []byte(`{"orderId":1}`)},
			kafka.Message{Topic: TopicOrderCreated, Offset: 1, Value: []byte(`{"orderId":2}`)},
		)
		cancelled := newFakeReader(
			kafka.Message{Topic: TopicOrderCancelled, Offset: 0, Value: []byte(`{"orderId":1}`)},
		)
		dlt := &fakePublisher{}
		consumer := newTestConsumer(map[string]*fakeReader{
			TopicOrderCreated:   created,
			TopicOrderCancelled: cancelled,
		}, dlt)

		var mu sync.Mutex
		handled := map[string]int{}
		handler := func(ctx context.Context, m kafka.Message) error {
			mu.Lock()
			defer mu.Unlock()
			handled[m.Topic]++
			if m.Topic == TopicOrderCancelled {
				return ErrPoison
			}
			return nil
		}
		consumer.Subscribe(TopicOrderCreated, handler)
		consumer.Subscribe(TopicOrderCancelled, handler)
		assert.Equal(t, []string{TopicOrderCreated, TopicOrderCancelled}, consumer.Topics())

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- consumer.Start(ctx)
		}()

		assert.Eventually(t, func() bool {
			return len(created.Committed()) == 2 && len(cancelled.Committed()) == 1
		}, time.Second, 5*time.Millisecond)

		cancel()
		err := <-done

		assert.ErrorIs(t, err, context.Canceled)
		assert.True(t, created.Closed())
		assert.True(t, cancelled.Closed())
		mu.Lock()
		assert.Equal(t, 2, handled[TopicOrderCreated])
		assert.Equal(t, 1, handled[TopicOrderCancelled])
		mu.Unlock()
		require.Len(t, dlt.Published(), 1)
		assert.Equal(t, "order-cancelled.DLT", dlt.Published()[0].Topic)
	})

	t.Run("Error: fetch failure stops the consumer", func(t *testing.T) {
		reader := newFakeReader()
		reader.fetchErr = errors.New("connection reset")
		consumer := newTestConsumer(map[string]*fakeReader{TopicPaymentSuccess: reader}, &fakePublisher{})
		consumer.Subscribe(TopicPaymentSuccess, func(ctx context.Context, m kafka.Message) error { return nil })

		err := consumer.Start(context.Background())

		assert.ErrorContains(t, err, "connection reset")
		assert.True(t, reader.Closed())
	})
}

func TestIsRetryable(t *testing.T) {
	assert.False(t, IsRetryable(ErrPoison))
	assert.False(t, IsRetryable(apperrors.Wrap(apperrors.ErrInvalidInput, "bad")))
	assert.False(t, IsRetryable(apperrors.NewCoded(apperrors.ErrConflict, "X", "conflict")))
	assert.True(t, IsRetryable(apperrors.ErrUnavailable))
	assert.True(t, IsRetryable(errors.New("boom")))
}
