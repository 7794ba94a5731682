package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/allisson/ordersaga/internal/errors"
	"github.com/allisson/ordersaga/internal/metrics"
	"github.com/allisson/ordersaga/internal/retry"
)

// Handler processes one message. Returning an error triggers retries and,
// once they are exhausted, the dead-letter topic.
type Handler func(ctx context.Context, msg kafka.Message) error

// Subscriber registers handlers per topic. *Consumer implements it.
type Subscriber interface {
	Subscribe(topic string, handler Handler)
}

// MessageReader is the subset of *kafka.Reader used by Consumer.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ReaderFactory opens a reader for a single topic.
type ReaderFactory func(topic string) MessageReader

// NewKafkaReaderFactory returns a ReaderFactory creating group readers for cfg.GroupID.
func NewKafkaReaderFactory(cfg KafkaConfig) ReaderFactory {
	return func(topic string) MessageReader {
		return kafka.NewReader(kafka.ReaderConfig{
			Brokers:     cfg.Brokers,
			GroupID:     cfg.GroupID,
			Topic:       topic,
			MinBytes:    1,
			MaxBytes:    10e6,
			StartOffset: kafka.FirstOffset,
			Dialer: &kafka.Dialer{
				ClientID: cfg.ClientID,
				Timeout:  10 * time.Second,
			},
		})
	}
}

// ConsumerConfig controls handler retries.
type ConsumerConfig struct {
	RetryMaxAttempts int
	RetryBackoff     time.Duration
}

// Consumer runs one reader per subscribed topic and dispatches messages to handlers.
// Failed messages are retried with a fixed backoff and then dead-lettered; offsets
// are committed after every message so a poison record never blocks its partition.
type Consumer struct {
	newReader       ReaderFactory
	dltPublisher    Publisher
	config          ConsumerConfig
	businessMetrics metrics.BusinessMetrics
	logger          *slog.Logger
	handlers        map[string]Handler
	topics          []string
}

// NewConsumer creates a new Consumer.
func NewConsumer(
	newReader ReaderFactory,
	dltPublisher Publisher,
	config ConsumerConfig,
	businessMetrics metrics.BusinessMetrics,
	logger *slog.Logger,
) *Consumer {
	return &Consumer{
		newReader:       newReader,
		dltPublisher:    dltPublisher,
		config:          config,
		businessMetrics: businessMetrics,
		logger:          logger,
		handlers:        make(map[string]Handler),
	}
}

// Subscribe registers handler for topic. It must be called before Start.
func (c *Consumer) Subscribe(topic string, handler Handler) {
	if _, ok := c.handlers[topic]; !ok {
		c.topics = append(c.topics, topic)
	}
	c.handlers[topic] = handler
}

// Topics returns the subscribed topics in registration order.
func (c *Consumer) Topics() []string {
	return c.topics
}

// Start consumes every subscribed topic until ctx is cancelled or a reader fails.
func (c *Consumer) Start(ctx context.Context) error {
	if len(c.topics) == 0 {
		return errors.New("consumer has no subscriptions")
	}

	c.logger.Info("consumer started", slog.Any("topics", c.topics))

	g, gctx := errgroup.WithContext(ctx)
	for _, topic := range c.topics {
		reader := c.newReader(topic)
		handler := c.handlers[topic]
		g.Go(func() error {
			defer func() {
				if err := reader.Close(); err != nil {
					c.logger.Error("failed to close reader", slog.String("topic", topic), slog.Any("error", err))
				}
			}()
			return c.consume(gctx, reader, handler)
		})
	}

	err := g.Wait()
	c.logger.Info("consumer stopped")
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func (c *Consumer) consume(ctx context.Context, reader MessageReader, handler Handler) error {
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("failed to fetch message: %w", err)
		}

		if err := c.HandleMessage(ctx, msg, handler); err != nil {
			return err
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("failed to commit message: %w", err)
		}
	}
}

// HandleMessage runs handler for msg with retries and dead-letters the message when
// they are exhausted or the error is not retryable. A nil return means the offset
// can be committed.
func (c *Consumer) HandleMessage(ctx context.Context, msg kafka.Message, handler Handler) error {
	start := time.Now()
	headers := fromKafkaHeaders(msg.Headers)

	spanCtx, span := startConsumerSpan(ExtractTrace(ctx, headers), msg.Topic, msg.Partition, msg.Offset)
	defer span.End()

	attempt := 0
	err := retry.Do(spanCtx, retry.Config{
		MaxAttempts: c.config.RetryMaxAttempts,
		Backoff:     c.config.RetryBackoff,
		Retryable:   IsRetryable,
	}, func(ctx context.Context) error {
		attempt++
		return handler(ctx, msg)
	})

	if err == nil {
		c.record(ctx, msg.Topic, "success", start)
		return nil
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	c.logger.Error("message handling failed, sending to dead-letter topic",
		slog.String("topic", msg.Topic),
		slog.Int("partition", msg.Partition),
		slog.Int64("offset", msg.Offset),
		slog.Int("attempts", attempt),
		slog.Any("error", err),
	)

	if dltErr := c.deadLetter(spanCtx, msg, err); dltErr != nil {
		c.record(ctx, msg.Topic, "error", start)
		return fmt.Errorf("failed to publish to dead-letter topic: %w", dltErr)
	}

	c.record(ctx, msg.Topic, "dlt", start)
	return nil
}

func (c *Consumer) deadLetter(ctx context.Context, msg kafka.Message, cause error) error {
	headers := fromKafkaHeaders(msg.Headers)
	headers[HeaderDLTOriginalTopic] = msg.Topic
	headers[HeaderDLTOriginalPartition] = strconv.Itoa(msg.Partition)
	headers[HeaderDLTOriginalOffset] = strconv.FormatInt(msg.Offset, 10)
	headers[HeaderDLTExceptionMessage] = cause.Error()
	headers[HeaderDLTTimestamp] = strconv.FormatInt(time.Now().UnixMilli(), 10)

	return c.dltPublisher.Publish(ctx, Message{
		Topic:   DLTTopic(msg.Topic),
		Key:     string(msg.Key),
		Value:   msg.Value,
		Headers: headers,
	})
}

// consumeOutcomes maps a consume status to its saga event outcome.
var consumeOutcomes = map[string]string{
	"success": metrics.OutcomeConsumed,
	"dlt":     metrics.OutcomeDeadLettered,
	"error":   metrics.OutcomeConsumeError,
}

func (c *Consumer) record(ctx context.Context, topic, status string, start time.Time) {
	c.businessMetrics.RecordOperation(ctx, "messaging", "consume", status)
	c.businessMetrics.RecordDuration(ctx, "messaging", "consume", time.Since(start), status)
	c.businessMetrics.RecordSagaEvent(ctx, topic, consumeOutcomes[status])
}

// IsRetryable reports whether a handler error may succeed on another attempt.
// Poison messages, invalid input and business conflicts are final.
func IsRetryable(err error) bool {
	switch {
	case errors.Is(err, ErrPoison),
		errors.Is(err, apperrors.ErrInvalidInput),
		errors.Is(err, apperrors.ErrConflict):
		return false
	default:
		return true
	}
}
