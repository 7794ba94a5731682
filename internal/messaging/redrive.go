package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Redriver republishes dead-lettered messages to their original topic.
type Redriver struct {
	newReader   ReaderFactory
	publisher   Publisher
	idleTimeout time.Duration
	logger      *slog.Logger
}

// NewRedriver creates a new Redriver. Redrive stops once no message arrives within idleTimeout.
func NewRedriver(newReader ReaderFactory, publisher Publisher, idleTimeout time.Duration, logger *slog.Logger) *Redriver {
	return &Redriver{
		newReader:   newReader,
		publisher:   publisher,
		idleTimeout: idleTimeout,
		logger:      logger,
	}
}

// Redrive moves up to limit messages from the dead-letter topic of topic back to the
// topic recorded in their dlt-original-topic header. A limit of zero or less means no limit.
// Returns the number of messages republished.
func (r *Redriver) Redrive(ctx context.Context, topic string, limit int) (count int, err error) {
	dltTopic := topic
	if !strings.HasSuffix(dltTopic, DLTSuffix) {
		dltTopic = DLTTopic(topic)
	}

	reader := r.newReader(dltTopic)
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	for limit <= 0 || count < limit {
		fetchCtx, cancel := context.WithTimeout(ctx, r.idleTimeout)
		msg, fetchErr := reader.FetchMessage(fetchCtx)
		cancel()
		if fetchErr != nil {
			if ctx.Err() == nil && errors.Is(fetchErr, context.DeadlineExceeded) {
				break
			}
			return count, fmt.Errorf("failed to fetch dead-lettered message: %w", fetchErr)
		}

		headers := fromKafkaHeaders(msg.Headers)
		target := headers[HeaderDLTOriginalTopic]
		if target == "" {
			target = OriginalTopic(msg.Topic)
		}
		for key := range headers {
			if strings.HasPrefix(key, "dlt-") {
				delete(headers, key)
			}
		}

		if err := r.publisher.Publish(ctx, Message{
			Topic:   target,
			Key:     string(msg.Key),
			Value:   msg.Value,
			Headers: headers,
		}); err != nil {
			return count, fmt.Errorf("failed to republish message: %w", err)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			return count, fmt.Errorf("failed to commit dead-lettered message: %w", err)
		}

		count++
		r.logger.Info("message redriven",
			slog.String("from", msg.Topic),
			slog.String("to", target),
			slog.Int64("offset", msg.Offset),
		)
	}

	return count, nil
}
