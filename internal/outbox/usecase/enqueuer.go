package usecase

import (
	"context"
	"encoding/json"
	"log/slog"

	apperrors "github.com/allisson/ordersaga/internal/errors"
	"github.com/allisson/ordersaga/internal/messaging"
	"github.com/allisson/ordersaga/internal/outbox/domain"
)

type enqueuer struct {
	outboxRepo OutboxEventRepository
	logger     *slog.Logger
}

// NewEnqueuer creates an Enqueuer backed by outboxRepo. The repository joins the
// transaction carried by ctx, so the event commits or rolls back with the caller.
func NewEnqueuer(outboxRepo OutboxEventRepository, logger *slog.Logger) Enqueuer {
	return &enqueuer{
		outboxRepo: outboxRepo,
		logger:     logger,
	}
}

// Enqueue serializes payload and stores it as a PENDING outbox event together
// with the current trace context.
func (e *enqueuer) Enqueue(ctx context.Context, topic, aggregateKey, eventType string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal outbox payload")
	}

	traceContext, err := captureTraceContext(ctx)
	if err != nil {
		return err
	}

	event := &domain.OutboxEvent{
		EventKey:     domain.NewEventKey(eventType, aggregateKey),
		Topic:        topic,
		AggregateKey: aggregateKey,
		EventType:    eventType,
		Payload:      string(data),
		TraceContext: traceContext,
		Status:       domain.OutboxEventStatusPending,
	}

	if err := e.outboxRepo.Create(ctx, event); err != nil {
		return err
	}

	e.logger.Debug("event enqueued",
		slog.Int64("event_id", event.ID),
		slog.String("event_key", event.EventKey),
		slog.String("topic", topic),
	)
	return nil
}

func captureTraceContext(ctx context.Context) (string, error) {
	headers := map[string]string{}
	messaging.InjectTrace(ctx, headers)
	if len(headers) == 0 {
		return "", nil
	}

	data, err := json.Marshal(headers)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to marshal trace context")
	}
	return string(data), nil
}

func restoreTraceContext(ctx context.Context, traceContext string) context.Context {
	if traceContext == "" {
		return ctx
	}

	var headers map[string]string
	if err := json.Unmarshal([]byte(traceContext), &headers); err != nil {
		return ctx
	}
	return messaging.ExtractTrace(ctx, headers)
}
