package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/codes"

	"github.com/allisson/ordersaga/internal/database"
	apperrors "github.com/allisson/ordersaga/internal/errors"
	"github.com/allisson/ordersaga/internal/messaging"
	"github.com/allisson/ordersaga/internal/metrics"
	"github.com/allisson/ordersaga/internal/outbox/domain"
)

// RelayConfig holds outbox relay configuration
type RelayConfig struct {
	Interval          time.Duration
	BatchSize         int
	MaxAttempts       int
	InProgressTimeout time.Duration
}

// Relay publishes outbox events to the broker. Claiming happens in a short
// transaction; each claimed event is then published and marked independently,
// so a slow or failing publish never holds row locks.
type Relay struct {
	config          RelayConfig
	txManager       database.TxManager
	outboxRepo      OutboxEventRepository
	publisher       messaging.Publisher
	businessMetrics metrics.BusinessMetrics
	logger          *slog.Logger
	now             func() time.Time
}

// NewRelay creates a new Relay
func NewRelay(
	config RelayConfig,
	txManager database.TxManager,
	outboxRepo OutboxEventRepository,
	publisher messaging.Publisher,
	businessMetrics metrics.BusinessMetrics,
	logger *slog.Logger,
) *Relay {
	return &Relay{
		config:          config,
		txManager:       txManager,
		outboxRepo:      outboxRepo,
		publisher:       publisher,
		businessMetrics: businessMetrics,
		logger:          logger,
		now:             time.Now,
	}
}

// Start runs relay cycles every Interval until ctx is cancelled.
func (r *Relay) Start(ctx context.Context) error {
	r.logger.Info("starting outbox relay",
		slog.Duration("interval", r.config.Interval),
		slog.Int("batch_size", r.config.BatchSize),
		slog.Int("max_attempts", r.config.MaxAttempts),
	)

	ticker := time.NewTicker(r.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("stopping outbox relay")
			return ctx.Err()
		case <-ticker.C:
			if _, err := r.ProcessBatch(ctx); err != nil {
				r.logger.Error("failed to process outbox batch", slog.Any("error", err))
			}
		}
	}
}

// ProcessBatch claims a batch of publishable events and publishes each one.
// Returns the number of events published.
func (r *Relay) ProcessBatch(ctx context.Context) (int, error) {
	events, err := r.claim(ctx)
	if err != nil {
		return 0, err
	}

	if len(events) == 0 {
		return 0, nil
	}

	r.logger.Debug("claimed outbox events", slog.Int("count", len(events)))

	published := 0
	for _, event := range events {
		if ctx.Err() != nil {
			return published, ctx.Err()
		}
		if r.publishEvent(ctx, event) {
			published++
		}
	}

	return published, nil
}

func (r *Relay) claim(ctx context.Context) ([]*domain.OutboxEvent, error) {
	var events []*domain.OutboxEvent

	err := r.txManager.WithTx(ctx, func(ctx context.Context) error {
		now := r.now()
		staleBefore := now.Add(-r.config.InProgressTimeout)

		claimable, err := r.outboxRepo.GetClaimable(ctx, r.config.MaxAttempts, staleBefore, r.config.BatchSize)
		if err != nil {
			return err
		}
		if len(claimable) == 0 {
			return nil
		}

		ids := make([]int64, 0, len(claimable))
		for _, event := range claimable {
			ids = append(ids, event.ID)
		}
		if err := r.outboxRepo.MarkInProgress(ctx, ids, now); err != nil {
			return err
		}

		for _, event := range claimable {
			event.Status = domain.OutboxEventStatusInProgress
			event.AttemptCount++
		}
		events = claimable
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to claim outbox events")
	}

	return events, nil
}

// publishEvent publishes one claimed event and records the outcome. It reports
// whether the event was published.
func (r *Relay) publishEvent(ctx context.Context, event *domain.OutboxEvent) bool {
	start := time.Now()

	publishErr := r.publish(ctx, event)
	if publishErr == nil {
		if err := r.outboxRepo.MarkPublished(ctx, event.ID, event.AttemptCount, r.now()); err != nil {
			// Row stays IN_PROGRESS and is reclaimed once stale, or already belongs to
			// the relay that reclaimed it.
			r.markError(event, "failed to mark outbox event published", err)
		}
		r.record(ctx, event.Topic, metrics.OutcomePublished, start)
		return true
	}

	r.logger.Warn("failed to publish outbox event",
		slog.Int64("event_id", event.ID),
		slog.String("event_key", event.EventKey),
		slog.String("topic", event.Topic),
		slog.Int("attempt_count", event.AttemptCount),
		slog.Any("error", publishErr),
	)

	markErr := r.outboxRepo.MarkFailed(ctx, event.ID, event.AttemptCount, publishErr.Error(), r.now())
	if markErr != nil {
		r.markError(event, "failed to mark outbox event failed", markErr)
	}
	r.record(ctx, event.Topic, metrics.OutcomePublishError, start)

	// A reclaimed row belongs to the other relay, which decides whether it is exhausted.
	if event.AttemptCount >= r.config.MaxAttempts && !apperrors.Is(markErr, domain.ErrOutboxClaimLost) {
		r.logger.Error("outbox event exhausted its publish attempts",
			slog.Int64("event_id", event.ID),
			slog.String("event_key", event.EventKey),
			slog.String("topic", event.Topic),
			slog.String("aggregate_key", event.AggregateKey),
			slog.Int("attempt_count", event.AttemptCount),
		)
		r.businessMetrics.RecordSagaEvent(ctx, event.Topic, metrics.OutcomeExhausted)
	}

	return false
}

// markError logs a failed status update. Losing the claim to another relay is expected
// after a stall and is logged as a warning.
func (r *Relay) markError(event *domain.OutboxEvent, msg string, err error) {
	level := slog.LevelError
	if apperrors.Is(err, domain.ErrOutboxClaimLost) {
		level = slog.LevelWarn
	}
	r.logger.Log(context.Background(), level, msg,
		slog.Int64("event_id", event.ID),
		slog.String("event_key", event.EventKey),
		slog.Int("attempt_count", event.AttemptCount),
		slog.Any("error", err),
	)
}

func (r *Relay) publish(ctx context.Context, event *domain.OutboxEvent) error {
	typed, err := messaging.DecodeEvent(event.Topic, []byte(event.Payload))
	if err != nil {
		return err
	}

	value, err := json.Marshal(typed)
	if err != nil {
		return apperrors.Wrap(err, "failed to encode event")
	}

	spanCtx, span := messaging.StartProducerSpan(
		restoreTraceContext(ctx, event.TraceContext),
		event.Topic,
		event.AggregateKey,
	)
	defer span.End()

	headers := map[string]string{
		messaging.HeaderContractVersion: messaging.ContractVersion(event.Topic),
		messaging.HeaderEventType:       event.EventType,
		messaging.HeaderEventKey:        event.EventKey,
	}
	messaging.InjectTrace(spanCtx, headers)

	err = r.publisher.Publish(spanCtx, messaging.Message{
		Topic:   event.Topic,
		Key:     event.AggregateKey,
		Value:   value,
		Headers: headers,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (r *Relay) record(ctx context.Context, topic, outcome string, start time.Time) {
	status := "success"
	if outcome != metrics.OutcomePublished {
		status = "error"
	}
	r.businessMetrics.RecordOperation(ctx, "outbox", "publish", status)
	r.businessMetrics.RecordDuration(ctx, "outbox", "publish", time.Since(start), status)
	r.businessMetrics.RecordSagaEvent(ctx, topic, outcome)
}
