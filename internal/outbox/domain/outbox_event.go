// Package domain defines the core outbox domain entities and types.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OutboxEventStatus represents the delivery status of an outbox event.
type OutboxEventStatus string

const (
	OutboxEventStatusPending    OutboxEventStatus = "PENDING"
	OutboxEventStatusInProgress OutboxEventStatus = "IN_PROGRESS"
	OutboxEventStatusPublished  OutboxEventStatus = "PUBLISHED"
	OutboxEventStatusFailed     OutboxEventStatus = "FAILED"
)

// MaxLastErrorLength bounds the stored publish error.
const MaxLastErrorLength = 2000

// OutboxEvent is a pending broker message written in the same transaction as the
// state change that produced it. Rows are never deleted.
type OutboxEvent struct {
	ID           int64
	EventKey     string
	Topic        string
	AggregateKey string
	EventType    string
	Payload      string
	TraceContext string
	Status       OutboxEventStatus
	AttemptCount int
	LastError    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	PublishedAt  *time.Time
}

// NewEventKey returns a globally unique key of the form type:aggregateKey:uuid.
func NewEventKey(eventType, aggregateKey string) string {
	return fmt.Sprintf("%s:%s:%s", eventType, aggregateKey, uuid.NewString())
}

// TruncateError shortens msg to at most MaxLastErrorLength runes.
func TruncateError(msg string) string {
	runes := []rune(msg)
	if len(runes) <= MaxLastErrorLength {
		return msg
	}
	return string(runes[:MaxLastErrorLength])
}
