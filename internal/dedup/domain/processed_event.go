// Package domain defines the processed event marker used to deduplicate consumed messages.
package domain

import (
	"strconv"
	"time"
)

// ProcessedEvent records that a consumed event has been (or is being) handled.
type ProcessedEvent struct {
	ID          int64
	EventKey    string
	ProcessedAt time.Time
}

// EventKey builds the dedup key for an event about aggregateID received on topic.
func EventKey(topic string, aggregateID int64) string {
	return topic + ":" + strconv.FormatInt(aggregateID, 10)
}
