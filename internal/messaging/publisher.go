package messaging

import (
	"context"
	"maps"
	"slices"
	"time"

	"github.com/segmentio/kafka-go"
)

// Message is a record to publish.
type Message struct {
	Topic   string
	Key     string
	Value   []byte
	Headers map[string]string
}

// Publisher sends messages to the broker.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

// MessageWriter is the subset of *kafka.Writer used by KafkaPublisher.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaConfig holds the broker settings shared by writers and readers.
type KafkaConfig struct {
	Brokers      []string
	ClientID     string
	GroupID      string
	WriteTimeout time.Duration
}

// NewKafkaWriter creates a writer that hashes message keys onto partitions and
// waits for all in-sync replicas to acknowledge.
func NewKafkaWriter(cfg KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		WriteTimeout:           cfg.WriteTimeout,
		AllowAutoTopicCreation: true,
		Transport: &kafka.Transport{
			ClientID: cfg.ClientID,
		},
	}
}

// KafkaPublisher publishes messages with a kafka-go writer.
type KafkaPublisher struct {
	writer MessageWriter
}

// NewKafkaPublisher creates a new KafkaPublisher.
func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// Publish writes msg and blocks until the broker acknowledges it.
func (p *KafkaPublisher) Publish(ctx context.Context, msg Message) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic:   msg.Topic,
		Key:     []byte(msg.Key),
		Value:   msg.Value,
		Headers: toKafkaHeaders(msg.Headers),
		Time:    time.Now(),
	})
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func toKafkaHeaders(headers map[string]string) []kafka.Header {
	if len(headers) == 0 {
		return nil
	}
	result := make([]kafka.Header, 0, len(headers))
	for _, key := range slices.Sorted(maps.Keys(headers)) {
		result = append(result, kafka.Header{Key: key, Value: []byte(headers[key])})
	}
	return result
}

func fromKafkaHeaders(headers []kafka.Header) map[string]string {
	result := make(map[string]string, len(headers))
	for _, h := range headers {
		result[h.Key] = string(h.Value)
	}
	return result
}
