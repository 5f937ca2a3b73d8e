// Package messaging is the message broker gateway. It publishes outbox records
// to Kafka (or to a logging fallback when no broker is configured) and hands
// consumed messages to callers with explicit settlement: ack, dead-letter or
// abandon for redelivery.
package messaging

import (
	"context"

	apperrors "github.com/allisson/orderflow/internal/errors"
)

// Message header keys.
const (
	HeaderEventType             = "event_type"
	HeaderCorrelationID         = "correlation_id"
	HeaderMessageID             = "message_id"
	HeaderContentType           = "content_type"
	HeaderDeadLetterReason      = "dead_letter_reason"
	HeaderDeadLetterDescription = "dead_letter_description"

	ContentTypeJSON = "application/json"
)

// Broker modes reported by publishers.
const (
	ModeKafka = "kafka"
	ModeLocal = "local"
)

var (
	// ErrConsumerClosed is returned by Receive after Close.
	ErrConsumerClosed = apperrors.New("consumer closed")

	// ErrAlreadySettled is returned when a delivery is settled twice.
	ErrAlreadySettled = apperrors.Wrap(apperrors.ErrConflict, "delivery already settled")
)

// Message is the broker-neutral form of one event. Topic, Partition and Offset
// are only populated on consumed messages.
type Message struct {
	ID            string
	Key           string
	EventType     string
	CorrelationID string
	ContentType   string
	Payload       []byte
	Headers       map[string]string

	Topic     string
	Partition int
	Offset    int64
}

// Publisher sends messages to a topic.
type Publisher interface {
	Publish(ctx context.Context, topic string, msg Message) error
	// Mode reports ModeKafka or ModeLocal.
	Mode() string
	Close() error
}

// Delivery is a received message awaiting settlement. Exactly one of Ack,
// DeadLetter or Abandon should be called.
type Delivery interface {
	Message() Message
	// Context returns ctx enriched with the trace context carried by the message.
	Context(ctx context.Context) context.Context
	Ack(ctx context.Context) error
	DeadLetter(ctx context.Context, reason, description string) error
	Abandon(ctx context.Context) error
}

// Consumer receives messages one at a time.
type Consumer interface {
	Receive(ctx context.Context) (Delivery, error)
	Close() error
}
