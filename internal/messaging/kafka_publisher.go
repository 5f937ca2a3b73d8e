package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

// kafkaWriter is the subset of *kafka.Writer the gateway uses.
type kafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaConfig holds the connection settings shared by publisher and consumer.
type KafkaConfig struct {
	Brokers         []string
	ClientID        string
	Topic           string
	DeadLetterTopic string
	ConsumerGroup   string
}

// KafkaPublisher publishes messages with all in-sync replicas acknowledging.
type KafkaPublisher struct {
	writer kafkaWriter
	logger *slog.Logger
}

// NewKafkaPublisher creates a publisher backed by a kafka.Writer.
func NewKafkaPublisher(cfg KafkaConfig, logger *slog.Logger) *KafkaPublisher {
	return newKafkaPublisher(newKafkaWriter(cfg), logger)
}

func newKafkaPublisher(writer kafkaWriter, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, logger: logger}
}

func newKafkaWriter(cfg KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
		Transport:    &kafka.Transport{ClientID: cfg.ClientID},
	}
}

// Publish writes msg to topic and blocks until the broker acknowledges it.
func (p *KafkaPublisher) Publish(ctx context.Context, topic string, msg Message) error {
	if err := p.writer.WriteMessages(ctx, toKafkaMessage(ctx, topic, msg)); err != nil {
		return fmt.Errorf("failed to publish message %s to %s: %w", msg.ID, topic, err)
	}

	if p.logger != nil {
		p.logger.Debug("message published",
			slog.String("topic", topic),
			slog.String("message_id", msg.ID),
			slog.String("event_type", msg.EventType),
			slog.String("correlation_id", msg.CorrelationID),
		)
	}
	return nil
}

// Mode returns ModeKafka.
func (p *KafkaPublisher) Mode() string {
	return ModeKafka
}

// Close flushes pending writes and releases connections.
func (p *KafkaPublisher) Close() error {
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka writer: %w", err)
	}
	return nil
}
