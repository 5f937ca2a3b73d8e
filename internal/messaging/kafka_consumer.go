package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"
)

// leaseReleaseTimeout bounds releasing a lease once the caller's context is gone.
const leaseReleaseTimeout = 5 * time.Second

// kafkaReader is the subset of *kafka.Reader the gateway uses.
type kafkaReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ConsumerOptions tune settlement and lease behavior.
type ConsumerOptions struct {
	AbandonDelay    time.Duration
	LeaseTTL        time.Duration
	MaxLeaseRenewal time.Duration
}

// KafkaConsumer reads one message at a time from a consumer group without
// auto-commit. Offsets only advance on Ack or DeadLetter, so an abandoned
// message is redelivered when the reader is recreated.
type KafkaConsumer struct {
	cfg        KafkaConfig
	opts       ConsumerOptions
	newReader  func() kafkaReader
	deadLetter kafkaWriter
	leaser     Leaser
	logger     *slog.Logger

	mu     sync.Mutex
	reader kafkaReader
	closed bool
}

// NewKafkaConsumer creates a consumer for cfg.Topic in cfg.ConsumerGroup.
// Poison messages are written to cfg.DeadLetterTopic.
func NewKafkaConsumer(cfg KafkaConfig, opts ConsumerOptions, leaser Leaser, logger *slog.Logger) *KafkaConsumer {
	newReader := func() kafkaReader {
		return kafka.NewReader(kafka.ReaderConfig{
			Brokers:     cfg.Brokers,
			GroupID:     cfg.ConsumerGroup,
			Topic:       cfg.Topic,
			MinBytes:    1,
			MaxBytes:    10e6,
			StartOffset: kafka.FirstOffset,
			Dialer: &kafka.Dialer{
				ClientID:  cfg.ClientID,
				Timeout:   10 * time.Second,
				DualStack: true,
			},
		})
	}
	return newKafkaConsumer(cfg, opts, newReader, newKafkaWriter(cfg), leaser, logger)
}

func newKafkaConsumer(
	cfg KafkaConfig,
	opts ConsumerOptions,
	newReader func() kafkaReader,
	deadLetter kafkaWriter,
	leaser Leaser,
	logger *slog.Logger,
) *KafkaConsumer {
	if leaser == nil {
		leaser = NewNoopLeaser()
	}
	return &KafkaConsumer{
		cfg:        cfg,
		opts:       opts,
		newReader:  newReader,
		deadLetter: deadLetter,
		leaser:     leaser,
		logger:     logger,
		reader:     newReader(),
	}
}

func (c *KafkaConsumer) currentReader() (kafkaReader, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrConsumerClosed
	}
	return c.reader, nil
}

// Receive blocks until a message is fetched and its lease acquired. Messages
// leased by another worker are abandoned and the fetch is retried.
func (c *KafkaConsumer) Receive(ctx context.Context) (Delivery, error) {
	for {
		reader, err := c.currentReader()
		if err != nil {
			return nil, err
		}

		km, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if _, closedErr := c.currentReader(); closedErr != nil {
				return nil, closedErr
			}
			return nil, fmt.Errorf("failed to fetch message: %w", err)
		}

		key := LeaseKey(km.Topic, km.Partition, km.Offset)
		acquired, err := c.leaser.Acquire(ctx, key, c.opts.LeaseTTL)
		if err != nil {
			if abandonErr := c.abandon(ctx); abandonErr != nil {
				err = errors.Join(err, abandonErr)
			}
			return nil, err
		}
		if !acquired {
			if c.logger != nil {
				c.logger.Info("message leased by another worker, abandoning",
					slog.String("topic", km.Topic),
					slog.Int("partition", km.Partition),
					slog.Int64("offset", km.Offset),
				)
			}
			if err := c.abandon(ctx); err != nil {
				return nil, err
			}
			continue
		}

		return &kafkaDelivery{
			consumer: c,
			raw:      km,
			msg:      fromKafkaMessage(km),
			keeper:   startLeaseKeeper(ctx, c.leaser, key, c.opts.LeaseTTL, c.opts.MaxLeaseRenewal, c.logger),
		}, nil
	}
}

// abandon waits AbandonDelay, then replaces the reader so the group resumes
// from the last committed offset.
func (c *KafkaConsumer) abandon(ctx context.Context) error {
	if c.opts.AbandonDelay > 0 {
		timer := time.NewTimer(c.opts.AbandonDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrConsumerClosed
	}

	old := c.reader
	c.reader = c.newReader()
	if err := old.Close(); err != nil {
		return fmt.Errorf("failed to close abandoned reader: %w", err)
	}
	return nil
}

func (c *KafkaConsumer) commit(ctx context.Context, km kafka.Message) error {
	reader, err := c.currentReader()
	if err != nil {
		return err
	}
	if err := reader.CommitMessages(ctx, km); err != nil {
		return fmt.Errorf("failed to commit offset %d on partition %d: %w", km.Offset, km.Partition, err)
	}
	return nil
}

func (c *KafkaConsumer) writeDeadLetter(ctx context.Context, km kafka.Message, reason, description string) error {
	headers := make([]kafka.Header, 0, len(km.Headers)+2)
	headers = append(headers, km.Headers...)
	carrier := &kafkaHeaderCarrier{headers: headers}
	carrier.Set(HeaderDeadLetterReason, reason)
	carrier.Set(HeaderDeadLetterDescription, description)

	dl := kafka.Message{
		Topic:   c.cfg.DeadLetterTopic,
		Key:     km.Key,
		Value:   km.Value,
		Headers: carrier.headers,
	}
	if err := c.deadLetter.WriteMessages(ctx, dl); err != nil {
		return fmt.Errorf("failed to write dead letter to %s: %w", c.cfg.DeadLetterTopic, err)
	}
	return nil
}

// Close stops the consumer. A blocked Receive returns ErrConsumerClosed.
func (c *KafkaConsumer) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true

	var errs []error
	if err := c.reader.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close kafka reader: %w", err))
	}
	if err := c.deadLetter.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close dead letter writer: %w", err))
	}
	return errors.Join(errs...)
}

type kafkaDelivery struct {
	consumer *KafkaConsumer
	raw      kafka.Message
	msg      Message
	keeper   *leaseKeeper
	settled  atomic.Bool
}

func (d *kafkaDelivery) Message() Message {
	return d.msg
}

func (d *kafkaDelivery) Context(ctx context.Context) context.Context {
	return ExtractTraceContext(ctx, d.msg)
}

func (d *kafkaDelivery) settle() error {
	if !d.settled.CompareAndSwap(false, true) {
		return ErrAlreadySettled
	}
	return nil
}

func (d *kafkaDelivery) Ack(ctx context.Context) error {
	if err := d.settle(); err != nil {
		return err
	}
	err := d.consumer.commit(ctx, d.raw)
	return errors.Join(err, d.releaseLease(ctx))
}

func (d *kafkaDelivery) DeadLetter(ctx context.Context, reason, description string) error {
	if err := d.settle(); err != nil {
		return err
	}
	if err := d.consumer.writeDeadLetter(ctx, d.raw, reason, description); err != nil {
		// Uncommitted, so rewind to redeliver it.
		leaseErr := d.releaseLease(ctx)
		return errors.Join(err, d.consumer.abandon(ctx), leaseErr)
	}
	err := d.consumer.commit(ctx, d.raw)
	return errors.Join(err, d.releaseLease(ctx))
}

func (d *kafkaDelivery) Abandon(ctx context.Context) error {
	if err := d.settle(); err != nil {
		return err
	}
	leaseErr := d.releaseLease(ctx)
	return errors.Join(d.consumer.abandon(ctx), leaseErr)
}

// releaseLease releases even when ctx is already canceled, so a redelivered
// message is not blocked by its own lease until the TTL expires.
func (d *kafkaDelivery) releaseLease(ctx context.Context) error {
	releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), leaseReleaseTimeout)
	defer cancel()
	return d.keeper.stop(releaseCtx)
}
