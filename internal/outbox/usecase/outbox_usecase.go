package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/allisson/orderflow/internal/database"
	"github.com/allisson/orderflow/internal/messaging"
	"github.com/allisson/orderflow/internal/metrics"
	"github.com/allisson/orderflow/internal/outbox/domain"
)

const (
	defaultInterval  = 2 * time.Second
	defaultBatchSize = 10
)

// Config holds relay configuration. Non-positive Interval and BatchSize use
// two seconds and ten records.
type Config struct {
	Interval  time.Duration
	BatchSize int
	Topic     string
}

// Relay publishes unprocessed outbox records oldest first. Each record is
// locked, published and marked processed in its own transaction, so a failed
// publish leaves only that record for the next poll and concurrent relays
// skip rows another relay holds.
type Relay struct {
	config     Config
	txManager  database.TxManager
	outboxRepo OutboxRepository
	publisher  messaging.Publisher
	metrics    metrics.BusinessMetrics
	logger     *slog.Logger
}

// NewRelay creates a new Relay. A nil metrics recorder disables metrics.
func NewRelay(
	config Config,
	txManager database.TxManager,
	outboxRepo OutboxRepository,
	publisher messaging.Publisher,
	businessMetrics metrics.BusinessMetrics,
	logger *slog.Logger,
) *Relay {
	if config.Interval <= 0 {
		config.Interval = defaultInterval
	}
	if config.BatchSize <= 0 {
		config.BatchSize = defaultBatchSize
	}
	if businessMetrics == nil {
		businessMetrics = metrics.NewNoOpBusinessMetrics()
	}
	return &Relay{
		config:     config,
		txManager:  txManager,
		outboxRepo: outboxRepo,
		publisher:  publisher,
		metrics:    businessMetrics,
		logger:     logger,
	}
}

// Start runs the relay loop until ctx is canceled and returns ctx.Err().
func (r *Relay) Start(ctx context.Context) error {
	if r.logger != nil {
		r.logger.Info("starting outbox relay",
			slog.Duration("interval", r.config.Interval),
			slog.Int("batch_size", r.config.BatchSize),
			slog.String("broker", r.publisher.Mode()),
		)
	}

	ticker := time.NewTicker(r.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if r.logger != nil {
				r.logger.Info("stopping outbox relay")
			}
			return ctx.Err()
		case <-ticker.C:
			if _, err := r.RelayBatch(ctx); err != nil && ctx.Err() == nil {
				if r.logger != nil {
					r.logger.Error("failed to relay outbox batch", slog.Any("error", err))
				}
			}
		}
	}
}

// RelayBatch reads up to BatchSize unprocessed records and relays each one.
// Publish failures are logged and leave the record for the next poll.
func (r *Relay) RelayBatch(ctx context.Context) (int, error) {
	records, err := r.outboxRepo.GetUnprocessed(ctx, r.config.BatchSize)
	if err != nil {
		return 0, err
	}

	published := 0
	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return published, err
		}

		ok, err := r.relayRecord(ctx, record)
		if err != nil {
			if r.logger != nil {
				r.logger.Error("failed to relay outbox record",
					slog.String("outbox_id", record.ID.String()),
					slog.String("order_id", record.OrderID.String()),
					slog.String("event_type", record.EventType),
					slog.Any("error", err),
				)
			}
			continue
		}
		if ok {
			published++
		}
	}

	if published > 0 && r.logger != nil {
		r.logger.Info("outbox batch relayed", slog.Int("count", published))
	}

	return published, nil
}

// relayRecord reports false without error when another relay got the record first.
func (r *Relay) relayRecord(ctx context.Context, record *domain.OutboxRecord) (bool, error) {
	err := r.txManager.WithTx(ctx, func(ctx context.Context) error {
		locked, err := r.outboxRepo.Lock(ctx, record.ID)
		if err != nil {
			return err
		}

		if err := r.publish(ctx, locked); err != nil {
			return err
		}

		return r.outboxRepo.MarkProcessed(ctx, locked)
	})
	if errors.Is(err, domain.ErrRecordUnavailable) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *Relay) publish(ctx context.Context, record *domain.OutboxRecord) error {
	start := time.Now()
	err := r.publisher.Publish(ctx, r.config.Topic, messaging.Message{
		ID:            record.ID.String(),
		Key:           record.OrderID.String(),
		EventType:     record.EventType,
		CorrelationID: record.OrderID.String(),
		ContentType:   messaging.ContentTypeJSON,
		Payload:       []byte(record.Payload),
	})

	status := metrics.StatusOf(err)
	if err == nil && r.publisher.Mode() == messaging.ModeLocal {
		status = "local"
	}
	metrics.Observe(ctx, r.metrics, "outbox", "outbox_publish", start, status)

	return err
}
