// Package consumer runs the loop that receives order events from the broker
// and hands them to the order processor, one message at a time.
package consumer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/allisson/orderflow/internal/errors"
	"github.com/allisson/orderflow/internal/messaging"
	"github.com/allisson/orderflow/internal/metrics"
	"github.com/allisson/orderflow/internal/orders/domain"
	"github.com/allisson/orderflow/internal/orders/usecase"
)

// Settlement outcomes, also used as the metric status.
const (
	OutcomeAck        = "ack"
	OutcomeDeadLetter = "dead_letter"
	OutcomeAbandon    = "abandon"
	OutcomeDrop       = "drop"
)

// DeadLetterReasonDeserialization is the reason attached to payloads that cannot be decoded.
const DeadLetterReasonDeserialization = "DeserializationError"

const (
	defaultReceiveRetryDelay = time.Second
	settleTimeout            = 10 * time.Second
	tracerName               = "github.com/allisson/orderflow/internal/orders/consumer"
)

// Config holds consumer loop configuration.
type Config struct {
	// ReceiveRetryDelay is the pause after a failed receive. Zero uses one second.
	ReceiveRetryDelay time.Duration
}

// Loop receives one message at a time and settles each one before the next
// receive, which keeps the events of one order in publish order.
type Loop struct {
	config    Config
	consumer  messaging.Consumer
	processor usecase.Processor
	metrics   metrics.BusinessMetrics
	tracer    trace.Tracer
	logger    *slog.Logger
}

// NewLoop creates a consumer loop. A nil metrics recorder disables metrics.
func NewLoop(
	config Config,
	consumer messaging.Consumer,
	processor usecase.Processor,
	businessMetrics metrics.BusinessMetrics,
	logger *slog.Logger,
) *Loop {
	if config.ReceiveRetryDelay <= 0 {
		config.ReceiveRetryDelay = defaultReceiveRetryDelay
	}
	if businessMetrics == nil {
		businessMetrics = metrics.NewNoOpBusinessMetrics()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loop{
		config:    config,
		consumer:  consumer,
		processor: processor,
		metrics:   businessMetrics,
		tracer:    otel.Tracer(tracerName),
		logger:    logger,
	}
}

// Start receives and handles messages until ctx is canceled, returning
// ctx.Err(), or until the consumer is closed, returning nil. Receive failures
// are logged and retried.
func (l *Loop) Start(ctx context.Context) error {
	l.logger.Info("starting order consumer")

	for {
		delivery, err := l.consumer.Receive(ctx)
		if err != nil {
			if ctx.Err() != nil {
				l.logger.Info("stopping order consumer")
				return ctx.Err()
			}
			if errors.Is(err, messaging.ErrConsumerClosed) {
				l.logger.Info("order consumer closed")
				return nil
			}

			l.logger.Error("failed to receive message", slog.Any("error", err))
			if !l.sleep(ctx, l.config.ReceiveRetryDelay) {
				return ctx.Err()
			}
			continue
		}

		l.Handle(ctx, delivery)
	}
}

// Handle decodes, dispatches and settles one delivery and returns the outcome.
//   - unknown event type: ack and drop
//   - undecodable payload: dead-letter, the processor is not called
//   - processor success or a rejected transition: ack
//   - any other processor failure: abandon for redelivery
func (l *Loop) Handle(ctx context.Context, delivery messaging.Delivery) string {
	start := time.Now()
	msg := delivery.Message()

	ctx, span := l.tracer.Start(delivery.Context(ctx), "process "+msg.EventType,
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.message.id", msg.ID),
			attribute.String("messaging.destination.name", msg.Topic),
			attribute.Int("messaging.kafka.partition", msg.Partition),
			attribute.Int64("messaging.kafka.offset", msg.Offset),
			attribute.String("order.event_type", msg.EventType),
		),
	)
	defer span.End()

	logger := l.logger.With(
		slog.String("message_id", msg.ID),
		slog.String("event_type", msg.EventType),
		slog.String("correlation_id", msg.CorrelationID),
		slog.String("topic", msg.Topic),
		slog.Int("partition", msg.Partition),
		slog.Int64("offset", msg.Offset),
	)

	outcome, settleErr := l.dispatch(ctx, delivery, msg, logger)
	if settleErr != nil {
		span.RecordError(settleErr)
		span.SetStatus(codes.Error, "settlement failed")
		logger.ErrorContext(ctx, "failed to settle message",
			slog.String("outcome", outcome),
			slog.Any("error", settleErr),
		)
	}
	span.SetAttributes(attribute.String("order.outcome", outcome))

	metrics.Observe(ctx, l.metrics, "consumer", "message_handle", start, outcome)

	return outcome
}

func (l *Loop) dispatch(
	ctx context.Context,
	delivery messaging.Delivery,
	msg messaging.Message,
	logger *slog.Logger,
) (string, error) {
	if msg.EventType != domain.EventTypeOrderCreated {
		logger.InfoContext(ctx, "dropping message with unhandled event type")
		return OutcomeDrop, l.ack(ctx, delivery)
	}

	event, err := domain.DecodeOrderCreatedEvent(msg.Payload)
	if err != nil {
		logger.WarnContext(ctx, "dead-lettering undecodable message", slog.Any("error", err))
		settleCtx, cancel := detached(ctx)
		defer cancel()
		return OutcomeDeadLetter, delivery.DeadLetter(settleCtx, DeadLetterReasonDeserialization, err.Error())
	}

	logger = logger.With(slog.String("order_id", event.OrderID.String()))

	err = l.processor.ProcessOrder(ctx, event.OrderID)
	switch {
	case err == nil:
		return OutcomeAck, l.ack(ctx, delivery)
	case ctx.Err() == nil && apperrors.Is(err, apperrors.ErrConflict):
		// ErrInvalidTransition wraps ErrConflict; retrying cannot change the outcome.
		logger.InfoContext(ctx, "order already advanced, acknowledging", slog.Any("error", err))
		return OutcomeAck, l.ack(ctx, delivery)
	default:
		logger.WarnContext(ctx, "order processing failed, abandoning for redelivery", slog.Any("error", err))
		trace.SpanFromContext(ctx).RecordError(err)
		return OutcomeAbandon, delivery.Abandon(ctx)
	}
}

// ack settles on a context that survives shutdown so finished work is not redelivered.
func (l *Loop) ack(ctx context.Context, delivery messaging.Delivery) error {
	settleCtx, cancel := detached(ctx)
	defer cancel()
	return delivery.Ack(settleCtx)
}

func detached(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), settleTimeout)
}

func (l *Loop) sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
