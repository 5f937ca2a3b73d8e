package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/orderflow/internal/orders/domain"
	outboxDomain "github.com/allisson/orderflow/internal/outbox/domain"
)

// DelayFulfiller stands in for real fulfillment work by waiting a fixed delay.
type DelayFulfiller struct {
	Delay time.Duration
}

// Fulfill waits Delay or until ctx is canceled.
func (f DelayFulfiller) Fulfill(ctx context.Context, _ *domain.Order) error {
	if f.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(f.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type orderProcessor struct {
	orderRepo OrderRepository
	writer    Writer
	fulfiller Fulfiller
	logger    *slog.Logger
}

// NewOrderProcessor creates the order processor.
func NewOrderProcessor(orderRepo OrderRepository, writer Writer, fulfiller Fulfiller, logger *slog.Logger) Processor {
	return &orderProcessor{
		orderRepo: orderRepo,
		writer:    writer,
		fulfiller: fulfiller,
		logger:    logger,
	}
}

// ProcessOrder moves a Pending order to Processing, runs the fulfiller, then
// re-reads the order and moves it to Completed. Missing orders, orders already
// past Pending and transitions lost to a concurrent run return nil.
// Cancellation during fulfillment leaves the order in Processing.
func (p *orderProcessor) ProcessOrder(ctx context.Context, id uuid.UUID) error {
	logger := p.logger.With(slog.String("order_id", id.String()))

	order, err := p.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			logger.WarnContext(ctx, "order not found, nothing to process")
			return nil
		}
		return err
	}

	if order.Status() != domain.StatusPending {
		logger.InfoContext(ctx, "order already picked up, skipping", slog.String("status", string(order.Status())))
		return nil
	}

	if err := p.advance(ctx, order, order.AdvanceToProcessing); err != nil {
		return p.ignoreLostRace(ctx, logger, err)
	}
	logger.InfoContext(ctx, "order processing", slog.String("status", string(domain.StatusProcessing)))

	if err := p.fulfiller.Fulfill(ctx, order); err != nil {
		return err
	}

	fresh, err := p.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			logger.WarnContext(ctx, "order disappeared during fulfillment")
			return nil
		}
		return err
	}

	if fresh.Status() == domain.StatusCompleted {
		logger.InfoContext(ctx, "order already completed, skipping")
		return nil
	}

	if err := p.advance(ctx, fresh, fresh.AdvanceToCompleted); err != nil {
		return p.ignoreLostRace(ctx, logger, err)
	}
	logger.InfoContext(ctx, "order completed", slog.String("status", string(domain.StatusCompleted)))

	return nil
}

// advance applies transition and commits the order with an OrderStatusChanged record.
func (p *orderProcessor) advance(ctx context.Context, order *domain.Order, transition func() error) error {
	if err := transition(); err != nil {
		return err
	}

	record, err := outboxDomain.StageEvent(order, domain.EventTypeOrderStatusChanged,
		domain.NewOrderStatusChangedEvent(order))
	if err != nil {
		return err
	}

	return p.writer.CommitOrderAndOutbox(ctx, order, []*outboxDomain.OutboxRecord{record})
}

func (p *orderProcessor) ignoreLostRace(ctx context.Context, logger *slog.Logger, err error) error {
	if errors.Is(err, domain.ErrInvalidStatusTransition) || errors.Is(err, domain.ErrOrderConcurrentUpdate) {
		logger.InfoContext(ctx, "transition already applied elsewhere", slog.Any("error", err))
		return nil
	}
	return err
}
