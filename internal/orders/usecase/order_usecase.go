package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/allisson/orderflow/internal/orders/domain"
	outboxDomain "github.com/allisson/orderflow/internal/outbox/domain"
)

type orderUseCase struct {
	writer    Writer
	orderRepo OrderRepository
	logger    *slog.Logger
}

// NewOrderUseCase creates the order use case.
func NewOrderUseCase(writer Writer, orderRepo OrderRepository, logger *slog.Logger) OrderUseCase {
	return &orderUseCase{
		writer:    writer,
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// Create validates and stores a new Pending order with its OrderCreated event
// staged in the same transaction. Nothing is stored when validation fails.
func (uc *orderUseCase) Create(
	ctx context.Context,
	customerName, productName string,
	value decimal.Decimal,
) (*domain.Order, error) {
	order, err := domain.NewOrder(customerName, productName, value)
	if err != nil {
		return nil, err
	}

	record, err := outboxDomain.StageEvent(order, domain.EventTypeOrderCreated, domain.NewOrderCreatedEvent(order))
	if err != nil {
		return nil, err
	}

	if err := uc.writer.CommitOrderAndOutbox(ctx, order, []*outboxDomain.OutboxRecord{record}); err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "order created",
		slog.String("order_id", order.ID.String()),
		slog.String("outbox_id", record.ID.String()),
	)

	return order, nil
}

func (uc *orderUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return uc.orderRepo.GetByID(ctx, id)
}

func (uc *orderUseCase) List(ctx context.Context, offset, limit int) ([]*domain.Order, error) {
	return uc.orderRepo.List(ctx, offset, limit)
}
