package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/allisson/orderflow/internal/metrics"
	"github.com/allisson/orderflow/internal/orders/domain"
)

// orderUseCaseWithMetrics decorates OrderUseCase with metrics instrumentation.
type orderUseCaseWithMetrics struct {
	next    OrderUseCase
	metrics metrics.BusinessMetrics
}

// NewOrderUseCaseWithMetrics wraps an OrderUseCase with metrics recording.
func NewOrderUseCaseWithMetrics(useCase OrderUseCase, m metrics.BusinessMetrics) OrderUseCase {
	return &orderUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (o *orderUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	metrics.Observe(ctx, o.metrics, "orders", operation, start, metrics.StatusOf(err))
}

// Create records metrics for order creation.
func (o *orderUseCaseWithMetrics) Create(
	ctx context.Context,
	customerName, productName string,
	value decimal.Decimal,
) (*domain.Order, error) {
	start := time.Now()
	order, err := o.next.Create(ctx, customerName, productName, value)
	o.record(ctx, "order_create", start, err)
	return order, err
}

// Get records metrics for order retrieval.
func (o *orderUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	start := time.Now()
	order, err := o.next.Get(ctx, id)
	o.record(ctx, "order_get", start, err)
	return order, err
}

// List records metrics for order listing.
func (o *orderUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*domain.Order, error) {
	start := time.Now()
	orders, err := o.next.List(ctx, offset, limit)
	o.record(ctx, "order_list", start, err)
	return orders, err
}

// processorWithMetrics decorates Processor with metrics instrumentation.
type processorWithMetrics struct {
	next    Processor
	metrics metrics.BusinessMetrics
}

// NewProcessorWithMetrics wraps a Processor with metrics recording.
func NewProcessorWithMetrics(processor Processor, m metrics.BusinessMetrics) Processor {
	return &processorWithMetrics{
		next:    processor,
		metrics: m,
	}
}

// ProcessOrder records metrics for order processing.
func (p *processorWithMetrics) ProcessOrder(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := p.next.ProcessOrder(ctx, id)

	metrics.Observe(ctx, p.metrics, "orders", "order_process", start, metrics.StatusOf(err))

	return err
}
