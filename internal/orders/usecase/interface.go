// Package usecase implements order creation, the transactional write of an
// order together with its outbox records, and the idempotent processor that
// advances orders through their lifecycle.
package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/allisson/orderflow/internal/orders/domain"
	outboxDomain "github.com/allisson/orderflow/internal/outbox/domain"
)

// OrderRepository defines order persistence operations.
type OrderRepository interface {
	// Create inserts a new order and its history, setting Version to 1.
	Create(ctx context.Context, order *domain.Order) error
	// Save updates an existing order if its Version matches the stored one and
	// stores new history entries. Returns domain.ErrOrderConcurrentUpdate otherwise.
	Save(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Order, error)
}

// OutboxRepository stores staged outbox records.
type OutboxRepository interface {
	Create(ctx context.Context, record *outboxDomain.OutboxRecord) error
}

// Writer commits an order and the outbox records its mutation produced as one
// atomic unit.
type Writer interface {
	CommitOrderAndOutbox(ctx context.Context, order *domain.Order, records []*outboxDomain.OutboxRecord) error
}

// Fulfiller performs the work between Processing and Completed. It must
// return promptly with ctx.Err() when ctx is canceled.
type Fulfiller interface {
	Fulfill(ctx context.Context, order *domain.Order) error
}

// OrderUseCase defines order business operations exposed to the API.
type OrderUseCase interface {
	Create(ctx context.Context, customerName, productName string, value decimal.Decimal) (*domain.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Order, error)
}

// Processor advances an order from Pending to Completed. Calling it again for
// the same order, or concurrently, never applies a transition twice.
type Processor interface {
	ProcessOrder(ctx context.Context, id uuid.UUID) error
}
