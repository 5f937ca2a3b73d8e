// Package usecase implements the outbox relay, the background loop that moves
// committed outbox records to the message broker.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/allisson/orderflow/internal/outbox/domain"
)

// OutboxRepository defines outbox record persistence operations.
type OutboxRepository interface {
	Create(ctx context.Context, record *domain.OutboxRecord) error
	GetUnprocessed(ctx context.Context, limit int) ([]*domain.OutboxRecord, error)
	Lock(ctx context.Context, id uuid.UUID) (*domain.OutboxRecord, error)
	MarkProcessed(ctx context.Context, record *domain.OutboxRecord) error
	CountUnprocessed(ctx context.Context) (int64, error)
}

// UseCase is the relay lifecycle.
type UseCase interface {
	// Start polls every configured interval until ctx is canceled.
	Start(ctx context.Context) error
	// RelayBatch publishes one batch and returns how many records were marked processed.
	RelayBatch(ctx context.Context) (int, error)
}
