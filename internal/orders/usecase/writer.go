package usecase

import (
	"context"

	"github.com/allisson/orderflow/internal/database"
	"github.com/allisson/orderflow/internal/orders/domain"
	outboxDomain "github.com/allisson/orderflow/internal/outbox/domain"
)

// TransactionalWriter persists the order row, its full history and the
// supplied outbox records in one transaction.
type TransactionalWriter struct {
	txManager  database.TxManager
	orderRepo  OrderRepository
	outboxRepo OutboxRepository
}

// NewTransactionalWriter creates a new TransactionalWriter.
func NewTransactionalWriter(
	txManager database.TxManager,
	orderRepo OrderRepository,
	outboxRepo OutboxRepository,
) *TransactionalWriter {
	return &TransactionalWriter{
		txManager:  txManager,
		orderRepo:  orderRepo,
		outboxRepo: outboxRepo,
	}
}

// CommitOrderAndOutbox inserts orders that were never stored (Version 0) and
// updates the rest under their version check.
func (w *TransactionalWriter) CommitOrderAndOutbox(
	ctx context.Context,
	order *domain.Order,
	records []*outboxDomain.OutboxRecord,
) error {
	return w.txManager.WithTx(ctx, func(ctx context.Context) error {
		if order.Version == 0 {
			if err := w.orderRepo.Create(ctx, order); err != nil {
				return err
			}
		} else {
			if err := w.orderRepo.Save(ctx, order); err != nil {
				return err
			}
		}

		for _, record := range records {
			if err := w.outboxRepo.Create(ctx, record); err != nil {
				return err
			}
		}

		return nil
	})
}
