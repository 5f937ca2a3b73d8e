package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/allisson/orderflow/internal/orders/domain"
	outboxDomain "github.com/allisson/orderflow/internal/outbox/domain"
)

// memoryStore is an in-memory order and outbox store with the same version
// check as the SQL repositories.
type memoryStore struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*domain.Order
	outbox []*outboxDomain.OutboxRecord
	writes int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{orders: make(map[uuid.UUID]*domain.Order)}
}

func cloneOrder(o *domain.Order) *domain.Order {
	return domain.Rehydrate(*o, o.Status(), o.History())
}

func (s *memoryStore) Create(_ context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order.Version = 1
	s.orders[order.ID] = cloneOrder(order)
	s.writes++
	return nil
}

func (s *memoryStore) Save(_ context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.orders[order.ID]
	if !ok || stored.Version != order.Version {
		return domain.ErrOrderConcurrentUpdate
	}
	order.Version++
	s.orders[order.ID] = cloneOrder(order)
	s.writes++
	return nil
}

func (s *memoryStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return cloneOrder(stored), nil
}

func (s *memoryStore) List(_ context.Context, offset, limit int) ([]*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]*domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, cloneOrder(o))
	}
	if offset >= len(orders) {
		return []*domain.Order{}, nil
	}
	end := min(offset+limit, len(orders))
	return orders[offset:end], nil
}

type memoryOutbox struct {
	store *memoryStore
}

func (o memoryOutbox) Create(_ context.Context, record *outboxDomain.OutboxRecord) error {
	o.store.mu.Lock()
	defer o.store.mu.Unlock()
	o.store.outbox = append(o.store.outbox, record)
	return nil
}

func (s *memoryStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func (s *memoryStore) records() []*outboxDomain.OutboxRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*outboxDomain.OutboxRecord(nil), s.outbox...)
}

// inlineTx runs the unit of work without a transaction.
type inlineTx struct{}

func (inlineTx) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newMemoryWriter(store *memoryStore) *TransactionalWriter {
	return NewTransactionalWriter(inlineTx{}, store, memoryOutbox{store: store})
}
