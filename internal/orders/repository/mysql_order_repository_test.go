package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/orderflow/internal/orders/domain"
)

func mustBinary(t *testing.T, id uuid.UUID) []byte {
	t.Helper()
	b, err := id.MarshalBinary()
	require.NoError(t, err)
	return b
}

func TestMySQLOrderRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	order := newTestOrder(t)
	entry := order.History()[0]

	mock.ExpectExec(`INSERT INTO orders .* VALUES \(\?, \?, \?, \?, \?, \?, \?, 1\)`).
		WithArgs(mustBinary(t, order.ID), "John Doe", "Laptop Pro", order.Value, "Pending", order.CreatedAt, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT IGNORE INTO order_status_history`).
		WithArgs(mustBinary(t, entry.ID), mustBinary(t, order.ID), "Pending", entry.ChangedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewMySQLOrderRepository(db).Create(context.Background(), order)

	require.NoError(t, err)
	assert.Equal(t, 1, order.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLOrderRepository_Save(t *testing.T) {
	t.Run("Error_StaleVersion", func(t *testing.T) {
		db, mock := newMockDB(t)
		order := newTestOrder(t)
		order.Version = 3
		require.NoError(t, order.AdvanceToProcessing())

		mock.ExpectExec(`WHERE id = \? AND version = \?`).
			WithArgs("John Doe", "Laptop Pro", order.Value, "Processing", sqlmock.AnyArg(), mustBinary(t, order.ID), 3).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewMySQLOrderRepository(db).Save(context.Background(), order)

		assert.ErrorIs(t, err, domain.ErrOrderConcurrentUpdate)
	})

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		order := newTestOrder(t)
		order.Version = 1
		require.NoError(t, order.AdvanceToProcessing())

		mock.ExpectExec("UPDATE orders").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT IGNORE INTO order_status_history").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT IGNORE INTO order_status_history").WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewMySQLOrderRepository(db).Save(context.Background(), order)

		require.NoError(t, err)
		assert.Equal(t, 2, order.Version)
	})
}

func TestMySQLOrderRepository_GetByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		id := uuid.Must(uuid.NewV7())
		entryID := uuid.Must(uuid.NewV7())
		now := time.Now().UTC()

		mock.ExpectQuery(`FROM orders WHERE id = \?`).
			WithArgs(mustBinary(t, id)).
			WillReturnRows(sqlmock.NewRows(orderColumns).
				AddRow(mustBinary(t, id), "John Doe", "Laptop Pro", []byte("2500.00"), "Pending", now, nil, 1))
		mock.ExpectQuery("FROM order_status_history").
			WithArgs(mustBinary(t, id)).
			WillReturnRows(sqlmock.NewRows(historyColumns).
				AddRow(mustBinary(t, entryID), mustBinary(t, id), "Pending", now))

		order, err := NewMySQLOrderRepository(db).GetByID(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, id, order.ID)
		assert.Equal(t, domain.StatusPending, order.Status())
		require.Len(t, order.History(), 1)
		assert.Equal(t, entryID, order.History()[0].ID)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("FROM orders").WillReturnRows(sqlmock.NewRows(orderColumns))

		order, err := NewMySQLOrderRepository(db).GetByID(context.Background(), uuid.Must(uuid.NewV7()))

		assert.Nil(t, order)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}

func TestMySQLOrderRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.Must(uuid.NewV7())

	mock.ExpectQuery(`LIMIT \? OFFSET \?`).
		WithArgs(10, 20).
		WillReturnRows(sqlmock.NewRows(orderColumns).
			AddRow(mustBinary(t, id), "John Doe", "Laptop Pro", []byte("2500.00"), "Completed", time.Now(), time.Now(), 3))

	orders, err := NewMySQLOrderRepository(db).List(context.Background(), 20, 10)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, id, orders[0].ID)
	assert.Equal(t, domain.StatusCompleted, orders[0].Status())
}
