package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/orderflow/internal/outbox/domain"
)

func mustBinary(t *testing.T, id uuid.UUID) []byte {
	t.Helper()
	b, err := id.MarshalBinary()
	require.NoError(t, err)
	return b
}

func TestMySQLOutboxRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	record := newRecord()

	mock.ExpectExec(`INSERT INTO outbox_messages .* VALUES \(\?, \?, \?, \?, \?, \?, \?\)`).
		WithArgs(mustBinary(t, record.ID), mustBinary(t, record.OrderID), "OrderCreated", record.Payload,
			record.CreatedAt, nil, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewMySQLOutboxRepository(db).Create(context.Background(), record)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLOutboxRepository_GetUnprocessed(t *testing.T) {
	db, mock := newMockDB(t)
	record := newRecord()

	mock.ExpectQuery(`ORDER BY created_at ASC, id ASC\s+LIMIT \?`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(recordColumns).AddRow(
			mustBinary(t, record.ID), mustBinary(t, record.OrderID), record.EventType, record.Payload,
			record.CreatedAt, nil, false,
		))

	records, err := NewMySQLOutboxRepository(db).GetUnprocessed(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, record.ID, records[0].ID)
	assert.Equal(t, record.OrderID, records[0].OrderID)
}

func TestMySQLOutboxRepository_Lock(t *testing.T) {
	t.Run("Error_Unavailable", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("FOR UPDATE SKIP LOCKED").WillReturnRows(sqlmock.NewRows(recordColumns))

		locked, err := NewMySQLOutboxRepository(db).Lock(context.Background(), uuid.Must(uuid.NewV7()))

		assert.Nil(t, locked)
		assert.ErrorIs(t, err, domain.ErrRecordUnavailable)
	})

	t.Run("Error_CorruptID", func(t *testing.T) {
		db, mock := newMockDB(t)
		record := newRecord()
		mock.ExpectQuery("FOR UPDATE SKIP LOCKED").WillReturnRows(sqlmock.NewRows(recordColumns).AddRow(
			[]byte{0x01, 0x02}, mustBinary(t, record.OrderID), record.EventType, record.Payload,
			record.CreatedAt, nil, false,
		))

		locked, err := NewMySQLOutboxRepository(db).Lock(context.Background(), record.ID)

		assert.Nil(t, locked)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrRecordUnavailable)
	})
}

func TestMySQLOutboxRepository_MarkProcessed(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		record := newRecord()
		mock.ExpectExec(`WHERE id = \? AND is_processed = false`).
			WithArgs(sqlmock.AnyArg(), mustBinary(t, record.ID)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewMySQLOutboxRepository(db).MarkProcessed(context.Background(), record))
		assert.True(t, record.IsProcessed)
	})

	t.Run("Error_AlreadyProcessed", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("UPDATE outbox_messages").WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewMySQLOutboxRepository(db).MarkProcessed(context.Background(), newRecord())

		assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)
	})
}
