package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/orderflow/internal/database"
	apperrors "github.com/allisson/orderflow/internal/errors"
	"github.com/allisson/orderflow/internal/outbox/domain"
)

// MySQLOutboxRepository handles outbox record persistence for MySQL.
// UUIDs are stored as BINARY(16).
type MySQLOutboxRepository struct {
	db *sql.DB
}

// NewMySQLOutboxRepository creates a new MySQLOutboxRepository.
func NewMySQLOutboxRepository(db *sql.DB) *MySQLOutboxRepository {
	return &MySQLOutboxRepository{db: db}
}

// Create inserts a staged record.
func (r *MySQLOutboxRepository) Create(ctx context.Context, record *domain.OutboxRecord) error {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := record.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal outbox record id")
	}
	orderIDBytes, err := record.OrderID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal order id")
	}

	query := `INSERT INTO outbox_messages (id, order_id, event_type, payload, created_at, processed_at, is_processed)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(ctx, query, idBytes, orderIDBytes, record.EventType, record.Payload,
		record.CreatedAt, record.ProcessedAt, record.IsProcessed)
	if err != nil {
		return apperrors.Wrap(err, "failed to create outbox record")
	}
	return nil
}

// GetUnprocessed returns up to limit unprocessed records, oldest first.
func (r *MySQLOutboxRepository) GetUnprocessed(ctx context.Context, limit int) ([]*domain.OutboxRecord, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, order_id, event_type, payload, created_at, processed_at, is_processed
			  FROM outbox_messages
			  WHERE is_processed = false
			  ORDER BY created_at ASC, id ASC
			  LIMIT ?`

	rows, err := querier.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query unprocessed outbox records")
	}
	defer rows.Close() //nolint:errcheck

	var records []*domain.OutboxRecord
	for rows.Next() {
		record, err := scanMySQLRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate outbox records")
	}

	return records, nil
}

// Lock claims an unprocessed record for the current transaction. Records that
// are processed or locked by another relay return domain.ErrRecordUnavailable.
func (r *MySQLOutboxRepository) Lock(ctx context.Context, id uuid.UUID) (*domain.OutboxRecord, error) {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal outbox record id")
	}

	query := `SELECT id, order_id, event_type, payload, created_at, processed_at, is_processed
			  FROM outbox_messages
			  WHERE id = ? AND is_processed = false
			  FOR UPDATE SKIP LOCKED`

	record, err := scanMySQLRecord(querier.QueryRowContext(ctx, query, idBytes))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecordUnavailable
		}
		return nil, err
	}

	return record, nil
}

// MarkProcessed flips the record to processed. The update only applies to an
// unprocessed row so a record can never be processed twice.
func (r *MySQLOutboxRepository) MarkProcessed(ctx context.Context, record *domain.OutboxRecord) error {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := record.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal outbox record id")
	}

	processedAt := time.Now().UTC()
	query := `UPDATE outbox_messages
			  SET is_processed = true, processed_at = ?
			  WHERE id = ? AND is_processed = false`

	result, err := querier.ExecContext(ctx, query, processedAt, idBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to mark outbox record processed")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return domain.ErrAlreadyProcessed
	}

	return record.MarkProcessed(processedAt)
}

// CountUnprocessed returns how many records are waiting for the relay.
func (r *MySQLOutboxRepository) CountUnprocessed(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	var count int64
	query := `SELECT COUNT(*) FROM outbox_messages WHERE is_processed = false`
	if err := querier.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count unprocessed outbox records")
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMySQLRecord(row rowScanner) (*domain.OutboxRecord, error) {
	var record domain.OutboxRecord
	var idBytes, orderIDBytes []byte

	if err := row.Scan(&idBytes, &orderIDBytes, &record.EventType, &record.Payload,
		&record.CreatedAt, &record.ProcessedAt, &record.IsProcessed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "failed to scan outbox record")
	}

	if err := record.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal outbox record id")
	}
	if err := record.OrderID.UnmarshalBinary(orderIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal order id")
	}

	return &record, nil
}
