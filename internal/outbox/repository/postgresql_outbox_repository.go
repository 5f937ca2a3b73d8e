// Package repository provides data persistence implementations for outbox records.
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

// PostgreSQLOutboxRepository handles outbox record persistence for PostgreSQL.
type PostgreSQLOutboxRepository struct {
	db *sql.DB
}

// NewPostgreSQLOutboxRepository creates a new PostgreSQLOutboxRepository.
func NewPostgreSQLOutboxRepository(db *sql.DB) *PostgreSQLOutboxRepository {
	return &PostgreSQLOutboxRepository{db: db}
}

// Create inserts a staged record.
func (r *PostgreSQLOutboxRepository) Create(ctx context.Context, record *domain.OutboxRecord) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO outbox_messages (id, order_id, event_type, payload, created_at, processed_at, is_processed)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := querier.ExecContext(ctx, query, record.ID, record.OrderID, record.EventType, record.Payload,
		record.CreatedAt, record.ProcessedAt, record.IsProcessed)
	if err != nil {
		return apperrors.Wrap(err, "failed to create outbox record")
	}
	return nil
}

// GetUnprocessed returns up to limit unprocessed records, oldest first.
func (r *PostgreSQLOutboxRepository) GetUnprocessed(ctx context.Context, limit int) ([]*domain.OutboxRecord, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, order_id, event_type, payload, created_at, processed_at, is_processed
			  FROM outbox_messages
			  WHERE is_processed = false
			  ORDER BY created_at ASC, id ASC
			  LIMIT $1`

	rows, err := querier.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query unprocessed outbox records")
	}
	defer rows.Close() //nolint:errcheck

	var records []*domain.OutboxRecord
	for rows.Next() {
		var record domain.OutboxRecord
		if err := rows.Scan(&record.ID, &record.OrderID, &record.EventType, &record.Payload,
			&record.CreatedAt, &record.ProcessedAt, &record.IsProcessed); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan outbox record")
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate outbox records")
	}

	return records, nil
}

// Lock claims an unprocessed record for the current transaction. Records that
// are processed or locked by another relay return domain.ErrRecordUnavailable.
func (r *PostgreSQLOutboxRepository) Lock(ctx context.Context, id uuid.UUID) (*domain.OutboxRecord, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, order_id, event_type, payload, created_at, processed_at, is_processed
			  FROM outbox_messages
			  WHERE id = $1 AND is_processed = false
			  FOR UPDATE SKIP LOCKED`

	var record domain.OutboxRecord
	err := querier.QueryRowContext(ctx, query, id).Scan(&record.ID, &record.OrderID, &record.EventType,
		&record.Payload, &record.CreatedAt, &record.ProcessedAt, &record.IsProcessed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecordUnavailable
		}
		return nil, apperrors.Wrap(err, "failed to lock outbox record")
	}

	return &record, nil
}

// MarkProcessed flips the record to processed. The update only applies to an
// unprocessed row so a record can never be processed twice.
func (r *PostgreSQLOutboxRepository) MarkProcessed(ctx context.Context, record *domain.OutboxRecord) error {
	querier := database.GetTx(ctx, r.db)

	processedAt := time.Now().UTC()
	query := `UPDATE outbox_messages
			  SET is_processed = true, processed_at = $1
			  WHERE id = $2 AND is_processed = false`

	result, err := querier.ExecContext(ctx, query, processedAt, record.ID)
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
func (r *PostgreSQLOutboxRepository) CountUnprocessed(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	var count int64
	query := `SELECT COUNT(*) FROM outbox_messages WHERE is_processed = false`
	if err := querier.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count unprocessed outbox records")
	}
	return count, nil
}
