// Package repository provides data persistence implementations for orders and
// their status history.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/orderflow/internal/database"
	apperrors "github.com/allisson/orderflow/internal/errors"
	"github.com/allisson/orderflow/internal/orders/domain"
)

// PostgreSQLOrderRepository handles order persistence for PostgreSQL.
type PostgreSQLOrderRepository struct {
	db *sql.DB
}

// NewPostgreSQLOrderRepository creates a new PostgreSQLOrderRepository.
func NewPostgreSQLOrderRepository(db *sql.DB) *PostgreSQLOrderRepository {
	return &PostgreSQLOrderRepository{db: db}
}

// Create inserts a new order with version 1 together with its history.
func (r *PostgreSQLOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO orders (id, customer_name, product_name, value, status, created_at, updated_at, version)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, 1)`

	_, err := querier.ExecContext(ctx, query, order.ID, order.CustomerName, order.ProductName, order.Value,
		string(order.Status()), order.CreatedAt, order.UpdatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create order")
	}

	if err := r.insertHistory(ctx, querier, order); err != nil {
		return err
	}

	order.Version = 1
	return nil
}

// Save updates the order only if its stored version still matches, then adds
// any history entries not yet stored.
func (r *PostgreSQLOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE orders
			  SET customer_name = $1, product_name = $2, value = $3, status = $4, updated_at = $5, version = version + 1
			  WHERE id = $6 AND version = $7`

	result, err := querier.ExecContext(ctx, query, order.CustomerName, order.ProductName, order.Value,
		string(order.Status()), order.UpdatedAt, order.ID, order.Version)
	if err != nil {
		return apperrors.Wrap(err, "failed to update order")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return domain.ErrOrderConcurrentUpdate
	}

	if err := r.insertHistory(ctx, querier, order); err != nil {
		return err
	}

	order.Version++
	return nil
}

func (r *PostgreSQLOrderRepository) insertHistory(ctx context.Context, querier database.Querier, order *domain.Order) error {
	query := `INSERT INTO order_status_history (id, order_id, status, changed_at)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (id) DO NOTHING`

	for _, entry := range order.History() {
		if _, err := querier.ExecContext(ctx, query, entry.ID, order.ID, string(entry.Status), entry.ChangedAt); err != nil {
			return apperrors.Wrap(err, "failed to insert order status history")
		}
	}
	return nil
}

// GetByID returns the order with its history, oldest entry first.
func (r *PostgreSQLOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, customer_name, product_name, value, status, created_at, updated_at, version
			  FROM orders WHERE id = $1`

	var order domain.Order
	var status string
	err := querier.QueryRowContext(ctx, query, id).Scan(&order.ID, &order.CustomerName, &order.ProductName,
		&order.Value, &status, &order.CreatedAt, &order.UpdatedAt, &order.Version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get order")
	}

	history, err := r.getHistory(ctx, querier, id)
	if err != nil {
		return nil, err
	}

	return domain.Rehydrate(order, domain.Status(status), history), nil
}

func (r *PostgreSQLOrderRepository) getHistory(
	ctx context.Context,
	querier database.Querier,
	orderID uuid.UUID,
) ([]domain.StatusHistoryEntry, error) {
	query := `SELECT id, order_id, status, changed_at
			  FROM order_status_history
			  WHERE order_id = $1
			  ORDER BY changed_at ASC, id ASC`

	rows, err := querier.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query order status history")
	}
	defer rows.Close() //nolint:errcheck

	var history []domain.StatusHistoryEntry
	for rows.Next() {
		var entry domain.StatusHistoryEntry
		var status string
		if err := rows.Scan(&entry.ID, &entry.OrderID, &status, &entry.ChangedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan order status history")
		}
		entry.Status = domain.Status(status)
		history = append(history, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate order status history")
	}

	return history, nil
}

// List returns orders newest first without their history.
func (r *PostgreSQLOrderRepository) List(ctx context.Context, offset, limit int) ([]*domain.Order, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, customer_name, product_name, value, status, created_at, updated_at, version
			  FROM orders
			  ORDER BY created_at DESC, id DESC
			  LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list orders")
	}
	defer rows.Close() //nolint:errcheck

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		var order domain.Order
		var status string
		if err := rows.Scan(&order.ID, &order.CustomerName, &order.ProductName, &order.Value, &status,
			&order.CreatedAt, &order.UpdatedAt, &order.Version); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan order")
		}
		orders = append(orders, domain.Rehydrate(order, domain.Status(status), nil))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate orders")
	}

	return orders, nil
}
