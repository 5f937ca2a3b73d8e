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

// MySQLOrderRepository handles order persistence for MySQL. UUIDs are stored
// as BINARY(16).
type MySQLOrderRepository struct {
	db *sql.DB
}

// NewMySQLOrderRepository creates a new MySQLOrderRepository.
func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

// Create inserts a new order with version 1 together with its history.
func (r *MySQLOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := order.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal order id")
	}

	query := `INSERT INTO orders (id, customer_name, product_name, value, status, created_at, updated_at, version)
			  VALUES (?, ?, ?, ?, ?, ?, ?, 1)`

	_, err = querier.ExecContext(ctx, query, idBytes, order.CustomerName, order.ProductName, order.Value,
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
func (r *MySQLOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := order.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal order id")
	}

	query := `UPDATE orders
			  SET customer_name = ?, product_name = ?, value = ?, status = ?, updated_at = ?, version = version + 1
			  WHERE id = ? AND version = ?`

	result, err := querier.ExecContext(ctx, query, order.CustomerName, order.ProductName, order.Value,
		string(order.Status()), order.UpdatedAt, idBytes, order.Version)
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

func (r *MySQLOrderRepository) insertHistory(ctx context.Context, querier database.Querier, order *domain.Order) error {
	orderIDBytes, err := order.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal order id")
	}

	query := `INSERT IGNORE INTO order_status_history (id, order_id, status, changed_at)
			  VALUES (?, ?, ?, ?)`

	for _, entry := range order.History() {
		entryIDBytes, err := entry.ID.MarshalBinary()
		if err != nil {
			return apperrors.Wrap(err, "failed to marshal history entry id")
		}
		if _, err := querier.ExecContext(ctx, query, entryIDBytes, orderIDBytes, string(entry.Status), entry.ChangedAt); err != nil {
			return apperrors.Wrap(err, "failed to insert order status history")
		}
	}
	return nil
}

// GetByID returns the order with its history, oldest entry first.
func (r *MySQLOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal order id")
	}

	query := `SELECT id, customer_name, product_name, value, status, created_at, updated_at, version
			  FROM orders WHERE id = ?`

	order, err := scanMySQLOrder(querier.QueryRowContext(ctx, query, idBytes))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	historyQuery := `SELECT id, order_id, status, changed_at
					 FROM order_status_history
					 WHERE order_id = ?
					 ORDER BY changed_at ASC, id ASC`

	rows, err := querier.QueryContext(ctx, historyQuery, idBytes)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query order status history")
	}
	defer rows.Close() //nolint:errcheck

	var history []domain.StatusHistoryEntry
	for rows.Next() {
		var entryID, orderID []byte
		var status string
		var entry domain.StatusHistoryEntry
		if err := rows.Scan(&entryID, &orderID, &status, &entry.ChangedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan order status history")
		}
		if err := entry.ID.UnmarshalBinary(entryID); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal history entry id")
		}
		if err := entry.OrderID.UnmarshalBinary(orderID); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal order id")
		}
		entry.Status = domain.Status(status)
		history = append(history, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate order status history")
	}

	return domain.Rehydrate(*order, order.Status(), history), nil
}

// List returns orders newest first without their history.
func (r *MySQLOrderRepository) List(ctx context.Context, offset, limit int) ([]*domain.Order, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, customer_name, product_name, value, status, created_at, updated_at, version
			  FROM orders
			  ORDER BY created_at DESC, id DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list orders")
	}
	defer rows.Close() //nolint:errcheck

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanMySQLOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate orders")
	}

	return orders, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanMySQLOrder returns sql.ErrNoRows unwrapped so callers can map it.
func scanMySQLOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	var id []byte
	var status string
	if err := row.Scan(&id, &order.CustomerName, &order.ProductName, &order.Value, &status,
		&order.CreatedAt, &order.UpdatedAt, &order.Version); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "failed to scan order")
	}
	if err := order.ID.UnmarshalBinary(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal order id")
	}
	return domain.Rehydrate(order, domain.Status(status), nil), nil
}
