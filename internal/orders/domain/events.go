package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "github.com/allisson/orderflow/internal/errors"
)

// Event type tags carried as the event_type message attribute.
const (
	EventTypeOrderCreated       = "OrderCreated"
	EventTypeOrderStatusChanged = "OrderStatusChanged"
)

// OrderCreatedEvent is the self-contained snapshot published when an order is created.
type OrderCreatedEvent struct {
	OrderID      uuid.UUID       `json:"orderId"`
	CustomerName string          `json:"customerName"`
	ProductName  string          `json:"productName"`
	Value        decimal.Decimal `json:"value"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// NewOrderCreatedEvent snapshots the order fields a consumer needs.
func NewOrderCreatedEvent(order *Order) OrderCreatedEvent {
	return OrderCreatedEvent{
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		ProductName:  order.ProductName,
		Value:        order.Value,
		CreatedAt:    order.CreatedAt,
	}
}

// DecodeOrderCreatedEvent parses an OrderCreated payload. Any error wraps ErrMalformedEvent.
func DecodeOrderCreatedEvent(payload []byte) (*OrderCreatedEvent, error) {
	var event OrderCreatedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, apperrors.Wrap(ErrMalformedEvent, err.Error())
	}
	if event.OrderID == uuid.Nil {
		return nil, apperrors.Wrap(ErrMalformedEvent, "missing orderId")
	}
	return &event, nil
}

// OrderStatusChangedEvent is published for every committed status transition.
type OrderStatusChangedEvent struct {
	OrderID   uuid.UUID `json:"orderId"`
	Status    Status    `json:"status"`
	ChangedAt time.Time `json:"changedAt"`
}

// NewOrderStatusChangedEvent describes the latest transition of the order.
func NewOrderStatusChangedEvent(order *Order) OrderStatusChangedEvent {
	event := OrderStatusChangedEvent{
		OrderID: order.ID,
		Status:  order.status,
	}
	if n := len(order.history); n > 0 {
		event.ChangedAt = order.history[n-1].ChangedAt
	}
	return event
}
