package domain

import (
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"
	"github.com/shopspring/decimal"

	apperrors "github.com/allisson/orderflow/internal/errors"
	customValidation "github.com/allisson/orderflow/internal/validation"
)

// MaxNameLength is the maximum number of characters of customer and product names.
const MaxNameLength = 200

// ValuePlaces is the number of fractional digits an order value may carry.
const ValuePlaces = 2

// Status is a stage of the order lifecycle.
type Status string

// Order statuses, in the only order they can be reached.
const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusCompleted  Status = "Completed"
)

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted:
		return true
	}
	return false
}

// StatusHistoryEntry records one status the order entered.
type StatusHistoryEntry struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	Status    Status
	ChangedAt time.Time
}

// Order is the order aggregate. Status and history only change through
// AdvanceToProcessing and AdvanceToCompleted.
type Order struct {
	ID           uuid.UUID
	CustomerName string
	ProductName  string
	Value        decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	// Version is the optimistic concurrency token of the stored row; 0 means never stored.
	Version int

	status  Status
	history []StatusHistoryEntry
}

// NewOrder validates the input and creates a Pending order with its first history entry.
func NewOrder(customerName, productName string, value decimal.Decimal) (*Order, error) {
	if err := validation.Validate(customerName,
		validation.Required,
		customValidation.NotBlank,
		customValidation.MaxRunes(MaxNameLength),
	); err != nil {
		return nil, apperrors.Wrap(ErrInvalidCustomerName, "customer name "+err.Error())
	}

	if err := validation.Validate(productName,
		validation.Required,
		customValidation.NotBlank,
		customValidation.MaxRunes(MaxNameLength),
	); err != nil {
		return nil, apperrors.Wrap(ErrInvalidProductName, "product name "+err.Error())
	}

	if err := validation.Validate(value,
		customValidation.PositiveDecimal,
		customValidation.DecimalPlaces(ValuePlaces),
	); err != nil {
		return nil, apperrors.Wrap(ErrInvalidValue, "value "+err.Error())
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to generate order id")
	}

	now := time.Now().UTC()
	order := &Order{
		ID:           id,
		CustomerName: customerName,
		ProductName:  productName,
		Value:        value,
		CreatedAt:    now,
		status:       StatusPending,
	}
	order.appendHistory(StatusPending, now)

	return order, nil
}

// Rehydrate rebuilds an order read from storage. History entries are expected
// oldest first.
func Rehydrate(order Order, status Status, history []StatusHistoryEntry) *Order {
	order.status = status
	order.history = append([]StatusHistoryEntry(nil), history...)
	return &order
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// History returns a copy of the status history, oldest first.
func (o *Order) History() []StatusHistoryEntry {
	return append([]StatusHistoryEntry(nil), o.history...)
}

// AggregateID identifies the order as the owner of staged outbox records.
func (o *Order) AggregateID() uuid.UUID {
	return o.ID
}

// AdvanceToProcessing moves a Pending order to Processing.
func (o *Order) AdvanceToProcessing() error {
	return o.advance(StatusPending, StatusProcessing)
}

// AdvanceToCompleted moves a Processing order to Completed.
func (o *Order) AdvanceToCompleted() error {
	return o.advance(StatusProcessing, StatusCompleted)
}

func (o *Order) advance(from, to Status) error {
	if o.status != from {
		return apperrors.Wrapf(ErrInvalidStatusTransition, "order %s is %s, cannot move to %s", o.ID, o.status, to)
	}

	now := time.Now().UTC()
	o.status = to
	o.UpdatedAt = &now
	o.appendHistory(to, now)

	return nil
}

func (o *Order) appendHistory(status Status, at time.Time) {
	o.history = append(o.history, StatusHistoryEntry{
		ID:        uuid.Must(uuid.NewV7()),
		OrderID:   o.ID,
		Status:    status,
		ChangedAt: at,
	})
}
