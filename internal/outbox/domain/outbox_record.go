// Package domain defines the outbox record staged alongside order mutations
// and later published by the relay.
package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/orderflow/internal/errors"
)

var (
	// ErrEmptyEventType indicates a record staged without an event type tag.
	ErrEmptyEventType = errors.Wrap(errors.ErrInvalidInput, "outbox event type is required")

	// ErrAlreadyProcessed indicates an attempt to process a record twice.
	ErrAlreadyProcessed = errors.Wrap(errors.ErrConflict, "outbox record already processed")

	// ErrRecordUnavailable indicates the record is processed or locked by another relay.
	ErrRecordUnavailable = errors.Wrap(errors.ErrNotFound, "outbox record unavailable")
)

// Aggregate is anything that owns outbox records.
type Aggregate interface {
	AggregateID() uuid.UUID
}

// OutboxRecord is one outbound event waiting for the relay. It only moves
// from unprocessed to processed, never back.
type OutboxRecord struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	EventType   string
	Payload     string
	CreatedAt   time.Time
	ProcessedAt *time.Time
	IsProcessed bool
}

// StageEvent serializes payload into a new unprocessed record owned by the
// aggregate. Nothing is written to storage.
func StageEvent(aggregate Aggregate, eventType string, payload any) (*OutboxRecord, error) {
	if eventType == "" {
		return nil, ErrEmptyEventType
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize outbox payload")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate outbox record id")
	}

	return &OutboxRecord{
		ID:        id,
		OrderID:   aggregate.AggregateID(),
		EventType: eventType,
		Payload:   string(data),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// MarkProcessed flags the record as published at the given time.
func (r *OutboxRecord) MarkProcessed(at time.Time) error {
	if r.IsProcessed {
		return ErrAlreadyProcessed
	}
	r.IsProcessed = true
	r.ProcessedAt = &at
	return nil
}
