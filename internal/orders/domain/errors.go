// Package domain defines the order aggregate, its status state machine and the
// events it produces.
package domain

import (
	"github.com/allisson/orderflow/internal/errors"
)

// Order-specific error definitions.
var (
	// ErrOrderNotFound indicates the order does not exist.
	ErrOrderNotFound = errors.Wrap(errors.ErrNotFound, "order not found")

	// ErrInvalidCustomerName indicates a blank or oversized customer name.
	ErrInvalidCustomerName = errors.Wrap(errors.ErrInvalidInput, "invalid customer name")

	// ErrInvalidProductName indicates a blank or oversized product name.
	ErrInvalidProductName = errors.Wrap(errors.ErrInvalidInput, "invalid product name")

	// ErrInvalidValue indicates a non-positive order value or one with more than two decimal places.
	ErrInvalidValue = errors.Wrap(errors.ErrInvalidInput, "invalid order value")

	// ErrInvalidStatusTransition indicates a transition the state machine does not allow.
	ErrInvalidStatusTransition = errors.Wrap(errors.ErrInvalidTransition, "order status transition not allowed")

	// ErrOrderConcurrentUpdate indicates the stored order changed since it was loaded.
	ErrOrderConcurrentUpdate = errors.Wrap(errors.ErrConflict, "order was modified concurrently")

	// ErrMalformedEvent indicates an event payload that cannot be decoded.
	ErrMalformedEvent = errors.Wrap(errors.ErrPoisonMessage, "malformed order event")
)
