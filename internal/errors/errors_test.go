package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type leaseError struct {
	Key string
}

func (e leaseError) Error() string { return "lease held: " + e.Key }

func TestWrap(t *testing.T) {
	t.Run("Success_KeepsChain", func(t *testing.T) {
		wrapped := Wrap(ErrNotFound, "order not found")

		require.Error(t, wrapped)
		assert.Equal(t, "order not found: not found", wrapped.Error())
		assert.True(t, errors.Is(wrapped, ErrNotFound))
	})

	t.Run("Success_NilStaysNil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "order not found"))
	})

	t.Run("Success_DoubleWrap", func(t *testing.T) {
		inner := Wrap(ErrInvalidTransition, "order status transition not allowed")
		outer := Wrap(inner, "advance to processing")

		assert.True(t, Is(outer, ErrInvalidTransition))
		assert.False(t, Is(outer, ErrConflict))
	})
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrPoisonMessage, "decode %s", "OrderCreated")
	assert.Equal(t, "decode OrderCreated: poison message", wrapped.Error())
	assert.True(t, Is(wrapped, ErrPoisonMessage))

	assert.NoError(t, Wrapf(nil, "decode %s", "OrderCreated"))
}

func TestAs(t *testing.T) {
	wrapped := Wrap(leaseError{Key: "orders:0:42"}, "receive")

	var target leaseError
	require.True(t, As(wrapped, &target))
	assert.Equal(t, "orders:0:42", target.Key)
}

func TestStandardErrors(t *testing.T) {
	tests := []struct {
		err  error
		text string
	}{
		{ErrNotFound, "not found"},
		{ErrConflict, "conflict"},
		{ErrInvalidInput, "invalid input"},
		{ErrInvalidTransition, "invalid state transition: conflict"},
		{ErrPoisonMessage, "poison message"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.text, tt.err.Error())
		assert.Equal(t, tt.text, New(tt.text).Error())
	}

	assert.True(t, Is(ErrInvalidTransition, ErrConflict))
}
