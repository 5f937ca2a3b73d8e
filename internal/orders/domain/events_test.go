package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderCreatedEvent_RoundTrip(t *testing.T) {
	order := newTestOrder(t)
	event := NewOrderCreatedEvent(order)

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	decoded, err := DecodeOrderCreatedEvent(payload)
	require.NoError(t, err)

	assert.Equal(t, order.ID, decoded.OrderID)
	assert.Equal(t, "John Doe", decoded.CustomerName)
	assert.Equal(t, "Laptop Pro", decoded.ProductName)
	assert.True(t, order.Value.Equal(decoded.Value))
	assert.True(t, order.CreatedAt.Equal(decoded.CreatedAt))
}

func TestOrderCreatedEvent_WireFormat(t *testing.T) {
	order := newTestOrder(t)

	payload, err := json.Marshal(NewOrderCreatedEvent(order))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(payload, &fields))
	assert.Equal(t, order.ID.String(), fields["orderId"])
	assert.Equal(t, "John Doe", fields["customerName"])
	assert.Equal(t, "Laptop Pro", fields["productName"])
	assert.Contains(t, fields, "value")
	assert.Contains(t, fields, "createdAt")
}

func TestDecodeOrderCreatedEvent(t *testing.T) {
	t.Run("Success_NumericValue", func(t *testing.T) {
		payload := []byte(`{"orderId":"0190f0a4-6f3e-7b4c-9a41-6f0e5f4b2a10","customerName":"John Doe",` +
			`"productName":"Laptop Pro","value":2500.00,"createdAt":"2026-01-02T03:04:05Z"}`)

		event, err := DecodeOrderCreatedEvent(payload)

		require.NoError(t, err)
		assert.Equal(t, "0190f0a4-6f3e-7b4c-9a41-6f0e5f4b2a10", event.OrderID.String())
		assert.Equal(t, "2500", event.Value.String())
	})

	tests := []struct {
		name    string
		payload string
	}{
		{"Error_NotJSON", `{{{ definitely not json`},
		{"Error_WrongType", `{"orderId": 42}`},
		{"Error_MissingOrderID", `{"customerName":"John Doe"}`},
		{"Error_Null", `null`},
		{"Error_Empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := DecodeOrderCreatedEvent([]byte(tt.payload))

			assert.Nil(t, event)
			assert.ErrorIs(t, err, ErrMalformedEvent)
		})
	}
}

func TestNewOrderStatusChangedEvent(t *testing.T) {
	order := newTestOrder(t)
	require.NoError(t, order.AdvanceToProcessing())

	event := NewOrderStatusChangedEvent(order)

	history := order.History()
	assert.Equal(t, order.ID, event.OrderID)
	assert.Equal(t, StatusProcessing, event.Status)
	assert.Equal(t, history[len(history)-1].ChangedAt, event.ChangedAt)
}
