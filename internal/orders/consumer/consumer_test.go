package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/allisson/orderflow/internal/messaging"
	messagingMocks "github.com/allisson/orderflow/internal/messaging/mocks"
	metricsMocks "github.com/allisson/orderflow/internal/metrics/mocks"
	"github.com/allisson/orderflow/internal/orders/domain"
	ordersMocks "github.com/allisson/orderflow/internal/orders/usecase/mocks"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func orderCreatedMessage(t *testing.T, orderID uuid.UUID) messaging.Message {
	t.Helper()
	payload, err := json.Marshal(domain.OrderCreatedEvent{
		OrderID:      orderID,
		CustomerName: "John Doe",
		ProductName:  "Laptop Pro",
		Value:        decimal.RequireFromString("2500.00"),
		CreatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)
	return messaging.Message{
		ID:            uuid.Must(uuid.NewV7()).String(),
		Key:           orderID.String(),
		EventType:     domain.EventTypeOrderCreated,
		CorrelationID: orderID.String(),
		ContentType:   messaging.ContentTypeJSON,
		Payload:       payload,
		Topic:         "orders",
		Offset:        42,
	}
}

func newDelivery(t *testing.T, msg messaging.Message) *messagingMocks.MockDelivery {
	t.Helper()
	delivery := messagingMocks.NewMockDelivery(t)
	delivery.EXPECT().Message().Return(msg).Maybe()
	delivery.EXPECT().Context(mock.Anything).RunAndReturn(func(ctx context.Context) context.Context {
		return ctx
	}).Maybe()
	return delivery
}

func newTestLoop(t *testing.T, consumer messaging.Consumer) (*Loop, *ordersMocks.MockProcessor) {
	t.Helper()
	processor := ordersMocks.NewMockProcessor(t)
	return NewLoop(Config{ReceiveRetryDelay: time.Millisecond}, consumer, processor, nil, nil), processor
}

func TestLoop_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ProcessesAndAcks", func(t *testing.T) {
		orderID := uuid.Must(uuid.NewV7())
		loop, processor := newTestLoop(t, messagingMocks.NewMockConsumer(t))
		delivery := newDelivery(t, orderCreatedMessage(t, orderID))

		processor.EXPECT().ProcessOrder(mock.Anything, orderID).Return(nil).Once()
		delivery.EXPECT().Ack(mock.Anything).Return(nil).Once()

		assert.Equal(t, OutcomeAck, loop.Handle(ctx, delivery))
	})

	t.Run("Success_UnknownEventTypeIsDropped", func(t *testing.T) {
		loop, _ := newTestLoop(t, messagingMocks.NewMockConsumer(t))
		msg := orderCreatedMessage(t, uuid.Must(uuid.NewV7()))
		msg.EventType = "OrderShipped"
		delivery := newDelivery(t, msg)

		delivery.EXPECT().Ack(mock.Anything).Return(nil).Once()

		assert.Equal(t, OutcomeDrop, loop.Handle(ctx, delivery))
	})

	t.Run("Success_StatusChangedIsDropped", func(t *testing.T) {
		loop, _ := newTestLoop(t, messagingMocks.NewMockConsumer(t))
		msg := orderCreatedMessage(t, uuid.Must(uuid.NewV7()))
		msg.EventType = domain.EventTypeOrderStatusChanged
		delivery := newDelivery(t, msg)

		delivery.EXPECT().Ack(mock.Anything).Return(nil).Once()

		assert.Equal(t, OutcomeDrop, loop.Handle(ctx, delivery))
	})

	malformed := map[string][]byte{
		"Error_MalformedPayloadIsDeadLettered": []byte(`{"orderId":`),
		"Error_NullPayloadIsDeadLettered":      []byte(`null`),
		"Error_MissingOrderIDIsDeadLettered":   []byte(`{"customerName":"John Doe"}`),
	}
	for name, payload := range malformed {
		t.Run(name, func(t *testing.T) {
			// The processor mock has no expectations, so any call fails the test.
			loop, _ := newTestLoop(t, messagingMocks.NewMockConsumer(t))
			msg := orderCreatedMessage(t, uuid.Must(uuid.NewV7()))
			msg.Payload = payload
			delivery := newDelivery(t, msg)

			delivery.EXPECT().
				DeadLetter(mock.Anything, DeadLetterReasonDeserialization, mock.AnythingOfType("string")).
				Return(nil).
				Once()

			assert.Equal(t, OutcomeDeadLetter, loop.Handle(ctx, delivery))
		})
	}

	t.Run("Success_RejectedTransitionIsAcked", func(t *testing.T) {
		orderID := uuid.Must(uuid.NewV7())
		loop, processor := newTestLoop(t, messagingMocks.NewMockConsumer(t))
		delivery := newDelivery(t, orderCreatedMessage(t, orderID))

		processor.EXPECT().ProcessOrder(mock.Anything, orderID).Return(domain.ErrInvalidStatusTransition).Once()
		delivery.EXPECT().Ack(mock.Anything).Return(nil).Once()

		assert.Equal(t, OutcomeAck, loop.Handle(ctx, delivery))
	})

	t.Run("Error_UnexpectedFailureIsAbandoned", func(t *testing.T) {
		orderID := uuid.Must(uuid.NewV7())
		loop, processor := newTestLoop(t, messagingMocks.NewMockConsumer(t))
		delivery := newDelivery(t, orderCreatedMessage(t, orderID))

		processor.EXPECT().ProcessOrder(mock.Anything, orderID).Return(errors.New("connection refused")).Once()
		delivery.EXPECT().Abandon(mock.Anything).Return(nil).Once()

		assert.Equal(t, OutcomeAbandon, loop.Handle(ctx, delivery))
	})

	t.Run("Error_CanceledProcessingIsAbandoned", func(t *testing.T) {
		orderID := uuid.Must(uuid.NewV7())
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		loop, processor := newTestLoop(t, messagingMocks.NewMockConsumer(t))
		delivery := newDelivery(t, orderCreatedMessage(t, orderID))

		processor.EXPECT().ProcessOrder(mock.Anything, orderID).Return(context.Canceled).Once()
		delivery.EXPECT().Abandon(mock.Anything).Return(context.Canceled).Once()

		assert.Equal(t, OutcomeAbandon, loop.Handle(canceled, delivery))
	})

	t.Run("Success_AckSurvivesShutdown", func(t *testing.T) {
		orderID := uuid.Must(uuid.NewV7())
		canceled, cancel := context.WithCancel(ctx)
		loop, processor := newTestLoop(t, messagingMocks.NewMockConsumer(t))
		delivery := newDelivery(t, orderCreatedMessage(t, orderID))

		processor.EXPECT().ProcessOrder(mock.Anything, orderID).
			RunAndReturn(func(context.Context, uuid.UUID) error {
				cancel()
				return nil
			}).
			Once()
		delivery.EXPECT().Ack(mock.Anything).
			RunAndReturn(func(ctx context.Context) error {
				return ctx.Err()
			}).
			Once()

		assert.Equal(t, OutcomeAck, loop.Handle(canceled, delivery))
	})

	t.Run("Error_SettlementFailureKeepsOutcome", func(t *testing.T) {
		orderID := uuid.Must(uuid.NewV7())
		loop, processor := newTestLoop(t, messagingMocks.NewMockConsumer(t))
		delivery := newDelivery(t, orderCreatedMessage(t, orderID))

		processor.EXPECT().ProcessOrder(mock.Anything, orderID).Return(nil).Once()
		delivery.EXPECT().Ack(mock.Anything).Return(errors.New("coordinator not available")).Once()

		assert.Equal(t, OutcomeAck, loop.Handle(ctx, delivery))
	})

	t.Run("Success_RecordsMetrics", func(t *testing.T) {
		orderID := uuid.Must(uuid.NewV7())
		businessMetrics := metricsMocks.NewMockBusinessMetrics(t)
		processor := ordersMocks.NewMockProcessor(t)
		loop := NewLoop(Config{}, messagingMocks.NewMockConsumer(t), processor, businessMetrics, nil)
		delivery := newDelivery(t, orderCreatedMessage(t, orderID))

		processor.EXPECT().ProcessOrder(mock.Anything, orderID).Return(nil).Once()
		delivery.EXPECT().Ack(mock.Anything).Return(nil).Once()
		businessMetrics.EXPECT().RecordOperation(mock.Anything, "consumer", "message_handle", OutcomeAck).Return().Once()
		businessMetrics.EXPECT().
			RecordDuration(mock.Anything, "consumer", "message_handle", mock.Anything, OutcomeAck).
			Return().
			Once()

		loop.Handle(ctx, delivery)
	})
}

func TestLoop_Start(t *testing.T) {
	t.Run("Success_HandlesUntilCanceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		orderID := uuid.Must(uuid.NewV7())
		consumer := messagingMocks.NewMockConsumer(t)
		loop, processor := newTestLoop(t, consumer)
		delivery := newDelivery(t, orderCreatedMessage(t, orderID))

		consumer.EXPECT().Receive(mock.Anything).Return(delivery, nil).Once()
		consumer.EXPECT().Receive(mock.Anything).
			RunAndReturn(func(ctx context.Context) (messaging.Delivery, error) {
				cancel()
				<-ctx.Done()
				return nil, ctx.Err()
			}).
			Once()
		processor.EXPECT().ProcessOrder(mock.Anything, orderID).Return(nil).Once()
		delivery.EXPECT().Ack(mock.Anything).Return(nil).Once()

		err := loop.Start(ctx)

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Success_StopsWhenConsumerClosed", func(t *testing.T) {
		consumer := messagingMocks.NewMockConsumer(t)
		loop, _ := newTestLoop(t, consumer)

		consumer.EXPECT().Receive(mock.Anything).Return(nil, messaging.ErrConsumerClosed).Once()

		assert.NoError(t, loop.Start(context.Background()))
	})

	t.Run("Success_RetriesAfterReceiveError", func(t *testing.T) {
		consumer := messagingMocks.NewMockConsumer(t)
		loop, _ := newTestLoop(t, consumer)

		consumer.EXPECT().Receive(mock.Anything).Return(nil, errors.New("broker unreachable")).Twice()
		consumer.EXPECT().Receive(mock.Anything).Return(nil, messaging.ErrConsumerClosed).Once()

		assert.NoError(t, loop.Start(context.Background()))
	})
}
