package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	ordersUsecase "github.com/allisson/orderflow/internal/orders/usecase"
)

// RunProcessOrder runs the processor once for one order, the same way the
// consumer does on an OrderCreated message. Running it again is harmless.
func RunProcessOrder(
	ctx context.Context,
	processor ordersUsecase.Processor,
	logger *slog.Logger,
	writer io.Writer,
	id string,
) error {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid order id %q: %w", id, err)
	}

	logger.Info("processing order", slog.String("order_id", orderID.String()))

	if err := processor.ProcessOrder(ctx, orderID); err != nil {
		return fmt.Errorf("failed to process order: %w", err)
	}

	_, err = fmt.Fprintf(writer, "Order %s processed\n", orderID)
	return err
}
