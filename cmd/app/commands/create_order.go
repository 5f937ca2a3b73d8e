package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/allisson/orderflow/internal/orders/http/dto"
	ordersUsecase "github.com/allisson/orderflow/internal/orders/usecase"
)

// RunCreateOrder creates an order from the command line. The OrderCreated
// event is staged in the same transaction and published by the relay.
func RunCreateOrder(
	ctx context.Context,
	orderUseCase ordersUsecase.OrderUseCase,
	logger *slog.Logger,
	writer io.Writer,
	customerName, productName, value, format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", value, err)
	}

	order, err := orderUseCase.Create(ctx, customerName, productName, amount)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	logger.Info("order created", slog.String("order_id", order.ID.String()))

	if format == "json" {
		return writeJSON(writer, dto.MapOrderToResponse(order))
	}

	_, err = fmt.Fprintf(writer,
		"Order created successfully\nID: %s\nCustomer: %s\nProduct: %s\nValue: %s\nStatus: %s\n",
		order.ID, order.CustomerName, order.ProductName, order.Value.StringFixed(2), order.Status(),
	)
	return err
}
