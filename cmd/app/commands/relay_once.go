package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	outboxUsecase "github.com/allisson/orderflow/internal/outbox/usecase"
)

// RunRelayOnce publishes a single batch of unprocessed outbox records.
func RunRelayOnce(
	ctx context.Context,
	relay outboxUsecase.UseCase,
	logger *slog.Logger,
	writer io.Writer,
	brokerMode, format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	published, err := relay.RelayBatch(ctx)
	if err != nil {
		return fmt.Errorf("failed to relay outbox batch: %w", err)
	}

	logger.Info("outbox batch relayed",
		slog.Int("published", published),
		slog.String("broker", brokerMode),
	)

	if format == "json" {
		return writeJSON(writer, map[string]any{
			"published": published,
			"broker":    brokerMode,
		})
	}

	_, err = fmt.Fprintf(writer, "Published %d outbox record(s) via %s broker\n", published, brokerMode)
	return err
}
