package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/allisson/orderflow/internal/app"
	"github.com/allisson/orderflow/internal/config"
)

// RunWorker starts the order consumer and the metrics server. It refuses to
// start when no broker is configured since the local fallback cannot deliver.
func RunWorker(ctx context.Context, version string) error {
	cfg := config.Load()

	container := app.NewContainer(cfg)
	logger := container.Logger()
	logger.Info("starting worker", slog.String("version", version))
	defer closeContainer(container, logger)

	loop, err := container.ConsumerLoop()
	if err != nil {
		return fmt.Errorf("failed to initialize consumer: %w", err)
	}
	metricsServer, err := container.MetricsServer()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics server: %w", err)
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	services := []service{{name: "order consumer", run: loop.Start}}
	if metricsServer != nil {
		services = append(services, service{name: "metrics server", run: metricsServer.Start, stop: metricsServer.Shutdown})
	}

	return runServices(ctx, logger, cfg.DBConnMaxLifetime, services...)
}
