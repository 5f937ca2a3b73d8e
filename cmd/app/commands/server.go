package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/allisson/orderflow/internal/app"
	"github.com/allisson/orderflow/internal/config"
)

// service is one long-running part of a process. run blocks until ctx is done
// or stop is called; stop may be nil for loops that only watch ctx.
type service struct {
	name string
	run  func(ctx context.Context) error
	stop func(ctx context.Context) error
}

// runServices runs every service until ctx is canceled or one of them fails,
// then stops all of them within shutdownTimeout. Context cancellation is a
// clean exit.
func runServices(ctx context.Context, logger *slog.Logger, shutdownTimeout time.Duration, services ...service) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, svc := range services {
		g.Go(func() error {
			if err := svc.run(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("%s error: %w", svc.name, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		for _, svc := range services {
			if svc.stop == nil {
				continue
			}
			if err := svc.stop(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("%s shutdown: %w", svc.name, err))
			}
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}

// RunServer starts the HTTP API, the metrics server and the outbox relay.
// Blocks until SIGINT/SIGTERM or until one of them fails, then shuts all of
// them down within DBConnMaxLifetime.
func RunServer(ctx context.Context, version string) error {
	cfg := config.Load()
	gin.SetMode(cfg.GetGinMode())

	container := app.NewContainer(cfg)
	logger := container.Logger()
	logger.Info("starting server", slog.String("version", version))
	defer closeContainer(container, logger)

	server, err := container.HTTPServer()
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}
	metricsServer, err := container.MetricsServer()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics server: %w", err)
	}
	relay, err := container.Relay()
	if err != nil {
		return fmt.Errorf("failed to initialize outbox relay: %w", err)
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	services := []service{
		{name: "api server", run: server.Start, stop: server.Shutdown},
		{name: "outbox relay", run: relay.Start},
	}
	if metricsServer != nil {
		services = append(services, service{name: "metrics server", run: metricsServer.Start, stop: metricsServer.Shutdown})
	}

	return runServices(ctx, logger, cfg.DBConnMaxLifetime, services...)
}
