// Package http provides the gin API server, the metrics server and shared middleware.
package http

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/orderflow/internal/config"
	"github.com/allisson/orderflow/internal/metrics"
	ordersHTTP "github.com/allisson/orderflow/internal/orders/http"
)

const readinessTimeout = 2 * time.Second

// Server is the order API server.
type Server struct {
	db           *sql.DB
	router       *gin.Engine
	server       *http.Server
	logger       *slog.Logger
	brokerMode   string
	shuttingDown atomic.Bool
}

// NewServer creates a new API server. SetupRouter must be called before Start.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", host, port),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// SetupRouter registers middleware and routes. A nil metricsProvider disables
// HTTP metrics. brokerMode is reported by the readiness endpoint.
func (s *Server) SetupRouter(
	cfg *config.Config,
	brokerMode string,
	orderHandler *ordersHTTP.OrderHandler,
	metricsProvider *metrics.Provider,
) {
	s.brokerMode = brokerMode

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if cors := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); cors != nil {
		router.Use(cors)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	orders := v1.Group("/orders")
	{
		create := []gin.HandlerFunc{orderHandler.CreateHandler}
		if cfg.RateLimitEnabled {
			create = append([]gin.HandlerFunc{
				RateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger),
			}, create...)
		}
		orders.POST("", create...)
		orders.GET("", orderHandler.ListHandler)
		orders.GET("/:id", orderHandler.GetHandler)
	}

	s.router = router
}

// GetHandler returns the configured router, or nil before SetupRouter.
func (s *Server) GetHandler() http.Handler {
	if s.router == nil {
		return nil
	}
	return s.router
}

// Start serves HTTP until Shutdown is called.
func (s *Server) Start(_ context.Context) error {
	if s.router == nil {
		return errors.New("router not configured")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown marks the server not ready and gracefully stops it.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shuttingDown.Store(true)
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler pings the database and reports the broker mode.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"database": "ok"}
	if s.brokerMode != "" {
		components["broker"] = s.brokerMode
	}

	ready := !s.shuttingDown.Load()
	if s.db == nil {
		components["database"] = "error"
		ready = false
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			s.logger.Warn("readiness database ping failed", slog.Any("error", err))
			components["database"] = "error"
			ready = false
		}
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "components": components})
}
