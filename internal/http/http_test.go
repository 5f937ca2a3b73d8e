package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/orderflow/internal/config"
	"github.com/allisson/orderflow/internal/metrics"
	"github.com/allisson/orderflow/internal/orders/domain"
	ordersHTTP "github.com/allisson/orderflow/internal/orders/http"
	"github.com/allisson/orderflow/internal/orders/usecase/mocks"
)

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		MetricsNamespace:        "test_app",
		RateLimitEnabled:        true,
		RateLimitRequestsPerSec: 1,
		RateLimitBurst:          2,
	}
}

// newRoutedServer builds a server with every route registered against a mocked use case.
func newRoutedServer(t *testing.T, db *sqlmockDB) (*Server, *mocks.MockOrderUseCase) {
	t.Helper()
	useCase := mocks.NewMockOrderUseCase(t)
	var sqlDB *sql.DB
	if db != nil {
		sqlDB = db.DB
	}
	server := NewServer(sqlDB, "localhost", 8080, discardLogger())
	server.SetupRouter(testConfig(), "local", ordersHTTP.NewOrderHandler(useCase, discardLogger()), nil)
	return server, useCase
}

func serve(server *Server, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	server.router.ServeHTTP(w, req)
	return w
}

func TestServer_HealthEndpoint(t *testing.T) {
	server, _ := newRoutedServer(t, nil)

	w := serve(server, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestServer_ReadyEndpoint(t *testing.T) {
	t.Run("Success_DatabaseReachable", func(t *testing.T) {
		db := newSQLMock(t)
		db.mock.ExpectPing()
		server, _ := newRoutedServer(t, db)

		w := serve(server, http.MethodGet, "/ready", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ready","components":{"database":"ok","broker":"local"}}`, w.Body.String())
	})

	t.Run("Error_NilDatabase", func(t *testing.T) {
		server, _ := newRoutedServer(t, nil)

		w := serve(server, http.MethodGet, "/ready", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "not_ready", response["status"])
		components, ok := response["components"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "error", components["database"])
	})

	t.Run("Error_PingFails", func(t *testing.T) {
		db := newSQLMock(t)
		db.mock.ExpectPing().WillReturnError(errors.New("connection refused"))
		server, _ := newRoutedServer(t, db)

		w := serve(server, http.MethodGet, "/ready", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("Error_ShuttingDown", func(t *testing.T) {
		db := newSQLMock(t)
		db.mock.ExpectPing()
		server, _ := newRoutedServer(t, db)
		server.shuttingDown.Store(true)

		w := serve(server, http.MethodGet, "/ready", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestServer_OrderRoutes(t *testing.T) {
	t.Run("Success_GetByID", func(t *testing.T) {
		server, useCase := newRoutedServer(t, nil)
		id := uuid.Must(uuid.NewV7())
		useCase.EXPECT().Get(mock.Anything, id).Return(nil, domain.ErrOrderNotFound).Once()

		w := serve(server, http.MethodGet, "/v1/orders/"+id.String(), "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Success_List", func(t *testing.T) {
		server, useCase := newRoutedServer(t, nil)
		useCase.EXPECT().List(mock.Anything, 0, 50).Return([]*domain.Order{}, nil).Once()

		w := serve(server, http.MethodGet, "/v1/orders", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_CreateIsRateLimited", func(t *testing.T) {
		server, _ := newRoutedServer(t, nil)
		body := `{"customerName":"","productName":"Laptop","value":"1"}`

		for i := 0; i < 2; i++ {
			w := serve(server, http.MethodPost, "/v1/orders", body)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		}

		w := serve(server, http.MethodPost, "/v1/orders", body)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
	})

	t.Run("Error_MetricsNotExposed", func(t *testing.T) {
		server, _ := newRoutedServer(t, nil)

		w := serve(server, http.MethodGet, "/metrics", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestServer_StartRequiresRouter(t *testing.T) {
	server := NewServer(nil, "localhost", 0, discardLogger())

	assert.Error(t, server.Start(context.Background()))
}

func TestServer_ShutdownGracefully(t *testing.T) {
	server, _ := newRoutedServer(t, nil)
	server.server.Addr = "127.0.0.1:0"

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start(context.Background())
	}()

	time.Sleep(100 * time.Millisecond)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, server.Shutdown(shutdownCtx))
	assert.NoError(t, <-errChan)
	assert.True(t, server.shuttingDown.Load())
}

func TestCustomLoggerMiddleware(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(CustomLoggerMiddleware(logger))
	router.GET("/v1/orders", func(c *gin.Context) {
		c.JSON(http.StatusTeapot, gin.H{})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders?limit=5", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(buf.String()), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "/v1/orders?limit=5", entry["path"])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
}

func TestRecoveryMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CustomLoggerMiddleware(discardLogger()))
	router.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestMetricsServer_Endpoints(t *testing.T) {
	provider, err := metrics.NewProvider("test_app")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	metricsServer := NewMetricsServer("localhost", 8081, discardLogger(), provider)

	w := httptest.NewRecorder()
	metricsServer.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

type sqlmockDB struct {
	DB   *sql.DB
	mock sqlmock.Sqlmock
}

func newSQLMock(t *testing.T) *sqlmockDB {
	t.Helper()
	db, m, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &sqlmockDB{DB: db, mock: m}
}
