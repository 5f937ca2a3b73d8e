package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetricsRouter(t *testing.T) (*Provider, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	provider, err := NewProvider("orderflow")
	require.NoError(t, err)

	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "orderflow"))
	router.GET("/v1/orders/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})
	router.POST("/v1/orders", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{})
	})
	router.GET("/v1/orders", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
	})
	return provider, router
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	t.Run("Success_LabelsByRoutePattern", func(t *testing.T) {
		provider, router := newMetricsRouter(t)

		for _, id := range []string{"a", "b", "c"} {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders/"+id, nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}

		output := scrape(t, provider)
		assertBizMetricLine(t, output, `orderflow_http_requests_total`,
			`method="GET".*path="/v1/orders/:id".*status_code="200"`, `3`)
		assert.NotContains(t, output, `path="/v1/orders/a"`)
	})

	t.Run("Success_LabelsByStatusCode", func(t *testing.T) {
		provider, router := newMetricsRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/orders", nil))
		assert.Equal(t, http.StatusCreated, w.Code)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		output := scrape(t, provider)
		assertBizMetricLine(t, output, `orderflow_http_requests_total`,
			`method="POST".*path="/v1/orders".*status_code="201"`, `1`)
		assertBizMetricLine(t, output, `orderflow_http_requests_total`,
			`method="GET".*path="/v1/orders".*status_code="500"`, `1`)
		assertBizMetricLine(t, output, `orderflow_http_request_duration_seconds_count`,
			`method="POST".*path="/v1/orders".*status_code="201"`, `1`)
	})

	t.Run("Success_UnmatchedRouteIsUnknown", func(t *testing.T) {
		provider, router := newMetricsRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/customers/1", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)

		output := scrape(t, provider)
		assertBizMetricLine(t, output, `orderflow_http_requests_total`,
			`path="unknown".*status_code="404"`, `1`)
	})
}

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "RoutePattern", input: "/v1/orders/:id", expected: "/v1/orders/:id"},
		{name: "EmptyPath", input: "", expected: "unknown"},
		{name: "RootPath", input: "/", expected: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizePath(tt.input))
		})
	}
}
