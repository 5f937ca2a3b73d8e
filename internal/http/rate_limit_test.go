package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRateLimitedRouter(store *ipLimiterStore) *gin.Engine {
	router := gin.New()
	router.Use(rateLimit(store, discardLogger()))
	router.POST("/v1/orders", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{})
	})
	return router
}

func post(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/orders", nil)
	req.RemoteAddr = remoteAddr
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("Success_WithinBurst", func(t *testing.T) {
		router := newRateLimitedRouter(newIPLimiterStore(10, 5))

		for i := 0; i < 5; i++ {
			assert.Equal(t, http.StatusCreated, post(router, "10.0.0.1:1234").Code)
		}
	})

	t.Run("Error_ExceedsBurst", func(t *testing.T) {
		router := newRateLimitedRouter(newIPLimiterStore(0.5, 1))

		assert.Equal(t, http.StatusCreated, post(router, "10.0.0.1:1234").Code)

		w := post(router, "10.0.0.1:1234")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "2", w.Header().Get("Retry-After"))
		assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
	})

	t.Run("Success_IndependentPerIP", func(t *testing.T) {
		router := newRateLimitedRouter(newIPLimiterStore(0.1, 1))

		assert.Equal(t, http.StatusCreated, post(router, "10.0.0.1:1234").Code)
		assert.Equal(t, http.StatusTooManyRequests, post(router, "10.0.0.1:1234").Code)
		assert.Equal(t, http.StatusCreated, post(router, "10.0.0.2:1234").Code)
	})
}

func TestIPLimiterStore_SweepsIdleEntries(t *testing.T) {
	now := time.Now()
	store := newIPLimiterStore(1, 1)
	store.now = func() time.Time { return now }

	store.get("10.0.0.1")
	store.get("10.0.0.2")
	assert.Equal(t, 2, store.size())

	now = now.Add(limiterIdleTimeout + limiterSweepInterval)
	store.get("10.0.0.3")

	assert.Equal(t, 1, store.size())
}
