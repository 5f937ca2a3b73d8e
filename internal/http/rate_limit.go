package http

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	limiterSweepInterval = 5 * time.Minute
	limiterIdleTimeout   = time.Hour
)

// ipLimiterStore holds one token bucket per client IP. Idle buckets are swept
// on access, at most once per sweep interval.
type ipLimiterStore struct {
	mu        sync.Mutex
	limiters  map[string]*ipLimiter
	rps       rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

type ipLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

func newIPLimiterStore(rps float64, burst int) *ipLimiterStore {
	return &ipLimiterStore{
		limiters:  make(map[string]*ipLimiter),
		rps:       rate.Limit(rps),
		burst:     burst,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (s *ipLimiterStore) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= limiterSweepInterval {
		for key, entry := range s.limiters {
			if now.Sub(entry.lastAccess) >= limiterIdleTimeout {
				delete(s.limiters, key)
			}
		}
		s.lastSweep = now
	}

	entry, ok := s.limiters[ip]
	if !ok {
		entry = &ipLimiter{limiter: rate.NewLimiter(s.rps, s.burst)}
		s.limiters[ip] = entry
	}
	entry.lastAccess = now
	return entry.limiter
}

func (s *ipLimiterStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.limiters)
}

// RateLimitMiddleware limits requests per client IP (c.ClientIP) with a token
// bucket. Rejected requests get 429 with a Retry-After header in seconds.
func RateLimitMiddleware(rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	return rateLimit(newIPLimiterStore(rps, burst), logger)
}

func rateLimit(store *ipLimiterStore, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		limiter := store.get(clientIP)

		if limiter.Allow() {
			c.Next()
			return
		}

		reservation := limiter.Reserve()
		retryAfter := int(math.Ceil(reservation.Delay().Seconds()))
		reservation.Cancel()
		if retryAfter < 1 {
			retryAfter = 1
		}

		logger.Debug("rate limit exceeded",
			slog.String("client_ip", clientIP),
			slog.Int("retry_after", retryAfter))

		c.Header("Retry-After", strconv.Itoa(retryAfter))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error":   "rate_limit_exceeded",
			"message": "Too many requests from this IP. Retry after the specified delay.",
		})
	}
}
