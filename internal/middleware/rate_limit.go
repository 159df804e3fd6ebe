package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/threadline/ratio-service/internal/domain/dto"
	"github.com/threadline/ratio-service/internal/i18n"
)

// visitor tracks the token bucket for a single client.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limits requests per client IP using token buckets. Each
// client gets its own bucket refilled at requests/window with a burst of
// the full request budget.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	window   time.Duration
	stopCh   chan struct{}
}

// NewRateLimiter creates a rate limiter allowing requests per window for
// each client.
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	if requests <= 0 {
		requests = 1
	}
	if window <= 0 {
		window = time.Minute
	}

	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(float64(requests) / window.Seconds()),
		burst:    requests,
		window:   window,
		stopCh:   make(chan struct{}),
	}

	go rl.cleanup()
	return rl
}

// getVisitor returns the bucket for the given identifier, creating one on
// first sight.
func (rl *RateLimiter) getVisitor(identifier string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[identifier]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[identifier] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

// RateLimit returns a middleware that limits requests per IP.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := rl.getVisitor(c.ClientIP())

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.burst))

		if !limiter.Allow() {
			locale := i18n.GetLocale(c)
			requestID := GetRequestID(c)
			c.Header("Retry-After", rl.window.String())
			errorResp := dto.NewError(dto.ErrCodeRateLimit, i18n.GetTranslator().Translate(i18n.ErrKeyRateLimit, locale)).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorResp)
			return
		}

		c.Next()
	}
}

// cleanup periodically removes buckets that have gone quiet.
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupExpired()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RateLimiter) cleanupExpired() {
	threshold := rl.window * 2
	if threshold < time.Minute {
		threshold = time.Minute
	}
	now := time.Now()

	rl.mu.Lock()
	for id, v := range rl.visitors {
		if now.Sub(v.lastSeen) > threshold {
			delete(rl.visitors, id)
		}
	}
	rl.mu.Unlock()
}

// Stop gracefully shuts down the rate limiter.
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

// Visitors reports how many clients currently hold a bucket.
func (rl *RateLimiter) Visitors() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}
