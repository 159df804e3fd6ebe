package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/threadline/ratio-service/internal/domain/dto"
	"github.com/threadline/ratio-service/internal/i18n"
)

// TimeoutConfig configures the request timeout middleware.
type TimeoutConfig struct {
	// Timeout bounds the total handler time for one request.
	Timeout time.Duration
	// ErrorMessage is the fallback body when no translator is installed.
	ErrorMessage string
}

// DefaultTimeoutConfig returns the default timeout settings.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		Timeout:      30 * time.Second,
		ErrorMessage: "Request timeout",
	}
}

// Timeout aborts requests that outrun cfg.Timeout with a localized 504.
// The handler keeps running in its goroutine; the deadline on the request
// context is its signal to bail out.
func Timeout(cfg TimeoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		var mu sync.Mutex
		var finished bool

		done := make(chan struct{})

		go func() {
			defer func() {
				recover() //nolint:errcheck
				close(done)
			}()
			c.Next()
			mu.Lock()
			finished = true
			mu.Unlock()
		}()

		select {
		case <-done:
			return
		case <-ctx.Done():
			mu.Lock()
			defer mu.Unlock()
			if finished || c.Writer.Written() {
				return
			}

			message := cfg.ErrorMessage
			if translator := i18n.GetTranslator(); translator != nil {
				message = translator.Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
			}

			resp := dto.NewError(dto.ErrCodeTimeout, message).WithRequestID(GetRequestID(c))
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, resp)
		}
	}
}

// TimeoutWithDuration builds the timeout middleware with the default
// message and the given duration.
func TimeoutWithDuration(timeout time.Duration) gin.HandlerFunc {
	cfg := DefaultTimeoutConfig()
	cfg.Timeout = timeout
	return Timeout(cfg)
}
