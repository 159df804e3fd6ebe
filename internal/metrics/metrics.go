// Package metrics provides Prometheus metrics collection for the ratio
// service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and
	// status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// RatioResolutionsTotal tracks ratio resolutions by outcome: "override"
	// (organization scope hit), "default", or "none".
	RatioResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ratio_resolutions_total",
			Help: "Total number of garment ratio resolutions",
		},
		[]string{"outcome"},
	)

	// ScopeCacheOperationsTotal tracks scope cache operations.
	ScopeCacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scope_cache_operations_total",
			Help: "Total number of scope cache operations",
		},
		[]string{"operation", "result"},
	)

	// RatioEditsTotal tracks accepted and refused packing-rule edits.
	RatioEditsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ratio_edits_total",
			Help: "Total number of packing rule edit attempts",
		},
		[]string{"action", "result"},
	)
)

// RecordResolution records one resolver outcome.
func RecordResolution(outcome string) {
	RatioResolutionsTotal.WithLabelValues(outcome).Inc()
}

// RecordCacheOperation records a scope cache operation and its result.
func RecordCacheOperation(operation, result string) {
	ScopeCacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordEdit records a packing-rule edit attempt.
func RecordEdit(action, result string) {
	RatioEditsTotal.WithLabelValues(action, result).Inc()
}

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		elapsed := time.Since(start).Seconds()

		HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(elapsed)
		HTTPRequestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	}
}
