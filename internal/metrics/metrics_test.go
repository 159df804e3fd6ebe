//go:build !integration

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/ratios/:scope", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/boom", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "boom")
	})

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		labelPath      string
	}{
		{
			name:           "successful request uses route template",
			path:           "/ratios/default",
			expectedStatus: http.StatusOK,
			labelPath:      "/ratios/:scope",
		},
		{
			name:           "error request",
			path:           "/boom",
			expectedStatus: http.StatusInternalServerError,
			labelPath:      "/boom",
		},
		{
			name:           "unmatched route",
			path:           "/nowhere",
			expectedStatus: http.StatusNotFound,
			labelPath:      "unmatched",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := strconv.Itoa(tt.expectedStatus)
			before := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, tt.labelPath, status))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			after := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, tt.labelPath, status))
			assert.Equal(t, before+1, after)
		})
	}
}

func TestRecordResolution(t *testing.T) {
	before := testutil.ToFloat64(RatioResolutionsTotal.WithLabelValues("override"))
	RecordResolution("override")
	RecordResolution("default")
	RecordResolution("none")
	assert.Equal(t, before+1, testutil.ToFloat64(RatioResolutionsTotal.WithLabelValues("override")))
}

func TestRecordCacheOperation(t *testing.T) {
	before := testutil.ToFloat64(ScopeCacheOperationsTotal.WithLabelValues("get", "hit"))
	RecordCacheOperation("get", "hit")
	RecordCacheOperation("get", "miss")
	assert.Equal(t, before+1, testutil.ToFloat64(ScopeCacheOperationsTotal.WithLabelValues("get", "hit")))
}

func TestRecordEdit(t *testing.T) {
	before := testutil.ToFloat64(RatioEditsTotal.WithLabelValues("save", "success"))
	RecordEdit("save", "success")
	RecordEdit("save", "invalid")
	RecordEdit("revert", "success")
	assert.Equal(t, before+1, testutil.ToFloat64(RatioEditsTotal.WithLabelValues("save", "success")))
}
