package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadline/ratio-service/internal/circuitbreaker"
)

func TestLiveness(t *testing.T) {
	router := gin.New()
	NewHealthHandler().Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestReadinessNoDependencies(t *testing.T) {
	router := gin.New()
	NewHealthHandler().Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"service":"ok"`)
}

func TestReadinessFailingChecker(t *testing.T) {
	handler := NewHealthHandler()
	handler.RegisterChecker("database", HealthCheckerFunc(func() error {
		return errors.New("connection refused")
	}))

	router := gin.New()
	handler.Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "connection refused", resp.Checks["database"])
}

func TestReadinessOpenCircuit(t *testing.T) {
	breaker := circuitbreaker.New(circuitbreaker.Config{
		Name:             "ratio_scopes",
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Cooldown:         time.Minute,
	})
	_ = breaker.Do(context.Background(), func() error {
		return errors.New("down")
	})

	handler := NewHealthHandler()
	handler.RegisterBreaker("ratio_scopes", breaker)

	router := gin.New()
	handler.Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"ratio_scopes_circuit":"open"`)
}
