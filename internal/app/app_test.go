package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadline/ratio-service/config"
)

func testConfig() config.Config {
	cfg := config.Load()
	cfg.Server.RateLimit = 0
	cfg.Database.Enabled = false
	return cfg
}

func TestInitializeAppWithoutDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, cleanup := InitializeApp(testConfig())
	require.NotNil(t, router)
	defer cleanup(context.Background())

	// The bundled dataset answers resolution reads without a database.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ratios/resolve?category=Apparel+%3E+Shirts", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Short Sleeve Shirt")

	// Writes are refused.
	req := httptest.NewRequest(http.MethodPut, "/api/ratios/acme-fest/Hoodie", nil)
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NotEqual(t, http.StatusOK, w.Code)
}

func TestInitializeAppHealthEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, cleanup := InitializeApp(testConfig())
	defer cleanup(context.Background())

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestInitializeDatabaseDisabled(t *testing.T) {
	cfg := config.Load().Database
	cfg.Enabled = false
	assert.Nil(t, InitializeDatabase(cfg))
}

func TestNewServerDefaults(t *testing.T) {
	srv := NewServer(http.NewServeMux(), "8080")
	require.NotNil(t, srv)
	assert.Equal(t, ":8080", srv.httpServer.Addr)
	assert.Equal(t, 10*time.Second, srv.shutdownTimeout)
}

func TestServerShutdownRunsHooks(t *testing.T) {
	srv := NewServer(http.NewServeMux(), "0")

	ran := false
	srv.OnShutdown(func(context.Context) { ran = true })

	require.NoError(t, srv.Shutdown())
	assert.True(t, ran)
}
