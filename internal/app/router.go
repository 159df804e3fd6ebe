// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/threadline/ratio-service/config"
	"github.com/threadline/ratio-service/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	if dbComponents != nil {
		db := dbComponents.DB
		healthHandler.RegisterChecker("mongodb", http.HealthCheckerFunc(func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return db.HealthCheck(ctx)
		}))
		healthHandler.RegisterBreaker("ratio_scopes", dbComponents.ScopesBreaker)
		healthHandler.RegisterBreaker("edit_logs", dbComponents.EditLogsBreaker)
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		RequestTimeout: cfg.Server.RequestTimeout,
		CORSOrigins:    cfg.Server.CORSOrigins,
		Store:          services.Store,
		Resolver:       services.Resolver,
		Audit:          services.Audit,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
