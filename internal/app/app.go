// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/threadline/ratio-service/config"
	"github.com/threadline/ratio-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
// The returned cleanup releases the database connection and should run
// during shutdown.
func InitializeApp(cfg config.Config) (*gin.Engine, func(context.Context)) {
	// Logger first, everything else logs through it.
	InitializeLogger(cfg.Log)

	// Database components: Mongo repositories behind circuit breakers.
	// Nil when the database is disabled or unreachable; the service then
	// serves the bundled dataset read-only.
	dbComponents := InitializeDatabase(cfg.Database)

	serviceComponents := InitializeServices(dbComponents)

	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)
	router := http.NewRouter(routerComponents.HealthHandler, routerComponents.Config)

	cleanup := func(ctx context.Context) {
		if dbComponents == nil {
			return
		}
		if err := dbComponents.DB.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to close MongoDB connection")
		}
	}

	return router, cleanup
}
