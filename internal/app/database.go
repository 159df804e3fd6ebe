// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/threadline/ratio-service/config"
	"github.com/threadline/ratio-service/internal/circuitbreaker"
	"github.com/threadline/ratio-service/internal/domain/model"
	"github.com/threadline/ratio-service/internal/repository"
	"github.com/threadline/ratio-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB               *repository.MongoDB
	RatioScopes      repository.RatioScopes
	EditLogs         repository.EditLogs
	ScopesBreaker    *circuitbreaker.Breaker
	EditLogsBreaker  *circuitbreaker.Breaker
}

// InitializeDatabase initializes the MongoDB connection and creates the
// repositories behind circuit breakers. Returns nil if the database is
// disabled or the connection fails; the service keeps running on the
// bundled dataset.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	if err := db.SetEditLogsTTL(context.Background(), cfg.EditLogsTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to set edit logs TTL index (may already exist)")
	}

	scopesCB := circuitbreaker.New(circuitbreaker.Config{
		Name:             "mongodb-ratio-scopes",
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Cooldown:         cfg.CircuitBreakerCooldown,
	})

	editLogsCB := circuitbreaker.New(circuitbreaker.Config{
		Name:             "mongodb-edit-logs",
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Cooldown:         cfg.CircuitBreakerCooldown,
	})

	scopesRepo := repository.NewRatioScopesWithBreaker(repository.NewRatioScopesRepository(db), scopesCB)
	editLogsRepo := repository.NewEditLogsWithBreaker(repository.NewEditLogsRepository(db), editLogsCB)

	if err := seedDefaultScope(scopesRepo); err != nil {
		log.Warn().Err(err).Msg("Failed to seed default scope")
	}

	return &DatabaseComponents{
		DB:              db,
		RatioScopes:     scopesRepo,
		EditLogs:        editLogsRepo,
		ScopesBreaker:   scopesCB,
		EditLogsBreaker: editLogsCB,
	}
}

// seedDefaultScope creates the default scope document from the bundled
// dataset if it has never been written.
func seedDefaultScope(repo repository.RatioScopes) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := repo.Get(ctx, model.DefaultScope)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	now := time.Now()
	doc := &model.RatioScope{
		Key:       model.DefaultScope,
		Ratios:    service.DefaultRatios(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Put(ctx, doc); err != nil {
		return err
	}
	log.Info().Int("ratios", len(doc.Ratios)).Msg("Seeded default scope from bundled dataset")
	return nil
}
