// Package app provides database initialization and setup.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/planning-service/config"
	"github.com/guttosm/planning-service/internal/circuitbreaker"
	"github.com/guttosm/planning-service/internal/metrics"
	"github.com/guttosm/planning-service/internal/repository"
	"github.com/guttosm/planning-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB             *repository.MongoDB
	CatalogRepo    repository.CatalogRepositoryInterface
	PlanRepo       repository.PlanRepositoryInterface
	LoggingService service.LoggingService

	CatalogCircuitBreaker *circuitbreaker.CircuitBreaker
	PlansCircuitBreaker   *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker    *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	if cfg.LogsTTL > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := db.SetLogsTTL(ctx, cfg.LogsTTL); err != nil {
			log.Warn().Err(err).Msg("Failed to set logs TTL index")
		}
		cancel()
	}

	catalogCB := newCircuitBreaker(cfg, "mongodb-catalog")
	plansCB := newCircuitBreaker(cfg, "mongodb-plans")
	logsCB := newCircuitBreaker(cfg, "mongodb-logs")

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)

	return &DatabaseComponents{
		DB:                    db,
		CatalogRepo:           repository.NewCatalogRepositoryWithCircuitBreaker(repository.NewCatalogRepository(db), catalogCB),
		PlanRepo:              repository.NewPlanRepositoryWithCircuitBreaker(repository.NewPlanRepository(db), plansCB),
		LoggingService:        service.NewLoggingService(logsRepo),
		CatalogCircuitBreaker: catalogCB,
		PlansCircuitBreaker:   plansCB,
		LogsCircuitBreaker:    logsCB,
	}
}

// newCircuitBreaker creates a breaker that publishes its state as a metric.
// A request cancelled by its client, or a write rejected for a plan of
// another domain, is not a database failure.
func newCircuitBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		IsFailure: func(err error) bool {
			return !errors.Is(err, context.Canceled) && !errors.Is(err, repository.ErrForeignPlan)
		},
		OnStateChange: func(name string, _, to circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(to))
		},
	})
	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))
	return cb
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}
