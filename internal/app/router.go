// Package app provides router configuration.
package app

import (
	"context"

	"github.com/guttosm/planning-service/config"
	"github.com/guttosm/planning-service/internal/http"
	"github.com/guttosm/planning-service/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Groups        []http.RouteGroup
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
	AuditLogger   *middleware.AsyncLogger
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(services *ServiceComponents, dbComponents *DatabaseComponents, cfg config.Config) *RouterComponents {
	var audit *middleware.AsyncLogger
	if dbComponents != nil && dbComponents.LoggingService != nil {
		audit = middleware.NewAsyncLogger(dbComponents.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}

	plans := http.NewPlanHandler(services.Planning, services.Catalog,
		http.WithAuditLogger(audit),
		http.WithImporter(services.Importer, cfg.Planning.Domain),
		http.WithImportMaxBytes(cfg.Planning.ImportMaxBytes),
	)
	catalog := http.NewCatalogHandler(services.Catalog)

	var trail http.AuditTrail
	if dbComponents != nil && dbComponents.LoggingService != nil {
		trail = dbComponents.LoggingService
	}
	history := http.NewHistoryHandler(trail)

	healthHandler := http.NewHealthHandler()
	if dbComponents != nil {
		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(func(ctx context.Context) error {
				return dbComponents.DB.HealthCheck(ctx)
			}))
		}
		if dbComponents.CatalogCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_catalog", dbComponents.CatalogCircuitBreaker)
		}
		if dbComponents.PlansCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_plans", dbComponents.PlansCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: cfg.Server.EnableIdempotency,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		OperatorSecret:    []byte(cfg.Auth.JWTSecretKey),
		RequireOperator:   cfg.Auth.RequireOperator,
		AuditLogger:       audit,
	}

	return &RouterComponents{
		Groups: []http.RouteGroup{
			http.NewPlanRoutes(plans),
			http.NewHistoryRoutes(history),
			http.NewCatalogRoutes(catalog),
		},
		HealthHandler: healthHandler,
		Config:        routerCfg,
		AuditLogger:   audit,
	}
}
