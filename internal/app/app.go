// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/planning-service/config"
	"github.com/guttosm/planning-service/internal/http"
	"github.com/rs/zerolog/log"
)

// App is the wired planning service.
type App struct {
	Router *gin.Engine

	services *ServiceComponents
	router   *RouterComponents
	db       *DatabaseComponents
}

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *App {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Log)

	dbComponents := InitializeDatabase(cfg.Database)
	serviceComponents := InitializeServices(cfg, dbComponents)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return &App{
		Router: http.NewRouter(routerComponents.HealthHandler, routerComponents.Config, routerComponents.Groups...),

		services: serviceComponents,
		router:   routerComponents,
		db:       dbComponents,
	}
}

// Close flushes pending audit entries, stops the catalog cache and
// disconnects from MongoDB.
func (a *App) Close() {
	if a.router != nil && a.router.AuditLogger != nil {
		a.router.AuditLogger.Stop()
	}
	if a.services != nil && a.services.Catalog != nil {
		a.services.Catalog.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.db.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to close MongoDB connection")
	}
}
