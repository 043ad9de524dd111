// Package app provides service initialization.
package app

import (
	"github.com/guttosm/planning-service/config"
	"github.com/guttosm/planning-service/internal/importer"
	"github.com/guttosm/planning-service/internal/repository"
	"github.com/guttosm/planning-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Catalog  *service.CatalogServiceImpl
	Planning service.PlanningService
	Importer *importer.Importer
}

// InitializeServices initializes the planning services. Without database
// components the stateless calculation still works and every lookup or
// persistence call reports the repository as not configured.
func InitializeServices(cfg config.Config, db *DatabaseComponents) *ServiceComponents {
	var catalogRepo repository.CatalogRepositoryInterface
	var planRepo repository.PlanRepositoryInterface
	if db != nil {
		catalogRepo = db.CatalogRepo
		planRepo = db.PlanRepo
	}

	catalog := service.NewCatalogService(catalogRepo,
		service.WithCatalogDomain(cfg.Planning.Domain),
		service.WithCatalogCache(cfg.Cache.Size, cfg.Cache.TTL),
	)

	return &ServiceComponents{
		Catalog: catalog,
		Planning: service.NewPlanningService(catalog, planRepo,
			service.WithPlanningDomain(cfg.Planning.Domain),
			service.WithListLimit(cfg.Planning.DefaultListLimit),
		),
		Importer: importer.New(catalog, importer.WithDefaultBlowsPerMinute(cfg.Planning.DefaultBlowsMinute)),
	}
}
