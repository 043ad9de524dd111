package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

// PlanRoutes registers the plan endpoints.
type PlanRoutes struct {
	handler *PlanHandler
}

// NewPlanRoutes creates a new PlanRoutes instance.
func NewPlanRoutes(handler *PlanHandler) *PlanRoutes {
	return &PlanRoutes{handler: handler}
}

// RegisterRoutes registers the plan endpoints under /plans.
func (r *PlanRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	plans := rg.Group("/plans")
	plans.POST("/calculate", r.handler.Calculate)
	plans.POST("/new", r.handler.New)
	plans.POST("/import", r.handler.Import)
	plans.GET("", r.handler.List)
	plans.PUT("", r.handler.Save)
	plans.GET("/:id", r.handler.Get)
	plans.PATCH("/:id", r.handler.Edit)
	plans.DELETE("/:id", r.handler.Delete)
}

// CatalogRoutes registers the catalog lookups.
type CatalogRoutes struct {
	handler *CatalogHandler
}

// NewCatalogRoutes creates a new CatalogRoutes instance.
func NewCatalogRoutes(handler *CatalogHandler) *CatalogRoutes {
	return &CatalogRoutes{handler: handler}
}

// RegisterRoutes registers the lookups under /catalog.
func (r *CatalogRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	catalog := rg.Group("/catalog")
	catalog.GET("/products", r.handler.Products)
	catalog.GET("/materials", r.handler.Materials)
	catalog.GET("/rolls", r.handler.Rolls)
	catalog.GET("/machines", r.handler.Machines)
	catalog.GET("/clients", r.handler.Clients)
}
