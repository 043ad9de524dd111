package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/planning-service/internal/domain/dto"
	"github.com/guttosm/planning-service/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogHandler serves the catalog lookups behind the plan editor's pickers.
type CatalogHandler struct {
	catalog service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func respondList[T any](builder *ResponseBuilder, items []T, err error) {
	if err != nil {
		builder.Fail(err)
		return
	}
	if items == nil {
		items = []T{}
	}
	builder.SuccessOK(items)
}

// Products handles GET /api/catalog/products requests.
//
// @Summary      Find products
// @Description  Products whose name contains q and whose material name contains material, case-insensitive.
// @Tags         Catalog
// @Produce      json
// @Param        q query string false "Product name fragment"
// @Param        material query string false "Material name fragment"
// @Success      200 {object} dto.SuccessResponse{data=[]model.Product}
// @Security     BearerAuth
// @Router       /api/catalog/products [get]
func (h *CatalogHandler) Products(c *gin.Context) {
	items, err := h.catalog.FindProducts(c.Request.Context(), c.Query("q"), c.Query("material"))
	respondList(NewResponseBuilder(c), items, err)
}

// Materials handles GET /api/catalog/materials requests.
//
// @Summary      Find materials
// @Tags         Catalog
// @Produce      json
// @Param        q query string false "Material name fragment"
// @Success      200 {object} dto.SuccessResponse{data=[]model.Material}
// @Security     BearerAuth
// @Router       /api/catalog/materials [get]
func (h *CatalogHandler) Materials(c *gin.Context) {
	items, err := h.catalog.FindMaterials(c.Request.Context(), c.Query("q"))
	respondList(NewResponseBuilder(c), items, err)
}

// Rolls handles GET /api/catalog/rolls requests.
//
// @Summary      Rolls of a material
// @Tags         Catalog
// @Produce      json
// @Param        material_id query string true "Material id"
// @Success      200 {object} dto.SuccessResponse{data=[]model.Roll}
// @Failure      400 {object} dto.ErrorResponse "Invalid material id"
// @Security     BearerAuth
// @Router       /api/catalog/rolls [get]
func (h *CatalogHandler) Rolls(c *gin.Context) {
	builder := NewResponseBuilder(c)

	materialID, err := primitive.ObjectIDFromHex(c.Query("material_id"))
	if err != nil {
		builder.Fail(&dto.ValidationError{Field: "material_id", Message: "must be a 24 character hex id"})
		return
	}
	items, err := h.catalog.FindRolls(c.Request.Context(), materialID)
	respondList(builder, items, err)
}

// Machines handles GET /api/catalog/machines requests.
//
// @Summary      Find machines
// @Tags         Catalog
// @Produce      json
// @Param        q query string false "Machine name fragment"
// @Success      200 {object} dto.SuccessResponse{data=[]model.Machine}
// @Security     BearerAuth
// @Router       /api/catalog/machines [get]
func (h *CatalogHandler) Machines(c *gin.Context) {
	items, err := h.catalog.FindMachines(c.Request.Context(), c.Query("q"))
	respondList(NewResponseBuilder(c), items, err)
}

// Clients handles GET /api/catalog/clients requests.
//
// @Summary      Find clients
// @Tags         Catalog
// @Produce      json
// @Param        q query string false "Client name fragment"
// @Success      200 {object} dto.SuccessResponse{data=[]model.Client}
// @Security     BearerAuth
// @Router       /api/catalog/clients [get]
func (h *CatalogHandler) Clients(c *gin.Context) {
	items, err := h.catalog.FindClients(c.Request.Context(), c.Query("q"))
	respondList(NewResponseBuilder(c), items, err)
}
