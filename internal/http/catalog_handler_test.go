package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/planning-service/internal/circuitbreaker"
	"github.com/guttosm/planning-service/internal/domain/model"
	"github.com/guttosm/planning-service/internal/middleware"
	"github.com/guttosm/planning-service/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func catalogTestRouter(catalog *mocks.MockCatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	NewCatalogRoutes(NewCatalogHandler(catalog)).RegisterRoutes(r.Group("/api"))
	return r
}

func TestCatalogHandler_Lookups(t *testing.T) {
	materialID := primitive.NewObjectID()

	tests := []struct {
		name           string
		path           string
		setup          func(*mocks.MockCatalogService)
		expectedStatus int
		expectedLen    int
	}{
		{
			name: "products by name and material",
			path: "/api/catalog/products?q=bolsa&material=PE",
			setup: func(m *mocks.MockCatalogService) {
				m.On("FindProducts", mock.Anything, "bolsa", "PE").
					Return([]model.Product{{Name: "Bolsa 500x300"}, {Name: "Bolsa 400x250"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    2,
		},
		{
			name: "materials",
			path: "/api/catalog/materials?q=pe",
			setup: func(m *mocks.MockCatalogService) {
				m.On("FindMaterials", mock.Anything, "pe").Return([]model.Material{{Name: "PE 80"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    1,
		},
		{
			name: "rolls of a material",
			path: "/api/catalog/rolls?material_id=" + materialID.Hex(),
			setup: func(m *mocks.MockCatalogService) {
				m.On("FindRolls", mock.Anything, materialID).Return([]model.Roll{{Name: "R-1000"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    1,
		},
		{
			name:           "rolls without material",
			path:           "/api/catalog/rolls",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "machines none found",
			path: "/api/catalog/machines",
			setup: func(m *mocks.MockCatalogService) {
				m.On("FindMachines", mock.Anything, "").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "clients with open circuit",
			path: "/api/catalog/clients?q=frutas",
			setup: func(m *mocks.MockCatalogService) {
				m.On("FindClients", mock.Anything, "frutas").Return(nil, circuitbreaker.ErrCircuitOpen)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name: "clients lookup failure",
			path: "/api/catalog/clients",
			setup: func(m *mocks.MockCatalogService) {
				m.On("FindClients", mock.Anything, "").Return(nil, errors.New("cursor closed"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := new(mocks.MockCatalogService)
			if tt.setup != nil {
				tt.setup(catalog)
			}

			w := doJSON(catalogTestRouter(catalog), http.MethodGet, tt.path, "")

			require.Equal(t, tt.expectedStatus, w.Code)
			if w.Code == http.StatusOK {
				items := decodeData[[]map[string]interface{}](t, w)
				assert.NotNil(t, items)
				assert.Len(t, items, tt.expectedLen)
			}
			catalog.AssertExpectations(t)
		})
	}
}
