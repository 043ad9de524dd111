package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/planning-service/internal/middleware"
	"github.com/guttosm/planning-service/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouteGroups() []RouteGroup {
	planning := new(MockPlanningService)
	catalog := new(mocks.MockCatalogService)
	return []RouteGroup{
		NewPlanRoutes(NewPlanHandler(planning, catalog)),
		NewCatalogRoutes(NewCatalogHandler(catalog)),
	}
}

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	secret := []byte("router-secret")
	token, err := middleware.IssueOperatorToken(secret, "marta", time.Hour, time.Now())
	require.NoError(t, err)

	tests := []struct {
		name           string
		cfg            RouterConfig
		headers        map[string]string
		expectedStatus int
	}{
		{
			name:           "default config reaches handler",
			cfg:            DefaultRouterConfig(),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "api key required",
			cfg: RouterConfig{
				EnableAuth: true,
				APIKeys:    map[string]bool{"test-key": true},
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "api key accepted",
			cfg: RouterConfig{
				EnableAuth: true,
				APIKeys:    map[string]bool{"test-key": true},
			},
			headers:        map[string]string{"X-API-Key": "test-key"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "operator token required",
			cfg: RouterConfig{
				OperatorSecret:  secret,
				RequireOperator: true,
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "operator token accepted",
			cfg: RouterConfig{
				OperatorSecret:  secret,
				RequireOperator: true,
			},
			headers:        map[string]string{"Authorization": "Bearer " + token},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(NewHealthHandler(), tt.cfg, testRouteGroups()...)
			require.NotNil(t, router)

			req := httptest.NewRequest(http.MethodGet, "/api/plans/not-an-id", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRouter_RateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(nil, RouterConfig{RateLimit: 2, RateWindow: time.Minute}, testRouteGroups()...)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/plans/not-an-id", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusBadRequest, http.StatusBadRequest, http.StatusTooManyRequests}, codes)
}

func TestRouter_Endpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(NewHealthHandler(), DefaultRouterConfig(), testRouteGroups()...)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "healthz endpoint",
			method:         http.MethodGet,
			path:           "/healthz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "readyz endpoint",
			method:         http.MethodGet,
			path:           "/readyz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "metrics endpoint",
			method:         http.MethodGet,
			path:           "/metrics",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "swagger endpoint",
			method:         http.MethodGet,
			path:           "/swagger/index.html",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "calculate without body",
			method:         http.MethodPost,
			path:           "/api/plans/calculate",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "rolls without material",
			method:         http.MethodGet,
			path:           "/api/catalog/rolls",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown route",
			method:         http.MethodGet,
			path:           "/api/schedules",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
