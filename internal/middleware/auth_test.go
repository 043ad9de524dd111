package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAPIKeyAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	plantKeys := map[string]bool{"plant-a-key": true, "plant-b-key": true, "retired-key": false}

	tests := []struct {
		name           string
		validKeys      map[string]bool
		header         string
		query          string
		expectedStatus int
		expectedBody   string
	}{
		{"key in header", plantKeys, "plant-a-key", "", http.StatusOK, "planned"},
		{"key in query", plantKeys, "", "plant-b-key", http.StatusOK, "planned"},
		{"header wins over query", plantKeys, "plant-a-key", "wrong", http.StatusOK, "planned"},
		{"missing key", plantKeys, "", "", http.StatusUnauthorized, "API key is required"},
		{"unknown key", plantKeys, "plant-c-key", "", http.StatusUnauthorized, "Invalid API key"},
		{"disabled key", plantKeys, "retired-key", "", http.StatusUnauthorized, "Invalid API key"},
		{"no keys configured", nil, "", "", http.StatusOK, "planned"},
		{"only disabled keys configured", map[string]bool{"retired-key": false}, "", "", http.StatusOK, "planned"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), APIKeyAuth(tt.validKeys))
			router.GET("/api/plans", func(c *gin.Context) {
				c.String(http.StatusOK, "planned")
			})

			req := httptest.NewRequest(http.MethodGet, "/api/plans", nil)
			if tt.header != "" {
				req.Header.Set(APIKeyHeader, tt.header)
			}
			if tt.query != "" {
				req.URL.RawQuery = APIKeyQuery + "=" + tt.query
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}
