package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/planning-service/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		handler        gin.HandlerFunc
		expectedStatus int
		mustContain    []string
		expectedLog    string
	}{
		{
			name: "error without response",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("cursor closed"))
			},
			expectedStatus: http.StatusInternalServerError,
			mustContain:    []string{"internal_error", "An unexpected error occurred"},
			expectedLog:    `"level":"error"`,
		},
		{
			name: "client error already answered",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("unknown field"))
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
			},
			expectedStatus: http.StatusBadRequest,
			mustContain:    []string{"invalid_request"},
			expectedLog:    `"level":"warn"`,
		},
		{
			name: "no errors",
			handler: func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
			},
			expectedStatus: http.StatusOK,
			mustContain:    []string{"ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger.InitWithWriter("info", false, &buf)
			t.Cleanup(func() { logger.Init("info", false) })

			router := gin.New()
			router.Use(RequestID(), ErrorHandler())
			router.GET("/api/plans", tt.handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/plans", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			for _, s := range tt.mustContain {
				assert.Contains(t, w.Body.String(), s)
			}
			if tt.expectedLog == "" {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tt.expectedLog)
			assert.Contains(t, buf.String(), "request_id")
		})
	}
}
