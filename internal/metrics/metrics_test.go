package metrics

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/api/plans/:id", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/error", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "error")
	})

	tests := []struct {
		name           string
		path           string
		route          string
		expectedStatus int
	}{
		{"labels by route template", "/api/plans/abc", "/api/plans/:id", http.StatusOK},
		{"records error responses", "/error", "/error", http.StatusInternalServerError},
		{"collapses unknown paths", "/nope/123", "unmatched", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, tt.route, strconv.Itoa(tt.expectedStatus)))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			after := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, tt.route, strconv.Itoa(tt.expectedStatus)))
			assert.Equal(t, before+1, after)
		})
	}
}

func TestRecordPlanCalculation(t *testing.T) {
	valid := PlanCalculationsTotal.WithLabelValues("meters", OutcomeValid)
	zeroed := PlanCalculationsTotal.WithLabelValues("meters", OutcomeZeroed)
	validBefore := testutil.ToFloat64(valid)
	zeroedBefore := testutil.ToFloat64(zeroed)

	RecordPlanCalculation(time.Millisecond, "meters", true)
	RecordPlanCalculation(time.Millisecond, "meters", false)
	RecordPlanCalculation(time.Millisecond, "meters", false)

	assert.Equal(t, validBefore+1, testutil.ToFloat64(valid))
	assert.Equal(t, zeroedBefore+2, testutil.ToFloat64(zeroed))
}

func TestRecordImportRow(t *testing.T) {
	skipped := PlanImportRowsTotal.WithLabelValues(ImportRowSkipped)
	before := testutil.ToFloat64(skipped)

	RecordImportRow(ImportRowSkipped)

	assert.Equal(t, before+1, testutil.ToFloat64(skipped))
}

func TestRecordCacheOperation(t *testing.T) {
	hits := CacheOperationsTotal.WithLabelValues("get", "hit")
	before := testutil.ToFloat64(hits)

	RecordCacheOperation("get", "hit")
	RecordCacheOperation("get", "miss")

	assert.Equal(t, before+1, testutil.ToFloat64(hits))
}

func TestUpdateCacheMetrics(t *testing.T) {
	UpdateCacheMetrics(75, 100)

	assert.Equal(t, 75.0, testutil.ToFloat64(CacheSize))
	assert.Equal(t, 100.0, testutil.ToFloat64(CacheCapacity))
}

func TestSetCircuitBreakerState(t *testing.T) {
	SetCircuitBreakerState("plans", 2)
	assert.Equal(t, 2.0, testutil.ToFloat64(CircuitBreakerState.WithLabelValues("plans")))

	SetCircuitBreakerState("plans", 0)
	assert.Equal(t, 0.0, testutil.ToFloat64(CircuitBreakerState.WithLabelValues("plans")))
}

func TestRecordLogEntry(t *testing.T) {
	dropped := LogEntriesTotal.WithLabelValues(LogEntryDropped)
	before := testutil.ToFloat64(dropped)

	RecordLogEntry(LogEntryDropped)

	assert.Equal(t, before+1, testutil.ToFloat64(dropped))
}
