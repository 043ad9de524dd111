// Package metrics provides Prometheus metrics collection for the planning service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Calculation outcomes.
const (
	OutcomeValid  = "valid"
	OutcomeZeroed = "zeroed"
)

// Import row results.
const (
	ImportRowImported   = "imported"
	ImportRowUnresolved = "unresolved"
	ImportRowSkipped    = "skipped"
)

// Log entry write results.
const (
	LogEntryWritten = "written"
	LogEntryFailed  = "failed"
	LogEntryDropped = "dropped"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// PlanCalculationsTotal counts plan recalculations by direction and outcome.
	PlanCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plan_calculations_total",
			Help: "Total number of plan recalculations",
		},
		[]string{"direction", "outcome"},
	)

	// PlanCalculationDuration tracks plan recalculation duration.
	PlanCalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "plan_calculation_duration_seconds",
			Help:    "Plan recalculation duration in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	// PlanImportRowsTotal counts spreadsheet rows by import result.
	PlanImportRowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plan_import_rows_total",
			Help: "Total number of spreadsheet rows processed by the plan importer",
		},
		[]string{"result"},
	)

	// LogEntriesTotal counts request and audit log entries by write result.
	LogEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "log_entries_total",
			Help: "Total number of request and audit log entries by write result",
		},
		[]string{"result"},
	)

	// CacheOperationsTotal tracks catalog cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_operations_total",
			Help: "Total number of catalog cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current catalog cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_cache_size",
			Help: "Current catalog cache size",
		},
	)

	// CacheCapacity tracks catalog cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_cache_capacity",
			Help: "Catalog cache capacity",
		},
	)

	// CircuitBreakerState reports 0 closed, 1 open, 2 half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordPlanCalculation records metrics for one plan recalculation.
func RecordPlanCalculation(duration time.Duration, direction string, valid bool) {
	outcome := OutcomeValid
	if !valid {
		outcome = OutcomeZeroed
	}
	PlanCalculationDuration.Observe(duration.Seconds())
	PlanCalculationsTotal.WithLabelValues(direction, outcome).Inc()
}

// RecordImportRow records the result of one imported spreadsheet row.
func RecordImportRow(result string) {
	PlanImportRowsTotal.WithLabelValues(result).Inc()
}

// RecordLogEntry records the result of one asynchronous log write.
func RecordLogEntry(result string) {
	LogEntriesTotal.WithLabelValues(result).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}

// SetCircuitBreakerState publishes the numeric state of a named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
