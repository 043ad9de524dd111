package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/planning-service/internal/circuitbreaker"
	"golang.org/x/sync/errgroup"
)

// HealthChecker defines the interface for health check operations.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HealthCheckFunc adapts a function to HealthChecker.
type HealthCheckFunc func(ctx context.Context) error

// Check calls f.
func (f HealthCheckFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	checkers        map[string]HealthChecker
	circuitBreakers map[string]*circuitbreaker.CircuitBreaker
	checkTimeout    time.Duration
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers:        make(map[string]HealthChecker),
		circuitBreakers: make(map[string]*circuitbreaker.CircuitBreaker),
		checkTimeout:    2 * time.Second,
	}
}

// RegisterChecker registers a dependency check run by the readiness probe.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// RegisterCircuitBreaker registers a circuit breaker for health monitoring.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	h.circuitBreakers[name] = cb
}

// Register registers health endpoints on the router.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness probe endpoint.
// @Summary     Liveness probe
// @Description Returns OK if the service is running.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles the readiness probe endpoint.
// @Summary     Readiness probe
// @Description Returns OK when plan storage is reachable and no circuit breaker is open.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{} "Service is ready"
// @Failure     503 {object} map[string]interface{} "Service is not ready"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.checkTimeout)
	defer cancel()

	var (
		mu     sync.Mutex
		ready  = true
		checks = make(map[string]string, len(h.checkers)+len(h.circuitBreakers))
	)
	report := func(name, result string, ok bool) {
		mu.Lock()
		defer mu.Unlock()
		checks[name] = result
		ready = ready && ok
	}

	var g errgroup.Group
	for name, checker := range h.checkers {
		g.Go(func() error {
			if err := checker.Check(ctx); err != nil {
				report(name, err.Error(), false)
				return nil
			}
			report(name, "ok", true)
			return nil
		})
	}
	_ = g.Wait()

	for name, cb := range h.circuitBreakers {
		stats := cb.GetStats()
		report(name+"_circuit", stats.State, stats.IsHealthy)
	}

	if len(checks) == 0 {
		checks["service"] = "ok"
	}

	status, overall := http.StatusOK, "ok"
	if !ready {
		status, overall = http.StatusServiceUnavailable, "degraded"
	}
	c.JSON(status, gin.H{"status": overall, "checks": checks})
}
