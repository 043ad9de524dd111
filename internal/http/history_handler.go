package http

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/planning-service/internal/domain/dto"
	"github.com/guttosm/planning-service/internal/domain/model"
	"github.com/guttosm/planning-service/internal/service"
)

const defaultHistoryLimit = 50

// AuditTrail reads the recorded changes of plans.
type AuditTrail interface {
	QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)
	CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

// HistoryHandler serves the audit trail of a plan line.
type HistoryHandler struct {
	trail AuditTrail
}

// NewHistoryHandler creates a HistoryHandler. A nil trail answers 503.
func NewHistoryHandler(trail AuditTrail) *HistoryHandler {
	return &HistoryHandler{trail: trail}
}

// History handles GET /api/plans/:id/history requests.
//
// @Summary      Plan line history
// @Description  Lists the recorded saves, edits and deletions of a plan line, newest first.
// @Tags         Plans
// @Produce      json
// @Param        id path string true "Plan id"
// @Param        limit query int false "Maximum number of entries" default(50)
// @Param        skip query int false "Entries to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.PlanHistoryResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid id or paging"
// @Failure      503 {object} dto.ErrorResponse "Audit storage unavailable"
// @Security     BearerAuth
// @Router       /api/plans/{id}/history [get]
func (h *HistoryHandler) History(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := planID(c)
	if err != nil {
		builder.Fail(err)
		return
	}
	if h.trail == nil {
		builder.Fail(service.ErrRepositoryNotConfigured)
		return
	}

	limit, err := queryInt(c, "limit", defaultHistoryLimit)
	if err != nil {
		builder.Fail(err)
		return
	}
	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		builder.Fail(err)
		return
	}

	ctx := c.Request.Context()
	q := model.LogQueryOptions{PlanID: id.Hex()}
	total, err := h.trail.CountLogs(ctx, q)
	if err != nil {
		builder.Fail(err)
		return
	}

	q.Limit, q.Skip = limit, skip
	entries, err := h.trail.QueryLogs(ctx, q)
	if err != nil {
		builder.Fail(err)
		return
	}
	if entries == nil {
		entries = []model.LogEntry{}
	}
	builder.SuccessOK(dto.PlanHistoryResponse{Entries: entries, Total: total})
}

// queryInt reads a non-negative integer query parameter.
func queryInt(c *gin.Context, name string, def int) (int, error) {
	v := c.Query(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, &dto.ValidationError{Field: name, Message: "must be a positive integer"}
	}
	return n, nil
}

// HistoryRoutes registers the audit trail endpoint.
type HistoryRoutes struct {
	handler *HistoryHandler
}

// NewHistoryRoutes creates a new HistoryRoutes instance.
func NewHistoryRoutes(handler *HistoryHandler) *HistoryRoutes {
	return &HistoryRoutes{handler: handler}
}

// RegisterRoutes registers /plans/:id/history.
func (r *HistoryRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/plans/:id/history", r.handler.History)
}
