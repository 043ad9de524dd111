//go:build integration

package service

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/planning-service/internal/circuitbreaker"
	"github.com/guttosm/planning-service/internal/domain/model"
	"github.com/guttosm/planning-service/internal/repository"
	"github.com/guttosm/planning-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openLogsDB(t *testing.T) *repository.MongoDB {
	t.Helper()
	db, err := repository.NewMongoDB(testutil.GetSharedContainerURI(), testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(context.Background()) })
	return db
}

func TestLoggingService_AuditTrail_Integration(t *testing.T) {
	ctx := context.Background()
	db := openLogsDB(t)
	require.NoError(t, db.SetLogsTTL(ctx, 24*time.Hour))
	logs := NewLoggingService(repository.NewLogsRepository(db))

	request := &model.LogEntry{Level: "info", Message: "HTTP request", RequestID: "req-1", Method: "PUT", Path: "/api/plans"}
	require.NoError(t, logs.CreateLog(ctx, request))
	assert.False(t, request.ID.IsZero())
	require.NoError(t, logs.CreateLog(ctx, &model.LogEntry{Level: "error", Message: "HTTP request", RequestID: "req-2"}))

	require.NoError(t, logs.RecordAction(ctx, model.ActionPlanSave, "plan-1", "ana", nil))
	require.NoError(t, logs.RecordAction(ctx, model.ActionPlanEdit, "plan-1", "ana",
		map[string]interface{}{"field": "amount"}))
	require.NoError(t, logs.RecordAction(ctx, model.ActionPlanEdit, "plan-2", "luis", nil))

	t.Run("trail of one plan", func(t *testing.T) {
		entries, err := logs.QueryLogs(ctx, model.LogQueryOptions{PlanID: "plan-1"})
		require.NoError(t, err)
		require.Len(t, entries, 2)
		for _, e := range entries {
			assert.Equal(t, "ana", e.Operator)
		}

		n, err := logs.CountLogs(ctx, model.LogQueryOptions{PlanID: "plan-1"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("edit keeps its field", func(t *testing.T) {
		entries, err := logs.QueryLogs(ctx, model.LogQueryOptions{PlanID: "plan-1", ActionType: model.ActionPlanEdit})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "amount", entries[0].Fields["field"])
	})

	t.Run("paging", func(t *testing.T) {
		page, err := logs.QueryLogs(ctx, model.LogQueryOptions{Operator: "ana", Limit: 1, Skip: 1})
		require.NoError(t, err)
		assert.Len(t, page, 1)
	})

	t.Run("request lines", func(t *testing.T) {
		entries, err := logs.QueryLogs(ctx, model.LogQueryOptions{RequestID: "req-1"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "/api/plans", entries[0].Path)

		n, err := logs.CountLogs(ctx, model.LogQueryOptions{})
		require.NoError(t, err)
		assert.Equal(t, int64(5), n)

		n, err = logs.CountLogs(ctx, model.LogQueryOptions{Level: "error"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}

func TestLoggingService_BehindCircuitBreaker_Integration(t *testing.T) {
	ctx := context.Background()
	db := openLogsDB(t)

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db),
		circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: 2,
			SuccessThreshold: 1,
			Timeout:          100 * time.Millisecond,
			Name:             "test-logs",
		}))
	logs := NewLoggingService(logsRepo)

	require.NoError(t, logs.RecordAction(ctx, model.ActionPlanDelete, "plan-9", "marta", nil))
	assert.True(t, logsRepo.GetCircuitBreaker().GetStats().IsHealthy)

	n, err := logs.CountLogs(ctx, model.LogQueryOptions{ActionType: model.ActionPlanDelete})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
