//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/planning-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := newTestDB(t)
	require.NoError(t, db.SetLogsTTL(ctx, 24*time.Hour))

	repo := NewLogsRepository(db)

	t.Run("create assigns id and timestamp", func(t *testing.T) {
		entry := &model.LogEntry{
			Level:      "info",
			Message:    "Plan saved",
			RequestID:  "req-1",
			Operator:   "ana",
			ActionType: model.ActionPlanSave,
			PlanID:     "p-1",
		}

		require.NoError(t, repo.Create(ctx, entry))

		assert.False(t, entry.ID.IsZero())
		assert.False(t, entry.Timestamp.IsZero())
	})

	t.Run("create later entries", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &model.LogEntry{
			Level: "info", Message: "Plan edited", ActionType: model.ActionPlanEdit, PlanID: "p-1",
		}))
		require.NoError(t, repo.Create(ctx, &model.LogEntry{Level: "error", Message: "HTTP request", RequestID: "req-2"}))
	})

	t.Run("query by plan", func(t *testing.T) {
		entries, err := repo.Query(ctx, model.LogQueryOptions{PlanID: "p-1"})
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, model.ActionPlanEdit, entries[0].ActionType)
	})

	t.Run("query by action and operator", func(t *testing.T) {
		entries, err := repo.Query(ctx, model.LogQueryOptions{ActionType: model.ActionPlanSave, Operator: "ana"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "req-1", entries[0].RequestID)
	})

	t.Run("count with time window", func(t *testing.T) {
		since := time.Now().Add(-time.Hour)
		count, err := repo.Count(ctx, model.LogQueryOptions{StartTime: &since})
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)

		future := time.Now().Add(time.Hour)
		none, err := repo.Count(ctx, model.LogQueryOptions{StartTime: &future})
		require.NoError(t, err)
		assert.Zero(t, none)
	})
}
