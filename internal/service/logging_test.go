//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/planning-service/internal/domain/model"
	"github.com/guttosm/planning-service/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewLoggingService(t *testing.T) {
	service := NewLoggingService(new(mocks.MockLogsRepositoryInterface))

	assert.NotNil(t, service)
	assert.IsType(t, &LoggingServiceImpl{}, service)
}

func TestLoggingService_CreateLog(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*mocks.MockLogsRepositoryInterface)
		wantError bool
	}{
		{
			name: "successful create",
			setupMock: func(m *mocks.MockLogsRepositoryInterface) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.LogEntry")).Return(nil)
			},
		},
		{
			name: "create error",
			setupMock: func(m *mocks.MockLogsRepositoryInterface) {
				m.On("Create", mock.Anything, mock.Anything).Return(errors.New("database error"))
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockLogsRepositoryInterface)
			tt.setupMock(mockRepo)
			service := NewLoggingService(mockRepo)

			err := service.CreateLog(context.Background(), &model.LogEntry{Level: "info", Message: "Test log"})

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestLoggingService_RecordAction(t *testing.T) {
	mockRepo := new(mocks.MockLogsRepositoryInterface)
	at := time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC)
	var stored *model.LogEntry
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.LogEntry")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*model.LogEntry) }).
		Return(nil)

	service := &LoggingServiceImpl{repo: mockRepo, maxQuery: 1000, now: func() time.Time { return at }}
	err := service.RecordAction(context.Background(), model.ActionPlanEdit, "64b000000000000000000001", "ana",
		map[string]interface{}{"field": "meters"})

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, at, stored.Timestamp)
	assert.Equal(t, model.ActionPlanEdit, stored.ActionType)
	assert.Equal(t, "ana", stored.Operator)
	assert.Equal(t, "64b000000000000000000001", stored.PlanID)
	assert.Equal(t, "meters", stored.Fields["field"])
}

func TestLoggingService_QueryLogs(t *testing.T) {
	tests := []struct {
		name          string
		opts          model.LogQueryOptions
		expectedLimit int
	}{
		{"default limit", model.LogQueryOptions{Operator: "ana"}, 1000},
		{"explicit limit", model.LogQueryOptions{Operator: "ana", Limit: 20}, 20},
		{"limit above cap", model.LogQueryOptions{Operator: "ana", Limit: 5000}, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockLogsRepositoryInterface)
			mockRepo.On("Query", mock.Anything, model.LogQueryOptions{Operator: "ana", Limit: tt.expectedLimit}).
				Return([]model.LogEntry{{Level: "info", Operator: "ana"}}, nil)
			service := NewLoggingService(mockRepo)

			entries, err := service.QueryLogs(context.Background(), tt.opts)

			require.NoError(t, err)
			assert.Len(t, entries, 1)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestLoggingService_CountLogs(t *testing.T) {
	mockRepo := new(mocks.MockLogsRepositoryInterface)
	opts := model.LogQueryOptions{ActionType: model.ActionPlanDelete}
	mockRepo.On("Count", mock.Anything, opts).Return(int64(4), nil)
	service := NewLoggingService(mockRepo)

	count, err := service.CountLogs(context.Background(), opts)

	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestLoggingService_NilRepository(t *testing.T) {
	service := NewLoggingService(nil)
	ctx := context.Background()

	assert.ErrorIs(t, service.CreateLog(ctx, &model.LogEntry{}), ErrRepositoryNotConfigured)
	_, err := service.QueryLogs(ctx, model.LogQueryOptions{})
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
	_, err = service.CountLogs(ctx, model.LogQueryOptions{})
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
}
