package service

import (
	"context"
	"time"

	"github.com/guttosm/planning-service/internal/domain/model"
	"github.com/guttosm/planning-service/internal/repository"
)

// LoggingService defines the interface for request and audit log operations.
type LoggingService interface {
	// CreateLog stores a single log entry.
	CreateLog(ctx context.Context, entry *model.LogEntry) error

	// RecordAction stores an audit entry for a plan change made by operator.
	RecordAction(ctx context.Context, action, planID, operator string, fields map[string]interface{}) error

	// QueryLogs retrieves log entries matching the query options.
	QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)

	// CountLogs returns the count of log entries matching the query options.
	CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

// LoggingServiceImpl implements the LoggingService interface.
type LoggingServiceImpl struct {
	repo     repository.LogsRepositoryInterface
	maxQuery int
	now      func() time.Time
}

// NewLoggingService creates a new logging service implementation.
func NewLoggingService(repo repository.LogsRepositoryInterface) LoggingService {
	return &LoggingServiceImpl{
		repo:     repo,
		maxQuery: 1000,
		now:      time.Now,
	}
}

// CreateLog stores a single log entry.
func (s *LoggingServiceImpl) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	return s.repo.Create(ctx, entry)
}

// RecordAction stores an audit entry for a plan change made by operator.
func (s *LoggingServiceImpl) RecordAction(ctx context.Context, action, planID, operator string, fields map[string]interface{}) error {
	entry := &model.LogEntry{
		Timestamp:  s.now().UTC(),
		Level:      "info",
		Message:    action,
		Operator:   operator,
		ActionType: action,
		PlanID:     planID,
	}
	for k, v := range fields {
		entry.WithField(k, v)
	}
	return s.CreateLog(ctx, entry)
}

// QueryLogs retrieves log entries matching the query options. The page size
// is capped.
func (s *LoggingServiceImpl) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if opts.Limit <= 0 || opts.Limit > s.maxQuery {
		opts.Limit = s.maxQuery
	}
	return s.repo.Query(ctx, opts)
}

// CountLogs returns the count of log entries matching the query options.
func (s *LoggingServiceImpl) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	if s.repo == nil {
		return 0, ErrRepositoryNotConfigured
	}
	return s.repo.Count(ctx, opts)
}
