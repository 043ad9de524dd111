package repository

import (
	"context"
	"time"

	"github.com/guttosm/planning-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LogsRepository stores request and audit log entries.
type LogsRepository struct {
	collection *mongo.Collection
}

// NewLogsRepository creates a new logs repository.
func NewLogsRepository(db *MongoDB) *LogsRepository {
	return &LogsRepository{
		collection: db.Logs,
	}
}

func stamp(entry *model.LogEntry, now time.Time) {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = now
	}
}

// Create inserts a log entry, assigning its ID and timestamp when unset.
func (r *LogsRepository) Create(ctx context.Context, entry *model.LogEntry) error {
	stamp(entry, time.Now())
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// logFilter translates the set fields of q into a MongoDB filter.
func logFilter(q model.LogQueryOptions) bson.D {
	filter := bson.D{}
	for _, f := range []struct{ key, value string }{
		{"request_id", q.RequestID},
		{"level", q.Level},
		{"action_type", q.ActionType},
		{"plan_id", q.PlanID},
		{"operator", q.Operator},
	} {
		if f.value != "" {
			filter = append(filter, bson.E{Key: f.key, Value: f.value})
		}
	}

	window := bson.D{}
	if q.StartTime != nil {
		window = append(window, bson.E{Key: "$gte", Value: *q.StartTime})
	}
	if q.EndTime != nil {
		window = append(window, bson.E{Key: "$lte", Value: *q.EndTime})
	}
	if len(window) > 0 {
		filter = append(filter, bson.E{Key: "timestamp", Value: window})
	}
	return filter
}

// Query returns log entries matching q, newest first.
func (r *LogsRepository) Query(ctx context.Context, q model.LogQueryOptions) ([]model.LogEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}})
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}
	if q.Skip > 0 {
		opts.SetSkip(int64(q.Skip))
	}

	cursor, err := r.collection.Find(ctx, logFilter(q), opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	entries := []model.LogEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Count returns the number of log entries matching q.
func (r *LogsRepository) Count(ctx context.Context, q model.LogQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, logFilter(q))
}
