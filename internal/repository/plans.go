package repository

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/planning-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrForeignPlan is returned when a plan id already belongs to another domain.
var ErrForeignPlan = errors.New("plan belongs to another domain")

// planKey matches a plan by id within its domain. An upsert against an id
// stored under another domain fails on the _id index instead of moving it.
func planKey(doc model.Plan) bson.M {
	return bson.M{"_id": doc.ID, "domain": doc.Domain}
}

func saveError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return ErrForeignPlan
	}
	return err
}

// PlanRepository persists plan lines.
type PlanRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewPlanRepository creates a new plan repository.
func NewPlanRepository(db *MongoDB) *PlanRepository {
	return &PlanRepository{
		collection: db.Plans,
		now:        time.Now,
	}
}

// stamp sets the audit fields of a plan about to be written and returns a
// copy so a failed write leaves the caller's plan untouched.
func (r *PlanRepository) stamp(p *model.Plan, user string, at time.Time) model.Plan {
	doc := *p
	if doc.IsNew() {
		doc.ID = primitive.NewObjectID()
		doc.CreatedBy = user
		doc.CreatedAt = at
	}
	doc.UpdatedBy = user
	doc.UpdatedAt = at
	return doc
}

// Save inserts or replaces a dirty plan and clears its dirty flag. A clean
// plan is left as is without touching the database.
func (r *PlanRepository) Save(ctx context.Context, p *model.Plan, user string) error {
	if !p.Dirty {
		return nil
	}

	doc := r.stamp(p, user, r.now().UTC())
	_, err := r.collection.ReplaceOne(ctx,
		planKey(doc),
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return saveError(err)
	}

	doc.Dirty = false
	*p = doc
	return nil
}

// SaveAll writes every dirty plan of a working set in one bulk operation.
func (r *PlanRepository) SaveAll(ctx context.Context, plans []*model.Plan, user string) error {
	at := r.now().UTC()
	docs := make([]model.Plan, 0, len(plans))
	targets := make([]*model.Plan, 0, len(plans))
	writes := make([]mongo.WriteModel, 0, len(plans))

	for _, p := range plans {
		if p == nil || !p.Dirty {
			continue
		}
		doc := r.stamp(p, user, at)
		docs = append(docs, doc)
		targets = append(targets, p)
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(planKey(doc)).
			SetReplacement(doc).
			SetUpsert(true))
	}
	if len(writes) == 0 {
		return nil
	}

	if _, err := r.collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(true)); err != nil {
		return saveError(err)
	}

	for i, p := range targets {
		docs[i].Dirty = false
		*p = docs[i]
	}
	return nil
}

// Get returns a plan by id, or nil when it does not exist.
func (r *PlanRepository) Get(ctx context.Context, domain int, id primitive.ObjectID) (*model.Plan, error) {
	var p model.Plan
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "domain": domain}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func planFilter(f model.PlanFilter) bson.M {
	filter := bson.M{"domain": f.Domain}
	if !f.MachineID.IsZero() {
		filter["machine._id"] = f.MachineID
	}
	if f.From != nil || f.To != nil {
		dateFilter := bson.M{}
		if f.From != nil {
			dateFilter["$gte"] = *f.From
		}
		if f.To != nil {
			dateFilter["$lte"] = *f.To
		}
		filter["date"] = dateFilter
	}
	return filter
}

// List returns the plans matching f ordered by date and order number.
func (r *PlanRepository) List(ctx context.Context, f model.PlanFilter) ([]model.Plan, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "date", Value: 1},
		{Key: "order", Value: 1},
		{Key: "_id", Value: 1},
	})
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}

	cursor, err := r.collection.Find(ctx, planFilter(f), opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	plans := make([]model.Plan, 0)
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// NextOrder returns the order number for a new line on a machine and day.
func (r *PlanRepository) NextOrder(ctx context.Context, domain int, machineID primitive.ObjectID, day time.Time) (int, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	filter := bson.M{
		"domain":      domain,
		"machine._id": machineID,
		"date":        bson.M{"$gte": start, "$lt": end},
	}
	opts := options.FindOne().
		SetSort(bson.D{{Key: "order", Value: -1}}).
		SetProjection(bson.M{"order": 1})

	var last struct {
		Order int `bson:"order"`
	}
	err := r.collection.FindOne(ctx, filter, opts).Decode(&last)
	if err == mongo.ErrNoDocuments {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return last.Order + 1, nil
}

// Delete removes a plan and reports whether it existed.
func (r *PlanRepository) Delete(ctx context.Context, domain int, id primitive.ObjectID) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "domain": domain})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
