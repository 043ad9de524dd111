package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/planning-service/internal/domain/model"
	"github.com/guttosm/planning-service/internal/logger"
	"github.com/guttosm/planning-service/internal/metrics"
	"github.com/guttosm/planning-service/internal/planning"
	"github.com/guttosm/planning-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Editable plan fields.
const (
	FieldAmount         = "amount"
	FieldMeters         = "meters"
	FieldMinutes        = "minutes"
	FieldBlowsPerMinute = "blows_minute"
	FieldProduct        = "product"
	FieldMaterial       = "material"
	FieldRoll           = "roll"
	FieldMachine        = "machine"
	FieldClient         = "client"
	FieldComments       = "comments"
	FieldDate           = "date"
	FieldOrder          = "order"
)

// FieldEdit is one operator change to a plan line. Only the value matching
// the field's kind is read: Number for figures and order, Ref for catalog
// references (zero clears), Text for comments and Date for the day.
type FieldEdit struct {
	Field  string
	Number float64
	Ref    primitive.ObjectID
	Text   string
	Date   time.Time
}

// Calculation is a recalculated plan together with how it was derived.
type Calculation struct {
	Plan      model.Plan
	Direction planning.Direction
	// Valid is false when the plan was normalised to zero.
	Valid bool
	// Adjusted is true when the edited figure was lowered to whole cycles.
	Adjusted bool
}

// PlanningService is the edit surface over the plan engine.
type PlanningService interface {
	// NewPlan returns an unsaved blank line for a machine and day.
	NewPlan(ctx context.Context, machineID primitive.ObjectID, date time.Time) (model.Plan, error)
	// Recalculate applies one edit to a plan state held by the caller.
	Recalculate(ctx context.Context, p model.Plan, edit FieldEdit) (Calculation, error)
	// Edit loads a stored plan, applies one edit and saves it.
	Edit(ctx context.Context, id primitive.ObjectID, edit FieldEdit, user string) (Calculation, error)
	Save(ctx context.Context, p *model.Plan, user string) error
	SaveAll(ctx context.Context, plans []*model.Plan, user string) error
	Get(ctx context.Context, id primitive.ObjectID) (*model.Plan, error)
	List(ctx context.Context, f model.PlanFilter) ([]model.Plan, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// PlanningOption configures a PlanningServiceImpl.
type PlanningOption func(*PlanningServiceImpl)

// WithPlanningDomain scopes the service to a domain.
func WithPlanningDomain(domain int) PlanningOption {
	return func(s *PlanningServiceImpl) { s.domain = domain }
}

// WithListLimit caps List results when the filter sets no limit.
func WithListLimit(limit int) PlanningOption {
	return func(s *PlanningServiceImpl) { s.listLimit = limit }
}

// PlanningServiceImpl implements PlanningService.
type PlanningServiceImpl struct {
	catalog   CatalogService
	plans     repository.PlanRepositoryInterface
	domain    int
	listLimit int
}

// NewPlanningService creates a new planning service. Without a plan
// repository the stateless operations still work; persistence returns
// ErrRepositoryNotConfigured.
func NewPlanningService(catalog CatalogService, plans repository.PlanRepositoryInterface, opts ...PlanningOption) *PlanningServiceImpl {
	s := &PlanningServiceImpl{
		catalog:   catalog,
		plans:     plans,
		domain:    1,
		listLimit: 500,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// calculate runs the engine and records metrics.
func (s *PlanningServiceImpl) calculate(p model.Plan, edits ...planning.Edit) Calculation {
	direction := planning.DirectionAmount
	if len(edits) > 0 {
		direction = edits[len(edits)-1].Direction()
	}

	start := time.Now()
	result := planning.Apply(p, edits...)
	valid := result.UnitsPerCycle > 0
	metrics.RecordPlanCalculation(time.Since(start), direction.String(), valid)

	return Calculation{
		Plan:      result,
		Direction: direction,
		Valid:     valid,
	}
}

// adjusted reports whether a meters or minutes request was lowered to whole
// cycles by the engine.
func adjusted(edit FieldEdit, result model.Plan) bool {
	switch edit.Field {
	case FieldMeters:
		return result.Meters != planning.Round(edit.Number, planning.ReportDecimals)
	case FieldMinutes:
		return result.Minutes != planning.Round(edit.Number, planning.ReportDecimals)
	default:
		return false
	}
}

// refresh replaces the plan's catalog snapshots with current catalog data.
// Snapshots without an id, or whose entity is gone, are kept as they are.
func (s *PlanningServiceImpl) refresh(ctx context.Context, p *model.Plan) error {
	keep := func(err error) error {
		if errors.Is(err, ErrEntityNotFound) {
			logger.FromContext(ctx).Warn().Err(err).Str("plan_id", p.ID.Hex()).Msg("Keeping plan snapshot of missing catalog entity")
			return nil
		}
		return err
	}

	if p.Product != nil && !p.Product.ID.IsZero() {
		v, err := s.catalog.Product(ctx, p.Product.ID)
		if err != nil {
			if err = keep(err); err != nil {
				return err
			}
		} else {
			p.Product = v
		}
	}
	if p.Material != nil && !p.Material.ID.IsZero() {
		v, err := s.catalog.Material(ctx, p.Material.ID)
		if err != nil {
			if err = keep(err); err != nil {
				return err
			}
		} else {
			p.Material = v
		}
	}
	if p.Roll != nil && !p.Roll.ID.IsZero() {
		v, err := s.catalog.Roll(ctx, p.Roll.ID)
		if err != nil {
			if err = keep(err); err != nil {
				return err
			}
		} else {
			p.Roll = v
		}
	}
	if p.Machine != nil && !p.Machine.ID.IsZero() {
		v, err := s.catalog.Machine(ctx, p.Machine.ID)
		if err != nil {
			if err = keep(err); err != nil {
				return err
			}
		} else {
			p.Machine = v
		}
	}
	return nil
}

// resolveEdit turns a field edit into an engine edit, loading any catalog
// reference it names.
func (s *PlanningServiceImpl) resolveEdit(ctx context.Context, e FieldEdit) (planning.Edit, error) {
	nonNegative := func(set func(float64) planning.Edit) (planning.Edit, error) {
		if e.Number < 0 {
			return planning.Edit{}, fmt.Errorf("%w: %s must not be negative", ErrInvalidValue, e.Field)
		}
		return set(e.Number), nil
	}

	switch e.Field {
	case FieldAmount:
		return nonNegative(planning.SetAmount)
	case FieldMeters:
		return nonNegative(planning.SetMeters)
	case FieldMinutes:
		return nonNegative(planning.SetMinutes)
	case FieldBlowsPerMinute:
		return nonNegative(planning.SetBlowsPerMinute)
	case FieldOrder:
		if e.Number < 1 || e.Number != float64(int(e.Number)) {
			return planning.Edit{}, fmt.Errorf("%w: order must be a positive whole number", ErrInvalidValue)
		}
		return planning.SetOrder(int(e.Number)), nil
	case FieldComments:
		return planning.SetComments(e.Text), nil
	case FieldDate:
		if e.Date.IsZero() {
			return planning.Edit{}, fmt.Errorf("%w: date is required", ErrInvalidValue)
		}
		return planning.SetDate(e.Date), nil
	case FieldProduct:
		if e.Ref.IsZero() {
			return planning.SetProduct(nil), nil
		}
		v, err := s.catalog.Product(ctx, e.Ref)
		if err != nil {
			return planning.Edit{}, err
		}
		return planning.SetProduct(v), nil
	case FieldMaterial:
		if e.Ref.IsZero() {
			return planning.SetMaterial(nil), nil
		}
		v, err := s.catalog.Material(ctx, e.Ref)
		if err != nil {
			return planning.Edit{}, err
		}
		return planning.SetMaterial(v), nil
	case FieldRoll:
		if e.Ref.IsZero() {
			return planning.SetRoll(nil), nil
		}
		v, err := s.catalog.Roll(ctx, e.Ref)
		if err != nil {
			return planning.Edit{}, err
		}
		return planning.SetRoll(v), nil
	case FieldMachine:
		if e.Ref.IsZero() {
			return planning.SetMachine(nil), nil
		}
		v, err := s.catalog.Machine(ctx, e.Ref)
		if err != nil {
			return planning.Edit{}, err
		}
		return planning.SetMachine(v), nil
	case FieldClient:
		if e.Ref.IsZero() {
			return planning.SetClient(nil), nil
		}
		v, err := s.catalog.Client(ctx, e.Ref)
		if err != nil {
			return planning.Edit{}, err
		}
		return planning.SetClient(v), nil
	default:
		return planning.Edit{}, fmt.Errorf("%w: %q", ErrUnknownField, e.Field)
	}
}

func (s *PlanningServiceImpl) NewPlan(ctx context.Context, machineID primitive.ObjectID, date time.Time) (model.Plan, error) {
	machine, err := s.catalog.Machine(ctx, machineID)
	if err != nil {
		return model.Plan{}, err
	}

	p := planning.New(s.domain, machine, date)
	p.Order = 1
	if s.plans != nil {
		order, err := s.plans.NextOrder(ctx, s.domain, machineID, date)
		if err != nil {
			return model.Plan{}, fmt.Errorf("next order: %w", err)
		}
		p.Order = order
	}
	return p, nil
}

func (s *PlanningServiceImpl) Recalculate(ctx context.Context, p model.Plan, edit FieldEdit) (Calculation, error) {
	p.Domain = s.domain
	if err := s.refresh(ctx, &p); err != nil {
		return Calculation{}, err
	}
	e, err := s.resolveEdit(ctx, edit)
	if err != nil {
		return Calculation{}, err
	}
	calc := s.calculate(p, e)
	calc.Adjusted = calc.Valid && adjusted(edit, calc.Plan)
	return calc, nil
}

func (s *PlanningServiceImpl) Edit(ctx context.Context, id primitive.ObjectID, edit FieldEdit, user string) (Calculation, error) {
	stored, err := s.Get(ctx, id)
	if err != nil {
		return Calculation{}, err
	}
	calc, err := s.Recalculate(ctx, *stored, edit)
	if err != nil {
		return Calculation{}, err
	}
	if err := s.plans.Save(ctx, &calc.Plan, user); err != nil {
		return Calculation{}, fmt.Errorf("save plan: %w", saveError(err))
	}

	logger.FromContext(ctx).Info().
		Str("plan_id", id.Hex()).
		Str("field", edit.Field).
		Str("direction", calc.Direction.String()).
		Bool("valid", calc.Valid).
		Msg("Plan edited")
	return calc, nil
}

// Save recalculates a dirty plan through the amount direction and persists
// it. A clean plan is returned untouched.
func (s *PlanningServiceImpl) Save(ctx context.Context, p *model.Plan, user string) error {
	if s.plans == nil {
		return ErrRepositoryNotConfigured
	}
	if !p.Dirty {
		return nil
	}
	p.Domain = s.domain
	if err := s.refresh(ctx, p); err != nil {
		return err
	}
	*p = s.calculate(*p).Plan
	return saveError(s.plans.Save(ctx, p, user))
}

func (s *PlanningServiceImpl) SaveAll(ctx context.Context, plans []*model.Plan, user string) error {
	if s.plans == nil {
		return ErrRepositoryNotConfigured
	}
	for _, p := range plans {
		p.Domain = s.domain
	}
	return saveError(s.plans.SaveAll(ctx, plans, user))
}

// saveError reports an id owned by another domain as a missing plan.
func saveError(err error) error {
	if errors.Is(err, repository.ErrForeignPlan) {
		return fmt.Errorf("%w: %w", ErrPlanNotFound, err)
	}
	return err
}

func (s *PlanningServiceImpl) Get(ctx context.Context, id primitive.ObjectID) (*model.Plan, error) {
	if s.plans == nil {
		return nil, ErrRepositoryNotConfigured
	}
	p, err := s.plans.Get(ctx, s.domain, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPlanNotFound
	}
	return p, nil
}

func (s *PlanningServiceImpl) List(ctx context.Context, f model.PlanFilter) ([]model.Plan, error) {
	if s.plans == nil {
		return nil, ErrRepositoryNotConfigured
	}
	f.Domain = s.domain
	if f.Limit <= 0 || f.Limit > s.listLimit {
		f.Limit = s.listLimit
	}
	return s.plans.List(ctx, f)
}

func (s *PlanningServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	if s.plans == nil {
		return ErrRepositoryNotConfigured
	}
	deleted, err := s.plans.Delete(ctx, s.domain, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPlanNotFound
	}
	return nil
}

var _ PlanningService = (*PlanningServiceImpl)(nil)
