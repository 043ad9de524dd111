package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/planning-service/internal/domain/model"
	"github.com/guttosm/planning-service/internal/mocks"
	"github.com/guttosm/planning-service/internal/planning"
	"github.com/guttosm/planning-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var planDay = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

// basePlan is a calculated 1000 unit line: 2 units per cycle, 150 m,
// 500 blows, 6.25 min at 80 blows/min. Its references carry no ids so no
// catalog refresh happens.
func basePlan() model.Plan {
	p := planning.New(1, &model.Machine{Name: "Sopladora 3", BlowsPerMinute: 80}, planDay)
	p.Product = &model.Product{
		Name: "Bolsa 500x300", Width: 500, Length: 300,
		Material: &model.Material{Name: "PE 80", Width: 1000, Length: 2000},
	}
	p.Amount = 1000
	p = planning.Calculate(p, planning.DirectionAmount)
	p.Dirty = false
	return p
}

func newPlanningFixture(opts ...PlanningOption) (*PlanningServiceImpl, *mocks.MockCatalogRepositoryInterface, *mocks.MockPlanRepositoryInterface) {
	catalogRepo := new(mocks.MockCatalogRepositoryInterface)
	planRepo := new(mocks.MockPlanRepositoryInterface)
	svc := NewPlanningService(NewCatalogService(catalogRepo), planRepo, opts...)
	return svc, catalogRepo, planRepo
}

func TestPlanningService_NewPlan(t *testing.T) {
	ctx := context.Background()
	machineID := primitive.NewObjectID()
	machine := &model.Machine{ID: machineID, Name: "Sopladora 3", BlowsPerMinute: 75}

	t.Run("next order of the day", func(t *testing.T) {
		svc, catalogRepo, planRepo := newPlanningFixture()
		catalogRepo.On("GetMachine", mock.Anything, 1, machineID).Return(machine, nil)
		planRepo.On("NextOrder", mock.Anything, 1, machineID, planDay).Return(3, nil)

		p, err := svc.NewPlan(ctx, machineID, planDay)

		require.NoError(t, err)
		assert.Equal(t, 3, p.Order)
		assert.Equal(t, 75.0, p.BlowsPerMinute)
		assert.Equal(t, machineID, p.Machine.ID)
		assert.True(t, p.IsNew())
		assert.True(t, p.Dirty)
	})

	t.Run("without plan repository starts at one", func(t *testing.T) {
		catalogRepo := new(mocks.MockCatalogRepositoryInterface)
		catalogRepo.On("GetMachine", mock.Anything, 1, machineID).Return(machine, nil)
		svc := NewPlanningService(NewCatalogService(catalogRepo), nil)

		p, err := svc.NewPlan(ctx, machineID, planDay)

		require.NoError(t, err)
		assert.Equal(t, 1, p.Order)
	})

	t.Run("unknown machine", func(t *testing.T) {
		svc, catalogRepo, planRepo := newPlanningFixture()
		catalogRepo.On("GetMachine", mock.Anything, 1, machineID).Return(nil, nil)

		_, err := svc.NewPlan(ctx, machineID, planDay)

		assert.ErrorIs(t, err, ErrEntityNotFound)
		planRepo.AssertNotCalled(t, "NextOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("order lookup fails", func(t *testing.T) {
		svc, catalogRepo, planRepo := newPlanningFixture()
		catalogRepo.On("GetMachine", mock.Anything, 1, machineID).Return(machine, nil)
		planRepo.On("NextOrder", mock.Anything, 1, machineID, planDay).Return(0, errors.New("boom"))

		_, err := svc.NewPlan(ctx, machineID, planDay)

		assert.ErrorContains(t, err, "next order")
	})
}

func TestPlanningService_Recalculate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		edit      FieldEdit
		direction planning.Direction
		amount    float64
		meters    float64
		minutes   float64
		valid     bool
		adjusted  bool
	}{
		{
			name:      "amount",
			edit:      FieldEdit{Field: FieldAmount, Number: 2000},
			direction: planning.DirectionAmount,
			amount:    2000, meters: 300, minutes: 12.5,
			valid: true,
		},
		{
			name:      "meters lowered to whole cycles",
			edit:      FieldEdit{Field: FieldMeters, Number: 160},
			direction: planning.DirectionMeters,
			amount:    1066, meters: 159.9, minutes: 6.66,
			valid: true, adjusted: true,
		},
		{
			name:      "meters on a whole cycle",
			edit:      FieldEdit{Field: FieldMeters, Number: 150},
			direction: planning.DirectionMeters,
			amount:    1000, meters: 150, minutes: 6.25,
			valid: true,
		},
		{
			name:      "minutes",
			edit:      FieldEdit{Field: FieldMinutes, Number: 12.5},
			direction: planning.DirectionTime,
			amount:    2000, meters: 300, minutes: 12.5,
			valid: true,
		},
		{
			name:      "rate",
			edit:      FieldEdit{Field: FieldBlowsPerMinute, Number: 100},
			direction: planning.DirectionAmount,
			amount:    1000, meters: 150, minutes: 5,
			valid: true,
		},
		{
			name:      "clearing the product zeroes the line",
			edit:      FieldEdit{Field: FieldProduct},
			direction: planning.DirectionAmount,
		},
		{
			name:      "comments keep figures",
			edit:      FieldEdit{Field: FieldComments, Text: "urgent"},
			direction: planning.DirectionAmount,
			amount:    1000, meters: 150, minutes: 6.25,
			valid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newPlanningFixture()

			calc, err := svc.Recalculate(ctx, basePlan(), tt.edit)

			require.NoError(t, err)
			assert.Equal(t, tt.direction, calc.Direction)
			assert.Equal(t, tt.valid, calc.Valid)
			assert.Equal(t, tt.adjusted, calc.Adjusted)
			assert.Equal(t, tt.amount, calc.Plan.Amount)
			assert.Equal(t, tt.meters, calc.Plan.Meters)
			assert.Equal(t, tt.minutes, calc.Plan.Minutes)
			assert.True(t, calc.Plan.Dirty)
		})
	}
}

func TestPlanningService_RecalculateRejects(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		edit     FieldEdit
		expected error
	}{
		{"unknown field", FieldEdit{Field: "width", Number: 10}, ErrUnknownField},
		{"negative amount", FieldEdit{Field: FieldAmount, Number: -1}, ErrInvalidValue},
		{"negative meters", FieldEdit{Field: FieldMeters, Number: -0.5}, ErrInvalidValue},
		{"negative rate", FieldEdit{Field: FieldBlowsPerMinute, Number: -80}, ErrInvalidValue},
		{"zero order", FieldEdit{Field: FieldOrder, Number: 0}, ErrInvalidValue},
		{"fractional order", FieldEdit{Field: FieldOrder, Number: 1.5}, ErrInvalidValue},
		{"missing date", FieldEdit{Field: FieldDate}, ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newPlanningFixture()

			_, err := svc.Recalculate(ctx, basePlan(), tt.edit)

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestPlanningService_RecalculateReferences(t *testing.T) {
	ctx := context.Background()

	t.Run("roll edit loads the roll", func(t *testing.T) {
		svc, catalogRepo, _ := newPlanningFixture()
		rollID := primitive.NewObjectID()
		catalogRepo.On("GetRoll", mock.Anything, 1, rollID).
			Return(&model.Roll{ID: rollID, Name: "R-7", Width: 1500, Length: 900}, nil)

		calc, err := svc.Recalculate(ctx, basePlan(), FieldEdit{Field: FieldRoll, Ref: rollID})

		require.NoError(t, err)
		assert.Equal(t, "R-7", calc.Plan.Roll.Name)
		assert.Equal(t, 3, calc.Plan.UnitsPerCycle)
		assert.Equal(t, 1500.0, calc.Plan.RollWidth)
	})

	t.Run("unknown reference", func(t *testing.T) {
		svc, catalogRepo, _ := newPlanningFixture()
		clientID := primitive.NewObjectID()
		catalogRepo.On("GetClient", mock.Anything, 1, clientID).Return(nil, nil)

		_, err := svc.Recalculate(ctx, basePlan(), FieldEdit{Field: FieldClient, Ref: clientID})

		assert.ErrorIs(t, err, ErrEntityNotFound)
	})

	t.Run("machine edit takes its rate", func(t *testing.T) {
		svc, catalogRepo, _ := newPlanningFixture()
		machineID := primitive.NewObjectID()
		catalogRepo.On("GetMachine", mock.Anything, 1, machineID).
			Return(&model.Machine{ID: machineID, BlowsPerMinute: 50}, nil)

		calc, err := svc.Recalculate(ctx, basePlan(), FieldEdit{Field: FieldMachine, Ref: machineID})

		require.NoError(t, err)
		assert.Equal(t, 50.0, calc.Plan.BlowsPerMinute)
		assert.Equal(t, 10.0, calc.Plan.Minutes)
	})

	t.Run("snapshots refresh from the catalog", func(t *testing.T) {
		svc, catalogRepo, _ := newPlanningFixture()
		p := basePlan()
		p.Product.ID = primitive.NewObjectID()
		updated := *p.Product
		updated.Width = 250
		catalogRepo.On("GetProduct", mock.Anything, 1, p.Product.ID).Return(&updated, nil)

		calc, err := svc.Recalculate(ctx, p, FieldEdit{Field: FieldAmount, Number: 1000})

		require.NoError(t, err)
		assert.Equal(t, 4, calc.Plan.UnitsPerCycle)
		assert.Equal(t, 250.0, calc.Plan.Width)
		assert.Equal(t, 500.0, p.Product.Width)
	})

	t.Run("missing entity keeps the snapshot", func(t *testing.T) {
		svc, catalogRepo, _ := newPlanningFixture()
		p := basePlan()
		p.Product.ID = primitive.NewObjectID()
		catalogRepo.On("GetProduct", mock.Anything, 1, p.Product.ID).Return(nil, nil)

		calc, err := svc.Recalculate(ctx, p, FieldEdit{Field: FieldAmount, Number: 1000})

		require.NoError(t, err)
		assert.Equal(t, 2, calc.Plan.UnitsPerCycle)
	})

	t.Run("catalog failure aborts", func(t *testing.T) {
		svc, catalogRepo, _ := newPlanningFixture()
		p := basePlan()
		p.Product.ID = primitive.NewObjectID()
		catalogRepo.On("GetProduct", mock.Anything, 1, p.Product.ID).Return(nil, errors.New("down"))

		_, err := svc.Recalculate(ctx, p, FieldEdit{Field: FieldAmount, Number: 1000})

		assert.ErrorContains(t, err, "down")
	})
}

func TestPlanningService_Edit(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()

	t.Run("applies and saves", func(t *testing.T) {
		svc, _, planRepo := newPlanningFixture()
		stored := basePlan()
		stored.ID = id
		planRepo.On("Get", mock.Anything, 1, id).Return(&stored, nil)
		planRepo.On("Save", mock.Anything, mock.MatchedBy(func(p *model.Plan) bool {
			return p.ID == id && p.Dirty && p.Amount == 1066
		}), "ana").Return(nil)

		calc, err := svc.Edit(ctx, id, FieldEdit{Field: FieldMeters, Number: 160}, "ana")

		require.NoError(t, err)
		assert.True(t, calc.Adjusted)
		assert.Equal(t, planning.DirectionMeters, calc.Direction)
		planRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		svc, _, planRepo := newPlanningFixture()
		planRepo.On("Get", mock.Anything, 1, id).Return(nil, nil)

		_, err := svc.Edit(ctx, id, FieldEdit{Field: FieldAmount, Number: 1}, "ana")

		assert.ErrorIs(t, err, ErrPlanNotFound)
	})

	t.Run("invalid edit is not saved", func(t *testing.T) {
		svc, _, planRepo := newPlanningFixture()
		stored := basePlan()
		planRepo.On("Get", mock.Anything, 1, id).Return(&stored, nil)

		_, err := svc.Edit(ctx, id, FieldEdit{Field: FieldAmount, Number: -1}, "ana")

		assert.ErrorIs(t, err, ErrInvalidValue)
		planRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("save failure", func(t *testing.T) {
		svc, _, planRepo := newPlanningFixture()
		stored := basePlan()
		planRepo.On("Get", mock.Anything, 1, id).Return(&stored, nil)
		planRepo.On("Save", mock.Anything, mock.Anything, "ana").Return(errors.New("write conflict"))

		_, err := svc.Edit(ctx, id, FieldEdit{Field: FieldAmount, Number: 1}, "ana")

		assert.ErrorContains(t, err, "save plan")
	})
}

func TestPlanningService_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("clean plan is not written", func(t *testing.T) {
		svc, _, planRepo := newPlanningFixture()
		p := basePlan()

		require.NoError(t, svc.Save(ctx, &p, "ana"))

		planRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("dirty plan is recalculated through amount", func(t *testing.T) {
		svc, _, planRepo := newPlanningFixture(WithPlanningDomain(4))
		p := basePlan()
		p.Amount = 2000
		p.Dirty = true
		planRepo.On("Save", mock.Anything, mock.Anything, "ana").Return(nil)

		require.NoError(t, svc.Save(ctx, &p, "ana"))

		assert.Equal(t, 4, p.Domain)
		assert.Equal(t, 300.0, p.Meters)
		assert.Equal(t, 1000.0, p.Blows)
		planRepo.AssertExpectations(t)
	})

	t.Run("plan of another domain is not found", func(t *testing.T) {
		svc, _, planRepo := newPlanningFixture()
		p := basePlan()
		p.ID = primitive.NewObjectID()
		p.Dirty = true
		planRepo.On("Save", mock.Anything, mock.Anything, "ana").Return(repository.ErrForeignPlan)

		err := svc.Save(ctx, &p, "ana")

		assert.ErrorIs(t, err, ErrPlanNotFound)
		assert.ErrorIs(t, err, repository.ErrForeignPlan)
	})

	t.Run("save all reports a plan of another domain", func(t *testing.T) {
		svc, _, planRepo := newPlanningFixture()
		a := basePlan()
		plans := []*model.Plan{&a}
		planRepo.On("SaveAll", mock.Anything, plans, "ana").Return(repository.ErrForeignPlan)

		assert.ErrorIs(t, svc.SaveAll(ctx, plans, "ana"), ErrPlanNotFound)
	})

	t.Run("save all forces the domain", func(t *testing.T) {
		svc, _, planRepo := newPlanningFixture(WithPlanningDomain(4))
		a, b := basePlan(), basePlan()
		plans := []*model.Plan{&a, &b}
		planRepo.On("SaveAll", mock.Anything, plans, "ana").Return(nil)

		require.NoError(t, svc.SaveAll(ctx, plans, "ana"))

		assert.Equal(t, 4, a.Domain)
		assert.Equal(t, 4, b.Domain)
	})

	t.Run("without repository", func(t *testing.T) {
		svc := NewPlanningService(NewCatalogService(nil), nil)
		p := basePlan()

		assert.ErrorIs(t, svc.Save(ctx, &p, "ana"), ErrRepositoryNotConfigured)
		assert.ErrorIs(t, svc.SaveAll(ctx, nil, "ana"), ErrRepositoryNotConfigured)
		_, err := svc.Get(ctx, primitive.NewObjectID())
		assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
		_, err = svc.List(ctx, model.PlanFilter{})
		assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
		assert.ErrorIs(t, svc.Delete(ctx, primitive.NewObjectID()), ErrRepositoryNotConfigured)
	})
}

func TestPlanningService_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"default limit", 0, 50},
		{"within cap", 10, 10},
		{"above cap", 1000, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, planRepo := newPlanningFixture(WithPlanningDomain(2), WithListLimit(50))
			planRepo.On("List", mock.Anything, model.PlanFilter{Domain: 2, Limit: tt.want}).
				Return([]model.Plan{basePlan()}, nil)

			plans, err := svc.List(ctx, model.PlanFilter{Domain: 9, Limit: tt.limit})

			require.NoError(t, err)
			assert.Len(t, plans, 1)
			planRepo.AssertExpectations(t)
		})
	}
}

func TestPlanningService_Delete(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()

	tests := []struct {
		name     string
		deleted  bool
		err      error
		expected error
	}{
		{"deleted", true, nil, nil},
		{"not found", false, nil, ErrPlanNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, planRepo := newPlanningFixture()
			planRepo.On("Delete", mock.Anything, 1, id).Return(tt.deleted, tt.err)

			err := svc.Delete(ctx, id)

			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}
