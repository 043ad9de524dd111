package http

import (
	"context"
	"time"

	"github.com/guttosm/planning-service/internal/domain/model"
	"github.com/guttosm/planning-service/internal/service"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockPlanningService lives with the handler tests: the service package
// tests import internal/mocks, so mocks cannot depend on service.
type MockPlanningService struct {
	mock.Mock
}

func (m *MockPlanningService) NewPlan(ctx context.Context, machineID primitive.ObjectID, date time.Time) (model.Plan, error) {
	args := m.Called(ctx, machineID, date)
	return args.Get(0).(model.Plan), args.Error(1)
}

func (m *MockPlanningService) Recalculate(ctx context.Context, p model.Plan, edit service.FieldEdit) (service.Calculation, error) {
	args := m.Called(ctx, p, edit)
	return args.Get(0).(service.Calculation), args.Error(1)
}

func (m *MockPlanningService) Edit(ctx context.Context, id primitive.ObjectID, edit service.FieldEdit, user string) (service.Calculation, error) {
	args := m.Called(ctx, id, edit, user)
	return args.Get(0).(service.Calculation), args.Error(1)
}

func (m *MockPlanningService) Save(ctx context.Context, p *model.Plan, user string) error {
	args := m.Called(ctx, p, user)
	return args.Error(0)
}

func (m *MockPlanningService) SaveAll(ctx context.Context, plans []*model.Plan, user string) error {
	args := m.Called(ctx, plans, user)
	return args.Error(0)
}

func (m *MockPlanningService) Get(ctx context.Context, id primitive.ObjectID) (*model.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Plan), args.Error(1)
}

func (m *MockPlanningService) List(ctx context.Context, f model.PlanFilter) ([]model.Plan, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Plan), args.Error(1)
}

func (m *MockPlanningService) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
