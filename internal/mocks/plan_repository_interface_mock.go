// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"time"

	"github.com/guttosm/planning-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockPlanRepositoryInterface struct {
	mock.Mock
}

func (m *MockPlanRepositoryInterface) Save(ctx context.Context, p *model.Plan, user string) error {
	args := m.Called(ctx, p, user)
	return args.Error(0)
}

func (m *MockPlanRepositoryInterface) SaveAll(ctx context.Context, plans []*model.Plan, user string) error {
	args := m.Called(ctx, plans, user)
	return args.Error(0)
}

func (m *MockPlanRepositoryInterface) Get(ctx context.Context, domain int, id primitive.ObjectID) (*model.Plan, error) {
	args := m.Called(ctx, domain, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Plan), args.Error(1)
}

func (m *MockPlanRepositoryInterface) List(ctx context.Context, f model.PlanFilter) ([]model.Plan, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Plan), args.Error(1)
}

func (m *MockPlanRepositoryInterface) NextOrder(ctx context.Context, domain int, machineID primitive.ObjectID, day time.Time) (int, error) {
	args := m.Called(ctx, domain, machineID, day)
	return args.Int(0), args.Error(1)
}

func (m *MockPlanRepositoryInterface) Delete(ctx context.Context, domain int, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, domain, id)
	return args.Bool(0), args.Error(1)
}
