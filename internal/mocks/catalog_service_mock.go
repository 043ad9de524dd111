// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/planning-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Product(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) Material(ctx context.Context, id primitive.ObjectID) (*model.Material, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Material), args.Error(1)
}

func (m *MockCatalogService) Roll(ctx context.Context, id primitive.ObjectID) (*model.Roll, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Roll), args.Error(1)
}

func (m *MockCatalogService) Machine(ctx context.Context, id primitive.ObjectID) (*model.Machine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Machine), args.Error(1)
}

func (m *MockCatalogService) Client(ctx context.Context, id primitive.ObjectID) (*model.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockCatalogService) FindProducts(ctx context.Context, name, material string) ([]model.Product, error) {
	args := m.Called(ctx, name, material)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockCatalogService) FindMaterials(ctx context.Context, query string) ([]model.Material, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Material), args.Error(1)
}

func (m *MockCatalogService) FindRolls(ctx context.Context, materialID primitive.ObjectID) ([]model.Roll, error) {
	args := m.Called(ctx, materialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Roll), args.Error(1)
}

func (m *MockCatalogService) FindMachines(ctx context.Context, query string) ([]model.Machine, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Machine), args.Error(1)
}

func (m *MockCatalogService) FindClients(ctx context.Context, query string) ([]model.Client, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Client), args.Error(1)
}
