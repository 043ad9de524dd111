// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/planning-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockCatalogRepositoryInterface struct {
	mock.Mock
}

func (m *MockCatalogRepositoryInterface) GetProduct(ctx context.Context, domain int, id primitive.ObjectID) (*model.Product, error) {
	args := m.Called(ctx, domain, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) GetMaterial(ctx context.Context, domain int, id primitive.ObjectID) (*model.Material, error) {
	args := m.Called(ctx, domain, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Material), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) GetRoll(ctx context.Context, domain int, id primitive.ObjectID) (*model.Roll, error) {
	args := m.Called(ctx, domain, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Roll), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) GetMachine(ctx context.Context, domain int, id primitive.ObjectID) (*model.Machine, error) {
	args := m.Called(ctx, domain, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Machine), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) GetClient(ctx context.Context, domain int, id primitive.ObjectID) (*model.Client, error) {
	args := m.Called(ctx, domain, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) FindProducts(ctx context.Context, domain int, name, material string) ([]model.Product, error) {
	args := m.Called(ctx, domain, name, material)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) FindMaterials(ctx context.Context, domain int, query string) ([]model.Material, error) {
	args := m.Called(ctx, domain, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Material), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) FindRolls(ctx context.Context, domain int, materialID primitive.ObjectID) ([]model.Roll, error) {
	args := m.Called(ctx, domain, materialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Roll), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) FindMachines(ctx context.Context, domain int, query string) ([]model.Machine, error) {
	args := m.Called(ctx, domain, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Machine), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) FindClients(ctx context.Context, domain int, query string) ([]model.Client, error) {
	args := m.Called(ctx, domain, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Client), args.Error(1)
}
