//go:build !integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/planning-service/config"
	"github.com/guttosm/planning-service/internal/domain/model"
	"github.com/guttosm/planning-service/internal/mocks"
	"github.com/guttosm/planning-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestInitializeServices_WithoutDatabase(t *testing.T) {
	ctx := context.Background()
	cfg := config.Config{
		Cache:    config.CacheConfig{Size: 10, TTL: time.Minute},
		Planning: config.PlanningConfig{Domain: 1, DefaultBlowsMinute: 80},
	}

	components := InitializeServices(cfg, nil)
	defer components.Catalog.Stop()

	require.NotNil(t, components.Planning)
	require.NotNil(t, components.Importer)

	_, err := components.Catalog.Product(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)

	_, err = components.Planning.List(ctx, model.PlanFilter{})
	assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)

	calc, err := components.Planning.Recalculate(ctx, model.Plan{Order: 1}, service.FieldEdit{Field: service.FieldComments, Text: "urgente"})
	require.NoError(t, err)
	assert.Equal(t, "urgente", calc.Plan.Comments)
}

func TestInitializeServices_WithDatabase(t *testing.T) {
	ctx := context.Background()
	machineID := primitive.NewObjectID()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	catalogRepo := new(mocks.MockCatalogRepositoryInterface)
	catalogRepo.On("GetMachine", ctx, 4, machineID).
		Return(&model.Machine{ID: machineID, Domain: 4, Name: "Sopladora 1", BlowsPerMinute: 60}, nil).Once()
	planRepo := new(mocks.MockPlanRepositoryInterface)
	planRepo.On("NextOrder", ctx, 4, machineID, day).Return(3, nil)

	cfg := config.Config{
		Cache:    config.CacheConfig{Size: 10, TTL: time.Minute},
		Planning: config.PlanningConfig{Domain: 4, DefaultBlowsMinute: 80, DefaultListLimit: 50},
	}
	components := InitializeServices(cfg, &DatabaseComponents{CatalogRepo: catalogRepo, PlanRepo: planRepo})
	defer components.Catalog.Stop()

	p, err := components.Planning.NewPlan(ctx, machineID, day)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Order)
	assert.Equal(t, 4, p.Domain)
	assert.Equal(t, 60.0, p.BlowsPerMinute)

	// The second lookup is served from the catalog cache.
	_, err = components.Catalog.Machine(ctx, machineID)
	require.NoError(t, err)
	catalogRepo.AssertNumberOfCalls(t, "GetMachine", 1)

	planRepo.On("List", ctx, mock.MatchedBy(func(f model.PlanFilter) bool {
		return f.Domain == 4 && f.Limit == 50
	})).Return([]model.Plan{}, nil)
	_, err = components.Planning.List(ctx, model.PlanFilter{})
	require.NoError(t, err)
	planRepo.AssertExpectations(t)
}
