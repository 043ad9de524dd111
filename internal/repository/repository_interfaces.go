package repository

import (
	"context"
	"time"

	"github.com/guttosm/planning-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogRepositoryInterface defines the read-only catalog lookups.
type CatalogRepositoryInterface interface {
	GetProduct(ctx context.Context, domain int, id primitive.ObjectID) (*model.Product, error)
	GetMaterial(ctx context.Context, domain int, id primitive.ObjectID) (*model.Material, error)
	GetRoll(ctx context.Context, domain int, id primitive.ObjectID) (*model.Roll, error)
	GetMachine(ctx context.Context, domain int, id primitive.ObjectID) (*model.Machine, error)
	GetClient(ctx context.Context, domain int, id primitive.ObjectID) (*model.Client, error)
	FindProducts(ctx context.Context, domain int, name, material string) ([]model.Product, error)
	FindMaterials(ctx context.Context, domain int, query string) ([]model.Material, error)
	FindRolls(ctx context.Context, domain int, materialID primitive.ObjectID) ([]model.Roll, error)
	FindMachines(ctx context.Context, domain int, query string) ([]model.Machine, error)
	FindClients(ctx context.Context, domain int, query string) ([]model.Client, error)
}

// PlanRepositoryInterface defines plan persistence operations.
type PlanRepositoryInterface interface {
	Save(ctx context.Context, p *model.Plan, user string) error
	SaveAll(ctx context.Context, plans []*model.Plan, user string) error
	Get(ctx context.Context, domain int, id primitive.ObjectID) (*model.Plan, error)
	List(ctx context.Context, f model.PlanFilter) ([]model.Plan, error)
	NextOrder(ctx context.Context, domain int, machineID primitive.ObjectID, day time.Time) (int, error)
	Delete(ctx context.Context, domain int, id primitive.ObjectID) (bool, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.LogEntry) error
	Query(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)
	Count(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

var (
	_ CatalogRepositoryInterface = (*CatalogRepository)(nil)
	_ PlanRepositoryInterface    = (*PlanRepository)(nil)
	_ LogsRepositoryInterface    = (*LogsRepository)(nil)
)
