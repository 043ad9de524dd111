package service

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/planning-service/internal/domain/model"
	"github.com/guttosm/planning-service/internal/repository"
	"github.com/guttosm/planning-service/internal/service/cache"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogService resolves the catalog entities a plan line refers to.
type CatalogService interface {
	Product(ctx context.Context, id primitive.ObjectID) (*model.Product, error)
	Material(ctx context.Context, id primitive.ObjectID) (*model.Material, error)
	Roll(ctx context.Context, id primitive.ObjectID) (*model.Roll, error)
	Machine(ctx context.Context, id primitive.ObjectID) (*model.Machine, error)
	Client(ctx context.Context, id primitive.ObjectID) (*model.Client, error)

	FindProducts(ctx context.Context, name, material string) ([]model.Product, error)
	FindMaterials(ctx context.Context, query string) ([]model.Material, error)
	FindRolls(ctx context.Context, materialID primitive.ObjectID) ([]model.Roll, error)
	FindMachines(ctx context.Context, query string) ([]model.Machine, error)
	FindClients(ctx context.Context, query string) ([]model.Client, error)
}

// CatalogOption configures a CatalogServiceImpl.
type CatalogOption func(*CatalogServiceImpl)

// WithCatalogDomain scopes every lookup to a domain.
func WithCatalogDomain(domain int) CatalogOption {
	return func(s *CatalogServiceImpl) { s.domain = domain }
}

// WithCatalogCache caches id lookups for ttl.
func WithCatalogCache(size int, ttl time.Duration) CatalogOption {
	return func(s *CatalogServiceImpl) {
		if size <= 0 || ttl <= 0 {
			return
		}
		cleanup := ttl
		s.products = cache.NewTTLCache(size, ttl, cache.WithCleanupInterval[model.Product](cleanup))
		s.materials = cache.NewTTLCache(size, ttl, cache.WithCleanupInterval[model.Material](cleanup))
		s.rolls = cache.NewTTLCache(size, ttl, cache.WithCleanupInterval[model.Roll](cleanup))
		s.machines = cache.NewTTLCache(size, ttl, cache.WithCleanupInterval[model.Machine](cleanup))
		s.clients = cache.NewTTLCache(size, ttl, cache.WithCleanupInterval[model.Client](cleanup))
	}
}

// CatalogServiceImpl implements CatalogService on top of the catalog
// repository, with an optional per-entity id cache.
type CatalogServiceImpl struct {
	repo      repository.CatalogRepositoryInterface
	domain    int
	products  cache.Cache[model.Product]
	materials cache.Cache[model.Material]
	rolls     cache.Cache[model.Roll]
	machines  cache.Cache[model.Machine]
	clients   cache.Cache[model.Client]
}

// NewCatalogService creates a new catalog service. A nil repository yields a
// service whose lookups fail with ErrRepositoryNotConfigured.
func NewCatalogService(repo repository.CatalogRepositoryInterface, opts ...CatalogOption) *CatalogServiceImpl {
	s := &CatalogServiceImpl{repo: repo, domain: 1}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stop releases the cache sweepers.
func (s *CatalogServiceImpl) Stop() {
	for _, c := range []interface{ Stop() }{s.products, s.materials, s.rolls, s.machines, s.clients} {
		if c != nil {
			c.Stop()
		}
	}
}

// lookup serves id lookups from c when set, loading through load on a miss.
// A missing entity is reported as ErrEntityNotFound.
func lookup[T any](ctx context.Context, domain int, kind string, c cache.Cache[T], id primitive.ObjectID,
	load func(context.Context, int, primitive.ObjectID) (*T, error)) (*T, error) {
	key := id.Hex()
	if c != nil {
		if v, ok := c.Get(key); ok {
			return &v, nil
		}
	}

	v, err := load(ctx, domain, id)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", kind, err)
	}
	if v == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrEntityNotFound, kind, key)
	}

	if c != nil {
		c.Set(key, *v)
	}
	out := *v
	return &out, nil
}

func (s *CatalogServiceImpl) Product(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return lookup(ctx, s.domain, "product", s.products, id, s.repo.GetProduct)
}

func (s *CatalogServiceImpl) Material(ctx context.Context, id primitive.ObjectID) (*model.Material, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return lookup(ctx, s.domain, "material", s.materials, id, s.repo.GetMaterial)
}

func (s *CatalogServiceImpl) Roll(ctx context.Context, id primitive.ObjectID) (*model.Roll, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return lookup(ctx, s.domain, "roll", s.rolls, id, s.repo.GetRoll)
}

func (s *CatalogServiceImpl) Machine(ctx context.Context, id primitive.ObjectID) (*model.Machine, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return lookup(ctx, s.domain, "machine", s.machines, id, s.repo.GetMachine)
}

func (s *CatalogServiceImpl) Client(ctx context.Context, id primitive.ObjectID) (*model.Client, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return lookup(ctx, s.domain, "client", s.clients, id, s.repo.GetClient)
}

func (s *CatalogServiceImpl) FindProducts(ctx context.Context, name, material string) ([]model.Product, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.FindProducts(ctx, s.domain, name, material)
}

func (s *CatalogServiceImpl) FindMaterials(ctx context.Context, query string) ([]model.Material, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.FindMaterials(ctx, s.domain, query)
}

func (s *CatalogServiceImpl) FindRolls(ctx context.Context, materialID primitive.ObjectID) ([]model.Roll, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.FindRolls(ctx, s.domain, materialID)
}

func (s *CatalogServiceImpl) FindMachines(ctx context.Context, query string) ([]model.Machine, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.FindMachines(ctx, s.domain, query)
}

func (s *CatalogServiceImpl) FindClients(ctx context.Context, query string) ([]model.Client, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.FindClients(ctx, s.domain, query)
}
