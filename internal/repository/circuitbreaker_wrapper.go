package repository

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/planning-service/internal/circuitbreaker"
	"github.com/guttosm/planning-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// guard runs fn through cb and returns its result.
func guard[T any](ctx context.Context, cb *circuitbreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	var result T
	err := cb.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = fn()
		return cbErr
	})
	return result, err
}

// CatalogRepositoryWithCircuitBreaker wraps CatalogRepository with circuit breaker protection.
type CatalogRepositoryWithCircuitBreaker struct {
	repo           CatalogRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCatalogRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewCatalogRepositoryWithCircuitBreaker(repo CatalogRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *CatalogRepositoryWithCircuitBreaker {
	return &CatalogRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

func (r *CatalogRepositoryWithCircuitBreaker) GetProduct(ctx context.Context, domain int, id primitive.ObjectID) (*model.Product, error) {
	return guard(ctx, r.circuitBreaker, func() (*model.Product, error) { return r.repo.GetProduct(ctx, domain, id) })
}

func (r *CatalogRepositoryWithCircuitBreaker) GetMaterial(ctx context.Context, domain int, id primitive.ObjectID) (*model.Material, error) {
	return guard(ctx, r.circuitBreaker, func() (*model.Material, error) { return r.repo.GetMaterial(ctx, domain, id) })
}

func (r *CatalogRepositoryWithCircuitBreaker) GetRoll(ctx context.Context, domain int, id primitive.ObjectID) (*model.Roll, error) {
	return guard(ctx, r.circuitBreaker, func() (*model.Roll, error) { return r.repo.GetRoll(ctx, domain, id) })
}

func (r *CatalogRepositoryWithCircuitBreaker) GetMachine(ctx context.Context, domain int, id primitive.ObjectID) (*model.Machine, error) {
	return guard(ctx, r.circuitBreaker, func() (*model.Machine, error) { return r.repo.GetMachine(ctx, domain, id) })
}

func (r *CatalogRepositoryWithCircuitBreaker) GetClient(ctx context.Context, domain int, id primitive.ObjectID) (*model.Client, error) {
	return guard(ctx, r.circuitBreaker, func() (*model.Client, error) { return r.repo.GetClient(ctx, domain, id) })
}

func (r *CatalogRepositoryWithCircuitBreaker) FindProducts(ctx context.Context, domain int, name, material string) ([]model.Product, error) {
	return guard(ctx, r.circuitBreaker, func() ([]model.Product, error) { return r.repo.FindProducts(ctx, domain, name, material) })
}

func (r *CatalogRepositoryWithCircuitBreaker) FindMaterials(ctx context.Context, domain int, query string) ([]model.Material, error) {
	return guard(ctx, r.circuitBreaker, func() ([]model.Material, error) { return r.repo.FindMaterials(ctx, domain, query) })
}

func (r *CatalogRepositoryWithCircuitBreaker) FindRolls(ctx context.Context, domain int, materialID primitive.ObjectID) ([]model.Roll, error) {
	return guard(ctx, r.circuitBreaker, func() ([]model.Roll, error) { return r.repo.FindRolls(ctx, domain, materialID) })
}

func (r *CatalogRepositoryWithCircuitBreaker) FindMachines(ctx context.Context, domain int, query string) ([]model.Machine, error) {
	return guard(ctx, r.circuitBreaker, func() ([]model.Machine, error) { return r.repo.FindMachines(ctx, domain, query) })
}

func (r *CatalogRepositoryWithCircuitBreaker) FindClients(ctx context.Context, domain int, query string) ([]model.Client, error) {
	return guard(ctx, r.circuitBreaker, func() ([]model.Client, error) { return r.repo.FindClients(ctx, domain, query) })
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CatalogRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// PlanRepositoryWithCircuitBreaker wraps PlanRepository with circuit breaker protection.
type PlanRepositoryWithCircuitBreaker struct {
	repo           PlanRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewPlanRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewPlanRepositoryWithCircuitBreaker(repo PlanRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *PlanRepositoryWithCircuitBreaker {
	return &PlanRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

func (r *PlanRepositoryWithCircuitBreaker) Save(ctx context.Context, p *model.Plan, user string) error {
	return r.circuitBreaker.Execute(ctx, func() error { return r.repo.Save(ctx, p, user) })
}

func (r *PlanRepositoryWithCircuitBreaker) SaveAll(ctx context.Context, plans []*model.Plan, user string) error {
	return r.circuitBreaker.Execute(ctx, func() error { return r.repo.SaveAll(ctx, plans, user) })
}

func (r *PlanRepositoryWithCircuitBreaker) Get(ctx context.Context, domain int, id primitive.ObjectID) (*model.Plan, error) {
	return guard(ctx, r.circuitBreaker, func() (*model.Plan, error) { return r.repo.Get(ctx, domain, id) })
}

func (r *PlanRepositoryWithCircuitBreaker) List(ctx context.Context, f model.PlanFilter) ([]model.Plan, error) {
	return guard(ctx, r.circuitBreaker, func() ([]model.Plan, error) { return r.repo.List(ctx, f) })
}

func (r *PlanRepositoryWithCircuitBreaker) NextOrder(ctx context.Context, domain int, machineID primitive.ObjectID, day time.Time) (int, error) {
	return guard(ctx, r.circuitBreaker, func() (int, error) { return r.repo.NextOrder(ctx, domain, machineID, day) })
}

func (r *PlanRepositoryWithCircuitBreaker) Delete(ctx context.Context, domain int, id primitive.ObjectID) (bool, error) {
	return guard(ctx, r.circuitBreaker, func() (bool, error) { return r.repo.Delete(ctx, domain, id) })
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *PlanRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker
// protection. Writes are dropped while the circuit is open; the request log
// is not worth failing a request over.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

func dropWhenOpen(err error) error {
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *model.LogEntry) error {
	return dropWhenOpen(r.circuitBreaker.Execute(ctx, func() error { return r.repo.Create(ctx, entry) }))
}

func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	return guard(ctx, r.circuitBreaker, func() ([]model.LogEntry, error) { return r.repo.Query(ctx, opts) })
}

func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	return guard(ctx, r.circuitBreaker, func() (int64, error) { return r.repo.Count(ctx, opts) })
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

var (
	_ CatalogRepositoryInterface = (*CatalogRepositoryWithCircuitBreaker)(nil)
	_ PlanRepositoryInterface    = (*PlanRepositoryWithCircuitBreaker)(nil)
	_ LogsRepositoryInterface    = (*LogsRepositoryWithCircuitBreaker)(nil)
)
