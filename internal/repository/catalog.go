package repository

import (
	"context"
	"regexp"

	"github.com/guttosm/planning-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// maxLookupResults bounds every "contains" lookup.
const maxLookupResults = 200

// CatalogRepository reads the products, materials, rolls, machines and
// clients a plan line refers to. The catalog is maintained elsewhere; this
// service never writes to it.
type CatalogRepository struct {
	products  *mongo.Collection
	materials *mongo.Collection
	rolls     *mongo.Collection
	machines  *mongo.Collection
	clients   *mongo.Collection
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *MongoDB) *CatalogRepository {
	return &CatalogRepository{
		products:  db.Products,
		materials: db.Materials,
		rolls:     db.Rolls,
		machines:  db.Machines,
		clients:   db.Clients,
	}
}

// containsFilter matches value anywhere in field, ignoring case. An empty
// value matches everything.
func containsFilter(filter bson.M, field, value string) {
	if value == "" {
		return
	}
	filter[field] = primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, domain int, id primitive.ObjectID) (*T, error) {
	var doc T
	err := coll.FindOne(ctx, bson.M{"_id": id, "domain": domain}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func findMany[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) ([]T, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(maxLookupResults)

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// GetProduct returns a product by id, or nil when it does not exist.
func (r *CatalogRepository) GetProduct(ctx context.Context, domain int, id primitive.ObjectID) (*model.Product, error) {
	return findOne[model.Product](ctx, r.products, domain, id)
}

// GetMaterial returns a material by id, or nil when it does not exist.
func (r *CatalogRepository) GetMaterial(ctx context.Context, domain int, id primitive.ObjectID) (*model.Material, error) {
	return findOne[model.Material](ctx, r.materials, domain, id)
}

// GetRoll returns a roll by id, or nil when it does not exist.
func (r *CatalogRepository) GetRoll(ctx context.Context, domain int, id primitive.ObjectID) (*model.Roll, error) {
	return findOne[model.Roll](ctx, r.rolls, domain, id)
}

// GetMachine returns a machine by id, or nil when it does not exist.
func (r *CatalogRepository) GetMachine(ctx context.Context, domain int, id primitive.ObjectID) (*model.Machine, error) {
	return findOne[model.Machine](ctx, r.machines, domain, id)
}

// GetClient returns a client by id, or nil when it does not exist.
func (r *CatalogRepository) GetClient(ctx context.Context, domain int, id primitive.ObjectID) (*model.Client, error) {
	return findOne[model.Client](ctx, r.clients, domain, id)
}

// FindProducts returns products whose name contains name and whose default
// material name contains material.
func (r *CatalogRepository) FindProducts(ctx context.Context, domain int, name, material string) ([]model.Product, error) {
	filter := bson.M{"domain": domain}
	containsFilter(filter, "name", name)
	containsFilter(filter, "material.name", material)
	return findMany[model.Product](ctx, r.products, filter)
}

// FindMaterials returns materials whose name contains query.
func (r *CatalogRepository) FindMaterials(ctx context.Context, domain int, query string) ([]model.Material, error) {
	filter := bson.M{"domain": domain}
	containsFilter(filter, "name", query)
	return findMany[model.Material](ctx, r.materials, filter)
}

// FindRolls returns the rolls cut from a material.
func (r *CatalogRepository) FindRolls(ctx context.Context, domain int, materialID primitive.ObjectID) ([]model.Roll, error) {
	return findMany[model.Roll](ctx, r.rolls, bson.M{"domain": domain, "material_id": materialID})
}

// FindMachines returns machines whose name contains query.
func (r *CatalogRepository) FindMachines(ctx context.Context, domain int, query string) ([]model.Machine, error) {
	filter := bson.M{"domain": domain}
	containsFilter(filter, "name", query)
	return findMany[model.Machine](ctx, r.machines, filter)
}

// FindClients returns clients whose name contains query.
func (r *CatalogRepository) FindClients(ctx context.Context, domain int, query string) ([]model.Client, error) {
	filter := bson.M{"domain": domain}
	containsFilter(filter, "name", query)
	return findMany[model.Client](ctx, r.clients, filter)
}
