// Package repository provides data access layer for MongoDB.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	CollectionProducts  = "products"
	CollectionMaterials = "materials"
	CollectionRolls     = "rolls"
	CollectionMachines  = "machines"
	CollectionClients   = "clients"
	CollectionPlans     = "plans"
	CollectionLogs      = "logs"
)

// MongoConfig tunes the driver's connection pool and timeouts.
type MongoConfig struct {
	AppName                string
	MaxPoolSize            uint64
	MinPoolSize            uint64
	MaxConnIdleTime        time.Duration
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	SocketTimeout          time.Duration
	// Compressors are offered to the server in order of preference.
	Compressors []string
}

// DefaultMongoConfig sizes the pool for a single planning API instance.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		AppName:                "planning-service",
		MaxPoolSize:            50,
		MinPoolSize:            5,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		Compressors:            []string{"zstd", "snappy", "zlib"},
	}
}

// MongoDB provides MongoDB client and database access.
type MongoDB struct {
	Client    *mongo.Client
	Database  *mongo.Database
	Products  *mongo.Collection
	Materials *mongo.Collection
	Rolls     *mongo.Collection
	Machines  *mongo.Collection
	Clients   *mongo.Collection
	Plans     *mongo.Collection
	Logs      *mongo.Collection
}

// NewMongoDB creates a new MongoDB connection with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig creates a new MongoDB connection with custom configuration.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetAppName(cfg.AppName).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)

	if len(cfg.Compressors) > 0 {
		clientOptions.SetCompressors(cfg.Compressors)
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	db := client.Database(databaseName)
	mongoDB := &MongoDB{
		Client:    client,
		Database:  db,
		Products:  db.Collection(CollectionProducts),
		Materials: db.Collection(CollectionMaterials),
		Rolls:     db.Collection(CollectionRolls),
		Machines:  db.Collection(CollectionMachines),
		Clients:   db.Collection(CollectionClients),
		Plans:     db.Collection(CollectionPlans),
		Logs:      db.Collection(CollectionLogs),
	}

	if err := mongoDB.createIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return mongoDB, nil
}

// createIndexes creates the lookup and schedule indexes. Existing indexes
// with the same keys are left untouched by MongoDB.
func (m *MongoDB) createIndexes(ctx context.Context) error {
	// Schedule reads are always by domain, machine and day, in order.
	_, err := m.Plans.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "domain", Value: 1}, {Key: "machine._id", Value: 1}, {Key: "date", Value: 1}, {Key: "order", Value: 1}},
	})
	if err != nil {
		return err
	}

	byName := bson.D{{Key: "domain", Value: 1}, {Key: "name", Value: 1}}
	for _, coll := range []*mongo.Collection{m.Products, m.Materials, m.Machines, m.Clients} {
		if _, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: byName}); err != nil {
			return err
		}
	}

	_, err = m.Rolls.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "domain", Value: 1}, {Key: "material_id", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, _ = m.Logs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "request_id", Value: 1}},
	})
	_, _ = m.Logs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "plan_id", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	return nil
}

// SetLogsTTL replaces the TTL index that expires log entries.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttl time.Duration) error {
	// Dropping fails when the index does not exist yet.
	_, _ = m.Logs.Indexes().DropOne(ctx, "timestamp_1")

	_, err := m.Logs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "timestamp", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32(ttl.Seconds())),
	})
	return err
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck verifies the MongoDB connection is healthy.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
