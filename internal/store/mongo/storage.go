package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	CollectionMenuItems  = "menuitem"
	CollectionOrders     = "order"
	CollectionOrderAudit = "order_audit"
)

// ErrNotConfigured is returned by repositories built without a database.
var ErrNotConfigured = errors.New("database is not configured")

type Storage struct {
	client   *mongo.Client
	database *mongo.Database
	config   Config
}

type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

func New(cfg Config) (*Storage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(100).
		SetMinPoolSize(10)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	database := client.Database(cfg.Database)

	return &Storage{
		client:   client,
		database: database,
		config:   cfg,
	}, nil
}

func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Database returns nil for a nil Storage so repositories can be built
// before a database is configured.
func (s *Storage) Database() *mongo.Database {
	if s == nil {
		return nil
	}
	return s.database
}

// ListCollectionNames returns at most limit collection names of the database.
func (s *Storage) ListCollectionNames(ctx context.Context, limit int) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	names, err := s.database.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	if len(names) > limit {
		names = names[:limit]
	}

	return names, nil
}

func (s *Storage) CreateIndexes(ctx context.Context) error {
	// menuitem
	menuIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "category", Value: 1}},
		},
	}
	if _, err := s.database.Collection(CollectionMenuItems).Indexes().CreateMany(ctx, menuIndexes); err != nil {
		return fmt.Errorf("failed to create %s indexes: %w", CollectionMenuItems, err)
	}

	// order
	orderIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	}
	if _, err := s.database.Collection(CollectionOrders).Indexes().CreateMany(ctx, orderIndexes); err != nil {
		return fmt.Errorf("failed to create %s indexes: %w", CollectionOrders, err)
	}

	// order_audit
	auditIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "order_id", Value: 1}},
		},
	}
	if _, err := s.database.Collection(CollectionOrderAudit).Indexes().CreateMany(ctx, auditIndexes); err != nil {
		return fmt.Errorf("failed to create %s indexes: %w", CollectionOrderAudit, err)
	}

	return nil
}

func collection(db *mongo.Database, name string) *mongo.Collection {
	if db == nil {
		return nil
	}
	return db.Collection(name)
}
