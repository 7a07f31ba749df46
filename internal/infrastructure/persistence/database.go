// Package persistence implements the domain repositories on top of a
// MongoDB document store. Documents are keyed by an application-level
// "id" field; the storage-internal _id is excluded from every read.
package persistence

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/prodsheet/backend/internal/infrastructure/config"
)

// listCap is the defensive upper bound on unpaginated list reads
const listCap = 1000

// Database wraps the mongo client and the application database handle
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewDatabase connects to the document store and verifies the connection
func NewDatabase(cfg *config.MongoConfig) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Database{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// Collection returns a handle to a named collection
func (d *Database) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// Close disconnects from the document store
func (d *Database) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// Ping verifies the connection is still alive
func (d *Database) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, nil)
}
