// Package database provides MongoDB connection management and utilities.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Config holds database configuration settings.
type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// Connect establishes a MongoDB connection with the given configuration and
// verifies it with a ping.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the unique indexes the application relies on.
// Identity lookups (admin user_id, doctor email) and named resources
// (facility name, specialization name) all depend on these.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string]mongo.IndexModel{
		"admins":          {Keys: bson.D{{Key: "user_id", Value: 1}}, Options: unique},
		"doctors":         {Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		"facilities":      {Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		"specializations": {Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
	}

	for collection, model := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", collection, err)
		}
	}

	return nil
}
