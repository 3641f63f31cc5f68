package database

import (
	"context"
	"fmt"
	"time"

	"klinik/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// Connect opens and pings a MongoDB connection.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// InitDB initializes the MongoDB connection used by the audit trail.
func InitDB(ctx context.Context, cfg config.Config) (*mongo.Database, error) {
	client, err := Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	MongoClient = client
	return client.Database(cfg.DatabaseName), nil
}

// Close disconnects the global client if one was opened.
func Close(ctx context.Context) error {
	if MongoClient == nil {
		return nil
	}
	return MongoClient.Disconnect(ctx)
}
