package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// DB owns the MongoDB client and the application database handle.
type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
	logger   *zap.Logger
}

// Connect dials MongoDB, verifies the connection and returns a handle for dbName.
func Connect(ctx context.Context, uri, dbName string, logger *zap.Logger) (*DB, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	logger.Info("Connected to MongoDB", zap.String("database", dbName))
	return &DB{Client: client, Database: client.Database(dbName), logger: logger}, nil
}

// Close disconnects the client.
func (db *DB) Close(ctx context.Context) error {
	if db == nil || db.Client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	db.logger.Info("Disconnected from MongoDB")
	return nil
}
