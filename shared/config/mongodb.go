package config

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ConnectMongoDB dials the configured MongoDB deployment and verifies the
// connection with a ping. The returned client is shared by every request for
// the life of the process.
func ConnectMongoDB(cfg Config) (*mongo.Client, error) {
	uri := cfg.DatabaseURL
	if uri == "" {
		uri = "mongodb://localhost:27017"
		zap.S().Info("Using default MongoDB URI: ", uri)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		zap.S().Errorf("Failed to connect to MongoDB: %v", err)
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		zap.S().Errorf("Failed to ping MongoDB: %v", err)
		return nil, err
	}

	zap.S().Info("Successfully connected to database")
	return client, nil
}
