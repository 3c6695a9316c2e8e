package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig holds the document store connection settings
type MongoConfig struct {
	URL      string
	Database string
}

// ConnectMongo opens a client, verifies it with a ping and returns the selected database
func ConnectMongo(ctx context.Context, cfg MongoConfig) (*mongo.Client, *mongo.Database, error) {
	url := cfg.URL
	if url == "" {
		url = "mongodb://localhost:27017"
	}

	clientOptions := options.Client().ApplyURI(url).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("cannot ping MongoDB: %w", err)
	}

	log.WithFields(logrus.Fields{
		"mongo_database": cfg.Database,
	}).Info("Connected to MongoDB")

	return client, client.Database(cfg.Database), nil
}
