package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SAID-SWIAAID/stagep/internal/pkg/constants"
	"github.com/SAID-SWIAAID/stagep/internal/pkg/models"
)

// MongoClient represents a MongoDB client bound to one database
type MongoClient struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoClient connects to MongoDB and verifies the connection
func NewMongoClient(config models.MongoConfig) (*MongoClient, error) {
	timeout := time.Duration(config.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoClient{
		client: client,
		db:     client.Database(config.Database),
	}, nil
}

// GetDatabase returns the underlying database handle
func (m *MongoClient) GetDatabase() *mongo.Database {
	return m.db
}

// EnsureIndexes creates the unique indexes the auth flow relies on:
// one live OTP per phone number, one identity per phone number and per
// uid. Safe to call on every startup.
func (m *MongoClient) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		constants.CollectionOTPs: {
			{Keys: bson.D{{Key: constants.FieldPhoneNumber, Value: 1}}, Options: unique},
		},
		constants.CollectionUsers: {
			{Keys: bson.D{{Key: constants.FieldPhoneNumber, Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: constants.FieldUID, Value: 1}}, Options: unique},
		},
		constants.CollectionSuppliers: {
			{Keys: bson.D{{Key: constants.FieldUID, Value: 1}}, Options: unique},
		},
		constants.CollectionProducts: {
			{Keys: bson.D{{Key: constants.FieldProductID, Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: constants.FieldSupplierID, Value: 1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := m.db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", collection, err)
		}
	}
	return nil
}

// Close disconnects the client
func (m *MongoClient) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
