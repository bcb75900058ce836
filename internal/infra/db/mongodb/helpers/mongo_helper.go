package helpers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const ExpenseCollection = "expenses"

// Timeout bounds every single store operation.
var Timeout = 10 * time.Second

// MongoConnection owns the client for the lifetime of the process. It is
// created once at startup and handed to everything that talks to the store.
type MongoConnection struct {
	Client *mongo.Client
	Db     *mongo.Database
}

func MongoHelper(ctx context.Context, uri string, databaseName string) (*MongoConnection, error) {
	clientOptions := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(Timeout).
		SetConnectTimeout(Timeout)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	slog.Info("MongoDB connection established", "database", databaseName)

	return &MongoConnection{
		Client: client,
		Db:     client.Database(databaseName),
	}, nil
}

// Ping reports whether the store currently answers.
func (c *MongoConnection) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	return c.Client.Ping(ctx, readpref.Primary())
}

func (c *MongoConnection) Disconnect(ctx context.Context) error {
	if err := c.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnecting from mongodb: %w", err)
	}

	slog.Info("MongoDB connection closed")
	return nil
}

// EnsureExpenseIndexes creates the indexes backing the date-sorted listings.
func EnsureExpenseIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	_, err := db.Collection(ExpenseCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "date", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("creating expense indexes: %w", err)
	}

	return nil
}
