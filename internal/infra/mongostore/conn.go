package mongostore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"click-collect/internal/pkg/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	colUsers      = "users"
	colCategories = "categories"
	colProducts   = "products"
	colFavorites  = "favorites"
	colRatings    = "ratings"
	colCartItems  = "cart_items"
	colSlots      = "pickup_slots"
	colOrders     = "orders"
)

const connectTimeout = 10 * time.Second

// Connect opens a client and pings it. Transactions need a replica set;
// a standalone server will fail on the first write through Within.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, func(), error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			slog.Warn("failed to disconnect mongodb", "error", err.Error())
		}
	}
	return client, client.Database(cfg.DBName), cleanup, nil
}

// EnsureIndexes creates the unique and lookup indexes the repositories rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		colUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "resetSelector", Value: 1}}, Options: options.Index().SetUnique(true).SetSparse(true)},
		},
		colCategories: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		colProducts: {
			{Keys: bson.D{{Key: "sku", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "categoryId", Value: 1}, {Key: "isActive", Value: 1}}},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
		colFavorites: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "productId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		colRatings: {
			{Keys: bson.D{{Key: "productId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		colCartItems: {
			{Keys: bson.D{{Key: "userId", Value: 1}}},
			{Keys: bson.D{{Key: "sessionId", Value: 1}}},
		},
		colSlots: {
			{Keys: bson.D{{Key: "date", Value: 1}, {Key: "timeFrom", Value: 1}}},
		},
		colOrders: {
			{Keys: bson.D{{Key: "orderNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
	}
	for col, models := range specs {
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", col, err)
		}
	}
	return nil
}
