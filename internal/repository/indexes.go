package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the indexes every collection relies on: uniqueness
// of usernames, emails and cart owners, plus the listing sort orders.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	repos := []interface {
		CreateIndexes(ctx context.Context) error
	}{
		&mongoProductRepository{collection: db.Collection("products")},
		&mongoUserRepository{collection: db.Collection("users")},
		&mongoCartRepository{collection: db.Collection("carts")},
		&mongoOrderRepository{collection: db.Collection("orders")},
		&mongoReviewRepository{collection: db.Collection("reviews")},
	}

	for _, r := range repos {
		if err := r.CreateIndexes(ctx); err != nil {
			return err
		}
	}

	return nil
}
