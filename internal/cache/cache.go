package cache

import (
	"context"
	"errors"

	"github.com/Drael0/site/internal/domain"
)

// CatalogCache holds the full product listing in its catalog order.
type CatalogCache interface {
	Get(ctx context.Context) ([]domain.Product, error)
	Set(ctx context.Context, products []domain.Product) error
	Invalidate(ctx context.Context) error
}

var ErrCacheMiss = errors.New("cache miss")
