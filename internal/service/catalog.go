package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Drael0/site/internal/cache"
	"github.com/Drael0/site/internal/domain"
	"github.com/Drael0/site/internal/repository"
	"golang.org/x/sync/singleflight"
)

type CatalogService struct {
	products repository.ProductRepository
	carts    repository.CartRepository
	cache    cache.CatalogCache
	sfg      singleflight.Group // Prevents cache stampede
}

func NewCatalogService(products repository.ProductRepository, carts repository.CartRepository, catalogCache cache.CatalogCache) *CatalogService {
	return &CatalogService{
		products: products,
		carts:    carts,
		cache:    catalogCache,
	}
}

// List returns the catalog in descending creation order, serving from the
// cache when possible.
func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	v, err, _ := s.sfg.Do("catalog", func() (interface{}, error) {
		products, err := s.cache.Get(ctx)
		if err == nil {
			return products, nil
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v", err) // log cache error but continue
		}

		products, err = s.products.ListProducts(ctx)
		if err != nil {
			return nil, err
		}

		go func() {
			if errSet := s.cache.Set(context.Background(), products); errSet != nil {
				log.Printf("cache set error: %v", errSet)
			}
		}()

		return products, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]domain.Product), nil
}

// Search filters the listing by a case-insensitive substring over product
// name, description and the localized category label. An empty query
// returns the full listing.
func (s *CatalogService) Search(ctx context.Context, query string) ([]domain.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return products, nil
	}

	var matched []domain.Product
	for _, p := range products {
		if p.Matches(query) {
			matched = append(matched, p)
		}
	}

	return matched, nil
}

// FilterByCategory returns only products with an exact category match.
func (s *CatalogService) FilterByCategory(ctx context.Context, category domain.Category) ([]domain.Product, error) {
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}

	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	var matched []domain.Product
	for _, p := range products {
		if p.Category == category {
			matched = append(matched, p)
		}
	}

	return matched, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.GetProduct(ctx, id)
}

func (s *CatalogService) Create(ctx context.Context, product *domain.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}

	if err := s.products.CreateProduct(ctx, product); err != nil {
		log.Printf("repo create product error: %v", err)
		return err
	}

	s.invalidateCache()
	return nil
}

func (s *CatalogService) Update(ctx context.Context, product *domain.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}

	if err := s.products.UpdateProduct(ctx, product); err != nil {
		log.Printf("repo update product error: %v", err)
		return err
	}

	s.invalidateCache()
	return nil
}

// Delete removes the product from the catalog and pulls it out of every
// cart that referenced it, so no cart keeps a dangling line.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.products.DeleteProduct(ctx, id); err != nil {
		log.Printf("repo delete product error: %v", err)
		return err
	}

	if err := s.carts.RemoveProductFromCarts(ctx, id); err != nil {
		log.Printf("failed to remove deleted product from carts: %v", err)
	}

	s.invalidateCache()
	return nil
}

func validateProduct(product *domain.Product) error {
	if !product.Category.Valid() {
		return ErrInvalidCategory
	}
	if product.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

func (s *CatalogService) invalidateCache() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("cache invalidate error: %v", err)
	}
}
