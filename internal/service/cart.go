package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Drael0/site/internal/domain"
	"github.com/Drael0/site/internal/repository"
	"github.com/Drael0/site/internal/session"
)

// CartService works against the persisted cart for signed-in users and the
// session-scoped cart for guests. Both keep at most one line per product.
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	sessions *session.Store
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository, sessions *session.Store) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
		sessions: sessions,
	}
}

func (s *CartService) Get(ctx context.Context, sess *session.Session) ([]domain.CartItem, error) {
	if !sess.Authenticated() {
		return sess.GuestCart, nil
	}

	cart, err := s.carts.GetCart(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return cart.Items, nil
}

// Add puts a snapshot of the product into the cart with quantity 1. Adding
// a product that is already present is rejected, not incremented.
func (s *CartService) Add(ctx context.Context, sess *session.Session, productID string) error {
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return err
	}

	items, err := s.Get(ctx, sess)
	if err != nil {
		return err
	}

	for _, item := range items {
		if item.ProductID == productID {
			return ErrAlreadyInCart
		}
	}

	items = append(items, domain.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Category:  product.Category,
		Image:     product.Image,
		Quantity:  1,
		AddedAt:   time.Now(),
	})

	return s.persist(ctx, sess, items)
}

func (s *CartService) Remove(ctx context.Context, sess *session.Session, productID string) error {
	items, err := s.Get(ctx, sess)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}

	return s.persist(ctx, sess, kept)
}

func (s *CartService) Clear(ctx context.Context, sess *session.Session) error {
	return s.persist(ctx, sess, nil)
}

func (s *CartService) persist(ctx context.Context, sess *session.Session, items []domain.CartItem) error {
	if sess.Authenticated() {
		cart := &domain.Cart{
			UserID: sess.UserID,
			Items:  items,
		}
		if err := s.carts.UpsertCart(ctx, cart); err != nil {
			log.Printf("repo upsert cart error: %v", err)
			return fmt.Errorf("failed to persist cart: %w", err)
		}
		return nil
	}

	sess.GuestCart = items
	if err := s.sessions.Save(ctx, sess); err != nil {
		log.Printf("session save error: %v", err)
		return fmt.Errorf("failed to persist guest cart: %w", err)
	}
	return nil
}
