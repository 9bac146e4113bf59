package http

import (
	"context"
	"strconv"
	"sync"

	"github.com/Drael0/site/internal/cache"
	"github.com/Drael0/site/internal/domain"
	"github.com/Drael0/site/internal/repository"
)

// In-memory repositories backing the handler tests, so requests run through
// the real router, middleware and services.

type memProductRepo struct {
	m        sync.RWMutex
	products []domain.Product
	next     int
}

func (r *memProductRepo) ListProducts(context.Context) ([]domain.Product, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	return append([]domain.Product(nil), r.products...), nil
}

func (r *memProductRepo) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (r *memProductRepo) CreateProduct(_ context.Context, product *domain.Product) error {
	r.m.Lock()
	defer r.m.Unlock()
	if product.ID == "" {
		r.next++
		product.ID = "p" + strconv.Itoa(r.next)
	}
	r.products = append(r.products, *product)
	return nil
}

func (r *memProductRepo) UpdateProduct(_ context.Context, product *domain.Product) error {
	r.m.Lock()
	defer r.m.Unlock()
	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = *product
			return nil
		}
	}
	return repository.ErrProductNotFound
}

func (r *memProductRepo) DeleteProduct(_ context.Context, id string) error {
	r.m.Lock()
	defer r.m.Unlock()
	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return repository.ErrProductNotFound
}

type memCartRepo struct {
	m     sync.RWMutex
	carts map[string]*domain.Cart
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{carts: make(map[string]*domain.Cart)}
}

func (r *memCartRepo) GetCart(_ context.Context, userID string) (*domain.Cart, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	cart, ok := r.carts[userID]
	if !ok {
		return nil, repository.ErrCartNotFound
	}
	copied := *cart
	return &copied, nil
}

func (r *memCartRepo) UpsertCart(_ context.Context, cart *domain.Cart) error {
	r.m.Lock()
	defer r.m.Unlock()
	copied := *cart
	r.carts[cart.UserID] = &copied
	return nil
}

func (r *memCartRepo) DeleteCart(_ context.Context, userID string) error {
	r.m.Lock()
	defer r.m.Unlock()
	if _, ok := r.carts[userID]; !ok {
		return repository.ErrCartNotFound
	}
	delete(r.carts, userID)
	return nil
}

func (r *memCartRepo) RemoveProductFromCarts(_ context.Context, productID string) error {
	r.m.Lock()
	defer r.m.Unlock()
	for _, cart := range r.carts {
		kept := cart.Items[:0]
		for _, item := range cart.Items {
			if item.ProductID != productID {
				kept = append(kept, item)
			}
		}
		cart.Items = kept
	}
	return nil
}

type memOrderRepo struct {
	m      sync.RWMutex
	orders []domain.Order
	next   int
}

func (r *memOrderRepo) ListOrdersByUser(_ context.Context, userID string) ([]domain.Order, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	var orders []domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (r *memOrderRepo) CreateOrder(_ context.Context, order *domain.Order) error {
	r.m.Lock()
	defer r.m.Unlock()
	if order.ID == "" {
		r.next++
		order.ID = "o" + strconv.Itoa(r.next)
	}
	r.orders = append(r.orders, *order)
	return nil
}

type memUserRepo struct {
	m     sync.RWMutex
	users map[string]*domain.User
	next  int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) GetUser(_ context.Context, id string) (*domain.User, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) CreateUser(_ context.Context, user *domain.User) error {
	r.m.Lock()
	defer r.m.Unlock()
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return repository.ErrUsernameTaken
		}
		if existing.Email == user.Email {
			return repository.ErrEmailTaken
		}
	}
	if user.ID == "" {
		r.next++
		user.ID = "u" + strconv.Itoa(r.next)
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) AddFavorite(_ context.Context, userID, productID string) error {
	r.m.Lock()
	defer r.m.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.Favorites = append(user.Favorites, productID)
	return nil
}

func (r *memUserRepo) RemoveFavorite(_ context.Context, userID, productID string) error {
	r.m.Lock()
	defer r.m.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	kept := user.Favorites[:0]
	for _, fav := range user.Favorites {
		if fav != productID {
			kept = append(kept, fav)
		}
	}
	user.Favorites = kept
	return nil
}

type memReviewRepo struct {
	m       sync.RWMutex
	reviews []domain.Review
	next    int
}

func (r *memReviewRepo) ListReviewsByProduct(_ context.Context, productID string) ([]domain.Review, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	var reviews []domain.Review
	for _, review := range r.reviews {
		if review.ProductID == productID {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

func (r *memReviewRepo) GetReview(_ context.Context, id string) (*domain.Review, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	for i := range r.reviews {
		if r.reviews[i].ID == id {
			review := r.reviews[i]
			return &review, nil
		}
	}
	return nil, repository.ErrReviewNotFound
}

func (r *memReviewRepo) CreateReview(_ context.Context, review *domain.Review) error {
	r.m.Lock()
	defer r.m.Unlock()
	if review.ID == "" {
		r.next++
		review.ID = "r" + strconv.Itoa(r.next)
	}
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *memReviewRepo) DeleteReview(_ context.Context, id string) error {
	r.m.Lock()
	defer r.m.Unlock()
	for i := range r.reviews {
		if r.reviews[i].ID == id {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return nil
		}
	}
	return repository.ErrReviewNotFound
}

type noopCache struct{}

func (noopCache) Get(context.Context) ([]domain.Product, error) {
	return nil, cache.ErrCacheMiss
}

func (noopCache) Set(context.Context, []domain.Product) error { return nil }
func (noopCache) Invalidate(context.Context) error            { return nil }
