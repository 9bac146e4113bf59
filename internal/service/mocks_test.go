package service

import (
	"context"
	"sync"

	"github.com/Drael0/site/internal/cache"
	"github.com/Drael0/site/internal/domain"
	"github.com/Drael0/site/internal/repository"
)

type mockProductRepo struct {
	m        sync.RWMutex
	products []domain.Product
	err      error
}

func (m *mockProductRepo) ListProducts(context.Context) ([]domain.Product, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]domain.Product(nil), m.products...), nil
}

func (m *mockProductRepo) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.products {
		if m.products[i].ID == id {
			p := m.products[i]
			return &p, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (m *mockProductRepo) CreateProduct(_ context.Context, product *domain.Product) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if product.ID == "" {
		product.ID = "generated-id"
	}
	m.products = append(m.products, *product)
	return nil
}

func (m *mockProductRepo) UpdateProduct(_ context.Context, product *domain.Product) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	for i := range m.products {
		if m.products[i].ID == product.ID {
			m.products[i] = *product
			return nil
		}
	}
	return repository.ErrProductNotFound
}

func (m *mockProductRepo) DeleteProduct(_ context.Context, id string) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	for i := range m.products {
		if m.products[i].ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return repository.ErrProductNotFound
}

type mockCartRepo struct {
	m              sync.RWMutex
	carts          map[string]*domain.Cart
	removedProduct string
	err            error
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{carts: make(map[string]*domain.Cart)}
}

func (m *mockCartRepo) GetCart(_ context.Context, userID string) (*domain.Cart, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	cart, ok := m.carts[userID]
	if !ok {
		return nil, repository.ErrCartNotFound
	}
	copied := *cart
	return &copied, nil
}

func (m *mockCartRepo) UpsertCart(_ context.Context, cart *domain.Cart) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	copied := *cart
	m.carts[cart.UserID] = &copied
	return nil
}

func (m *mockCartRepo) DeleteCart(_ context.Context, userID string) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.carts[userID]; !ok {
		return repository.ErrCartNotFound
	}
	delete(m.carts, userID)
	return nil
}

func (m *mockCartRepo) RemoveProductFromCarts(_ context.Context, productID string) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	m.removedProduct = productID
	for _, cart := range m.carts {
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

func (m *mockCartRepo) removedProductID() string {
	m.m.RLock()
	defer m.m.RUnlock()
	return m.removedProduct
}

type mockOrderRepo struct {
	m      sync.RWMutex
	orders []domain.Order
	err    error
}

func (m *mockOrderRepo) ListOrdersByUser(_ context.Context, userID string) ([]domain.Order, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	var orders []domain.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (m *mockOrderRepo) CreateOrder(_ context.Context, order *domain.Order) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if order.ID == "" {
		order.ID = "order-1"
	}
	m.orders = append(m.orders, *order)
	return nil
}

type mockUserRepo struct {
	m     sync.RWMutex
	users map[string]*domain.User
	err   error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*domain.User)}
}

func (m *mockUserRepo) GetUser(_ context.Context, id string) (*domain.User, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserRepo) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUserRepo) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	for _, user := range m.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUserRepo) CreateUser(_ context.Context, user *domain.User) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if user.ID == "" {
		user.ID = "user-1"
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *mockUserRepo) AddFavorite(_ context.Context, userID, productID string) error {
	m.m.Lock()
	defer m.m.Unlock()
	user, ok := m.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.Favorites = append(user.Favorites, productID)
	return nil
}

func (m *mockUserRepo) RemoveFavorite(_ context.Context, userID, productID string) error {
	m.m.Lock()
	defer m.m.Unlock()
	user, ok := m.users[userID]
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

type mockReviewRepo struct {
	m       sync.RWMutex
	reviews []domain.Review
	err     error
}

func (m *mockReviewRepo) ListReviewsByProduct(_ context.Context, productID string) ([]domain.Review, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	var reviews []domain.Review
	for _, r := range m.reviews {
		if r.ProductID == productID {
			reviews = append(reviews, r)
		}
	}
	return reviews, nil
}

func (m *mockReviewRepo) GetReview(_ context.Context, id string) (*domain.Review, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.reviews {
		if m.reviews[i].ID == id {
			r := m.reviews[i]
			return &r, nil
		}
	}
	return nil, repository.ErrReviewNotFound
}

func (m *mockReviewRepo) CreateReview(_ context.Context, review *domain.Review) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if review.ID == "" {
		review.ID = "review-1"
	}
	m.reviews = append(m.reviews, *review)
	return nil
}

func (m *mockReviewRepo) DeleteReview(_ context.Context, id string) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	for i := range m.reviews {
		if m.reviews[i].ID == id {
			m.reviews = append(m.reviews[:i], m.reviews[i+1:]...)
			return nil
		}
	}
	return repository.ErrReviewNotFound
}

type mockCatalogCache struct {
	m        sync.RWMutex
	products []domain.Product
	err      error
}

func (m *mockCatalogCache) Get(context.Context) ([]domain.Product, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	if m.products == nil {
		return nil, cache.ErrCacheMiss
	}
	return m.products, nil
}

func (m *mockCatalogCache) Set(_ context.Context, products []domain.Product) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.products = products
	return m.err
}

func (m *mockCatalogCache) Invalidate(context.Context) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.products = nil
	return m.err
}

func (m *mockCatalogCache) cached() []domain.Product {
	m.m.RLock()
	defer m.m.RUnlock()
	return m.products
}
