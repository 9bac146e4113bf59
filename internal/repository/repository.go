package repository

import (
	"context"
	"errors"

	"github.com/Drael0/site/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrReviewNotFound  = errors.New("review not found")
	ErrUsernameTaken   = errors.New("username already taken")
	ErrEmailTaken      = errors.New("email already registered")
)

// Consumers define these interfaces, not the MongoDB implementations.

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) error
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

type UserRepository interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) error
	AddFavorite(ctx context.Context, userID, productID string) error
	RemoveFavorite(ctx context.Context, userID, productID string) error
}

type CartRepository interface {
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
	UpsertCart(ctx context.Context, cart *domain.Cart) error
	DeleteCart(ctx context.Context, userID string) error
	// RemoveProductFromCarts pulls the product out of every cart that holds
	// it, in one pass. Used when a product is deleted from the catalog.
	RemoveProductFromCarts(ctx context.Context, productID string) error
}

type OrderRepository interface {
	ListOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error)
	CreateOrder(ctx context.Context, order *domain.Order) error
}

type ReviewRepository interface {
	ListReviewsByProduct(ctx context.Context, productID string) ([]domain.Review, error)
	GetReview(ctx context.Context, id string) (*domain.Review, error)
	CreateReview(ctx context.Context, review *domain.Review) error
	DeleteReview(ctx context.Context, id string) error
}
