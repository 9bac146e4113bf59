package service

import (
	"context"
	"log"

	"github.com/Drael0/site/internal/domain"
	"github.com/Drael0/site/internal/session"
)

// AppState is the full domain state driving a client view: current user,
// catalog, cart, favorites and orders. It is rebuilt wholesale after every
// identity transition instead of being synced incrementally.
type AppState struct {
	User      *domain.User      `json:"user,omitempty"`
	Catalog   []domain.Product  `json:"catalog"`
	Cart      []domain.CartItem `json:"cart"`
	Favorites []string          `json:"favorites"`
	Orders    []domain.Order    `json:"orders"`
	Theme     string            `json:"theme,omitempty"`
}

type StateService struct {
	catalog   *CatalogService
	cart      *CartService
	favorites *FavoritesService
	checkout  *CheckoutService
}

func NewStateService(catalog *CatalogService, cart *CartService, favorites *FavoritesService, checkout *CheckoutService) *StateService {
	return &StateService{
		catalog:   catalog,
		cart:      cart,
		favorites: favorites,
		checkout:  checkout,
	}
}

// Load assembles the state for the session. Fetch failures are logged and
// leave the corresponding slice empty; they never abort the whole load.
func (s *StateService) Load(ctx context.Context, user *domain.User, sess *session.Session) *AppState {
	state := &AppState{
		User:      user,
		Favorites: []string{},
	}
	if sess != nil {
		state.Theme = sess.Theme
	}

	catalog, err := s.catalog.List(ctx)
	if err != nil {
		log.Printf("failed to load catalog: %v", err)
	}
	state.Catalog = catalog

	if sess != nil {
		items, err := s.cart.Get(ctx, sess)
		if err != nil {
			log.Printf("failed to load cart: %v", err)
		}
		state.Cart = items
	}

	if user != nil {
		favorites, err := s.favorites.List(ctx, user.ID)
		if err != nil {
			log.Printf("failed to load favorites: %v", err)
		}
		if favorites != nil {
			state.Favorites = favorites
		}

		orders, err := s.checkout.ListOrders(ctx, user.ID)
		if err != nil {
			log.Printf("failed to load orders: %v", err)
		}
		state.Orders = orders
	}

	return state
}
