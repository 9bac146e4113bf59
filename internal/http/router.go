package http

import (
	"net/http"
	"time"

	"github.com/Drael0/site/internal/identity"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Handlers struct {
	Auth      *AuthHandler
	Session   *SessionHandler
	Products  *ProductHandler
	Cart      *CartHandler
	Checkout  *CheckoutHandler
	Favorites *FavoritesHandler
	Orders    *OrderHandler
	Reviews   *ReviewHandler
}

func NewRouter(h Handlers, ids *identity.Service, requestTimeout time.Duration) chi.Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(SessionMiddleware(ids))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Search from a view without a results container lands here and gets
	// redirected to the listing carrying the query.
	r.Get("/search", h.Products.Search)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/session", h.Session.Create)
		r.With(RequireSession).Get("/session/theme", h.Session.GetTheme)
		r.With(RequireSession).Put("/session/theme", h.Session.SetTheme)

		r.Post("/auth/register", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)
		r.With(RequireSession).Post("/auth/logout", h.Auth.Logout)
		r.Get("/state", h.Auth.State)

		r.Get("/products", h.Products.List)
		r.Get("/products/{id}", h.Products.Get)
		r.Get("/products/{id}/reviews", h.Reviews.ListByProduct)
		r.With(RequireSession).Post("/products/{id}/reviews", h.Reviews.Add)
		r.With(RequireUser).Delete("/reviews/{review_id}", h.Reviews.Delete)

		r.Route("/cart", func(r chi.Router) {
			r.Use(RequireSession)
			r.Get("/", h.Cart.Get)
			r.Post("/items", h.Cart.AddItem)
			r.Delete("/items/{product_id}", h.Cart.RemoveItem)
			r.Delete("/", h.Cart.Clear)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Use(RequireSession)
			r.Get("/", h.Checkout.Quote)
			r.Post("/", h.Checkout.Submit)
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Use(RequireUser)
			r.Get("/", h.Favorites.List)
			r.Post("/{product_id}/toggle", h.Favorites.Toggle)
		})

		r.With(RequireUser).Get("/orders", h.Orders.List)

		r.Route("/admin/products", func(r chi.Router) {
			r.Use(RequireAdmin)
			r.Post("/", h.Products.Create)
			r.Put("/{id}", h.Products.Update)
			r.Delete("/{id}", h.Products.Delete)
		})
	})

	return r
}
