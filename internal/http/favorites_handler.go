package http

import (
	"net/http"

	"github.com/Drael0/site/internal/service"
	"github.com/go-chi/chi/v5"
)

type FavoritesHandler struct {
	favorites *service.FavoritesService
}

func NewFavoritesHandler(favorites *service.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{favorites: favorites}
}

func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	favorites, err := h.favorites.List(r.Context(), user.ID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if favorites == nil {
		favorites = []string{}
	}
	respondJSON(w, http.StatusOK, map[string][]string{"favorites": favorites})
}

func (h *FavoritesHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	productID := chi.URLParam(r, "product_id")

	favorited, err := h.favorites.Toggle(r.Context(), user.ID, productID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	message := "Favorilerden çıkarıldı."
	if favorited {
		message = "Favorilere eklendi!"
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"favorited": favorited,
		"message":   message,
	})
}
