package http

import (
	"encoding/json"
	"net/http"

	"github.com/Drael0/site/internal/domain"
	"github.com/Drael0/site/internal/service"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cart *service.CartService
}

func NewCartHandler(cart *service.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
}

type CartResponseDTO struct {
	Items []domain.CartItem `json:"items"`
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	items, err := h.cart.Get(r.Context(), sess)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondCart(w, http.StatusOK, items)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Geçersiz istek.")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "Ürün belirtilmedi.")
		return
	}

	if err := h.cart.Add(r.Context(), sess, req.ProductID); err != nil {
		handleServiceError(w, err)
		return
	}

	items, err := h.cart.Get(r.Context(), sess)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondCart(w, http.StatusCreated, items)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	productID := chi.URLParam(r, "product_id")

	if err := h.cart.Remove(r.Context(), sess, productID); err != nil {
		handleServiceError(w, err)
		return
	}

	items, err := h.cart.Get(r.Context(), sess)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondCart(w, http.StatusOK, items)
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	if err := h.cart.Clear(r.Context(), sess); err != nil {
		handleServiceError(w, err)
		return
	}

	respondCart(w, http.StatusOK, nil)
}

func respondCart(w http.ResponseWriter, status int, items []domain.CartItem) {
	if items == nil {
		items = []domain.CartItem{}
	}
	respondJSON(w, status, CartResponseDTO{Items: items})
}
