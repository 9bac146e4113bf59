package http

import (
	"encoding/json"
	"net/http"

	"github.com/Drael0/site/internal/domain"
	"github.com/Drael0/site/internal/service"
	"github.com/go-chi/chi/v5"
)

type ReviewHandler struct {
	reviews *service.ReviewService
}

func NewReviewHandler(reviews *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type ReviewRequestDTO struct {
	Content string `json:"content"`
}

func (h *ReviewHandler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	reviews, err := h.reviews.ListByProduct(r.Context(), productID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if reviews == nil {
		reviews = []domain.Review{}
	}
	respondJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) Add(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	var req ReviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Geçersiz istek.")
		return
	}

	review := &domain.Review{
		ProductID: productID,
		Content:   req.Content,
	}
	if user := userFromContext(r.Context()); user != nil {
		review.UserID = user.ID
	}

	if err := h.reviews.Add(r.Context(), review); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, review)
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "review_id")
	user := userFromContext(r.Context())

	if err := h.reviews.Delete(r.Context(), reviewID, user); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Yorum silindi."})
}
