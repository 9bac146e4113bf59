package http

import (
	"net/http"

	"github.com/Drael0/site/internal/domain"
	"github.com/Drael0/site/internal/service"
)

type OrderHandler struct {
	checkout *service.CheckoutService
}

func NewOrderHandler(checkout *service.CheckoutService) *OrderHandler {
	return &OrderHandler{checkout: checkout}
}

// List returns the caller's own orders, newest first.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	orders, err := h.checkout.ListOrders(r.Context(), user.ID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if orders == nil {
		orders = []domain.Order{}
	}
	respondJSON(w, http.StatusOK, orders)
}
