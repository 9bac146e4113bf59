package http

import (
	"net/http"

	"github.com/Drael0/site/internal/domain"
	"github.com/Drael0/site/internal/service"
)

type CheckoutHandler struct {
	checkout *service.CheckoutService
}

func NewCheckoutHandler(checkout *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

type CheckoutResponseDTO struct {
	Order  *domain.Order  `json:"order,omitempty"`
	Totals service.Totals `json:"totals"`
}

// Quote prices the cart before submission: subtotal, 20% tax, total.
func (h *CheckoutHandler) Quote(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	totals, err := h.checkout.Quote(r.Context(), sess)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, CheckoutResponseDTO{Totals: totals})
}

func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	order, totals, err := h.checkout.Submit(r.Context(), sess)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, CheckoutResponseDTO{
		Order:  order,
		Totals: totals,
	})
}
