package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Drael0/site/internal/identity"
	"github.com/Drael0/site/internal/repository"
	"github.com/Drael0/site/internal/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleServiceError maps domain failures to a fixed set of user-facing
// messages. Anything unclassified becomes the generic failure notice; the
// detail stays in the log, not the response.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, identity.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "invalid_credentials", "Hatalı e-posta veya şifre.")
	case errors.Is(err, identity.ErrInvalidEmail):
		respondError(w, http.StatusBadRequest, "invalid_email", "Geçersiz e-posta adresi.")
	case errors.Is(err, identity.ErrWeakPassword):
		respondError(w, http.StatusBadRequest, "weak_password", "Şifre en az 6 karakter olmalıdır.")
	case errors.Is(err, identity.ErrUsernameTaken):
		respondError(w, http.StatusConflict, "username_taken", "Bu kullanıcı adı zaten alınmış.")
	case errors.Is(err, identity.ErrEmailTaken):
		respondError(w, http.StatusConflict, "email_taken", "Bu e-posta adresi zaten kayıtlı.")
	case errors.Is(err, service.ErrAlreadyInCart):
		respondError(w, http.StatusConflict, "already_in_cart", "Bu ürün zaten sepetinizde!")
	case errors.Is(err, service.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "empty_cart", "Sepetiniz boş.")
	case errors.Is(err, service.ErrSignInRequired):
		respondError(w, http.StatusUnauthorized, "sign_in_required", "Bu işlem için giriş yapın.")
	case errors.Is(err, service.ErrInvalidCategory):
		respondError(w, http.StatusBadRequest, "invalid_category", "Geçersiz kategori.")
	case errors.Is(err, service.ErrNegativePrice):
		respondError(w, http.StatusBadRequest, "invalid_price", "Fiyat negatif olamaz.")
	case errors.Is(err, service.ErrEmptyReview):
		respondError(w, http.StatusBadRequest, "empty_review", "Yorum boş olamaz.")
	case errors.Is(err, service.ErrPermissionDenied):
		respondError(w, http.StatusForbidden, "permission_denied", "Bu işlem için yetkiniz yok.")
	case errors.Is(err, repository.ErrProductNotFound):
		respondError(w, http.StatusNotFound, "product_not_found", "Ürün bulunamadı.")
	case errors.Is(err, repository.ErrReviewNotFound):
		respondError(w, http.StatusNotFound, "review_not_found", "Yorum bulunamadı.")
	case errors.Is(err, repository.ErrUserNotFound):
		respondError(w, http.StatusNotFound, "user_not_found", "Kullanıcı bilgileri bulunamadı.")
	default:
		log.Printf("internal error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "Bir hata oluştu. Lütfen tekrar deneyin.")
	}
}
