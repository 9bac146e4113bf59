package http

import (
	"encoding/json"
	"net/http"

	"github.com/Drael0/site/internal/identity"
	"github.com/Drael0/site/internal/service"
)

type AuthHandler struct {
	identity *identity.Service
	state    *service.StateService
}

func NewAuthHandler(ids *identity.Service, state *service.StateService) *AuthHandler {
	return &AuthHandler{
		identity: ids,
		state:    state,
	}
}

type RegisterRequestDTO struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	AdminCode string `json:"admin_code,omitempty"`
}

type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponseDTO carries the session token together with the freshly
// reloaded domain state, so clients replace everything they held.
type AuthResponseDTO struct {
	Token string            `json:"token"`
	State *service.AppState `json:"state"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Geçersiz istek.")
		return
	}
	if req.Username == "" || req.Name == "" || req.Email == "" {
		respondError(w, http.StatusBadRequest, "missing_fields", "Tüm alanları doldurun.")
		return
	}

	user, sess, err := h.identity.Register(r.Context(), identity.RegisterInput{
		Username:  req.Username,
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		AdminCode: req.AdminCode,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, AuthResponseDTO{
		Token: sess.Token,
		State: h.state.Load(r.Context(), user, sess),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Geçersiz istek.")
		return
	}

	user, sess, err := h.identity.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, AuthResponseDTO{
		Token: sess.Token,
		State: h.state.Load(r.Context(), user, sess),
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "session_required", "Oturum bulunamadı.")
		return
	}

	if err := h.identity.Logout(r.Context(), sess.Token); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Çıkış yapıldı."})
}

// State rebuilds and returns the full domain state for the caller.
func (h *AuthHandler) State(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	sess := sessionFromContext(r.Context())
	respondJSON(w, http.StatusOK, h.state.Load(r.Context(), user, sess))
}
