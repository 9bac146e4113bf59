package http

import (
	"encoding/json"
	"net/http"

	"github.com/Drael0/site/internal/session"
)

type SessionHandler struct {
	sessions *session.Store
}

func NewSessionHandler(sessions *session.Store) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Create opens an anonymous session so guests can carry a cart and a theme
// preference for the duration of their visit.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Create(r.Context(), "")
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"token": sess.Token})
}

type ThemeRequestDTO struct {
	Theme string `json:"theme"`
}

func (h *SessionHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	theme := sess.Theme
	if theme == "" {
		theme = "dark"
	}
	respondJSON(w, http.StatusOK, map[string]string{"theme": theme})
}

func (h *SessionHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	var req ThemeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Geçersiz istek.")
		return
	}
	if req.Theme != "dark" && req.Theme != "light" {
		respondError(w, http.StatusBadRequest, "invalid_theme", "Geçersiz tema.")
		return
	}

	sess.Theme = req.Theme
	if err := h.sessions.Save(r.Context(), sess); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"theme": sess.Theme})
}
