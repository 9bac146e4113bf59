// Package session keeps per-visitor state in Redis: the auth token of a
// signed-in user, or a guest session carrying the anonymous cart and the
// theme preference. Guest sessions expire with their TTL, which is what
// scopes the anonymous cart to the visit.
package session

import (
	"time"

	"github.com/Drael0/site/internal/domain"
)

type Session struct {
	Token     string            `json:"token"`
	UserID    string            `json:"user_id,omitempty"`
	Theme     string            `json:"theme,omitempty"`
	GuestCart []domain.CartItem `json:"guest_cart,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// Authenticated reports whether the session belongs to a signed-in user.
func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != ""
}
