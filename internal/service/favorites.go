package service

import (
	"context"
	"log"

	"github.com/Drael0/site/internal/repository"
)

// FavoritesService manages the per-user favorite set. Favorites require an
// identified user; guests have none.
type FavoritesService struct {
	users repository.UserRepository
}

func NewFavoritesService(users repository.UserRepository) *FavoritesService {
	return &FavoritesService{users: users}
}

// Toggle adds the product to the user's favorites, or removes it when
// already present. Returns true when the product ends up favorited.
func (s *FavoritesService) Toggle(ctx context.Context, userID, productID string) (bool, error) {
	if userID == "" {
		return false, ErrSignInRequired
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return false, err
	}

	for _, fav := range user.Favorites {
		if fav == productID {
			if err := s.users.RemoveFavorite(ctx, userID, productID); err != nil {
				log.Printf("repo remove favorite error: %v", err)
				return false, err
			}
			return false, nil
		}
	}

	if err := s.users.AddFavorite(ctx, userID, productID); err != nil {
		log.Printf("repo add favorite error: %v", err)
		return false, err
	}
	return true, nil
}

func (s *FavoritesService) List(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, ErrSignInRequired
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return user.Favorites, nil
}
