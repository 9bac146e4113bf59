package service

import (
	"context"
	"log"
	"strings"

	"github.com/Drael0/site/internal/domain"
	"github.com/Drael0/site/internal/repository"
)

type ReviewService struct {
	reviews  repository.ReviewRepository
	products repository.ProductRepository
}

func NewReviewService(reviews repository.ReviewRepository, products repository.ProductRepository) *ReviewService {
	return &ReviewService{
		reviews:  reviews,
		products: products,
	}
}

func (s *ReviewService) ListByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	return s.reviews.ListReviewsByProduct(ctx, productID)
}

func (s *ReviewService) Add(ctx context.Context, review *domain.Review) error {
	if strings.TrimSpace(review.Content) == "" {
		return ErrEmptyReview
	}

	if _, err := s.products.GetProduct(ctx, review.ProductID); err != nil {
		return err
	}

	if err := s.reviews.CreateReview(ctx, review); err != nil {
		log.Printf("repo create review error: %v", err)
		return err
	}
	return nil
}

// Delete removes a review. Only the author or an admin may do so.
func (s *ReviewService) Delete(ctx context.Context, id string, user *domain.User) error {
	review, err := s.reviews.GetReview(ctx, id)
	if err != nil {
		return err
	}

	if review.UserID != user.ID && !user.IsAdmin() {
		return ErrPermissionDenied
	}

	if err := s.reviews.DeleteReview(ctx, id); err != nil {
		log.Printf("repo delete review error: %v", err)
		return err
	}
	return nil
}
