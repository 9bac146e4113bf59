package repository

import (
	"context"
	"fmt"

	"github.com/Drael0/site/internal/domain"
)

// SeedDefaultProducts populates the catalog with a starter set when the
// products collection is empty. Safe to call on every startup.
func SeedDefaultProducts(ctx context.Context, products ProductRepository) error {
	existing, err := products.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing products: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	defaults := []domain.Product{
		{
			Name:        "Premium JavaScript Kursu",
			Description: "Sıfırdan ileri seviye JavaScript öğrenin. 50+ saat video içerik, pratik projeler ve sertifika.",
			Price:       299.99,
			Category:    domain.CategoryCourse,
		},
		{
			Name:        "Modern Web Tasarım Şablonları",
			Description: "20 adet profesyonel web sitesi şablonu. HTML, CSS ve JavaScript ile hazırlanmış.",
			Price:       149.99,
			Category:    domain.CategoryTemplate,
		},
		{
			Name:        "Python Programlama E-Kitabı",
			Description: "500+ sayfa kapsamlı Python rehberi. Temel kavramlardan ileri düzey konulara kadar.",
			Price:       79.99,
			Category:    domain.CategoryEbook,
		},
	}

	for i := range defaults {
		if err := products.CreateProduct(ctx, &defaults[i]); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", defaults[i].Name, err)
		}
	}

	return nil
}
