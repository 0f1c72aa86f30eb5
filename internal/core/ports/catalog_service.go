package ports

import (
	"context"

	"github.com/storefront/admin-api/internal/core/domain"
)

// CreateProductInput carries all data needed to add a catalog entry.
type CreateProductInput struct {
	Image           string
	Name            string
	Category        string
	Price           float64
	Stock           int
	AvailableColors []string
}

// CatalogService defines use-case operations for the product catalog.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) error
	DeleteProduct(ctx context.Context, id string) error
}
