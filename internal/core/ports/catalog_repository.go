package ports

import (
	"context"

	"github.com/storefront/admin-api/internal/core/domain"
)

// CatalogRepository defines persistence operations for products.
//
// UpdateByID and DeleteByID are store-level no-ops when the id does not
// exist: the caller gets a nil error either way. NotFound is intentionally
// not signalled here.
type CatalogRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	UpdateByID(ctx context.Context, id string, patch domain.ProductPatch) error
	DeleteByID(ctx context.Context, id string) error
}
