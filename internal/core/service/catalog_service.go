package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/storefront/admin-api/internal/api/metrics"
	"github.com/storefront/admin-api/internal/core/domain"
	"github.com/storefront/admin-api/internal/core/ports"
)

// ProductCache abstracts the read-through cache for the product list (Redis).
type ProductCache interface {
	GetList(ctx context.Context) ([]domain.Product, bool)
	SetList(ctx context.Context, products []domain.Product)
	Invalidate(ctx context.Context)
}

// CatalogService implements product catalog use cases. A nil cache disables
// caching entirely.
type CatalogService struct {
	repo   ports.CatalogRepository
	cache  ProductCache
	logger zerolog.Logger
}

func NewCatalogService(repo ports.CatalogRepository, cache ProductCache, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, logger: logger}
}

// ListProducts returns every catalog entry, serving from cache when warm.
// Cache failures degrade to a store read, never to a request failure.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		if products, ok := s.cache.GetList(ctx); ok {
			metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
			return products, nil
		}
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
	}

	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetList(ctx, products)
	}
	return products, nil
}

// CreateProduct persists a new catalog entry verbatim from the input.
func (s *CatalogService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Image:           input.Image,
		Name:            input.Name,
		Category:        input.Category,
		Price:           input.Price,
		Stock:           input.Stock,
		AvailableColors: input.AvailableColors,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create product")
		return nil, err
	}

	s.invalidate(ctx)
	metrics.ProductMutationsTotal.WithLabelValues("create").Inc()
	s.logger.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

// UpdateProduct applies a partial overwrite by id. There is no existence
// check: updating an absent id is a silent no-op, matching the store's
// update-by-id semantics.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) error {
	if err := s.repo.UpdateByID(ctx, id, patch); err != nil {
		return err
	}
	s.invalidate(ctx)
	metrics.ProductMutationsTotal.WithLabelValues("update").Inc()
	s.logger.Info().Str("product_id", id).Msg("product updated")
	return nil
}

// DeleteProduct removes a product by id. Deleting an absent id succeeds;
// the API deliberately does not signal not-found on delete.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	metrics.ProductMutationsTotal.WithLabelValues("delete").Inc()
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
