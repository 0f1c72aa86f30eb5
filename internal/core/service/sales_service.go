package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/storefront/admin-api/internal/core/domain"
	"github.com/storefront/admin-api/internal/core/ports"
)

// SalesService serves the read-only monthly reporting dataset.
type SalesService struct {
	repo   ports.SalesRepository
	logger zerolog.Logger
}

func NewSalesService(repo ports.SalesRepository, logger zerolog.Logger) *SalesService {
	return &SalesService{repo: repo, logger: logger}
}

// ListReports returns reports whose month equals the given value.
// An empty month returns every report.
func (s *SalesService) ListReports(ctx context.Context, month string) ([]domain.SalesReport, error) {
	reports, err := s.repo.FindByMonth(ctx, month)
	if err != nil {
		s.logger.Error().Err(err).Str("month", month).Msg("failed to list sales reports")
		return nil, err
	}
	return reports, nil
}
