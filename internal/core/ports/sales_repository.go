package ports

import (
	"context"

	"github.com/storefront/admin-api/internal/core/domain"
)

// SalesRepository defines read operations for sales reports.
// An empty month matches every report.
type SalesRepository interface {
	FindByMonth(ctx context.Context, month string) ([]domain.SalesReport, error)
}
