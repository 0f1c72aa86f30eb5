package ports

import (
	"context"

	"github.com/storefront/admin-api/internal/core/domain"
)

type SalesService interface {
	ListReports(ctx context.Context, month string) ([]domain.SalesReport, error)
}
