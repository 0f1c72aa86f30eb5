package ports

import (
	"context"

	"github.com/storefront/admin-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

// TokenService issues and verifies the signed session credential.
type TokenService interface {
	Issue(claims domain.Claims) (string, error)
	Verify(token string) (domain.Claims, error)
}
