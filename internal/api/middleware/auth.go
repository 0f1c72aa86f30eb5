package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/admin-api/internal/core/domain"
)

// TokenVerifier validates a raw token string and returns the identity it
// carries.
type TokenVerifier interface {
	Verify(token string) (domain.Claims, error)
}

// Auth is the authentication gateway. The Authorization header carries the
// raw token, not a Bearer scheme.
//
// A missing header is rejected with 401 before any handler runs; a header
// that is present but does not verify is rejected with 400. On success the
// verified identity is attached to the request context under "user_id" and
// "role".
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get("Authorization")
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "access denied")
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid token")
			}

			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
