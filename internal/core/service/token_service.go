package service

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/storefront/admin-api/internal/core/domain"
)

// TokenService issues and verifies HS256-signed session tokens carrying the
// user id and role.
//
// Tokens carry no expiry claim and remain valid for as long as the signing
// secret does. This matches the deployed behaviour of the system; it is
// documented here as observed, not recommended.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs a token for the given identity.
func (s *TokenService) Issue(claims domain.Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": claims.UserID,
		"role":    claims.Role,
	})
	return t.SignedString(s.secret)
}

// Verify parses and validates a token, returning the embedded identity.
// It fails closed: any signature mismatch, malformed structure, or decoding
// error yields ErrInvalidCredentials and zero claims, never a partial set.
func (s *TokenService) Verify(token string) (domain.Claims, error) {
	mc := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, mc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return domain.Claims{}, domain.ErrInvalidCredentials
	}

	userID, _ := mc["user_id"].(string)
	role, _ := mc["role"].(string)
	if userID == "" || role == "" {
		return domain.Claims{}, domain.ErrInvalidCredentials
	}

	return domain.Claims{UserID: userID, Role: role}, nil
}
