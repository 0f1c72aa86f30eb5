package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/storefront/admin-api/internal/api/metrics"
	"github.com/storefront/admin-api/internal/core/domain"
	"github.com/storefront/admin-api/internal/core/ports"
)

// bcryptCost is the fixed work factor for password hashing.
const bcryptCost = 10

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.AuthRepository
	tokens ports.TokenService
}

func NewAuthService(repo ports.AuthRepository, tokens ports.TokenService) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates a new user. An empty role defaults to "user"; an unknown
// role is rejected. Username uniqueness is left to the store's unique index,
// there is no pre-check here.
func (s *AuthService) Register(ctx context.Context, username, password, role string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	metrics.RegistrationsTotal.WithLabelValues(created.Role).Inc()
	return created, nil
}

// Login verifies credentials and returns a signed token together with the
// user record. An unknown username and a wrong password both map to
// ErrInvalidCredentials so the response does not leak which one it was.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.Claims{UserID: user.ID, Role: user.Role})
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token, user, nil
}
