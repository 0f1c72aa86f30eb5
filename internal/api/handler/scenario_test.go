package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/storefront/admin-api/internal/api/middleware"
	"github.com/storefront/admin-api/internal/core/domain"
	"github.com/storefront/admin-api/internal/core/service"
)

// In-memory repositories so the full register→login→mutate flow runs through
// real services and middleware without a database.

type memUserRepo struct {
	users map[string]*domain.User
}

func (r *memUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, ok := r.users[u.Username]; ok {
		return nil, domain.ErrUserExists
	}
	created := *u
	created.ID = fmt.Sprintf("u%d", len(r.users)+1)
	r.users[u.Username] = &created
	return &created, nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

type memProductRepo struct {
	products []domain.Product
}

func (r *memProductRepo) FindAll(context.Context) ([]domain.Product, error) {
	return r.products, nil
}

func (r *memProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	created := *p
	created.ID = fmt.Sprintf("p%d", len(r.products)+1)
	r.products = append(r.products, created)
	return &created, nil
}

func (r *memProductRepo) UpdateByID(context.Context, string, domain.ProductPatch) error { return nil }

func (r *memProductRepo) DeleteByID(context.Context, string) error { return nil }

// newScenarioApp wires the public and admin routes exactly as the router does.
func newScenarioApp(t *testing.T) (*echo.Echo, *memProductRepo) {
	t.Helper()

	e := newTestEcho()

	tokens := service.NewTokenService("scenario-secret")
	userRepo := &memUserRepo{users: make(map[string]*domain.User)}
	authHandler := NewAuthHandler(service.NewAuthService(userRepo, tokens))

	productRepo := &memProductRepo{}
	productHandler := NewProductHandler(service.NewCatalogService(productRepo, nil, zerolog.Nop()))

	authRequired := middleware.Auth(tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/products", productHandler.List)
	e.POST("/products", productHandler.Create, authRequired, adminOnly)
	e.PUT("/products/:id", productHandler.Update, authRequired, adminOnly)
	e.DELETE("/products/:id", productHandler.Delete, authRequired, adminOnly)

	return e, productRepo
}

func do(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo, username, password string) string {
	t.Helper()
	rec := do(e, http.MethodPost, "/login", "", fmt.Sprintf(`{"username":%q,"password":%q}`, username, password))
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("login response: %v", err)
	}
	return resp.Token
}

func TestAdminScenario(t *testing.T) {
	e, _ := newScenarioApp(t)

	rec := do(e, http.MethodPost, "/register", "", `{"username":"admin","password":"admin123","role":"admin"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	token := login(t, e, "admin", "admin123")

	rec = do(e, http.MethodPost, "/products", token, `{"name":"Watch","price":100,"stock":10}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = do(e, http.MethodGet, "/products", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Watch") {
		t.Fatalf("listing should include the created product: %s", rec.Body.String())
	}
}

func TestProtectedRoutes_NoToken(t *testing.T) {
	e, repo := newScenarioApp(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/products"},
		{http.MethodPut, "/products/abc"},
		{http.MethodDelete, "/products/abc"},
	} {
		rec := do(e, route.method, route.path, "", `{"name":"X"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s without token: expected 401, got %d", route.method, route.path, rec.Code)
		}
	}
	if len(repo.products) != 0 {
		t.Fatalf("unauthenticated request must not mutate the store")
	}
}

func TestProtectedRoutes_GarbledToken(t *testing.T) {
	e, repo := newScenarioApp(t)

	rec := do(e, http.MethodPost, "/products", "garbage.token.value", `{"name":"X"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("garbled token: expected 400, got %d", rec.Code)
	}
	if len(repo.products) != 0 {
		t.Fatalf("invalid token must not mutate the store")
	}
}

func TestProtectedRoutes_NonAdminForbidden(t *testing.T) {
	e, repo := newScenarioApp(t)

	rec := do(e, http.MethodPost, "/register", "", `{"username":"carol","password":"pw"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d", rec.Code)
	}
	token := login(t, e, "carol", "pw")

	for _, route := range []struct{ method, path, body string }{
		{http.MethodPost, "/products", `{"name":"X"}`},
		{http.MethodPut, "/products/abc", `{"price":1}`},
		{http.MethodDelete, "/products/abc", ""},
	} {
		rec := do(e, route.method, route.path, token, route.body)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("%s %s as user: expected 403, got %d", route.method, route.path, rec.Code)
		}
	}
	if len(repo.products) != 0 {
		t.Fatalf("forbidden request must not mutate the store")
	}
}

func TestLogin_UnknownUserAndBadPasswordSameStatus(t *testing.T) {
	e, _ := newScenarioApp(t)

	_ = do(e, http.MethodPost, "/register", "", `{"username":"dave","password":"rightpw"}`)

	badPw := do(e, http.MethodPost, "/login", "", `{"username":"dave","password":"wrongpw"}`)
	unknown := do(e, http.MethodPost, "/login", "", `{"username":"nobody","password":"whatever"}`)

	if badPw.Code != http.StatusBadRequest || unknown.Code != http.StatusBadRequest {
		t.Fatalf("expected 400/400, got %d/%d", badPw.Code, unknown.Code)
	}
}
