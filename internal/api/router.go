package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storefront/admin-api/internal/api/handler"
	"github.com/storefront/admin-api/internal/api/middleware"
	"github.com/storefront/admin-api/internal/core/domain"
	"github.com/storefront/admin-api/internal/core/service"
	mongodb "github.com/storefront/admin-api/internal/infrastructure/db/mongo"
	redisdb "github.com/storefront/admin-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
//
// The signing secret is passed in explicitly and flows only into the token
// service; nothing reads it from ambient state afterwards.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	tokens := service.NewTokenService(jwtSecret)

	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, tokens)
	authHandler := handler.NewAuthHandler(authService)

	productRepo := mongodb.NewProductRepository(db)
	productCache := redisdb.NewProductCache(rdb, log)
	catalogService := service.NewCatalogService(productRepo, productCache, log)
	productHandler := handler.NewProductHandler(catalogService)

	salesRepo := mongodb.NewSalesRepository(db)
	salesService := service.NewSalesService(salesRepo, log)
	salesHandler := handler.NewSalesHandler(salesService)

	authRequired := middleware.Auth(tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/sales", salesHandler.List)
	e.GET("/products", productHandler.List)

	// --- Admin-gated catalog mutations ---
	// Token verification always runs before the role check.
	e.POST("/products", productHandler.Create, authRequired, adminOnly)
	e.PUT("/products/:id", productHandler.Update, authRequired, adminOnly)
	e.DELETE("/products/:id", productHandler.Delete, authRequired, adminOnly)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
