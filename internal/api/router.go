package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/seek/client-registry/docs"
	"github.com/seek/client-registry/internal/api/handler"
	"github.com/seek/client-registry/internal/api/middleware"
	"github.com/seek/client-registry/internal/core/domain"
	"github.com/seek/client-registry/internal/core/service"
	"github.com/seek/client-registry/internal/core/token"
	mongodb "github.com/seek/client-registry/internal/infrastructure/db/mongo"
	redisdb "github.com/seek/client-registry/internal/infrastructure/db/redis"
	"github.com/seek/client-registry/internal/pkg/config"
)

// routePolicies is the static route-to-role table: everything under the
// client-management prefix requires the admin role; every other route below
// /api requires some valid authentication.
var routePolicies = []middleware.RoutePolicy{
	{Prefix: "/api/v1/clients", Role: domain.RoleAdmin},
	{Prefix: "/api", Role: ""},
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("registry"))

	// --- Dependencies ---
	tokens := token.NewProvider(cfg.JWT.Secret, cfg.JWT.TTL)
	userRepo := mongodb.NewUserRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.Login.MaxAttempts, cfg.Login.AttemptWindow)

	authService := service.NewAuthService(userRepo, tokens, throttle, log)
	clientService := service.NewClientService(clientRepo, service.NewClientValidation(), log)

	authHandler := handler.NewAuthHandler(authService)
	clientHandler := handler.NewClientHandler(clientService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/health", healthHandler.Liveness)        // process-only probe
	e.GET("/health/ready", healthHandler.Readiness) // also checks Mongo and Redis
	e.GET("/metrics", echoprometheus.NewHandler())  // Prometheus scrape endpoint
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Authenticated API ---
	apiGroup := e.Group("/api", middleware.Auth(tokens), middleware.Authorize(routePolicies))
	clients := apiGroup.Group("/v1/clients")
	clients.POST("", clientHandler.Create)
	clients.GET("", clientHandler.List)
	clients.GET("/metrics", clientHandler.Metrics)
	clients.PUT("/:id", clientHandler.Update)
	clients.DELETE("/:id", clientHandler.Delete)

	return e
}
