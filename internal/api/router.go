package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/hunter122526/quantum2017/internal/api/handler"
	"github.com/hunter122526/quantum2017/internal/api/middleware"
	"github.com/hunter122526/quantum2017/internal/core/ports"
	"github.com/hunter122526/quantum2017/internal/core/service"
	"github.com/hunter122526/quantum2017/internal/core/token"
	"github.com/hunter122526/quantum2017/internal/infrastructure/db/postgres"
	redisdb "github.com/hunter122526/quantum2017/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	pool *pgxpool.Pool,
	rdb *goredis.Client,
	tokens *token.Service,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("quantum"))

	// --- Dependencies ---
	users := postgres.NewUserRepository(pool)
	subs := postgres.NewSubscriptionRepository(pool)
	revoker := redisdb.NewRevocationStore(rdb)

	authService := service.NewAuthService(users, subs, tokens, revoker, audit, log)
	adminService := service.NewAdminService(users, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(adminService)
	catalogHandler := handler.NewCatalogHandler()

	authRequired := middleware.Auth(tokens, revoker)
	adminOnly := middleware.AdminOnly(tokens, revoker)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout, authRequired)
	auth.GET("/verify", authHandler.Verify, authRequired)

	// --- Admin routes ---
	admin := e.Group("/api/admin/users", adminOnly)
	admin.GET("/:id", adminHandler.Get)
	admin.PUT("/:id", adminHandler.Update)
	admin.DELETE("/:id", adminHandler.Delete)

	// --- Catalog routes (public marketing data) ---
	cat := e.Group("/api/catalog")
	cat.GET("/traders", catalogHandler.Traders)
	cat.GET("/instruments", catalogHandler.Instruments)
	cat.GET("/awards", catalogHandler.Awards)
	cat.GET("/benefits", catalogHandler.Benefits)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
