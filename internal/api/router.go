package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/ser-kenya/ser-api/docs"
	"github.com/ser-kenya/ser-api/internal/api/handler"
	"github.com/ser-kenya/ser-api/internal/api/middleware"
	"github.com/ser-kenya/ser-api/internal/core/domain"
	"github.com/ser-kenya/ser-api/internal/core/service"
	"github.com/ser-kenya/ser-api/internal/infrastructure/config"
	mongodb "github.com/ser-kenya/ser-api/internal/infrastructure/db/mongo"
	redisdb "github.com/ser-kenya/ser-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, listCache *redisdb.ListCache, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
	}))
	e.Use(echoprometheus.NewMiddleware("ser"))

	// --- Dependencies ---
	authRepo := mongodb.NewAuthRepository(db)
	contentRepo := mongodb.NewContentRepository(db)

	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.TokenTTL)
	contentService := service.NewContentService(contentRepo, listCache, log)

	authHandler := handler.NewAuthHandler(authService)
	contentHandler := handler.NewContentHandler(contentService)

	requireAuth := middleware.Auth(cfg.JWTSecret)
	requireAdmin := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, requireAuth)

	// --- Content routes: public lists, admin-only creation ---
	api := e.Group("/api")
	api.GET("/products", contentHandler.ListProducts)
	api.POST("/products", contentHandler.CreateProduct, requireAuth, requireAdmin)
	api.GET("/events", contentHandler.ListEvents)
	api.POST("/events", contentHandler.CreateEvent, requireAuth, requireAdmin)
	api.GET("/posts", contentHandler.ListPosts)
	api.POST("/posts", contentHandler.CreatePost, requireAuth, requireAdmin)
	api.GET("/gallery", contentHandler.ListGallery)
	api.POST("/gallery", contentHandler.CreateGalleryItem, requireAuth, requireAdmin)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/api/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
