// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"solkit/internal/domain/auth"
	"solkit/internal/domain/catalog/kit"
	"solkit/internal/domain/catalog/product"
	"solkit/internal/domain/project"
	"solkit/internal/infrastructure/http/v1/handlers"
	"solkit/internal/infrastructure/http/v1/middleware"
	"solkit/internal/infrastructure/storage/postgres"
	"solkit/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks)
	Pool *postgres.Pool

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// Services
	AuthService    *auth.Service
	ProductService *product.Service
	KitService     *kit.Service
	ProjectService *project.Service
	HistoryService *postgres.HistoryService
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, cfg)

		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		registerCatalogRoutes(protected, cfg)
		registerProjectRoutes(protected, cfg)
		registerHistoryRoutes(protected, cfg)
	}

	return router
}

// registerAuthRoutes registers authentication endpoints.
func registerAuthRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.AuthService == nil {
		return
	}

	baseHandler := handlers.NewBaseHandler()
	authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService)

	// Public auth endpoints (no JWT required)
	public := rg.Group("/auth")
	public.POST("/login", authHandler.Login)
	public.POST("/refresh", authHandler.Refresh)

	// Protected auth endpoints (JWT required)
	protected := rg.Group("/auth")
	protected.Use(middleware.Auth(cfg.JWTValidator))
	protected.POST("/logout", authHandler.Logout)
	protected.GET("/me", authHandler.Me)

	// User management is admin-only.
	protected.POST("/register", middleware.RequireRole(auth.RoleAdmin), authHandler.Register)
	protected.GET("/users", middleware.RequireRole(auth.RoleAdmin), authHandler.ListUsers)
}

// registerCatalogRoutes registers catalog endpoints. Reads are open to every
// authenticated user; catalog mutations are admin-only.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	catalog := rg.Group("/catalog")
	baseHandler := handlers.NewBaseHandler()
	adminOnly := middleware.RequireRole(auth.RoleAdmin)

	// --- PRODUCTS ---
	{
		handler := handlers.NewProductHandler(baseHandler, cfg.ProductService)
		products := catalog.Group("/products")

		products.GET("", handler.List)
		products.GET("/low-stock", handler.LowStock)
		products.GET("/:id", handler.Get)
		products.GET("/:id/pricing", handler.Pricing)

		products.POST("", adminOnly, handler.Create)
		products.PUT("/:id", adminOnly, handler.Update)
		products.DELETE("/:id", adminOnly, handler.Delete)
		products.POST("/:id/deletion-mark", adminOnly, handler.SetDeletionMark)
	}

	// --- KITS ---
	{
		handler := handlers.NewKitHandler(baseHandler, cfg.KitService)
		kits := catalog.Group("/kits")

		kits.GET("", handler.List)
		kits.GET("/:id", handler.Get)
		kits.GET("/:id/totals", handler.Totals)

		kits.POST("", adminOnly, handler.Create)
		kits.PUT("/:id", adminOnly, handler.Update)
		kits.DELETE("/:id", adminOnly, handler.Delete)
		kits.POST("/:id/deletion-mark", adminOnly, handler.SetDeletionMark)
	}
}

// registerProjectRoutes registers project endpoints. Projects belong to the
// commercial workflow, so every authenticated user may mutate them.
func registerProjectRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()
	handler := handlers.NewProjectHandler(baseHandler, cfg.ProjectService)

	projects := rg.Group("/projects")
	projects.GET("", handler.List)
	projects.GET("/:id", handler.Get)
	projects.GET("/:id/totals", handler.Totals)
	projects.GET("/:id/summary", handler.Summary)

	projects.POST("", handler.Create)
	projects.PUT("/:id", handler.Update)
	projects.DELETE("/:id", handler.Delete)
	projects.POST("/:id/status", handler.SetStatus)
}

// registerHistoryRoutes registers entity history endpoints (admin-only).
func registerHistoryRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.HistoryService == nil {
		return
	}

	baseHandler := handlers.NewBaseHandler()
	handler := handlers.NewHistoryHandler(baseHandler, cfg.HistoryService)

	history := rg.Group("/history")
	history.GET("/:entityType/:id", middleware.RequireRole(auth.RoleAdmin), handler.GetEntityHistory)
}
