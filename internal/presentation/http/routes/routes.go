package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openfiscal/notafiscal-api/internal/config"
	"github.com/openfiscal/notafiscal-api/internal/presentation/http/handler"
	"github.com/openfiscal/notafiscal-api/internal/presentation/http/middleware"
	"github.com/openfiscal/notafiscal-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Product *handler.ProductHandler
	Invoice *handler.InvoiceHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager  *utils.JWTManager
	Cfg         *config.Config
	Revocations middleware.RevocationChecker
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.POST("/auth/login", h.Auth.Login)
		v1.POST("/users", h.User.Register)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager, deps.Revocations))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/auth/verify", h.Auth.Verify)

	// Users
	protected.GET("/users", h.User.List)

	// Products
	protected.GET("/products", h.Product.List)
	protected.PUT("/products/:id", h.Product.Update)
	protected.DELETE("/products/:id", h.Product.Delete)

	// Invoices
	protected.POST("/invoices", h.Invoice.Import)
	protected.GET("/invoices", h.Invoice.History)
}
