package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openfiscal/notafiscal-api/internal/application/service"
	"github.com/openfiscal/notafiscal-api/internal/config"
	"github.com/openfiscal/notafiscal-api/internal/infrastructure/database"
	"github.com/openfiscal/notafiscal-api/internal/infrastructure/repository"
	"github.com/openfiscal/notafiscal-api/internal/nfce"
	"github.com/openfiscal/notafiscal-api/internal/presentation/http/handler"
	"github.com/openfiscal/notafiscal-api/internal/presentation/http/routes"
	"github.com/openfiscal/notafiscal-api/internal/upstream"
	"github.com/openfiscal/notafiscal-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	tokenRepo := repository.NewTokenRepository(db)
	importRepo := repository.NewInvoiceImportRepository(db)

	// Initialize upstream clients
	userClient := upstream.NewUserClient(cfg.Upstream)
	productClient := upstream.NewProductClient(cfg.Upstream)

	// Initialize the invoice extraction pipeline
	fetcher := nfce.NewFetcher(cfg.NFCe)
	extractor := nfce.NewExtractor(fetcher)

	// Initialize services
	authService := service.NewAuthService(userClient, tokenRepo, jwtManager)
	userService := service.NewUserService(userClient, jwtManager)
	productService := service.NewProductService(productClient, jwtManager)
	invoiceService := service.NewInvoiceService(extractor, productClient, importRepo, jwtManager)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		User:    handler.NewUserHandler(userService),
		Product: handler.NewProductHandler(productService),
		Invoice: handler.NewInvoiceHandler(invoiceService),
	}

	// Periodically drop revocation entries for tokens that have expired
	// anyway.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := tokenRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("Warning: failed to prune expired tokens: %v", err)
			}
		}
	}()

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:  jwtManager,
		Cfg:         cfg,
		Revocations: tokenRepo,
	})

	// Start server
	log.Printf("Starting %s on port %s", cfg.App.Name, cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
