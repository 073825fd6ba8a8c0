package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"propertyhub/internal/cache"
	"propertyhub/internal/config"
	"propertyhub/internal/handler"
	"propertyhub/internal/repository"
	"propertyhub/internal/seed"
	"propertyhub/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// store is the persistence surface the server needs
type store interface {
	service.PropertyStore
	service.LeadStore
	seed.Store
}

func main() {
	// Print version info
	log.Printf("PropertyHub")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	ctx := context.Background()

	// Initialize storage
	var repo store
	if cfg.Database.Driver == "memory" {
		memory := repository.NewMemoryRepository()
		n, err := seed.Run(ctx, memory, time.Now().UTC())
		if err != nil {
			log.Fatalf("Failed to seed in-memory catalog: %v", err)
		}
		repo = memory
		log.Printf("✅ Using in-memory storage with %d demo properties", n)
	} else {
		sqlRepo, err := repository.NewSQLRepository(
			cfg.Database.Driver,
			cfg.GetDSN(),
			cfg.Database.MaxConnections,
			cfg.Database.MaxIdleConnections,
		)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer sqlRepo.Close()

		if cfg.Database.AutoMigrate {
			if err := sqlRepo.Migrate(ctx); err != nil {
				log.Fatalf("Failed to run migrations: %v", err)
			}
			log.Println("✅ Database migrations applied")
		}
		repo = sqlRepo
		log.Printf("✅ Connected to %s database", cfg.Database.Driver)
	}

	// Initialize property cache
	var propertyCache service.PropertyCache
	if cfg.Cache.Enabled {
		c, err := cache.NewPropertyCache(cfg.Cache.MaxItems, cfg.Cache.TTL)
		if err != nil {
			log.Fatalf("Failed to create property cache: %v", err)
		}
		defer c.Close()
		propertyCache = c
		log.Printf("✅ Property cache enabled")
		log.Printf("   - Max items: %d", cfg.Cache.MaxItems)
		log.Printf("   - TTL: %s", cfg.Cache.TTL)
	} else {
		log.Println("⚠️  Property cache is disabled - every lookup hits the database")
	}

	// Initialize services
	listingService := service.NewListingService(repo, propertyCache)
	chatService := service.NewChatService(listingService)
	leadService := service.NewLeadService(repo)

	log.Println("✅ Services initialized")

	// Initialize handlers
	listingHandler := handler.NewListingHandler(listingService, cfg.Listing.DefaultPageSize, cfg.Listing.MaxPageSize)
	chatHandler := handler.NewChatHandler(chatService)
	leadHandler := handler.NewLeadHandler(leadService)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = splitList(cfg.Server.AllowedOrigins)
	corsConfig.AllowMethods = splitList(cfg.Server.AllowedMethods)
	corsConfig.AllowHeaders = splitList(cfg.Server.AllowedHeaders)
	router.Use(cors.New(corsConfig))

	// Campaign attribution
	router.Use(handler.UTMCookies(cfg.Server.UTMCookieDays))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "propertyhub",
			"database":   cfg.Database.Driver,
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	handler.RegisterRoutes(router.Group("/api/v1"), listingHandler, chatHandler, leadHandler)

	// Serve static files (frontend)
	setupStaticFiles(router, cfg.Server.StaticDir)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)
	log.Printf("📝 API: http://localhost:%d/api/v1/listings", cfg.Server.Port)

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("✅ Server stopped")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
