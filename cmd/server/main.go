package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"book_market/internal/api"        // Custom package for API handlers
	"book_market/internal/config"     // Custom package for configuration
	"book_market/internal/db"         // Custom package for database bootstrap
	"book_market/internal/middleware" // Custom package for middleware
	"book_market/internal/onboarding" // Seller onboarding store
	"book_market/internal/store"      // User store

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database: primary target from configuration, with a
	// single local fallback attempt in development mode
	gdb, err := db.Connect(cfg.DSN(), cfg.DevMode)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client for the persisted client key-value store
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	users := store.NewGormUserStore(gdb)        // User identity store
	kv := onboarding.NewRedisStore(redisClient) // Seller/session key-value store

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	r.POST("/user", api.RegisterHandler(users))            // Registration endpoint
	r.GET("/user", api.LoginHandler(users, cfg.JWTSecret)) // Login endpoint

	// Seller onboarding routes (protected by JWT)
	sellerGroup := r.Group("/seller")
	sellerGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	sellerGroup.GET("", api.SellerStateHandler(kv))     // Onboarding state endpoint
	sellerGroup.POST("", api.SellerRegisterHandler(kv)) // Seller registration endpoint

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/admin")
	// Protect admin routes with JWT and AdminOnly middleware
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware())
	adminGroup.GET("/users", api.ListUsersHandler(users)) // List users endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
