package main

import (
	"context" // context package is needed for Redis and Gemini setup
	"os"      // Exit codes

	"retirement_planner/internal/advisor"    // Gemini recommendations
	"retirement_planner/internal/api"        // Custom package for API handlers
	"retirement_planner/internal/config"     // Custom package for configuration
	"retirement_planner/internal/db"         // Database connection
	"retirement_planner/internal/middleware" // Custom package for middleware
	"retirement_planner/internal/store"      // Repositories
	"retirement_planner/internal/utils"      // Cache

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration
	log := logrus.StandardLogger()

	// Setup logger
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET must be set")
	}

	// Connect to the database
	database, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	sqlDB, err := database.DB()
	if err != nil {
		logrus.Fatalf("failed to access DB pool: %v", err)
	}
	defer sqlDB.Close()

	health := map[string]api.HealthCheck{"database": sqlDB.PingContext}

	// Setup Redis cache, skipped when no address is configured
	var cache utils.Cache = utils.NoopCache{}
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		defer redisClient.Close()
		// Test Redis connection
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		cache = utils.NewRedisCache(redisClient, cfg.CacheTTL)
		health["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}

	// Gemini advisor, optional
	var adv api.Advisor
	if cfg.GeminiAPIKey != "" {
		gemini, err := advisor.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logrus.Fatalf("failed to create Gemini client: %v", err)
		}
		defer gemini.Close()
		adv = gemini
	} else {
		logrus.Warn("GEMINI_API_KEY not set, AI reports disabled")
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	api.RegisterRoutes(r, api.Dependencies{
		Users:     store.NewUserStore(database),
		Scenarios: store.NewScenarioStore(database),
		Roth:      store.NewRothStore(database),
		Cache:     cache,
		Advisor:   adv,
		Auth: api.AuthSettings{
			JWTSecret:    cfg.JWTSecret,
			CookieName:   cfg.CookieName,
			OwnerEmail:   cfg.OwnerEmail,
			SecureCookie: cfg.IsProd,
		},
		Health: health,
	})

	logrus.WithField("port", cfg.AppPort).Info("Server running") // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil {             // Start the server on port cfg.AppPort
		logrus.Errorf("server stopped: %v", err)
		os.Exit(1)
	}
}
