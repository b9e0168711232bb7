package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // For durations

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort      string        // Application port
	DBDriver     string        // Database driver: mysql or postgres
	DBUser       string        // Database user
	DBPassword   string        // Database password
	DBHost       string        // Database host
	DBPort       string        // Database port
	DBName       string        // Database name
	JWTSecret    string        // JWT secret key
	CookieName   string        // Session cookie carrying the JWT
	OwnerEmail   string        // Account that is promoted to admin on registration
	RedisAddr    string        // Redis server address, empty disables caching
	RedisPass    string        // Redis password
	RedisDB      int           // Redis database number
	CacheTTL     time.Duration // Lifetime of cached list responses
	GeminiAPIKey string        // Gemini API key, empty disables AI reports
	GeminiModel  string        // Gemini model name
	IsProd       bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:      getEnv("APP_PORT", "8080"),                                   // Application port
		DBDriver:     getEnv("DB_DRIVER", "mysql"),                                 // Database driver
		DBUser:       os.Getenv("DB_USER"),                                         // Database user
		DBPassword:   os.Getenv("DB_PASSWORD"),                                     // Database password
		DBHost:       getEnv("DB_HOST", "127.0.0.1"),                               // Database host
		DBPort:       os.Getenv("DB_PORT"),                                         // Database port
		DBName:       os.Getenv("DB_NAME"),                                         // Database name
		JWTSecret:    os.Getenv("JWT_SECRET"),                                      // JWT secret key
		CookieName:   getEnv("COOKIE_NAME", "app_session_id"),                      // Session cookie name
		OwnerEmail:   os.Getenv("OWNER_EMAIL"),                                     // Owner account email
		RedisAddr:    os.Getenv("REDIS_ADDR"),                                      // Redis server address
		RedisPass:    os.Getenv("REDIS_PASS"),                                      // Redis password
		RedisDB:      getInt("REDIS_DB", 0),                                        // Redis database number
		CacheTTL:     time.Duration(getInt("CACHE_TTL_SECONDS", 60)) * time.Second, // Cache lifetime
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),                                  // Gemini API key
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),                   // Gemini model
		IsProd:       os.Getenv("IS_PROD") == "true",                               // Is production environment
	}
}

// getEnv returns the variable or a fallback when it is unset or empty
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getInt parses an integer variable, falling back on absence or parse errors
func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
