package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"griya/mdp/internal/routes"
)

// DefaultMongoURI is the local development database.
const DefaultMongoURI = "mongodb://localhost:27017/PAWII-SI"

// Config holds all configuration for the application.
type Config struct {
	// App variant: "catalog" or "cv". Set via flag, falls back to env.
	App string

	// MongoDB
	MongoURI    string
	MongoDbName string

	// Redis (optional, holds pending delete confirmations when set)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Server
	ApiPort       string
	AllowedOrigin string

	// Catalog
	SeedSource string // "static" or "mongo"
	ConfirmTTL time.Duration

	// Rate limiting
	RateLimitBucketSize int
	RateLimitRefillRate int // tokens per second
}

// Load configuration from environment variables.
// app comes from the command line and wins over APP when non-empty.
func Load(app string) (*Config, error) {
	// Load .env file, ignoring errors if it doesn't exist
	godotenv.Load()

	getEnv := func(key, defaultValue string) string {
		if value, exists := os.LookupEnv(key); exists {
			return value
		}
		return defaultValue
	}

	cfg := &Config{App: app}
	if cfg.App == "" {
		cfg.App = getEnv("APP", "catalog")
	}
	if _, err := routes.ForApp(cfg.App); err != nil {
		return nil, err
	}

	var err error

	cfg.MongoURI = getEnv("MONGO_URI", DefaultMongoURI)
	cfg.MongoDbName = getEnv("MONGO_DB_NAME", "")
	if cfg.MongoDbName == "" {
		cs, err := connstring.ParseAndValidate(cfg.MongoURI)
		if err != nil {
			return nil, fmt.Errorf("invalid MONGO_URI: %w", err)
		}
		cfg.MongoDbName = cs.Database
	}
	if cfg.MongoDbName == "" {
		return nil, fmt.Errorf("no database name: set MONGO_DB_NAME or include it in MONGO_URI")
	}

	cfg.RedisAddr = getEnv("REDIS_ADDR", "")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg.ApiPort = getEnv("API_PORT", "8080")
	cfg.AllowedOrigin = getEnv("ALLOWED_ORIGIN", "*")

	cfg.SeedSource = getEnv("SEED_SOURCE", "static")
	if cfg.SeedSource != "static" && cfg.SeedSource != "mongo" {
		return nil, fmt.Errorf("invalid SEED_SOURCE %q: expected static or mongo", cfg.SeedSource)
	}

	confirmTTLSeconds, err := strconv.ParseInt(getEnv("CONFIRM_TTL_SECONDS", "120"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid CONFIRM_TTL_SECONDS: %w", err)
	}
	if confirmTTLSeconds <= 0 {
		return nil, fmt.Errorf("invalid CONFIRM_TTL_SECONDS %d: must be positive", confirmTTLSeconds)
	}
	cfg.ConfirmTTL = time.Duration(confirmTTLSeconds) * time.Second

	cfg.RateLimitBucketSize, err = strconv.Atoi(getEnv("RATE_LIMIT_BUCKET_SIZE", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BUCKET_SIZE: %w", err)
	}
	cfg.RateLimitRefillRate, err = strconv.Atoi(getEnv("RATE_LIMIT_REFILL_RATE", "4"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_REFILL_RATE: %w", err)
	}

	return cfg, nil
}
