package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// DefaultRandomUserURL is the public endpoint users are generated from.
const DefaultRandomUserURL = "https://random-data-api.com/api/users/random_user"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction  bool
	ProdOrigins   string
	HTTPAddr      string
	RandomUserURL string
	BatchSize     int
	FetchTimeout  time.Duration // 0 means no client timeout
	AvatarSize    int
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	return fromEnv()
}

func fromEnv() (*Config, error) {
	cfg := &Config{}
	var err error

	// Production origin (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	cfg.RandomUserURL = getEnv("RANDOM_USER_URL", DefaultRandomUserURL)
	if cfg.RandomUserURL == "" {
		return nil, fmt.Errorf("RANDOM_USER_URL must not be empty")
	}

	// Users fetched at startup (default: 80)
	cfg.BatchSize, err = getEnvAsInt("RANDOM_USER_BATCH_SIZE", 80)
	if err != nil {
		return nil, fmt.Errorf("invalid RANDOM_USER_BATCH_SIZE: %w", err)
	}
	if cfg.BatchSize < 1 {
		return nil, fmt.Errorf("RANDOM_USER_BATCH_SIZE must be at least 1, got %d", cfg.BatchSize)
	}

	// Timeout of outbound requests, parse as time.Duration (e.g. "10s").
	timeoutStr := getEnv("FETCH_TIMEOUT", "0s")
	cfg.FetchTimeout, err = time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_TIMEOUT: %w", err)
	}
	if cfg.FetchTimeout < 0 {
		return nil, fmt.Errorf("FETCH_TIMEOUT must not be negative")
	}

	// Avatar edge length in pixels (default: 150)
	cfg.AvatarSize, err = getEnvAsInt("AVATAR_SIZE", 150)
	if err != nil {
		return nil, fmt.Errorf("invalid AVATAR_SIZE: %w", err)
	}
	if cfg.AvatarSize < 1 {
		return nil, fmt.Errorf("AVATAR_SIZE must be at least 1, got %d", cfg.AvatarSize)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
// It returns the default value if the variable is not set.
// It returns an error if the variable is set but is not a valid integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}
