package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	ServerAddress  string
	PostgresConn   string
	DatabaseName   string
	MigrationsPath string

	JwtSecret string
	JwtTTL    time.Duration

	// rate limiting for the public auth endpoints
	RateLimitBurst     int
	RateLimitPerSecond int
	ShutdownTimeout    time.Duration
}

// Load reads configuration from the environment, with a .env file as an
// optional source for local runs.
func Load() (*Config, error) {
	godotenv.Load()

	getEnv := func(key, defaultValue string) string {
		if value, exists := os.LookupEnv(key); exists {
			return value
		}

		return defaultValue
	}

	getEnvInt := func(key string, defaultValue int) (int, error) {
		value, exists := os.LookupEnv(key)
		if !exists {
			return defaultValue, nil
		}
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid value for %s: %w", key, err)
		}

		return parsed, nil
	}

	cfg := &Config{
		ServerAddress:  getEnv("SERVER_ADDRESS", ":8080"),
		PostgresConn:   getEnv("POSTGRES_CONN", ""),
		DatabaseName:   getEnv("POSTGRES_DATABASE", "renovation"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "file://migrations"),
		JwtSecret:      getEnv("JWT_SECRET", ""),
	}

	if cfg.PostgresConn == "" {
		return nil, fmt.Errorf("POSTGRES_CONN is required")
	}
	if cfg.JwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	ttlHours, err := getEnvInt("JWT_TTL_HOURS", 24)
	if err != nil {
		return nil, err
	}
	cfg.JwtTTL = time.Duration(ttlHours) * time.Hour

	if cfg.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", 10); err != nil {
		return nil, err
	}
	if cfg.RateLimitPerSecond, err = getEnvInt("RATE_LIMIT_PER_SECOND", 2); err != nil {
		return nil, err
	}

	shutdownSeconds, err := getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 30)
	if err != nil {
		return nil, err
	}
	cfg.ShutdownTimeout = time.Duration(shutdownSeconds) * time.Second

	return cfg, nil
}
