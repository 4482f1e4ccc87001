// Package config provides configuration management for the blog-api service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the blog-api service.
type Config struct {
	// Server settings
	Port string

	// Database settings
	DatabaseURL    string
	MigrationsPath string

	// Auth settings
	JWTSecret  string
	TokenTTL   time.Duration
	RefreshTTL time.Duration
	AuthDebug  bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Port: getEnv("BLOG_API_PORT", "4020"),

		DatabaseURL:    getEnv("DATABASE_URL", ""),
		MigrationsPath: getEnv("BLOG_MIGRATIONS_PATH", "./migrations"),

		JWTSecret:  getEnv("JWT_SECRET", ""),
		TokenTTL:   getEnvDuration("JWT_TOKEN_TTL", time.Hour),
		RefreshTTL: getEnvDuration("JWT_REFRESH_TTL", 7*24*time.Hour),
		AuthDebug:  getEnvBool("BLOG_AUTH_DEBUG", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
