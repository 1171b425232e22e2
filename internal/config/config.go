// Package config provides application configuration through environment variables.
package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// SecretKeyBytes is the required length of the decoded password encryption key.
const SecretKeyBytes = 32

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int

	// MongoURI is the MongoDB connection string.
	MongoURI string
	// MongoDatabase is the database name holding the clinic collections.
	MongoDatabase string
	// MongoConnectTimeout is the timeout for establishing the initial connection.
	MongoConnectTimeout time.Duration

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// SecretKeyHex is the hex-encoded 32-byte key used to encrypt stored passwords.
	SecretKeyHex string
	// JWTSecret is the signing secret for session tokens.
	JWTSecret string

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost: env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort: env.GetInt("SERVER_PORT", 4000),

		// Database configuration
		MongoURI:            env.GetString("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:       env.GetString("MONGODB_DATABASE", "clinic"),
		MongoConnectTimeout: env.GetDuration("MONGODB_CONNECT_TIMEOUT_SECONDS", 10, time.Second),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Secret material
		SecretKeyHex: env.GetString("SECRET_KEY", ""),
		JWTSecret:    env.GetString("JWT_SECRET", ""),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", true),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "clinic"),
		MetricsPort:      env.GetInt("METRICS_PORT", 4001),
	}
}

// Validate checks the secret material the process must not start without.
// The encryption key has to decode to exactly 32 bytes and the JWT signing
// secret has to be present.
func (c *Config) Validate() error {
	if c.SecretKeyHex == "" {
		return fmt.Errorf("SECRET_KEY environment variable is required")
	}

	key, err := hex.DecodeString(c.SecretKeyHex)
	if err != nil {
		return fmt.Errorf("SECRET_KEY must be a valid hex string: %w", err)
	}
	if len(key) != SecretKeyBytes {
		return fmt.Errorf("SECRET_KEY must decode to exactly %d bytes, got %d", SecretKeyBytes, len(key))
	}

	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is required")
	}

	return nil
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	case "info", "warn", "error":
		return "release"
	default:
		return "release"
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envFile := filepath.Join(dir, ".env")
		if _, err := os.Stat(envFile); err == nil {
			_ = godotenv.Load(envFile)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
