package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Portfolio PortfolioConfig
	Scheduler SchedulerConfig
	Secrets   SecretsConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// PortfolioConfig holds valuation defaults.
type PortfolioConfig struct {
	// DisplayCurrency is the currency every valuation and projection
	// is reported in.
	DisplayCurrency string
}

// SchedulerConfig controls the background jobs.
type SchedulerConfig struct {
	Enabled bool
	// SnapshotSpec is the cron expression for the daily portfolio
	// snapshot upsert.
	SnapshotSpec string
	// QuoteRefreshSpec is the cron expression for security price
	// refreshes.
	QuoteRefreshSpec string
}

// SecretsConfig holds the key material for settings stored encrypted.
type SecretsConfig struct {
	// FernetKey is a base64 fernet key; empty disables encrypted
	// settings.
	FernetKey string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/wealth.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Portfolio: PortfolioConfig{
			DisplayCurrency: getEnv("DISPLAY_CURRENCY", "EUR"),
		},
		Scheduler: SchedulerConfig{
			Enabled:          getEnv("SCHEDULER_ENABLED", "true") == "true",
			SnapshotSpec:     getEnv("SNAPSHOT_CRON", "0 18 * * *"),
			QuoteRefreshSpec: getEnv("QUOTE_REFRESH_CRON", "@hourly"),
		},
		Secrets: SecretsConfig{
			FernetKey: getEnv("FERNET_KEY", ""),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
