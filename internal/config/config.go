package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	Port string
	Env  string

	DB      DatabaseConfig
	Catalog CatalogConfig
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// CatalogConfig configures the client-side catalog data-access layer.
// BaseURL, when set, overrides endpoint resolution entirely. Host is the
// host context the resolver classifies when no override is present.
type CatalogConfig struct {
	BaseURL    string
	Host       string
	BackupPath string
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.Port = getEnv("PORT", "3001")
	cfg.Env = getEnv("ENV", "development")

	// Database
	cfg.DB = DatabaseConfig{
		Host:     getEnv("DB_HOST", ""),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", ""),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", ""),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Catalog client
	cfg.Catalog = CatalogConfig{
		BaseURL:    getEnv("API_BASE_URL", ""),
		Host:       getEnv("CATALOG_HOST", "localhost"),
		BackupPath: getEnv("CATALOG_BACKUP_PATH", "catalog-backup.db"),
	}

	// Basic validation for DB parameters — keeps messages concise and helpful.
	if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.Name == "" {
		return nil, errors.New("database configuration incomplete: ensure DB_HOST, DB_USER, and DB_NAME are set")
	}

	return cfg, nil
}

// LoadClient reads only the catalog client configuration. Unlike Load it does
// not require database parameters, so a pure client process can start without
// any knowledge of the relational store.
func LoadClient() *CatalogConfig {
	_ = godotenv.Load()
	return &CatalogConfig{
		BaseURL:    getEnv("API_BASE_URL", ""),
		Host:       getEnv("CATALOG_HOST", "localhost"),
		BackupPath: getEnv("CATALOG_BACKUP_PATH", "catalog-backup.db"),
	}
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
