package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Data     DataConfig
}

// DatabaseConfig holds the sqlite settings.
type DatabaseConfig struct {
	Path string
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port string
	Mode string
}

// DataConfig holds the dataset ingest settings.
type DataConfig struct {
	// Dir is the directory containing the per-category JSON datasets
	// (webbings.json, weblocks.json, ...).
	Dir string
	// FallbackCurrency is used when a record carries a price but no
	// recognizable currency code.
	FallbackCurrency string
}

// Load reads configuration from the environment, with a .env file as
// an optional source.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "slackdata.db"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Mode: getEnv("GIN_MODE", "debug"),
		},
		Data: DataConfig{
			Dir:              getEnv("DATA_DIR", "data"),
			FallbackCurrency: getEnv("FALLBACK_CURRENCY", "EUR"),
		},
	}
}

// DatasetPath returns the path of a category's JSON dataset.
func (c *Config) DatasetPath(filename string) string {
	return filepath.Join(c.Data.Dir, filename)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
