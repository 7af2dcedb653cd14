package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// DatabasePath is the SQLite database file.
	DatabasePath string

	// ArchiveBaseURL is the historical weather archive endpoint.
	ArchiveBaseURL string

	// ArchiveTimeout bounds each outbound archive request.
	ArchiveTimeout time.Duration

	// FetchDays is how many past calendar days /weather-report ingests.
	FetchDays int

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.DatabasePath = getenvDefault("DATABASE_PATH", "weather.db")
	cfg.ArchiveBaseURL = getenvDefault("ARCHIVE_API_URL", "https://archive-api.open-meteo.com/v1/archive")

	timeoutStr := getenvDefault("ARCHIVE_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid ARCHIVE_TIMEOUT: %w", err)
	}
	cfg.ArchiveTimeout = timeout

	cfg.FetchDays = getenvInt("FETCH_DAYS", 2)
	if cfg.FetchDays < 1 {
		return nil, fmt.Errorf("FETCH_DAYS must be at least 1")
	}

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
