package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds all runtime configuration, read from the environment.
type AppConfig struct {
	// BaseURL of the disease.sh API.
	BaseURL string

	// HTTPTimeout bounds the single outbound fetch.
	HTTPTimeout time.Duration

	// DefaultCountry is used when no -country flag is given.
	DefaultCountry string

	// LastDays is the window requested from the API ("all" or a number of
	// trailing days).
	LastDays string

	// ChartOutput is the default dashboard file path in one-shot mode.
	ChartOutput string

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg := &AppConfig{
		BaseURL:        getenvDefault("COVID_API_BASE_URL", "https://disease.sh"),
		DefaultCountry: getenvDefault("COVID_DEFAULT_COUNTRY", "USA"),
		LastDays:       getenvDefault("COVID_LASTDAYS", "all"),
		ChartOutput:    getenvDefault("CHART_OUTPUT", "covid-dashboard.html"),
		Port:           getenvDefault("PORT", "8080"),
	}

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "15s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
