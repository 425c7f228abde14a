package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string
	LogLevel    string
	Port        string
	DatabaseURL string
	MaxResults  int
	Amadeus     AmadeusConfig
}

// Credentials are passed explicitly to the offer provider; nothing else reads them.
type AmadeusConfig struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
}

// Configured reports whether both credentials are present.
func (a AmadeusConfig) Configured() bool {
	return a.ClientID != "" && a.ClientSecret != ""
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	maxResults := 3
	if raw := strings.TrimSpace(os.Getenv("MAX_RESULTS")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 250 {
			return nil, fmt.Errorf("load config: MAX_RESULTS must be an integer between 1 and 250, got %q", raw)
		}
		maxResults = v
	}

	return &Config{
		Env:         Get("APP_ENV", "production"),
		LogLevel:    Get("LOG_LEVEL", ""),
		Port:        Get("PORT", "8080"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		MaxResults:  maxResults,
		Amadeus: AmadeusConfig{
			ClientID:     strings.TrimSpace(os.Getenv("AMADEUS_CLIENT_ID")),
			ClientSecret: strings.TrimSpace(os.Getenv("AMADEUS_CLIENT_SECRET")),
			BaseURL:      Get("AMADEUS_BASE_URL", "https://test.api.amadeus.com"),
		},
	}, nil
}

// Get returns the trimmed value of key, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
