package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Config represents the application configuration
type Config struct {
	// HTTP server configuration
	Port string

	// Scraper configuration
	SearchURL    string
	PagePause    time.Duration
	FetchTimeout time.Duration

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() Config {
	pagePause, _ := strconv.Atoi(getEnv("PAGE_PAUSE_SECONDS", "1"))
	fetchTimeout, _ := strconv.Atoi(getEnv("FETCH_TIMEOUT_SECONDS", "10"))

	return Config{
		Port:         getEnv("PORT", "8080"),
		SearchURL:    getEnv("ETSY_SEARCH_URL", "https://www.etsy.com/search?q="),
		PagePause:    time.Duration(pagePause) * time.Second,
		FetchTimeout: time.Duration(fetchTimeout) * time.Second,
		Environment:  getEnv("ETSY_ENVIRONMENT", "development"),
	}
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.SearchURL == "" {
		return fmt.Errorf("search URL must not be empty")
	}
	if _, err := url.Parse(c.SearchURL); err != nil {
		return fmt.Errorf("invalid search URL %q: %w", c.SearchURL, err)
	}
	if c.PagePause < 0 {
		return fmt.Errorf("page pause must not be negative")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
