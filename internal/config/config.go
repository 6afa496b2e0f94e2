package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the admin console. All values come
// from the environment, optionally seeded from a .env file.
type Config struct {
	// API
	APIBaseURL  string        `env:"BOOKNET_API_URL" default:"http://localhost:8080"`
	HTTPTimeout time.Duration `env:"BOOKNET_HTTP_TIMEOUT" default:"10s"`

	// Client-side rate limiting (requests per second / burst)
	RateLimit float64 `env:"BOOKNET_RATE_LIMIT" default:"10"`
	RateBurst int     `env:"BOOKNET_RATE_BURST" default:"20"`

	// Listing defaults
	DefaultPageSize int `env:"BOOKNET_PAGE_SIZE" default:"25"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`
}

// LoadConfig loads configuration from environment variables. A missing .env
// file is not an error; system environment variables still apply.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	config := &Config{}

	if err := loadEnvString(&config.APIBaseURL, "BOOKNET_API_URL", "http://localhost:8080"); err != nil {
		return nil, err
	}
	if err := loadEnvDuration(&config.HTTPTimeout, "BOOKNET_HTTP_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if err := loadEnvFloat(&config.RateLimit, "BOOKNET_RATE_LIMIT", 10); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.RateBurst, "BOOKNET_RATE_BURST", 20); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.DefaultPageSize, "BOOKNET_PAGE_SIZE", 25); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.LogLevel, "LOG_LEVEL", "info"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.LogFormat, "LOG_FORMAT", "text"); err != nil {
		return nil, err
	}

	return config, nil
}

// Helper functions for type conversion and validation
func loadEnvString(target *string, key, defaultValue string) error {
	if value := os.Getenv(key); value != "" {
		*target = value
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvInt(target *int, key string, defaultValue int) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvFloat(target *float64, key string, defaultValue float64) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid float value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvDuration(target *time.Duration, key string, defaultValue time.Duration) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

// Validate performs validation on the loaded configuration.
func (c *Config) Validate() error {
	var errors []string

	if !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		errors = append(errors, "BOOKNET_API_URL must start with http:// or https://")
	}
	if c.HTTPTimeout <= 0 {
		errors = append(errors, "BOOKNET_HTTP_TIMEOUT must be positive")
	}
	if c.RateLimit <= 0 {
		errors = append(errors, "BOOKNET_RATE_LIMIT must be positive")
	}
	if c.RateBurst < 1 {
		errors = append(errors, "BOOKNET_RATE_BURST must be at least 1")
	}
	if c.DefaultPageSize < 1 || c.DefaultPageSize > 500 {
		errors = append(errors, "BOOKNET_PAGE_SIZE must be between 1 and 500")
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, c.LogLevel) {
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of: %s", strings.Join(validLogLevels, ", ")))
	}

	validLogFormats := []string{"text", "json"}
	if !contains(validLogFormats, c.LogFormat) {
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be one of: %s", strings.Join(validLogFormats, ", ")))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errors, "; "))
	}

	return nil
}

// Helper function to check if slice contains a string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
