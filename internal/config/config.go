package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	API APIConfig
}

type APIConfig struct {
	BaseURL    string
	APIKey     string
	Locale     string
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
}

const (
	defaultTimeoutMs    = 30000
	defaultRetries      = 3
	defaultRetryDelayMs = 1000
	defaultLocale       = "en"
)

func LoadConfig() (*Config, error) {
	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}

	timeoutMs, err := intEnv("API_TIMEOUT_MS", defaultTimeoutMs)
	if err != nil {
		return nil, err
	}
	retries, err := intEnv("API_RETRIES", defaultRetries)
	if err != nil {
		return nil, err
	}
	retryDelayMs, err := intEnv("API_RETRY_DELAY_MS", defaultRetryDelayMs)
	if err != nil {
		return nil, err
	}

	locale := os.Getenv("DEFAULT_LOCALE")
	if locale == "" {
		locale = defaultLocale
	}

	apiConfig := APIConfig{
		BaseURL:    baseURL,
		APIKey:     os.Getenv("API_KEY"),
		Locale:     locale,
		Timeout:    time.Duration(timeoutMs) * time.Millisecond,
		Retries:    retries,
		RetryDelay: time.Duration(retryDelayMs) * time.Millisecond,
	}

	return &Config{
		API: apiConfig,
	}, nil
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", key)
	}
	return value, nil
}
