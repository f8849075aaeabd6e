package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("API_KEY", "")
	t.Setenv("API_TIMEOUT_MS", "")
	t.Setenv("API_RETRIES", "")
	t.Setenv("API_RETRY_DELAY_MS", "")
	t.Setenv("DEFAULT_LOCALE", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.API.BaseURL)
	assert.Equal(t, "", cfg.API.APIKey)
	assert.Equal(t, "en", cfg.API.Locale)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 3, cfg.API.Retries)
	assert.Equal(t, time.Second, cfg.API.RetryDelay)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("API_KEY", "secret")
	t.Setenv("API_TIMEOUT_MS", "5000")
	t.Setenv("API_RETRIES", "1")
	t.Setenv("API_RETRY_DELAY_MS", "250")
	t.Setenv("DEFAULT_LOCALE", "cs")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.API.APIKey)
	assert.Equal(t, "cs", cfg.API.Locale)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, 1, cfg.API.Retries)
	assert.Equal(t, 250*time.Millisecond, cfg.API.RetryDelay)
}

func TestLoadConfigRequiresBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_BASE_URL")
}

func TestLoadConfigRejectsBadNumbers(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("API_RETRIES", "many")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_RETRIES")
}

func TestLoadConfigRejectsNegativeNumbers(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("API_RETRIES", "")
	t.Setenv("API_TIMEOUT_MS", "-1")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_TIMEOUT_MS")
}
