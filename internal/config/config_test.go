package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("RATE_LIMIT_WINDOW", "")
	t.Setenv("API_KEYS", "")

	cfg := Load()
	assert.Equal(t, "openai", cfg.LLMProvider)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, 1000, cfg.LLMMaxTokens)
	assert.InDelta(t, 0.7, cfg.LLMTemperature, 0.0001)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Nil(t, cfg.APIKeys)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("RATE_LIMIT_COUNT", "5")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("API_KEYS", "alpha, beta ,,")
	t.Setenv("MINIO_USE_SSL", "true")

	cfg := Load()
	assert.Equal(t, "gemini", cfg.LLMProvider)
	assert.Equal(t, 5, cfg.RateLimitCount)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, []string{"alpha", "beta"}, cfg.APIKeys)
	assert.True(t, cfg.MinIOUseSSL)
}

func TestValidate(t *testing.T) {
	cfg := &Config{DBHost: "db", DBUser: "postgres", DBName: "postgres", LLMProvider: "openai"}
	require.NoError(t, cfg.Validate())

	cfg.LLMProvider = "claude"
	assert.Error(t, cfg.Validate())

	cfg.LLMProvider = "openai"
	cfg.DBHost = ""
	assert.Error(t, cfg.Validate())
}

func TestMinIOEnabled(t *testing.T) {
	cfg := &Config{MinIOEndpoint: "minio:9000"}
	assert.False(t, cfg.MinIOEnabled())
	cfg.MinIOAccessKey = "a"
	cfg.MinIOSecretKey = "b"
	assert.True(t, cfg.MinIOEnabled())
}
