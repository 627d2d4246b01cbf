package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envVars = []string{
	"DATABASE_PATH", "HTTP_ADDR", "CORS_ORIGINS", "GENERATE_RATE_PER_MINUTE", "SHUTDOWN_TIMEOUT",
	"LLM_PROVIDER", "LLM_MODEL", "ANTHROPIC_API_KEY", "GEMINI_API_KEY", "SCRIPTURE_PATH",
	"LOG_LEVEL", "LOG_MODE",
}

// clearEnv blanks every variable Load reads; empty values fall back to defaults.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range envVars {
		t.Setenv(v, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "data/selah.db", cfg.DatabasePath)
		assert.Equal(t, ":8080", cfg.HTTPAddr)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
		assert.Equal(t, 30, cfg.GenerateRatePerMinute)
		assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
		assert.Equal(t, ProviderAnthropic, cfg.LLMProvider)
		assert.Empty(t, cfg.LLMModel)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "dev", cfg.LogMode)
	})

	t.Run("custom values", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DATABASE_PATH", "/custom/path.db")
		t.Setenv("LLM_PROVIDER", "Gemini")
		t.Setenv("GEMINI_API_KEY", "g-test")
		t.Setenv("CORS_ORIGINS", "https://selah.app, http://localhost:5173 ,")
		t.Setenv("GENERATE_RATE_PER_MINUTE", "0")
		t.Setenv("SHUTDOWN_TIMEOUT", "1m")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "/custom/path.db", cfg.DatabasePath)
		assert.Equal(t, ProviderGemini, cfg.LLMProvider)
		assert.Equal(t, "g-test", cfg.APIKey())
		assert.Equal(t, []string{"https://selah.app", "http://localhost:5173"}, cfg.CORSOrigins)
		assert.Equal(t, 0, cfg.GenerateRatePerMinute)
		assert.Equal(t, time.Minute, cfg.ShutdownTimeout)
	})

	t.Run("invalid rate", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GENERATE_RATE_PER_MINUTE", "lots")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GENERATE_RATE_PER_MINUTE")
	})

	t.Run("negative rate", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GENERATE_RATE_PER_MINUTE", "-1")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("invalid duration", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
	})
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, (&Config{DatabasePath: "x.db"}).Validate())
	assert.Error(t, (&Config{}).Validate())
}

func TestConfig_ValidateForGeneration(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "anthropic with key", cfg: Config{LLMProvider: ProviderAnthropic, AnthropicAPIKey: "k"}},
		{name: "anthropic without key", cfg: Config{LLMProvider: ProviderAnthropic}, wantErr: "ANTHROPIC_API_KEY"},
		{name: "empty provider means anthropic", cfg: Config{}, wantErr: "ANTHROPIC_API_KEY"},
		{name: "gemini with key", cfg: Config{LLMProvider: ProviderGemini, GeminiAPIKey: "k"}},
		{name: "gemini without key", cfg: Config{LLMProvider: ProviderGemini, AnthropicAPIKey: "k"}, wantErr: "GEMINI_API_KEY"},
		{name: "static needs nothing", cfg: Config{LLMProvider: ProviderStatic}},
		{name: "unknown provider", cfg: Config{LLMProvider: "oracle"}, wantErr: "invalid LLM_PROVIDER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.ValidateForGeneration()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_ValidateForServe(t *testing.T) {
	cfg := Config{DatabasePath: "x.db", HTTPAddr: ":8080", LLMProvider: ProviderStatic}
	assert.NoError(t, cfg.ValidateForServe())

	cfg.HTTPAddr = ""
	assert.ErrorContains(t, cfg.ValidateForServe(), "HTTP_ADDR")

	cfg = Config{HTTPAddr: ":8080", LLMProvider: ProviderStatic}
	assert.ErrorContains(t, cfg.ValidateForServe(), "DATABASE_PATH")
}

func TestConfig_APIKey(t *testing.T) {
	cfg := Config{LLMProvider: ProviderAnthropic, AnthropicAPIKey: "a", GeminiAPIKey: "g"}
	assert.Equal(t, "a", cfg.APIKey())
	cfg.LLMProvider = ProviderGemini
	assert.Equal(t, "g", cfg.APIKey())
}
