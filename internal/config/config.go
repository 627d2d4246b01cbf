package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Generation providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
	ProviderStatic    = "static"
)

// Config holds all application configuration.
type Config struct {
	// Database
	DatabasePath string

	// HTTP
	HTTPAddr              string
	CORSOrigins           []string
	GenerateRatePerMinute int
	ShutdownTimeout       time.Duration

	// Generation
	LLMProvider     string
	LLMModel        string // empty means the provider default
	AnthropicAPIKey string
	GeminiAPIKey    string

	// Scripture corpus override; empty uses the embedded corpus
	ScripturePath string

	// Logging
	LogLevel string
	LogMode  string
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		DatabasePath:    getEnv("DATABASE_PATH", "data/selah.db"),
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		CORSOrigins:     splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		LLMProvider:     strings.ToLower(getEnv("LLM_PROVIDER", ProviderAnthropic)),
		LLMModel:        getEnv("LLM_MODEL", ""),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		ScripturePath:   getEnv("SCRIPTURE_PATH", ""),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogMode:         getEnv("LOG_MODE", "dev"),
	}

	rate, err := strconv.Atoi(getEnv("GENERATE_RATE_PER_MINUTE", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid GENERATE_RATE_PER_MINUTE: %w", err)
	}
	if rate < 0 {
		return nil, fmt.Errorf("invalid GENERATE_RATE_PER_MINUTE: %d is negative", rate)
	}
	cfg.GenerateRatePerMinute = rate

	cfg.ShutdownTimeout, err = time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	return nil
}

// ValidateForGeneration checks the provider and its credentials.
func (c *Config) ValidateForGeneration() error {
	switch c.LLMProvider {
	case ProviderAnthropic, "":
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required when LLM_PROVIDER is anthropic")
		}
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when LLM_PROVIDER is gemini")
		}
	case ProviderStatic:
	default:
		return fmt.Errorf("invalid LLM_PROVIDER: %s (must be 'anthropic', 'gemini' or 'static')", c.LLMProvider)
	}
	return nil
}

// ValidateForServe checks all configuration needed for serve mode.
func (c *Config) ValidateForServe() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR is required")
	}
	return c.ValidateForGeneration()
}

// APIKey returns the credential for the configured provider.
func (c *Config) APIKey() string {
	if c.LLMProvider == ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.AnthropicAPIKey
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
