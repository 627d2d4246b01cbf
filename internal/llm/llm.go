// Package llm wraps the text-generation services a prayer can be composed with.
package llm

import (
	"context"
	"errors"
	"fmt"
)

// Providers understood by New.
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
	ProviderStatic    = "static"
)

// ErrEmptyResponse is returned when the service answers without any text.
var ErrEmptyResponse = errors.New("empty response from API")

// GenerateRequest holds the parameters for a single generation call.
type GenerateRequest struct {
	Model           string // empty uses the generator's default
	Prompt          string
	MaxOutputTokens int
	Temperature     float64
	TopP            float64
}

// GenerateResponse holds the raw generated text.
type GenerateResponse struct {
	Text  string
	Model string
}

// Generator produces text from a prompt. Implementations do not retry.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Name identifies the provider for logs and health reporting.
	Name() string
}

// Config selects and configures a provider.
type Config struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string // for tests and proxies
}

// New builds the generator for cfg.Provider.
func New(ctx context.Context, cfg Config) (Generator, error) {
	switch cfg.Provider {
	case ProviderAnthropic, "":
		return NewAnthropicClient(AnthropicConfig{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		}), nil
	case ProviderGemini:
		client, err := NewGeminiClient(ctx, GeminiConfig{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	case ProviderStatic:
		return NewStatic(""), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
