package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiConfig holds configuration for the Gemini client.
type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GeminiClient generates text with the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini client.
func NewGeminiClient(ctx context.Context, config GeminiConfig) (*GeminiClient, error) {
	if config.APIKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      config.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: config.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := config.Model
	if model == "" {
		model = defaultGeminiModel
	}

	return &GeminiClient{client: client, model: model}, nil
}

// Name returns the provider name.
func (c *GeminiClient) Name() string { return ProviderGemini }

// Generate calls GenerateContent with the request's sampling settings.
func (c *GeminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(req.Temperature)),
		TopP:            genai.Ptr(float32(req.TopP)),
		MaxOutputTokens: int32(req.MaxOutputTokens),
	}

	result, err := c.client.Models.GenerateContent(ctx, model, genai.Text(req.Prompt), config)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	if len(result.Candidates) > 0 {
		switch reason := result.Candidates[0].FinishReason; reason {
		case genai.FinishReasonSafety, genai.FinishReasonBlocklist, genai.FinishReasonProhibitedContent:
			slog.WarnContext(ctx, "gemini output blocked", "model", model, "finish_reason", reason)
			return nil, fmt.Errorf("content blocked (%s)", reason)
		case genai.FinishReasonMaxTokens:
			slog.WarnContext(ctx, "gemini output truncated", "model", model)
		}
	}

	text := result.Text()
	if text == "" {
		return nil, ErrEmptyResponse
	}

	return &GenerateResponse{Text: text, Model: model}, nil
}
