package llm

import (
	"context"
	"sync"
)

// defaultStaticPrayer is returned by the static generator when no text is set.
const defaultStaticPrayer = `---PRAYER_START---
May this moment hold you gently.
May your breath be steady and your path be lit.
May you find shelter where you need it, and peace where you seek it.
---PRAYER_END---`

// Static is a deterministic generator for local development and tests.
// It records the requests it receives.
type Static struct {
	text string
	err  error

	mu       sync.Mutex
	requests []GenerateRequest
}

// NewStatic returns a generator that always answers with text.
// Empty text uses a built-in prayer wrapped in the delimiters.
func NewStatic(text string) *Static {
	if text == "" {
		text = defaultStaticPrayer
	}
	return &Static{text: text}
}

// NewFailing returns a generator that always fails with err.
func NewFailing(err error) *Static {
	return &Static{err: err}
}

// Name returns the provider name.
func (s *Static) Name() string { return ProviderStatic }

// Generate returns the configured text or error.
func (s *Static) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}

	model := req.Model
	if model == "" {
		model = ProviderStatic
	}
	return &GenerateResponse{Text: s.text, Model: model}, nil
}

// Requests returns a copy of the requests seen so far.
func (s *Static) Requests() []GenerateRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]GenerateRequest(nil), s.requests...)
}
