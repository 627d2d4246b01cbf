// Package composer turns wizard answers into a generated prayer paired with a
// matching scripture passage.
package composer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/abdulachik/selah/internal/llm"
	"github.com/abdulachik/selah/internal/prompt"
	"github.com/abdulachik/selah/internal/scripture"
)

// Composer orchestrates resolution, scripture matching and generation.
// It holds no per-request state and is safe for concurrent use.
type Composer struct {
	generator llm.Generator
	corpus    *scripture.Corpus
	pick      scripture.Picker
	model     string
}

// Config holds configuration for the composer.
type Config struct {
	Generator llm.Generator
	Corpus    *scripture.Corpus // default: embedded corpus
	Pick      scripture.Picker  // default: uniform random
	Model     string            // default: the generator's model
}

// New creates a new Composer.
func New(cfg Config) *Composer {
	corpus := cfg.Corpus
	if corpus == nil {
		corpus = scripture.Default()
	}

	pick := cfg.Pick
	if pick == nil {
		pick = scripture.RandomPicker
	}

	return &Composer{
		generator: cfg.Generator,
		corpus:    corpus,
		pick:      pick,
		model:     cfg.Model,
	}
}

// Compose generates a prayer for req. The only error is a failed generation
// call, in which case any matched scripture is discarded.
func (c *Composer) Compose(ctx context.Context, req Request) (*Result, error) {
	resolved := Resolve(req)
	instruction := prompt.Build(resolved.Prompt)

	var (
		record  scripture.Record
		matched bool
		raw     string
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		record, matched = c.corpus.Select(resolved.TraditionKey, resolved.EmotionToken, resolved.IntentionToken, c.pick)
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		resp, err := c.generator.Generate(gctx, llm.GenerateRequest{
			Model:           c.model,
			Prompt:          instruction,
			MaxOutputTokens: prompt.MaxOutputTokens,
			Temperature:     prompt.Temperature,
			TopP:            prompt.TopP,
		})
		if err != nil {
			return fmt.Errorf("generate prayer: %w", err)
		}
		slog.DebugContext(ctx, "prayer generated",
			"provider", c.generator.Name(),
			"model", resp.Model,
			"duration", time.Since(start).Round(time.Millisecond),
		)
		raw = resp.Text
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Prayer: prompt.ExtractPrayer(raw)}
	if matched {
		result.ScriptureQuote = record.Text
		result.ScriptureSource = record.Source
		result.ScriptureExplanation = prompt.Explanation(resolved.Prompt.Emotion, resolved.Prompt.Intention)
	}

	slog.DebugContext(ctx, "prayer composed",
		"tradition", resolved.TraditionKey,
		"scripture", record.Source,
		"prayer_type", resolved.Prompt.PrayerType,
	)

	return result, nil
}

// Prompt returns the instruction document that Compose would send for req.
func (c *Composer) Prompt(req Request) string {
	return prompt.Build(Resolve(req).Prompt)
}
