package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abdulachik/selah/internal/composer"
	"github.com/abdulachik/selah/internal/config"
	"github.com/abdulachik/selah/internal/db"
	"github.com/abdulachik/selah/internal/health"
	"github.com/abdulachik/selah/internal/llm"
	"github.com/abdulachik/selah/internal/scripture"
)

// loadCorpus returns the corpus at SCRIPTURE_PATH, or the embedded one.
func loadCorpus(cfg *config.Config) (*scripture.Corpus, error) {
	if cfg.ScripturePath == "" {
		return scripture.Default(), nil
	}
	corpus, err := scripture.LoadFile(cfg.ScripturePath)
	if err != nil {
		return nil, fmt.Errorf("load scripture corpus: %w", err)
	}
	slog.Info("loaded scripture corpus", "path", cfg.ScripturePath, "records", corpus.Len())
	return corpus, nil
}

// newComposer wires the configured generator and corpus. static forces the
// offline generator.
func newComposer(ctx context.Context, cfg *config.Config, static bool) (*composer.Composer, llm.Generator, error) {
	if static {
		cfg.LLMProvider = config.ProviderStatic
	}
	if err := cfg.ValidateForGeneration(); err != nil {
		return nil, nil, fmt.Errorf("validate config: %w", err)
	}

	gen, err := llm.New(ctx, llm.Config{
		Provider: cfg.LLMProvider,
		APIKey:   cfg.APIKey(),
		Model:    cfg.LLMModel,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create generator: %w", err)
	}

	corpus, err := loadCorpus(cfg)
	if err != nil {
		return nil, nil, err
	}

	c := composer.New(composer.Config{
		Generator: gen,
		Corpus:    corpus,
		Model:     cfg.LLMModel,
	})
	return c, gen, nil
}

// registerProbes adds the healthcheck probes. The database probe reads the
// voices table, so it fails on an unmigrated or unreadable store. The
// generator probe only checks configuration and never calls the provider.
func registerProbes(h *health.Health, store *db.Store, cfg *config.Config) {
	h.Register(health.Database, func(ctx context.Context) error {
		_, err := store.CountVoices(ctx)
		return err
	})
	h.Register(health.GeneratorConfig, func(context.Context) error {
		return cfg.ValidateForGeneration()
	})
}
