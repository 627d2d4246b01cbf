package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/abdulachik/selah/internal/config"
	"github.com/abdulachik/selah/internal/db"
	"github.com/abdulachik/selah/internal/health"
	"github.com/abdulachik/selah/internal/library"
	"github.com/abdulachik/selah/internal/logger"
	"github.com/abdulachik/selah/internal/server"
	"github.com/abdulachik/selah/internal/voice"
)

var serveStatic bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the Selah HTTP API: prayer generation, the catalog, the prayer
library and voice profiles.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveStatic, "static", false, "use the offline generator instead of a model provider")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if serveStatic {
		cfg.LLMProvider = config.ProviderStatic
	}
	if err := cfg.ValidateForServe(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	log, err := logger.New(cfg.LogMode, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	slog.Info("connecting to database", "path", cfg.DatabasePath)
	store, err := db.NewStore(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	comp, gen, err := newComposer(ctx, cfg, serveStatic)
	if err != nil {
		return err
	}

	h := health.New()
	registerProbes(h, store, cfg)

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := server.New(server.Config{
		Composer:              comp,
		Library:               library.Default(),
		Voices:                voice.NewService(store),
		Health:                h,
		Logger:                log,
		CORSOrigins:           cfg.CORSOrigins,
		GenerateRatePerMinute: cfg.GenerateRatePerMinute,
	})
	httpServer := srv.HTTPServer(cfg.HTTPAddr)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting HTTP server",
			"addr", cfg.HTTPAddr,
			"provider", gen.Name(),
			"rate_per_minute", cfg.GenerateRatePerMinute,
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		slog.Info("received shutdown signal")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	slog.Info("shutting down...", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
