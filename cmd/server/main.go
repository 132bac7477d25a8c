package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mcoot/wordsland/internal/api"
	"github.com/mcoot/wordsland/internal/config"
	"github.com/mcoot/wordsland/internal/factory"
	"github.com/mcoot/wordsland/internal/middleware"
	"github.com/mcoot/wordsland/internal/services/session"
)

func main() {
	configPath := flag.String("config", os.Getenv("WORDSLAND_CONFIG"), "Path to a YAML config file")
	flag.Parse()

	// A missing .env is fine; the environment may already be set
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Set up logging with JSON output, tagged with the request ID
	logger := slog.New(middleware.NewContextHandler(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel(),
	})))
	slog.SetDefault(logger)

	// Create application factory
	app, err := factory.New(factory.ConfigFrom(cfg, logger))
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	loadDictionary(ctx, app, cfg, logger)

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		SessionManager:    app.SessionManager,
		DictionaryService: app.DictionaryService,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Server.Host
	serverConfig.Port = cfg.Server.Port
	serverConfig.ReadTimeout = cfg.Server.ReadTimeout
	serverConfig.WriteTimeout = cfg.Server.WriteTimeout
	serverConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout
	server := api.NewServer(router, serverConfig, logger)

	go pruneSessions(ctx, app.SessionManager, cfg.Session, logger)

	logger.Info("server starting",
		slog.String("addr", server.Addr()),
		slog.String("storage", cfg.Storage.Type),
	)

	if err := server.ListenAndServeContext(ctx); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// loadDictionary reads the word list, in the background when configured.
// If the file cannot be read, a word list saved by an earlier run is used.
func loadDictionary(ctx context.Context, app *factory.App, cfg *config.Config, logger *slog.Logger) {
	fallback := func(err error) {
		logger.Warn("could not load dictionary file",
			slog.String("path", cfg.Dictionary.Path),
			slog.String("error", err.Error()),
		)
		if err := app.DictionaryService.LoadFromStorage(ctx); err != nil {
			logger.Error("no dictionary available", slog.String("error", err.Error()))
		}
	}

	if !cfg.Dictionary.Async {
		if err := app.DictionaryService.LoadFromFile(ctx, cfg.Dictionary.Path); err != nil {
			fallback(err)
		}
		return
	}

	done := app.DictionaryService.LoadFromFileAsync(ctx, cfg.Dictionary.Path)
	go func() {
		if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
			fallback(err)
		}
	}()
}

// pruneSessions drops idle sessions until ctx is cancelled
func pruneSessions(ctx context.Context, manager *session.Manager, cfg config.SessionConfig, logger *slog.Logger) {
	if cfg.PruneInterval <= 0 || cfg.IdleTimeout <= 0 {
		return
	}

	ticker := time.NewTicker(cfg.PruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := manager.PruneIdle(ctx, cfg.IdleTimeout); n > 0 {
				logger.Info("pruned idle sessions", slog.Int("count", n))
			}
		}
	}
}
