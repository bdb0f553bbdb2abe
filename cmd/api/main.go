package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scamguard/internal/api"
	"scamguard/internal/api/handlers"
	"scamguard/internal/config"
	"scamguard/internal/domain/services"
	"scamguard/internal/domain/services/ai"
	"scamguard/internal/infrastructure/cache"
	"scamguard/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var log *logger.Logger
	if cfg.App.Environment == "production" {
		log = logger.NewProduction()
	} else {
		log = logger.NewDevelopment()
	}
	logger.SetGlobal(log)

	log.Info().
		Str("app", cfg.App.Name).
		Str("env", cfg.App.Environment).
		Str("version", cfg.App.Version).
		Msg("starting ScamGuard")

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to Redis (optional, caching and rate limiting only)
	var redisCache *cache.RedisCache
	if cfg.Redis.Enabled {
		redisCache, err = cache.NewRedis(ctx, cfg.Redis, log)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to Redis, continuing without cache")
			redisCache = nil
		}
	}
	defer func() {
		if redisCache != nil {
			redisCache.Close()
		}
	}()

	// Initialize services
	refdb := services.NewReferenceDatabase(log)
	history := services.NewHistory()

	phoneClassifier := services.NewPhoneClassifier(refdb, history, log)
	urlClassifier := services.NewURLClassifier(refdb, redisCache, history, log)
	textClassifier := services.NewTextClassifier(refdb, urlClassifier, history, log)
	quiz := services.NewQuizEngine(time.Now().UnixNano())

	// Optional AI second opinion
	merger := buildMerger(cfg.AI, log)
	log.Info().Bool("ai_enabled", merger.Enabled()).Msg("services initialized")

	// Initialize handlers
	deps := handlers.Dependencies{
		RefDB:   refdb,
		History: history,
		Phone:   phoneClassifier,
		URL:     urlClassifier,
		Text:    textClassifier,
		Quiz:    quiz,
		Merger:  merger,
		Cache:   redisCache,
		Logger:  log,
	}
	h := handlers.NewHandlers(deps)

	// Create router
	router := api.NewRouter(*cfg, h, redisCache, log)
	httpHandler := router.Setup()

	// Start HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort),
		Handler:      httpHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().
			Str("addr", httpServer.Addr).
			Msg("starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down...")

	cancel()

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("shutdown complete")
}

// buildMerger wires the AI second opinion when a provider is configured.
// Without a usable API key the merger is a no-op and every verdict stays
// purely rule-based.
func buildMerger(cfg config.AIConfig, log *logger.Logger) *ai.Merger {
	if !cfg.Enabled {
		return ai.NewMerger(nil, log)
	}

	key := cfg.ClaudeAPIKey
	if cfg.Provider == "openai" {
		key = cfg.OpenAIAPIKey
	}
	if key == "" {
		log.Warn().Str("provider", cfg.Provider).Msg("AI enabled but no API key configured, disabling")
		return ai.NewMerger(nil, log)
	}

	client := ai.NewLLMClient(ai.LLMConfig{
		Provider:     cfg.Provider,
		ClaudeAPIKey: cfg.ClaudeAPIKey,
		OpenAIAPIKey: cfg.OpenAIAPIKey,
		Model:        cfg.Model,
		Timeout:      cfg.Timeout,
	}, log)

	return ai.NewMerger(client, log)
}
