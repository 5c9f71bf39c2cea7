package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Charugundlavipul/medilink/internal/api/v1/router"
	"github.com/Charugundlavipul/medilink/internal/config"
	"github.com/Charugundlavipul/medilink/internal/logger"
	"github.com/Charugundlavipul/medilink/internal/service"

	"github.com/joho/godotenv"
)

// @title Medilink API
// @version 1.0
// @description Medilink clinical collaboration API: Gemini-backed case summaries and the case study and course catalogs.
// @host localhost:8080
// @BasePath /v1
// @Schemes http https

func main() {
	// 1. Load configuration. .env goes first since it may set ENV and LOG_LEVEL.
	envErr := godotenv.Load()
	logger := logger.New()
	if envErr != nil {
		logger.Warn().Msg("Warning: no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Msgf("Error loading config: %v", err)
	}

	// 2. Resolve the Gemini key once so each request makes a single outbound call
	if cfg.UsesSecretManager() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		secrets, err := service.NewSecretManagerService(ctx, cfg)
		if err != nil {
			cancel()
			logger.Fatal().Msgf("Failed to create Secret Manager client: %v", err)
		}
		key, err := service.ResolveGeminiAPIKey(ctx, cfg, secrets)
		_ = secrets.Close()
		cancel()
		if err != nil {
			logger.Fatal().Msgf("Failed to resolve Gemini API key: %v", err)
		}
		cfg.GeminiAPIKey = key
		logger.Info().Str("secret", cfg.GeminiAPIKeySecret).Msg("Gemini API key loaded from Secret Manager")
	}
	if cfg.GeminiAPIKey == "" {
		logger.Warn().Msg("GEMINI_API_KEY is not set; chat summaries will fail until it is configured")
	}

	// 3. Build router
	r, err := router.New(cfg, logger)
	if err != nil {
		logger.Fatal().Msgf("Failed to build router: %v", err)
	}

	// 4. Create HTTP server. WriteTimeout leaves room for the Gemini timeout.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.GeminiTimeout() + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Start server in a goroutine
	go func() {
		logger.Info().Msgf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Msgf("Listen: %s", err)
		}
	}()

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("Shutdown signal received, exiting...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Msgf("Server forced to shutdown: %v", err)
	}
	logger.Info().Msg("Server shut down gracefully")
}
