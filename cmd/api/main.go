package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"selection-assistant/config"
	_ "selection-assistant/docs" // Swagger docs
	assistantUC "selection-assistant/internal/assistant/usecase"
	credentialRepo "selection-assistant/internal/credential/repository"
	credentialUC "selection-assistant/internal/credential/usecase"
	"selection-assistant/internal/httpserver"
	"selection-assistant/internal/invoker"
	"selection-assistant/internal/middleware"
	"selection-assistant/internal/router"
	"selection-assistant/pkg/gemini"
	"selection-assistant/pkg/log"
)

// @title       Selection Assistant API
// @description Runs summarize, rewrite, proofread, translate and custom prompt actions on selected text through Gemini.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Selection Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Credential store
	store, closeStore, err := credentialRepo.New(credentialRepo.Options{
		Driver:   cfg.Credential.Driver,
		FilePath: cfg.Credential.FilePath,
		Redis: credentialRepo.RedisOptions{
			Addr:      cfg.Credential.Redis.Addr,
			Password:  cfg.Credential.Redis.Password,
			DB:        cfg.Credential.Redis.DB,
			KeyPrefix: cfg.Credential.Redis.KeyPrefix,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize credential store: ", err)
		return
	}
	defer func() {
		if cerr := closeStore(); cerr != nil {
			logger.Warnf(ctx, "Failed to close credential store: %v", cerr)
		}
	}()

	credentials := credentialUC.New(logger, store, cfg.Credential.Key, cfg.Gemini.APIKey)
	if err := credentials.Load(ctx); err != nil {
		logger.Warnf(ctx, "Credential store unavailable at startup: %v", err)
	}
	if status := credentials.Status(); status.Configured {
		logger.Infof(ctx, "API key loaded from %s", status.Source)
	} else {
		logger.Warn(ctx, "No API key configured yet; tasks fail until one is saved via PUT /api/v1/credential")
	}

	// 4. Gemini client + invoker
	geminiClient, err := gemini.New(gemini.Config{
		APIURL:  cfg.Gemini.APIURL,
		Model:   cfg.Gemini.Model,
		Timeout: cfg.Gemini.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gemini client: ", err)
		return
	}

	inv, err := invoker.New(geminiClient, credentials, invoker.Config{
		MaxAttempts:       cfg.Invoker.MaxAttempts,
		BaseDelay:         cfg.Invoker.BaseDelay,
		BackoffMultiplier: cfg.Invoker.BackoffMultiplier,
		RetryMalformed:    cfg.Invoker.RetryMalformed,
	}, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize invoker: ", err)
		return
	}
	logger.Infof(ctx, "Model: %s (max_attempts=%d, base_delay=%s)", geminiClient.Model(), cfg.Invoker.MaxAttempts, cfg.Invoker.BaseDelay)

	// 5. Assistant use case
	uc := assistantUC.New(logger, router.New(), inv, credentials)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		MetricsEnabled:  cfg.Metrics.Enabled,
		Middleware: middleware.New(logger, middleware.Config{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			ClientToken:    cfg.HTTPServer.ClientToken,
		}),
		AssistantUC: uc,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
