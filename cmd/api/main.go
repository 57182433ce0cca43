package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"rice-leaf-detection/config"
	_ "rice-leaf-detection/docs" // Swagger docs
	"rice-leaf-detection/internal/classification/parser"
	gradioRepo "rice-leaf-detection/internal/classification/repository/gradio"
	"rice-leaf-detection/internal/classification/usecase"
	"rice-leaf-detection/internal/httpserver"
	"rice-leaf-detection/pkg/gradio"
	"rice-leaf-detection/pkg/log"
)

// @title       Rice Leaf Disease Detection API
// @description Classifies rice leaf photos through a Gradio Space on Hugging Face and returns ranked disease predictions.
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

	logger.Info(ctx, "Starting Rice Leaf Disease Detection...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Gradio client
	client, err := gradio.New(gradio.Config{
		SpaceID:   cfg.Classifier.SpaceID,
		BaseURL:   cfg.Classifier.BaseURL,
		APIPrefix: cfg.Classifier.APIPrefix,
		Token:     cfg.Classifier.HFToken,
		Timeout:   cfg.Classifier.RequestTimeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gradio client: ", err)
		return
	}
	if cfg.Classifier.HFToken == "" {
		logger.Warn(ctx, "HF_TOKEN not set, calling the Space anonymously")
	}
	logger.Infof(ctx, "Classifier Space: %s (endpoint %s)", client.SpaceID(), cfg.Classifier.Endpoint)

	// 4. Classification domain
	predictor := gradioRepo.New(client, cfg.Classifier.Endpoint, logger)
	classificationUC := usecase.New(logger, predictor, parser.New(cfg.Classifier.DedupTolerance))

	// A sleeping Space answers 503 until it has woken up.
	go func() {
		status := classificationUC.UpstreamStatus(ctx)
		if status.Reachable {
			logger.Infof(ctx, "Classifier Space is up (%d)", status.StatusCode)
		} else {
			logger.Warnf(ctx, "Classifier Space not ready: %d %s", status.StatusCode, status.Detail)
		}
	}()

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		RateLimitPerMin:  cfg.RateLimit.EffectiveRequestsPerMin(),
		MaxImageBytes:    cfg.Classifier.MaxImageBytes,
		ClassificationUC: classificationUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
