package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"rice-leaf-detection/config"
	"rice-leaf-detection/internal/classification/batch"
	"rice-leaf-detection/internal/classification/parser"
	gradioRepo "rice-leaf-detection/internal/classification/repository/gradio"
	"rice-leaf-detection/internal/classification/usecase"
	"rice-leaf-detection/internal/disease"
	"rice-leaf-detection/pkg/gradio"
	"rice-leaf-detection/pkg/log"
)

// line is one JSON result written to stdout per input file.
type line struct {
	Path    string  `json:"path"`
	Status  string  `json:"status"`
	Label   string  `json:"label,omitempty"`
	Score   float64 `json:"score"`
	Disease string  `json:"disease,omitempty"`
	Error   string  `json:"error,omitempty"`
}

func newLine(res batch.Result) line {
	out := line{Path: res.Path}
	switch {
	case res.Err != nil:
		out.Status = "error"
		out.Error = res.Err.Error()
	case !res.Outcome.Succeeded():
		out.Status = string(res.Outcome.Status)
		out.Error = res.Outcome.Reason
	default:
		out.Status = string(res.Outcome.Status)
		out.Label = res.Outcome.TopPrediction.Label
		out.Score = res.Outcome.TopPrediction.Score
		out.Disease = disease.Lookup(out.Label).Name
	}
	return out
}

// main classifies image files from the command line.
//
// Usage: classify [-concurrency N] leaf1.jpg leaf2.png ...
func main() {
	concurrency := flag.Int("concurrency", batch.DefaultConcurrency, "max files classified at once")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Println("Usage: classify [-concurrency N] <image> [image...]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr so stdout stays one JSON line per file.
	logger := log.InitWithSink(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	}, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := gradio.New(gradio.Config{
		SpaceID:   cfg.Classifier.SpaceID,
		BaseURL:   cfg.Classifier.BaseURL,
		APIPrefix: cfg.Classifier.APIPrefix,
		Token:     cfg.Classifier.HFToken,
		Timeout:   cfg.Classifier.RequestTimeout,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Gradio client: %v", err)
	}

	predictor := gradioRepo.New(client, cfg.Classifier.Endpoint, logger)
	uc := usecase.New(logger, predictor, parser.New(cfg.Classifier.DedupTolerance))

	logger.Infof(ctx, "Classifying %d files against %s", flag.NArg(), client.SpaceID())
	results := batch.New(logger, uc, *concurrency, nil).Run(ctx, flag.Args())

	enc := json.NewEncoder(os.Stdout)
	failed := 0
	for _, res := range results {
		out := newLine(res)
		if out.Error != "" {
			failed++
		}
		if err := enc.Encode(out); err != nil {
			logger.Errorf(ctx, "Failed to write result: %v", err)
		}
	}

	logger.Infof(ctx, "Done: %d/%d classified", len(results)-failed, len(results))
	if failed > 0 {
		os.Exit(2)
	}
}
