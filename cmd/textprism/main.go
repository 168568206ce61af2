package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/vampirenirmal/textprism/internal/agent"
	"github.com/vampirenirmal/textprism/internal/analysis"
	"github.com/vampirenirmal/textprism/internal/chart"
	"github.com/vampirenirmal/textprism/internal/config"
	"github.com/vampirenirmal/textprism/internal/provider"
	"github.com/vampirenirmal/textprism/internal/report"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		inputPath = flag.String("input", "", "path to the text file to analyze (default: stdin)")
		only      = flag.String("provider", "", "run a single provider (color-palette, literary-devices, readability, power-balance)")
		useMock   = flag.Bool("mock", false, "use the offline mock AI client")
		verbose   = flag.Bool("verbose", false, "enable debug logging")
		waitLimit = flag.Duration("wait", 5*time.Minute, "maximum time to wait for all providers to settle")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	text, err := readInput(*inputPath)
	if err != nil {
		return err
	}

	client := buildClient(cfg, *useMock, logger)

	registry, err := provider.DefaultRegistry(client)
	if err != nil {
		return err
	}

	sessionID := uuid.New().String()
	logger.Info("analysis session started",
		"session_id", sessionID,
		"text_len", len(text))

	coordinator := analysis.NewCoordinator(registry,
		analysis.WithLogger(logger.With("component", "coordinator")),
		analysis.WithConfig(analysis.CoordinatorConfig{
			MaxConcurrency: cfg.Limits.MaxConcurrentProviders,
			CallTimeout:    cfg.Limits.ProviderTimeout,
		}))
	coordinator.SetText(text)

	if _, err := coordinator.Subscribe(func(snap analysis.Snapshot) {
		for id, src := range snap {
			logger.Debug("source state",
				"provider", id,
				"status", src.Status.String())
		}
	}); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), *waitLimit)
	defer cancel()

	if *only != "" {
		err = coordinator.Start(ctx, analysis.ProviderID(*only))
	} else {
		err = coordinator.Start(ctx)
	}
	if err != nil {
		return err
	}

	if err := coordinator.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for providers: %w", err)
	}

	viewport := chart.Viewport{
		Width:   cfg.Chart.Width,
		Height:  cfg.Chart.Height,
		Padding: cfg.Chart.Padding,
	}
	renderer := report.New(viewport, cfg.Chart.ReadabilityTicks)
	fmt.Print(renderer.Render(coordinator.Snapshot()))

	return nil
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input file: %w", err)
	}
	return string(data), nil
}

// buildClient picks the real client when an API key is configured,
// otherwise the offline mock.
func buildClient(cfg *config.Config, forceMock bool, logger *slog.Logger) agent.AIClient {
	if forceMock || cfg.AI.APIKey == "" {
		logger.Info("using offline mock AI client")
		return agent.NewMockClient()
	}

	return agent.NewClient(cfg.AI.APIKey,
		agent.WithAPIConfig(cfg.AI.BaseURL, cfg.AI.Model),
		agent.WithTimeout(time.Duration(cfg.AI.Timeout)*time.Second),
		agent.WithRetry(cfg.Limits.MaxRetries),
		agent.WithRateLimit(cfg.Limits.RateLimit.RequestsPerMinute, cfg.Limits.RateLimit.BurstSize),
		agent.WithLogger(logger.With("component", "ai_client")))
}
