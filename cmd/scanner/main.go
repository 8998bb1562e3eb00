package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/rickgao/kalshi-scan/internal/api"
	"github.com/rickgao/kalshi-scan/internal/auth"
	"github.com/rickgao/kalshi-scan/internal/config"
	"github.com/rickgao/kalshi-scan/internal/render"
	"github.com/rickgao/kalshi-scan/internal/scan"
	"github.com/rickgao/kalshi-scan/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional; environment is used when omitted)")
	flag.Parse()

	// Diagnostics go to stderr; the report table owns stdout.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(context.Background(), *configPath, logger); err != nil {
		logger.Error("scan failed", "error", err)

		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			if guidance := apiErr.Guidance(); guidance != "" {
				fmt.Fprintln(os.Stderr, guidance)
			}
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, logger *slog.Logger) error {
	// Each run gets an ID so log lines from overlapping cron runs can be told apart.
	logger = logger.With("scan_id", uuid.NewString())

	logger.Info("starting scanner", "version", version.Version, "commit", version.Commit)

	// Best-effort .env load; a missing file just means the environment is
	// already populated.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("failed to load .env", "error", err)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	creds, err := loadCredentials(cfg)
	if err != nil {
		return fmt.Errorf("load credentials: %w\nCopy .env.example to .env and add your credentials", err)
	}

	client := api.NewClient(
		cfg.API.RestURL,
		creds,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout.Duration()),
	)

	status, err := client.GetExchangeStatus(ctx)
	if err != nil {
		return fmt.Errorf("check exchange status: %w", err)
	}
	if !status.TradingActive {
		logger.Warn("trading is currently inactive",
			"estimated_resume_time", status.EstimatedResumeTime,
		)
	}

	now := time.Now().UTC()
	minTS, maxTS := scan.Window(now, cfg.Scan.WindowHours)

	logger.Info("fetching markets",
		"window_hours", cfg.Scan.WindowHours,
		"min_close_ts", minTS,
		"max_close_ts", maxTS,
	)

	markets, err := client.GetAllMarkets(ctx, api.GetMarketsOptions{
		Limit:      cfg.Scan.PageLimit,
		Status:     "open",
		MinCloseTS: minTS,
		MaxCloseTS: maxTS,
	})
	if err != nil {
		return fmt.Errorf("fetch markets: %w", err)
	}

	rows := scan.BuildRows(markets, now, cfg.Scan.SpreadThresholdCents)

	logger.Info("scan complete",
		"markets", len(rows),
		"wide_spreads", scan.CountWide(rows),
	)

	return render.Table(os.Stdout, rows, cfg.Scan.WindowHours, cfg.Scan.SpreadThresholdCents)
}

// loadConfig reads the config file, or falls back to defaults plus
// environment credentials when no file is given.
func loadConfig(path string) (*config.ScannerConfig, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadAndValidate(path)
}

// loadCredentials resolves credentials from config, then the environment.
func loadCredentials(cfg *config.ScannerConfig) (*auth.Credentials, error) {
	keyID := cfg.API.APIKeyID
	if keyID == "" {
		keyID = os.Getenv(auth.EnvKeyID)
	}

	keyPath := cfg.API.PrivateKeyPath
	if keyPath == "" {
		keyPath = os.Getenv(auth.EnvPrivateKeyPath)
	}

	return auth.LoadCredentials(keyID, keyPath)
}
