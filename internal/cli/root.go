package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/vietddude/stylelog"

	"github.com/vietddude/airdrop-checker/internal/checker"
	"github.com/vietddude/airdrop-checker/internal/core/config"
	"github.com/vietddude/airdrop-checker/internal/infra/airdrop"
	"github.com/vietddude/airdrop-checker/internal/report"
)

var (
	cfgPath    string
	isDebug    bool
	noColor    bool
	metricsOut string
)

// app holds the components shared by all subcommands.
var app struct {
	cfg     *config.AppConfig
	logger  *slog.Logger
	client  *airdrop.Client
	checker *checker.Checker
}

var rootCmd = &cobra.Command{
	Use:   "airdrop",
	Short: "0G airdrop eligibility checker",
	Long: `Checks whether EVM wallet addresses are eligible for the 0G Foundation airdrop.

Input files hold one address per line; several comma-separated addresses per
line are allowed and lines starting with # are ignored.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// run executes the command tree and writes metrics whether or not the
// command succeeded.
func run(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if mErr := writeMetrics(); mErr != nil && err == nil {
		err = mErr
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "airdrop.yaml", "config file")
	rootCmd.PersistentFlags().BoolVar(&isDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&metricsOut, "metrics-out", "", "write Prometheus metrics to this file after the run")
}

func setup(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		stylelog.InitDefault()
		slog.Error("Failed to load config", "error", err)
		return err
	}

	slogLevel := slog.LevelInfo
	switch {
	case isDebug || cfg.Logging.Level == "debug":
		slogLevel = slog.LevelDebug
	case cfg.Logging.Level == "warn":
		slogLevel = slog.LevelWarn
	case cfg.Logging.Level == "error":
		slogLevel = slog.LevelError
	}

	if cfg.Logging.Format == "json" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel})))
	} else {
		stylelog.InitDefault(&tint.Options{
			Level:      slogLevel,
			TimeFormat: time.RFC3339,
		})
	}

	logger := slog.Default().With("run_id", uuid.NewString())

	app.cfg = cfg
	app.logger = logger
	app.client = airdrop.NewClient(cfg.API, airdrop.WithLogger(logger))
	app.checker = checker.New(app.client,
		checker.WithLogger(logger),
		checker.WithMaxBatch(cfg.Checker.MaxBatch),
	)

	logger.Debug("Configuration loaded", "config", cfgPath, "base_url", cfg.API.BaseURL)
	return nil
}

func writeMetrics() error {
	if metricsOut == "" {
		return nil
	}
	logger := app.logger
	if logger == nil {
		logger = slog.Default()
	}
	if err := prometheus.WriteToTextfile(metricsOut, prometheus.DefaultGatherer); err != nil {
		logger.Error("Failed to write metrics", "path", metricsOut, "error", err)
		return fmt.Errorf("write metrics: %w", err)
	}
	logger.Info("Metrics written", "path", metricsOut)
	return nil
}

func newConsole(cmd *cobra.Command) *report.Console {
	return report.NewConsole(cmd.OutOrStdout(), !noColor)
}
