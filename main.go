package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"workloadparser/cli"
	"workloadparser/config"
	"workloadparser/core/auth"
	"workloadparser/core/client"
	"workloadparser/metrics"
	"workloadparser/service/replay"
	"workloadparser/ui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	workloadFile, err := cli.Parse(args, os.Stdout)
	if err != nil {
		return 1
	}

	cfg, envErr := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot initialize logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	if envErr != nil {
		logger.Debug("no .env file loaded, using system environment variables", zap.Error(envErr))
	}

	baseURL, err := cfg.BaseURL()
	if err != nil {
		fmt.Printf("Configuration error: %v\n", err)
		logger.Error("cannot resolve base url", zap.Error(err))
		return 1
	}

	runID := uuid.New().String()
	logger = logger.With(zap.String("run_id", runID))

	var opts []client.Option
	if cfg.AuthSecret != "" {
		opts = append(opts, client.WithSigner(auth.NewSigner(cfg.AuthSecret, cfg.AuthSubject, runID)))
	}
	sender := client.NewClient(cfg.RequestTimeout, logger, opts...)

	replayer := replay.NewReplayer(baseURL, sender, ui.NewPrinter(os.Stdout), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.MetricsAddr != "" {
		srv := metrics.Serve(cfg.MetricsAddr, logger)
		defer srv.Close()
	}

	logger.Info("replaying workload",
		zap.String("file", workloadFile),
		zap.String("base_url", baseURL))

	stats, err := replayer.RunFile(ctx, workloadFile)
	logger.Info("workload finished",
		zap.Int("lines", stats.Lines),
		zap.Int("sent", stats.Sent),
		zap.Int("skipped", stats.Skipped),
		zap.Int("parse_errors", stats.ParseErrors),
		zap.Int("transport_errors", stats.TransportErrors),
		zap.Int("request_errors", stats.RequestErrors),
		zap.Int("http_errors", stats.HTTPErrors))

	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn("workload interrupted")
		} else {
			fmt.Printf("Error: %v\n", err)
			logger.Error("workload aborted", zap.Error(err))
		}
		return 1
	}
	return 0
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if cfg.LogDev {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}
