package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Borislavv/go-tiered-cache/config"
	"github.com/Borislavv/go-tiered-cache/internal/service"
	"github.com/Borislavv/go-tiered-cache/internal/shared/cachedtime"
	"github.com/Borislavv/go-tiered-cache/internal/telemetry"
	"github.com/Borislavv/go-tiered-cache/internal/topology"
	"github.com/Borislavv/go-tiered-cache/internal/workload"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const configEnv = "TIEREDCACHE_CONFIG"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	var path string
	flag.StringVar(&path, "config", os.Getenv(configEnv), "path to the YAML config (env "+configEnv+")")
	flag.Parse()

	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Logs)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go cachedtime.Run(ctx)

	c, err := topology.Build[string, any](cfg.Levels, logger)
	if err != nil {
		return err
	}
	svc := service.New(c, logger)

	logs := telemetry.New(ctx, cfg.Telemetry, logger, svc)
	defer func() { _ = logs.Close() }()

	if cfg.Workload.Enabled() {
		if _, err = workload.New(cfg.Workload, svc, 0, logger).Run(ctx); err != nil {
			logger.Warn().Err(err).Msg("workload stopped early")
		}
	} else if cfg.Telemetry.Enabled() {
		<-ctx.Done()
	}

	hits, misses, puts, evictCalls := svc.Metrics()
	logger.Info().
		Ints("level_sizes", svc.LevelSizes()).
		Int64("hits", hits).
		Int64("misses", misses).
		Int64("puts", puts).
		Int64("evict_calls", evictCalls).
		Str("digest", fmt.Sprintf("%016x", svc.Digest())).
		Msg("cache status")
	fmt.Print(svc.Status())
	return nil
}

func loadConfig(path string) (*config.Cache, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadConfig(path)
}

func newLogger(cfg config.LogsCfg) zerolog.Logger {
	var logger zerolog.Logger
	if cfg.Console {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(cfg.ZerologLevel()).With().Timestamp().Logger()
}
