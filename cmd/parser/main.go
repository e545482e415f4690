package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/dispatcher"
	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/matcher"
	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/model"
	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/providers"
	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/repository/clickhouse"
	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/repository/postgres"
	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/service/parser"
	"github.com/goodnatureofminers/chainwatch-backend/internal/clock"
	"github.com/goodnatureofminers/chainwatch-backend/internal/metrics"
	"github.com/goodnatureofminers/chainwatch-backend/internal/transport"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

type config struct {
	PostgresDSN       string        `long:"postgres-dsn" env:"PARSER_POSTGRES_DSN" description:"Postgres DSN" required:"true"`
	ClickhouseDSN     string        `long:"clickhouse-dsn" env:"PARSER_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	RedisURL          string        `long:"redis-url" env:"PARSER_REDIS_URL" description:"Redis URL" default:"redis://localhost:6379/0"`
	RedisStream       string        `long:"redis-stream" env:"PARSER_REDIS_STREAM" description:"Redis stream for notifications" default:"chainwatch:notifications"`
	RedisStreamMaxLen int64         `long:"redis-stream-max-len" env:"PARSER_REDIS_STREAM_MAX_LEN" description:"approximate notification stream length" default:"1000000"`
	ChainsFile        string        `long:"chains-file" env:"PARSER_CHAINS_FILE" description:"YAML file listing the chains to parse" default:"chains.yaml"`
	Timeout           time.Duration `long:"timeout" env:"PARSER_TIMEOUT" description:"wait between head polls and after failures" default:"5s"`
	Backoff           string        `long:"backoff" env:"PARSER_BACKOFF" description:"backoff after failures" choice:"fixed" choice:"exponential" default:"fixed"`
	BackoffMax        time.Duration `long:"backoff-max" env:"PARSER_BACKOFF_MAX" description:"maximum exponential backoff" default:"1m"`
	FailedBlockPolicy string        `long:"failed-block-policy" env:"PARSER_FAILED_BLOCK_POLICY" description:"what to do with blocks that failed to fetch" choice:"skip" choice:"halt" default:"skip"`
	MetricsAddr       string        `long:"metrics-addr" env:"PARSER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	AdminAddr         string        `long:"admin-addr" env:"PARSER_ADMIN_ADDR" description:"admin gRPC address" default:":8000"`
	AdminRestAddr     string        `long:"admin-rest-addr" env:"PARSER_ADMIN_REST_ADDR" description:"admin REST address" default:":8001"`
	LogLevel          string        `long:"log-level" env:"PARSER_LOG_LEVEL" description:"log level" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"info"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("parser failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	chains, err := providers.LoadChains(cfg.ChainsFile)
	if err != nil {
		return err
	}
	backoff, err := clock.NewBackoff(cfg.Backoff, cfg.Timeout, cfg.BackoffMax)
	if err != nil {
		return err
	}
	policy, err := parser.ParseFailedBlockPolicy(cfg.FailedBlockPolicy)
	if err != nil {
		return err
	}

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	pg, err := postgres.NewRepository(ctx, cfg.PostgresDSN, metrics.NewPostgresRepository())
	if err != nil {
		return fmt.Errorf("init postgres repository: %w", err)
	}
	defer func() {
		_ = pg.Close()
	}()

	ch, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init clickhouse repository: %w", err)
	}
	defer func() {
		_ = ch.Close()
	}()

	redisClient, err := dispatcher.Dial(ctx, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("init redis: %w", err)
	}
	defer func() {
		_ = redisClient.Close()
	}()
	notifications, err := dispatcher.New(redisClient, dispatcher.Config{
		Stream: cfg.RedisStream,
		MaxLen: cfg.RedisStreamMaxLen,
	}, metrics.NewDispatcher())
	if err != nil {
		return fmt.Errorf("init dispatcher: %w", err)
	}

	names := make([]model.Chain, 0, len(chains))
	for _, c := range chains {
		names = append(names, c.Chain)
	}
	health := transport.NewHealth(names)
	defer health.Shutdown()

	if err := startAdminServers(ctx, cfg.AdminAddr, cfg.AdminRestAddr, health, pg, logger); err != nil {
		return err
	}

	subscriptions := matcher.New(pg)
	g, gctx := errgroup.WithContext(ctx)
	for _, c := range chains {
		provider, err := providers.New(ctx, c)
		if err != nil {
			return fmt.Errorf("init %s provider: %w", c.Chain, err)
		}
		svc, err := parser.NewService(
			parser.Config{
				Initial:  c.InitialState(),
				Interval: cfg.Timeout,
				Backoff:  backoff,
				Policy:   policy,
			},
			provider,
			pg,
			pg,
			ch,
			subscriptions,
			notifications,
			metrics.NewParser(c.Chain),
			health,
			logger.Named("parser"),
		)
		if err != nil {
			return fmt.Errorf("init %s parser: %w", c.Chain, err)
		}
		g.Go(func() error {
			return svc.Run(gctx)
		})
	}

	logger.Info("parsers started", zap.Int("chains", len(chains)), zap.String("policy", string(policy)))
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("parsers stopped")
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if lvl == zapcore.DebugLevel {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
