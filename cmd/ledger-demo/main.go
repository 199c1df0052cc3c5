// Package main replays the reference ledger scenario and optionally serves the
// ledger over HTTP with a background sealing loop.
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

	"github.com/goodnatureofminers/hashledger/internal/codec/snapshot"
	"github.com/goodnatureofminers/hashledger/internal/ledger"
	"github.com/goodnatureofminers/hashledger/internal/metrics"
	"github.com/goodnatureofminers/hashledger/internal/sealer"
	"github.com/goodnatureofminers/hashledger/internal/service/sealing"
	"github.com/goodnatureofminers/hashledger/internal/transport"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

const chainName = "demo"

type config struct {
	Difficulty     uint          `long:"difficulty" env:"LEDGER_DIFFICULTY" description:"leading zero hex digits required per block" default:"5"`
	Workers        int           `long:"workers" env:"LEDGER_WORKERS" description:"proof-of-work search goroutines" default:"4"`
	MaxAttempts    uint64        `long:"max-attempts" env:"LEDGER_MAX_ATTEMPTS" description:"nonce attempts per block, 0 for unlimited" default:"0"`
	SealTimeout    time.Duration `long:"seal-timeout" env:"LEDGER_SEAL_TIMEOUT" description:"deadline for sealing a single block" default:"5m"`
	SealsPerSecond int           `long:"seals-per-second" env:"LEDGER_SEALS_PER_SECOND" description:"cap on sealing loop iterations, 0 for unlimited" default:"0"`
	MetricsAddr    string        `long:"metrics-addr" env:"LEDGER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	HTTPAddr       string        `long:"http-addr" env:"LEDGER_HTTP_ADDR" description:"address for the ledger HTTP API" default:":8080"`
	Serve          bool          `long:"serve" env:"LEDGER_SERVE" description:"keep running the sealing service and HTTP API"`
	SnapshotIn     string        `long:"snapshot-in" env:"LEDGER_SNAPSHOT_IN" description:"restore the chain from this snapshot before serving"`
	SnapshotOut    string        `long:"snapshot-out" env:"LEDGER_SNAPSHOT_OUT" description:"write a chain snapshot to this path"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("ledger demo failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	codec, err := snapshot.NewCodec()
	if err != nil {
		return fmt.Errorf("init snapshot codec: %w", err)
	}

	l, err := openLedger(ctx, cfg, codec, logger)
	if err != nil {
		return err
	}

	if cfg.Serve {
		return serve(ctx, cfg, l, codec, logger)
	}

	if err := seal(ctx, l, cfg.Difficulty, os.Stdout); err != nil {
		return err
	}
	if cfg.SnapshotOut != "" {
		if err := saveSnapshot(codec, cfg.SnapshotOut, cfg.Difficulty, l); err != nil {
			return err
		}
		logger.Info("snapshot written", zap.String("path", cfg.SnapshotOut), zap.Int("blocks", l.Len()))
	}
	return tamper(l, os.Stdout)
}

func newSealer(cfg config, logger *zap.Logger) *sealer.Sealer {
	opts := []sealer.Option{
		sealer.WithWorkers(cfg.Workers),
		sealer.WithProgress(1<<20, func(p sealer.Progress) {
			logger.Debug("sealing in progress",
				zap.Uint64("index", p.Index),
				zap.Uint64("attempts", p.Attempts),
				zap.Uint64("nonce", p.Nonce),
			)
		}),
	}
	if cfg.MaxAttempts > 0 {
		opts = append(opts, sealer.WithMaxAttempts(cfg.MaxAttempts))
	}
	return sealer.New(opts...)
}

func openLedger(ctx context.Context, cfg config, codec *snapshot.Codec, logger *zap.Logger) (*ledger.Ledger, error) {
	s := newSealer(cfg, logger.Named("sealer"))
	m := metrics.NewLedger(chainName)

	if cfg.SnapshotIn == "" {
		return ledger.New(s, m, logger)
	}

	f, err := os.Open(cfg.SnapshotIn)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	snap, err := codec.Read(f)
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", cfg.SnapshotIn, err)
	}
	l, err := ledger.Restore(ctx, snap.Blocks, snap.Difficulty, s, m, logger)
	if err != nil {
		return nil, fmt.Errorf("restore snapshot %s: %w", cfg.SnapshotIn, err)
	}
	logger.Info("chain restored", zap.String("path", cfg.SnapshotIn), zap.Int("blocks", l.Len()), zap.Uint("difficulty", snap.Difficulty))
	return l, nil
}

func saveSnapshot(codec *snapshot.Codec, path string, difficulty uint, l *ledger.Ledger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := codec.Write(f, snapshot.New(difficulty, l.Blocks())); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func serve(ctx context.Context, cfg config, l *ledger.Ledger, codec *snapshot.Codec, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	svc, err := sealing.NewService(l, metrics.NewSealingService(chainName), sealing.Config{
		Difficulty:     cfg.Difficulty,
		SealTimeout:    cfg.SealTimeout,
		SealsPerSecond: cfg.SealsPerSecond,
	}, logger.Named("sealing"))
	if err != nil {
		return err
	}
	handler, err := transport.NewLedgerHandler(l, svc, logger.Named("http"))
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	handler.Register(mux)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()
	go func() {
		logger.Info("starting http server", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", zap.Error(err))
		}
	}()

	runErr := svc.Run(ctx)

	if cfg.SnapshotOut != "" {
		if err := saveSnapshot(codec, cfg.SnapshotOut, cfg.Difficulty, l); err != nil {
			return errors.Join(runErr, err)
		}
		logger.Info("snapshot written", zap.String("path", cfg.SnapshotOut), zap.Int("blocks", l.Len()))
	}
	return runErr
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
