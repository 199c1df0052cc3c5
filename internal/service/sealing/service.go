// Package sealing runs the background loop that turns submitted transactions into sealed blocks.
package sealing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/hashledger/internal/clock"
	"github.com/goodnatureofminers/hashledger/internal/model"
	"github.com/goodnatureofminers/hashledger/pkg/batcher"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Config tunes the sealing loop. Zero values fall back to defaults.
type Config struct {
	Difficulty uint
	// SealTimeout bounds a single SealNextBlock call.
	SealTimeout time.Duration
	// IdleSleep is the pause after finding the pool empty.
	IdleSleep time.Duration
	// BackoffSleep is the pause after a failed seal.
	BackoffSleep time.Duration
	// SealsPerSecond caps loop iterations; 0 means unlimited.
	SealsPerSecond int

	IntakeFlushSize     int
	IntakeFlushInterval time.Duration
}

// Service seals pending transactions on its own goroutine.
type Service struct {
	logger       *zap.Logger
	ledger       Ledger
	metrics      ServiceMetrics
	intake       Intake
	limiter      ratelimit.Limiter
	sleep        func(context.Context, time.Duration) error
	difficulty   uint
	sealTimeout  time.Duration
	idleSleep    time.Duration
	backoffSleep time.Duration
}

// NewService builds a Service with dependencies.
func NewService(ledger Ledger, metrics ServiceMetrics, cfg Config, logger *zap.Logger) (*Service, error) {
	if ledger == nil {
		return nil, errors.New("sealing service ledger is required")
	}
	if metrics == nil {
		return nil, errors.New("sealing service metrics is required")
	}
	logger = logger.With(zap.Uint("difficulty", cfg.Difficulty))

	s := &Service{
		logger:       logger,
		ledger:       ledger,
		metrics:      metrics,
		limiter:      ratelimit.NewUnlimited(),
		sleep:        clock.SleepWithContext,
		difficulty:   cfg.Difficulty,
		sealTimeout:  orDefault(cfg.SealTimeout, defaultSealTimeout),
		idleSleep:    orDefault(cfg.IdleSleep, idleSleepDuration),
		backoffSleep: orDefault(cfg.BackoffSleep, backoffSleepDuration),
	}
	if cfg.SealsPerSecond > 0 {
		s.limiter = ratelimit.New(cfg.SealsPerSecond)
	}

	flushSize := cfg.IntakeFlushSize
	if flushSize <= 0 {
		flushSize = intakeFlushSize
	}
	s.intake = batcher.New(logger.Named("intake"), s.flush, flushSize, orDefault(cfg.IntakeFlushInterval, intakeFlushInterval))
	return s, nil
}

// Run starts the sealing loop until the context is canceled.
// Transactions already accepted by Submit reach the pool before Run returns.
func (s *Service) Run(ctx context.Context) error {
	s.intake.Start(ctx)
	defer s.intake.Stop()

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("seal iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.backoffSleep))
			if sleepErr := s.sleep(ctx, s.backoffSleep); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

// Submit queues tx for the next flush into the pending pool.
func (s *Service) Submit(ctx context.Context, tx model.Transaction) error {
	err := s.intake.Add(ctx, tx)
	s.metrics.ObserveSubmit(err)
	if err != nil {
		return fmt.Errorf("submit transaction: %w", err)
	}
	return nil
}

func (s *Service) run(ctx context.Context) error {
	s.limiter.Take()

	sealCtx, cancel := context.WithTimeout(ctx, s.sealTimeout)
	defer cancel()

	started := time.Now()
	block, ok, err := s.ledger.SealNextBlock(sealCtx, s.difficulty)
	s.metrics.ObserveIteration(err, ok, started)
	if err != nil {
		s.logger.Error("seal next block failed", zap.Error(err), zap.Duration("elapsed", time.Since(started)))
		return err
	}

	if !ok {
		s.logger.Debug("pending pool empty; sleeping", zap.Duration("sleep", s.idleSleep))
		return s.sleep(ctx, s.idleSleep)
	}

	s.logger.Debug("iteration sealed block",
		zap.Uint64("index", block.Index),
		zap.Uint64("nonce", block.Nonce),
		zap.String("fingerprint", model.Short(block.Fingerprint)),
		zap.Int("transactions", len(block.Payload.Transactions)),
		zap.Int("height", s.ledger.Len()),
		zap.Duration("elapsed", time.Since(started)),
	)
	return nil
}

func (s *Service) flush(_ context.Context, txs []model.Transaction) error {
	s.ledger.EnqueueAll(txs)
	s.metrics.ObserveFlush(len(txs))
	return nil
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
