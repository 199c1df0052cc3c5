// Package ledger owns the sealed block sequence and the pending transaction pool.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/hashledger/internal/clock"
	"github.com/goodnatureofminers/hashledger/internal/model"
	"github.com/goodnatureofminers/hashledger/internal/sealer"
	"go.uber.org/zap"
)

const defaultAuditWorkers = 4

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock sets the timestamp source for genesis and sealed blocks.
func WithClock(c clock.Clock) Option {
	return func(l *Ledger) {
		l.clock = c
	}
}

// WithAuditWorkers sets how many goroutines Audit uses to recompute fingerprints.
func WithAuditWorkers(n int) Option {
	return func(l *Ledger) {
		if n > 0 {
			l.auditWorkers = n
		}
	}
}

// Ledger is an append-only hash-linked chain with a pending pool.
//
// mu guards blocks and pending together, so a reader never sees a sealed
// block whose transactions are still pending. sealMu admits one seal at a
// time; the proof-of-work search itself runs without holding mu.
type Ledger struct {
	logger       *zap.Logger
	sealer       Sealer
	metrics      Metrics
	clock        clock.Clock
	auditWorkers int

	sealMu sync.Mutex

	mu      sync.RWMutex
	blocks  []model.Block
	pending []model.Transaction
}

// New constructs a ledger holding only the genesis block. Genesis is not mined.
func New(s Sealer, metrics Metrics, logger *zap.Logger, opts ...Option) (*Ledger, error) {
	l, err := newLedger(s, metrics, logger, opts...)
	if err != nil {
		return nil, err
	}

	genesis := sealer.NewBlock(0, l.clock.Now(), model.GenesisPayload(), model.GenesisPrevious)
	l.blocks = []model.Block{genesis}
	l.metrics.SetHeight(len(l.blocks))
	l.logger.Info("genesis block created", zap.String("fingerprint", genesis.Fingerprint))

	return l, nil
}

func newLedger(s Sealer, metrics Metrics, logger *zap.Logger, opts ...Option) (*Ledger, error) {
	if s == nil {
		return nil, errors.New("ledger sealer is required")
	}
	if metrics == nil {
		return nil, errors.New("ledger metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	l := &Ledger{
		logger:       logger.Named("ledger"),
		sealer:       s,
		metrics:      metrics,
		clock:        clock.System{},
		auditWorkers: defaultAuditWorkers,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Enqueue appends one transaction to the pending pool. Values are not validated.
func (l *Ledger) Enqueue(sender, recipient string, amount int64) {
	l.EnqueueAll([]model.Transaction{{Sender: sender, Recipient: recipient, Amount: amount}})
}

// EnqueueAll appends txs to the pending pool in order.
func (l *Ledger) EnqueueAll(txs []model.Transaction) {
	if len(txs) == 0 {
		return
	}

	l.mu.Lock()
	l.pending = append(l.pending, txs...)
	l.mu.Unlock()

	l.metrics.ObserveEnqueue(len(txs))
}

// SealNextBlock seals the current pool into a new block and appends it.
// An empty pool returns ok == false and a nil error without touching state.
// If sealing fails the chain and pool are left as they were.
func (l *Ledger) SealNextBlock(ctx context.Context, difficulty uint) (model.Block, bool, error) {
	l.sealMu.Lock()
	defer l.sealMu.Unlock()

	l.mu.RLock()
	if len(l.pending) == 0 {
		l.mu.RUnlock()
		return model.Block{}, false, nil
	}
	txs := make([]model.Transaction, len(l.pending))
	copy(txs, l.pending)
	tip := l.blocks[len(l.blocks)-1]
	index := uint64(len(l.blocks))
	l.mu.RUnlock()

	started := time.Now()
	candidate := sealer.NewBlock(index, l.clock.Now(), model.Payload{Transactions: txs}, tip.Fingerprint)
	sealed, err := l.sealer.Seal(ctx, candidate, difficulty)
	l.metrics.ObserveSeal(err, difficulty, len(txs), started)
	if err != nil {
		l.logger.Warn("seal failed, pool kept",
			zap.Uint64("index", index),
			zap.Int("transactions", len(txs)),
			zap.Uint("difficulty", difficulty),
			zap.Error(err),
		)
		return model.Block{}, false, fmt.Errorf("seal next block: %w", err)
	}

	l.mu.Lock()
	l.blocks = append(l.blocks, sealed)
	// Only this goroutine removes from the pool while sealMu is held, so the
	// first len(txs) records are exactly the ones sealed.
	rest := make([]model.Transaction, len(l.pending)-len(txs))
	copy(rest, l.pending[len(txs):])
	l.pending = rest
	height := len(l.blocks)
	l.mu.Unlock()

	l.metrics.SetHeight(height)
	l.logger.Info("block sealed",
		zap.Uint64("index", sealed.Index),
		zap.Uint64("nonce", sealed.Nonce),
		zap.String("fingerprint", sealed.Fingerprint),
		zap.Int("transactions", len(txs)),
		zap.Duration("elapsed", time.Since(started)),
	)

	return sealed.Clone(), true, nil
}

// Len returns the number of blocks including genesis.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.blocks)
}

// Blocks returns a deep copy of the chain in order.
func (l *Ledger) Blocks() []model.Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.Block, len(l.blocks))
	for i, b := range l.blocks {
		out[i] = b.Clone()
	}
	return out
}

// Block returns a copy of the block at index i.
func (l *Ledger) Block(i int) (model.Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if i < 0 || i >= len(l.blocks) {
		return model.Block{}, fmt.Errorf("block index %d out of range [0, %d)", i, len(l.blocks))
	}
	return l.blocks[i].Clone(), nil
}

// Tip returns a copy of the last block.
func (l *Ledger) Tip() model.Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.blocks[len(l.blocks)-1].Clone()
}

// Pending returns a copy of the pending pool in insertion order.
func (l *Ledger) Pending() []model.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.Transaction, len(l.pending))
	copy(out, l.pending)
	return out
}

// Tamper applies fn to a copy of the stored block at index i and stores the
// result without recomputing its fingerprint. It models an out-of-band edit
// that Validate is expected to detect.
func (l *Ledger) Tamper(i int, fn func(b *model.Block)) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i < 0 || i >= len(l.blocks) {
		return fmt.Errorf("block index %d out of range [0, %d)", i, len(l.blocks))
	}
	b := l.blocks[i].Clone()
	fn(&b)
	l.blocks[i] = b

	l.logger.Warn("block modified out of band", zap.Int("index", i))
	return nil
}

// snapshot returns the stored blocks without copying payloads. Stored blocks
// are replaced, never mutated, so the slice is safe to read after unlocking.
func (l *Ledger) snapshot() []model.Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.Block, len(l.blocks))
	copy(out, l.blocks)
	return out
}
