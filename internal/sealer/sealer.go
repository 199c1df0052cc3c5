package sealer

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/goodnatureofminers/hashledger/internal/model"
	"github.com/goodnatureofminers/hashledger/pkg/workerpool"
)

var (
	// ErrAttemptsExhausted is returned when the attempt ceiling is hit before
	// a nonce satisfying the difficulty is found.
	ErrAttemptsExhausted = errors.New("attempt ceiling reached, difficulty too high")
	// ErrUnreachableDifficulty is returned for difficulties longer than a fingerprint.
	ErrUnreachableDifficulty = errors.New("difficulty exceeds fingerprint length")
)

const (
	defaultChunkSize uint64 = 1 << 14
	// ctx is polled once per checkInterval attempts.
	checkInterval = 1024
)

// Progress is passed to the progress callback while a search runs.
type Progress struct {
	Index    uint64
	Attempts uint64
	Nonce    uint64
}

// Option configures a Sealer.
type Option func(*Sealer)

// WithWorkers searches on n goroutines. Values below 2 search sequentially.
func WithWorkers(n int) Option {
	return func(s *Sealer) {
		s.workers = n
	}
}

// WithChunkSize sets how many nonces a worker scans per round.
func WithChunkSize(n uint64) Option {
	return func(s *Sealer) {
		if n > 0 {
			s.chunkSize = n
		}
	}
}

// WithMaxAttempts bounds the search. Zero means unbounded. Parallel searches
// check the ceiling between rounds.
func WithMaxAttempts(n uint64) Option {
	return func(s *Sealer) {
		s.maxAttempts = n
	}
}

// WithProgress calls fn roughly every `every` attempts.
func WithProgress(every uint64, fn func(Progress)) Option {
	return func(s *Sealer) {
		s.progressEvery = every
		s.progress = fn
	}
}

// Sealer runs the proof-of-work search. It holds no state between calls and
// is safe for concurrent use.
type Sealer struct {
	workers       int
	chunkSize     uint64
	maxAttempts   uint64
	progressEvery uint64
	progress      func(Progress)
}

// New constructs a Sealer.
func New(opts ...Option) *Sealer {
	s := &Sealer{
		workers:   1,
		chunkSize: defaultChunkSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seal returns a copy of b carrying the smallest nonce >= b.Nonce whose
// fingerprint meets difficulty. b itself is not modified.
func (s *Sealer) Seal(ctx context.Context, b model.Block, difficulty uint) (model.Block, error) {
	if difficulty > model.FingerprintLength {
		return model.Block{}, fmt.Errorf("seal block %d at difficulty %d: %w", b.Index, difficulty, ErrUnreachableDifficulty)
	}

	var (
		nonce, attempts uint64
		fingerprint     string
		err             error
	)
	if s.workers > 1 {
		nonce, fingerprint, attempts, err = s.searchParallel(ctx, b, difficulty)
	} else {
		nonce, fingerprint, attempts, err = s.searchSequential(ctx, b, difficulty)
	}
	if err != nil {
		return model.Block{}, fmt.Errorf("seal block %d after %d attempts: %w", b.Index, attempts, err)
	}

	sealed := b.Clone()
	sealed.Nonce = nonce
	sealed.Fingerprint = fingerprint
	return sealed, nil
}

func (s *Sealer) searchSequential(ctx context.Context, b model.Block, difficulty uint) (uint64, string, uint64, error) {
	tpl := blockTemplate(b)
	var attempts uint64
	for nonce := b.Nonce; ; nonce++ {
		if s.maxAttempts > 0 && attempts >= s.maxAttempts {
			return 0, "", attempts, ErrAttemptsExhausted
		}
		if attempts%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, "", attempts, err
			}
		}

		fingerprint := tpl.fingerprint(nonce)
		attempts++
		s.report(b.Index, attempts-1, attempts, nonce)
		if MeetsDifficulty(fingerprint, difficulty) {
			return nonce, fingerprint, attempts, nil
		}
		if nonce == math.MaxUint64 {
			return 0, "", attempts, ErrAttemptsExhausted
		}
	}
}

type hit struct {
	found       bool
	nonce       uint64
	fingerprint string
}

// searchParallel scans rounds of consecutive chunks. Every chunk of a round
// finishes before the round is inspected, so the first hit in chunk order is
// the same nonce the sequential search returns.
func (s *Sealer) searchParallel(ctx context.Context, b model.Block, difficulty uint) (uint64, string, uint64, error) {
	tpl := blockTemplate(b)
	roundSize := uint64(s.workers) * s.chunkSize
	starts := make([]uint64, s.workers)

	var attempts uint64
	for base := b.Nonce; ; base += roundSize {
		if s.maxAttempts > 0 && attempts >= s.maxAttempts {
			return 0, "", attempts, ErrAttemptsExhausted
		}
		if base > math.MaxUint64-roundSize {
			return 0, "", attempts, ErrAttemptsExhausted
		}
		for i := range starts {
			starts[i] = base + uint64(i)*s.chunkSize
		}

		hits, err := workerpool.Collect(ctx, s.workers, starts, func(ctx context.Context, start uint64) (hit, error) {
			return s.scan(ctx, tpl, start, difficulty)
		})
		if err != nil {
			return 0, "", attempts, err
		}

		prev := attempts
		attempts += roundSize
		for _, h := range hits {
			if h.found {
				return h.nonce, h.fingerprint, attempts, nil
			}
		}
		s.report(b.Index, prev, attempts, base+roundSize-1)
	}
}

func (s *Sealer) scan(ctx context.Context, tpl template, start uint64, difficulty uint) (hit, error) {
	for i := uint64(0); i < s.chunkSize; i++ {
		if i%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return hit{}, err
			}
		}
		nonce := start + i
		fingerprint := tpl.fingerprint(nonce)
		if MeetsDifficulty(fingerprint, difficulty) {
			return hit{found: true, nonce: nonce, fingerprint: fingerprint}, nil
		}
	}
	return hit{}, nil
}

func (s *Sealer) report(index, prev, attempts, nonce uint64) {
	if s.progress == nil || s.progressEvery == 0 {
		return
	}
	if attempts/s.progressEvery > prev/s.progressEvery {
		s.progress(Progress{Index: index, Attempts: attempts, Nonce: nonce})
	}
}
