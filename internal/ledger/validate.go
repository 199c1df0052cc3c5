package ledger

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/goodnatureofminers/hashledger/internal/model"
	"github.com/goodnatureofminers/hashledger/internal/sealer"
	"github.com/goodnatureofminers/hashledger/pkg/workerpool"
	"github.com/hashicorp/go-multierror"
)

// IssueKind classifies a validation failure.
type IssueKind string

const (
	IssueFingerprint IssueKind = "fingerprint_mismatch"
	IssueLinkage     IssueKind = "linkage_mismatch"
	IssueIndex       IssueKind = "index_mismatch"
	IssueGenesis     IssueKind = "genesis_mismatch"
	IssueDifficulty  IssueKind = "difficulty_not_met"
	IssueTimestamp   IssueKind = "timestamp_precision"
	IssueEmpty       IssueKind = "empty_chain"
)

// Issue is one failed check at a block position.
type Issue struct {
	Index    int       `json:"index"`
	Kind     IssueKind `json:"kind"`
	Stored   string    `json:"stored"`
	Expected string    `json:"expected"`
}

func (i Issue) Error() string {
	return fmt.Sprintf("block %d: %s: stored %q, expected %q", i.Index, i.Kind, i.Stored, i.Expected)
}

// Report lists every issue found in a chain.
type Report struct {
	Height int     `json:"height"`
	Issues []Issue `json:"issues"`
}

// Valid reports whether no issue was found.
func (r Report) Valid() bool {
	return len(r.Issues) == 0
}

// Err aggregates the issues, or returns nil for a valid report.
func (r Report) Err() error {
	var errs *multierror.Error
	for _, issue := range r.Issues {
		errs = multierror.Append(errs, issue)
	}
	return errs.ErrorOrNil()
}

func (r *Report) add(issue Issue) {
	r.Issues = append(r.Issues, issue)
}

// Validate recomputes the fingerprint of every block after genesis and checks
// that each one links to its predecessor's stored fingerprint.
func (l *Ledger) Validate() bool {
	return l.Report().Valid()
}

// Report runs the same checks as Validate and returns every failure.
func (l *Ledger) Report() Report {
	started := time.Now()
	blocks := l.snapshot()
	recomputed := make([]string, len(blocks))
	for i := 1; i < len(blocks); i++ {
		recomputed[i] = sealer.Fingerprint(blocks[i])
	}
	report := verify(blocks, recomputed, nil)
	l.metrics.ObserveValidate(report.Valid(), started)
	return report
}

// Audit checks every chain invariant, including genesis shape, index
// continuity, timestamp precision and proof of work at difficulty.
func (l *Ledger) Audit(ctx context.Context, difficulty uint) (Report, error) {
	started := time.Now()
	report, err := audit(ctx, l.snapshot(), difficulty, l.auditWorkers)
	if err != nil {
		return Report{}, err
	}
	l.metrics.ObserveValidate(report.Valid(), started)
	return report, nil
}

func audit(ctx context.Context, blocks []model.Block, difficulty uint, workers int) (Report, error) {
	recomputed, err := workerpool.Collect(ctx, workers, blocks, func(_ context.Context, b model.Block) (string, error) {
		return sealer.Fingerprint(b), nil
	})
	if err != nil {
		return Report{}, fmt.Errorf("recompute fingerprints: %w", err)
	}
	return verify(blocks, recomputed, &difficulty), nil
}

// verify compares blocks against recomputed fingerprints. With strict set,
// genesis and the difficulty predicate are checked as well.
func verify(blocks []model.Block, recomputed []string, strict *uint) Report {
	r := Report{Height: len(blocks)}
	if len(blocks) == 0 {
		if strict != nil {
			r.add(Issue{Kind: IssueEmpty})
		}
		return r
	}

	if strict != nil {
		genesis := blocks[0]
		if genesis.Index != 0 {
			r.add(Issue{Index: 0, Kind: IssueIndex, Stored: strconv.FormatUint(genesis.Index, 10), Expected: "0"})
		}
		if genesis.Previous != model.GenesisPrevious {
			r.add(Issue{Index: 0, Kind: IssueGenesis, Stored: genesis.Previous, Expected: model.GenesisPrevious})
		}
		checkTimestamp(&r, 0, genesis)
		if recomputed[0] != genesis.Fingerprint {
			r.add(Issue{Index: 0, Kind: IssueFingerprint, Stored: genesis.Fingerprint, Expected: recomputed[0]})
		}
	}

	for i := 1; i < len(blocks); i++ {
		current, previous := blocks[i], blocks[i-1]

		if strict != nil && current.Index != uint64(i) {
			r.add(Issue{Index: i, Kind: IssueIndex, Stored: strconv.FormatUint(current.Index, 10), Expected: strconv.Itoa(i)})
		}
		if strict != nil {
			checkTimestamp(&r, i, current)
		}
		if recomputed[i] != current.Fingerprint {
			r.add(Issue{Index: i, Kind: IssueFingerprint, Stored: current.Fingerprint, Expected: recomputed[i]})
		}
		if current.Previous != previous.Fingerprint {
			r.add(Issue{Index: i, Kind: IssueLinkage, Stored: current.Previous, Expected: previous.Fingerprint})
		}
		if strict != nil && !sealer.MeetsDifficulty(current.Fingerprint, *strict) {
			r.add(Issue{Index: i, Kind: IssueDifficulty, Stored: current.Fingerprint, Expected: fmt.Sprintf("%d leading zeros", *strict)})
		}
	}

	return r
}

// checkTimestamp flags timestamps finer than model.TimestampPrecision, which
// NewBlock never produces.
func checkTimestamp(r *Report, i int, b model.Block) {
	if !model.IsCanonicalTime(b.Timestamp) {
		r.add(Issue{
			Index:    i,
			Kind:     IssueTimestamp,
			Stored:   model.CanonicalTimestamp(b.Timestamp),
			Expected: model.CanonicalTimestamp(model.CanonicalTime(b.Timestamp)),
		})
	}
}
