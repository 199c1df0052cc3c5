package ledger

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/hashledger/internal/model"
	"go.uber.org/zap"
)

// Restore rebuilds a ledger from a persisted block sequence. The sequence must
// pass Audit at difficulty; the pending pool starts empty.
func Restore(
	ctx context.Context,
	blocks []model.Block,
	difficulty uint,
	s Sealer,
	metrics Metrics,
	logger *zap.Logger,
	opts ...Option,
) (*Ledger, error) {
	l, err := newLedger(s, metrics, logger, opts...)
	if err != nil {
		return nil, err
	}

	stored := make([]model.Block, len(blocks))
	for i, b := range blocks {
		stored[i] = b.Clone()
	}

	report, err := audit(ctx, stored, difficulty, l.auditWorkers)
	if err != nil {
		return nil, fmt.Errorf("restore ledger: %w", err)
	}
	if err := report.Err(); err != nil {
		return nil, fmt.Errorf("restore ledger: %w", err)
	}

	l.blocks = stored
	l.metrics.SetHeight(len(stored))
	l.logger.Info("ledger restored",
		zap.Int("height", len(stored)),
		zap.String("tip", stored[len(stored)-1].Fingerprint),
	)
	return l, nil
}
