package sealing

import (
	"context"
	"time"

	"github.com/goodnatureofminers/hashledger/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Ledger interface {
		SealNextBlock(ctx context.Context, difficulty uint) (model.Block, bool, error)
		EnqueueAll(txs []model.Transaction)
		Len() int
	}
	Intake interface {
		Start(ctx context.Context)
		Stop()
		Add(ctx context.Context, tx model.Transaction) error
	}
	ServiceMetrics interface {
		ObserveIteration(err error, sealed bool, started time.Time)
		ObserveSubmit(err error)
		ObserveFlush(count int)
	}
)
