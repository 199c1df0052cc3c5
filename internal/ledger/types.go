package ledger

import (
	"context"
	"time"

	"github.com/goodnatureofminers/hashledger/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Sealer interface {
		Seal(ctx context.Context, b model.Block, difficulty uint) (model.Block, error)
	}
	Metrics interface {
		ObserveSeal(err error, difficulty uint, transactions int, started time.Time)
		ObserveEnqueue(count int)
		ObserveValidate(valid bool, started time.Time)
		SetHeight(height int)
	}
)
