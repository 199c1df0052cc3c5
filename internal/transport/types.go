package transport

import (
	"context"

	"github.com/goodnatureofminers/hashledger/internal/ledger"
	"github.com/goodnatureofminers/hashledger/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Chain interface {
		Blocks() []model.Block
		Block(i int) (model.Block, error)
		Pending() []model.Transaction
		Report() ledger.Report
		Audit(ctx context.Context, difficulty uint) (ledger.Report, error)
	}
	Submitter interface {
		Submit(ctx context.Context, tx model.Transaction) error
	}
)
