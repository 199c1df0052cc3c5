package main

import (
	"context"
	"fmt"
	"io"

	"github.com/goodnatureofminers/hashledger/internal/ledger"
	"github.com/goodnatureofminers/hashledger/internal/model"
	"github.com/goodnatureofminers/hashledger/internal/sealer"
)

// tamperedIndex and tamperedAmount describe the out-of-band edit applied by the demo.
const (
	tamperedIndex  = 1
	tamperedAmount = 999
)

var referenceScenario = [][]model.Transaction{
	{{Sender: "Alice", Recipient: "Bob", Amount: 50}, {Sender: "Bob", Recipient: "Charlie", Amount: 20}},
	{{Sender: "Charlie", Recipient: "Dave", Amount: 10}, {Sender: "Alice", Recipient: "Eve", Amount: 30}},
	{{Sender: "Eve", Recipient: "Frank", Amount: 15}, {Sender: "Dave", Recipient: "Alice", Amount: 5}},
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) chain(l *ledger.Ledger) {
	for _, b := range l.Blocks() {
		p.printf("%s\n", b)
	}
	p.printf("\n")
}

// seal enqueues every scenario block and seals it at difficulty.
func seal(ctx context.Context, l *ledger.Ledger, difficulty uint, out io.Writer) error {
	p := &printer{w: out}
	p.printf("=== Blockchain Initialized ===\n\n")

	for i, txs := range referenceScenario {
		p.printf("Adding transactions to Block %d...\n", l.Len())
		for _, tx := range txs {
			l.Enqueue(tx.Sender, tx.Recipient, tx.Amount)
		}
		block, ok, err := l.SealNextBlock(ctx, difficulty)
		if err != nil {
			return fmt.Errorf("seal scenario block %d: %w", i+1, err)
		}
		if !ok {
			return fmt.Errorf("scenario block %d: pending pool unexpectedly empty", i+1)
		}
		p.printf("Block %d mined and added.\n\n", block.Index)
	}

	p.printf("=== Current Blockchain ===\n")
	p.chain(l)
	p.printf("Blockchain validity: %t\n\n", l.Validate())
	return p.err
}

// tamper rewrites the first amount of a sealed block and shows that validation notices.
func tamper(l *ledger.Ledger, out io.Writer) error {
	p := &printer{w: out}
	p.printf("=== Tampering with Blockchain ===\n")
	err := l.Tamper(tamperedIndex, func(b *model.Block) {
		if len(b.Payload.Transactions) > 0 {
			b.Payload.Transactions[0].Amount = tamperedAmount
		}
	})
	if err != nil {
		return fmt.Errorf("tamper block %d: %w", tamperedIndex, err)
	}
	p.printf("Transaction data modified.\n\n")

	p.printf("=== Blockchain After Tampering ===\n")
	p.chain(l)
	p.printf("Blockchain validity after tampering: %t\n", l.Validate())

	block, err := l.Block(tamperedIndex)
	if err != nil {
		return err
	}
	p.printf("Stored hash:       %s\n", block.Fingerprint)
	p.printf("Recomputed hash:   %s\n", sealer.Fingerprint(block))
	return p.err
}
