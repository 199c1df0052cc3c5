// Package model defines the ledger domain types.
package model

import (
	"fmt"
	"time"
)

const (
	// GenesisMarker is the fixed payload of the genesis block.
	GenesisMarker = "Genesis Block"
	// GenesisPrevious is the previous fingerprint sentinel carried by the genesis block.
	GenesisPrevious = "0"
	// FingerprintLength is the number of hex characters in a fingerprint.
	FingerprintLength = 64
)

// Transaction is a single transfer record collected in the pending pool.
type Transaction struct {
	Sender    string `cbor:"1,keyasint" json:"sender"`
	Recipient string `cbor:"2,keyasint" json:"recipient"`
	Amount    int64  `cbor:"3,keyasint" json:"amount"`
}

// Payload is the content of a block: either a marker string (genesis only)
// or an ordered sequence of transactions.
type Payload struct {
	Marker       string        `cbor:"1,keyasint,omitempty" json:"marker,omitempty"`
	Transactions []Transaction `cbor:"2,keyasint,omitempty" json:"transactions,omitempty"`
}

// GenesisPayload returns the payload stored in the genesis block.
func GenesisPayload() Payload {
	return Payload{Marker: GenesisMarker}
}

// TransactionsPayload wraps txs into a payload, copying the slice.
func TransactionsPayload(txs []Transaction) Payload {
	return Payload{Transactions: cloneTransactions(txs)}
}

// Clone returns a deep copy of the payload.
func (p Payload) Clone() Payload {
	return Payload{Marker: p.Marker, Transactions: cloneTransactions(p.Transactions)}
}

// Block is a sealed or in-progress ledger entry.
type Block struct {
	Index       uint64    `cbor:"1,keyasint" json:"index"`
	Timestamp   time.Time `cbor:"2,keyasint" json:"timestamp"`
	Payload     Payload   `cbor:"3,keyasint" json:"payload"`
	Previous    string    `cbor:"4,keyasint" json:"previous_fingerprint"`
	Nonce       uint64    `cbor:"5,keyasint" json:"nonce"`
	Fingerprint string    `cbor:"6,keyasint" json:"fingerprint"`
}

// IsGenesis reports whether b sits at index 0.
func (b Block) IsGenesis() bool {
	return b.Index == 0
}

// Clone returns a deep copy of b so callers can't alias stored payloads.
func (b Block) Clone() Block {
	b.Payload = b.Payload.Clone()
	return b
}

// String renders the block for diagnostics with shortened fingerprints.
func (b Block) String() string {
	return fmt.Sprintf("Block(index=%d, timestamp=%d, hash=%s..., prev=%s...)",
		b.Index, b.Timestamp.Unix(), Short(b.Fingerprint), Short(b.Previous))
}

// Short returns the first ten characters of a fingerprint.
func Short(fingerprint string) string {
	if len(fingerprint) <= 10 {
		return fingerprint
	}
	return fingerprint[:10]
}

func cloneTransactions(txs []Transaction) []Transaction {
	if txs == nil {
		return nil
	}
	out := make([]Transaction, len(txs))
	copy(out, txs)
	return out
}
