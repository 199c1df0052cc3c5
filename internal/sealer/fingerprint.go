// Package sealer computes block fingerprints and runs the proof-of-work search.
package sealer

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/hashledger/internal/model"
)

const digestLen = 2 * chainhash.HashSize

// FingerprintOf hashes each canonical field separately, concatenates the five
// hex digests in field order and hashes the concatenation once more.
func FingerprintOf(index uint64, timestamp time.Time, payload model.Payload, previous string, nonce uint64) string {
	return newTemplate(index, timestamp, payload, previous).fingerprint(nonce)
}

// Fingerprint recomputes the fingerprint of b from its stored fields.
func Fingerprint(b model.Block) string {
	return FingerprintOf(b.Index, b.Timestamp, b.Payload, b.Previous, b.Nonce)
}

// NewBlock builds an unsealed block with nonce 0 and its fingerprint computed once.
// The timestamp is truncated to model.TimestampPrecision.
func NewBlock(index uint64, timestamp time.Time, payload model.Payload, previous string) model.Block {
	b := model.Block{
		Index:     index,
		Timestamp: model.CanonicalTime(timestamp),
		Payload:   payload,
		Previous:  previous,
	}
	b.Fingerprint = Fingerprint(b)
	return b
}

// MeetsDifficulty reports whether fingerprint starts with difficulty '0' characters.
func MeetsDifficulty(fingerprint string, difficulty uint) bool {
	if difficulty > uint(len(fingerprint)) {
		return false
	}
	for i := uint(0); i < difficulty; i++ {
		if fingerprint[i] != '0' {
			return false
		}
	}
	return true
}

// template holds the digests of the four fields that stay fixed while the
// nonce changes.
type template struct {
	prefix string
}

func newTemplate(index uint64, timestamp time.Time, payload model.Payload, previous string) template {
	var sb strings.Builder
	sb.Grow(4 * digestLen)
	sb.WriteString(digest(model.CanonicalIndex(index)))
	sb.WriteString(digest(model.CanonicalTimestamp(timestamp)))
	sb.WriteString(digest(payload.Canonical()))
	sb.WriteString(digest(previous))
	return template{prefix: sb.String()}
}

func blockTemplate(b model.Block) template {
	return newTemplate(b.Index, b.Timestamp, b.Payload, b.Previous)
}

func (t template) fingerprint(nonce uint64) string {
	return digest(t.prefix + digest(model.CanonicalIndex(nonce)))
}

func digest(s string) string {
	return hex.EncodeToString(chainhash.HashB([]byte(s)))
}
