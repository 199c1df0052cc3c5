package model

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// CanonicalVersion identifies the field serialization used for fingerprints.
// Changing any function in this file changes every fingerprint.
const CanonicalVersion = 1

// TimestampPrecision is the resolution block timestamps are stored at.
const TimestampPrecision = time.Microsecond

// CanonicalTime truncates t to TimestampPrecision and drops its monotonic reading.
func CanonicalTime(t time.Time) time.Time {
	return t.Truncate(TimestampPrecision)
}

// IsCanonicalTime reports whether t carries no precision below TimestampPrecision.
func IsCanonicalTime(t time.Time) bool {
	return t.Nanosecond()%int(TimestampPrecision) == 0
}

// CanonicalIndex renders an index or nonce in base 10.
func CanonicalIndex(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// CanonicalTimestamp renders t as Unix seconds with a fractional part,
// e.g. "1700000000.0" or "1700000000.25". The fraction is exact to the
// nanosecond with trailing zeros removed.
func CanonicalTimestamp(t time.Time) string {
	sec, ns := t.Unix(), int64(t.Nanosecond())
	neg := sec < 0
	if neg && ns > 0 {
		sec++
		ns = int64(time.Second) - ns
	}
	if neg {
		sec = -sec
	}

	frac := strings.TrimRight(strconv.FormatInt(ns+int64(time.Second), 10)[1:], "0")
	if frac == "" {
		frac = "0"
	}

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	sb.WriteString(strconv.FormatInt(sec, 10))
	sb.WriteByte('.')
	sb.WriteString(frac)
	return sb.String()
}

// Canonical renders the payload. Marker payloads render verbatim; transaction
// payloads render as [{'sender': 'A', 'recipient': 'B', 'amount': 1}, ...].
func (p Payload) Canonical() string {
	if p.Marker != "" {
		return p.Marker
	}
	return CanonicalTransactions(p.Transactions)
}

// CanonicalTransactions renders an ordered transaction sequence.
func CanonicalTransactions(txs []Transaction) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, tx := range txs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("{'sender': ")
		writeQuoted(&sb, tx.Sender)
		sb.WriteString(", 'recipient': ")
		writeQuoted(&sb, tx.Recipient)
		sb.WriteString(", 'amount': ")
		sb.WriteString(strconv.FormatInt(tx.Amount, 10))
		sb.WriteByte('}')
	}
	sb.WriteByte(']')
	return sb.String()
}

// writeQuoted quotes s the way Python's repr does: single quotes unless s
// contains a single quote and no double quote, with non-printable runes escaped.
func writeQuoted(sb *strings.Builder, s string) {
	quote := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	sb.WriteByte(quote)
	for _, r := range s {
		switch {
		case r == '\\' || r == rune(quote):
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\r':
			sb.WriteString(`\r`)
		case r == '\t':
			sb.WriteString(`\t`)
		case unicode.IsPrint(r):
			sb.WriteRune(r)
		case r < 0x100:
			writeHexEscape(sb, 'x', r, 2)
		case r < 0x10000:
			writeHexEscape(sb, 'u', r, 4)
		default:
			writeHexEscape(sb, 'U', r, 8)
		}
	}
	sb.WriteByte(quote)
}

func writeHexEscape(sb *strings.Builder, kind byte, r rune, width int) {
	hex := strconv.FormatInt(int64(r), 16)
	sb.WriteByte('\\')
	sb.WriteByte(kind)
	sb.WriteString(strings.Repeat("0", width-len(hex)))
	sb.WriteString(hex)
}
