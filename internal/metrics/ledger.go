// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerSealTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hashledger",
		Subsystem: "ledger",
		Name:      "seals_total",
		Help:      "Count of block sealing attempts.",
	}, []string{"chain", "status"})

	ledgerSealDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hashledger",
		Subsystem: "ledger",
		Name:      "seal_duration_seconds",
		Help:      "Duration of sealing a block, proof-of-work included.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms..262s
	}, []string{"chain", "status"})

	ledgerSealTransactions = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hashledger",
		Subsystem: "ledger",
		Name:      "seal_transactions",
		Help:      "Number of transactions per sealed block.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"chain"})

	ledgerSealDifficulty = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "hashledger",
		Subsystem: "ledger",
		Name:      "seal_difficulty",
		Help:      "Difficulty of the last seal attempt.",
	}, []string{"chain"})

	ledgerEnqueuedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hashledger",
		Subsystem: "ledger",
		Name:      "enqueued_total",
		Help:      "Count of transactions added to the pending pool.",
	}, []string{"chain"})

	ledgerValidationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hashledger",
		Subsystem: "ledger",
		Name:      "validations_total",
		Help:      "Count of chain validations by result.",
	}, []string{"chain", "result"})

	ledgerValidationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hashledger",
		Subsystem: "ledger",
		Name:      "validation_duration_seconds",
		Help:      "Duration of a full chain validation.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain"})

	ledgerHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "hashledger",
		Subsystem: "ledger",
		Name:      "chain_height",
		Help:      "Number of blocks in the chain, genesis included.",
	}, []string{"chain"})
)

// Ledger tracks metrics for a chain manager.
type Ledger struct {
	chain string
}

// NewLedger constructs a Ledger collector labelled with chain.
func NewLedger(chain string) *Ledger {
	if chain == "" {
		chain = "unknown"
	}
	return &Ledger{chain: chain}
}

// ObserveSeal records a seal outcome, its duration and the block size.
func (m Ledger) ObserveSeal(err error, difficulty uint, transactions int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	ledgerSealTotal.WithLabelValues(m.chain, status).Inc()
	ledgerSealDuration.WithLabelValues(m.chain, status).Observe(time.Since(started).Seconds())
	ledgerSealDifficulty.WithLabelValues(m.chain).Set(float64(difficulty))
	if err == nil {
		ledgerSealTransactions.WithLabelValues(m.chain).Observe(float64(transactions))
	}
}

// ObserveEnqueue records count transactions entering the pool.
func (m Ledger) ObserveEnqueue(count int) {
	ledgerEnqueuedTotal.WithLabelValues(m.chain).Add(float64(count))
}

// ObserveValidate records a validation result.
func (m Ledger) ObserveValidate(valid bool, started time.Time) {
	result := "valid"
	if !valid {
		result = "invalid"
	}
	ledgerValidationsTotal.WithLabelValues(m.chain, result).Inc()
	ledgerValidationDuration.WithLabelValues(m.chain).Observe(time.Since(started).Seconds())
}

// SetHeight publishes the current chain length.
func (m Ledger) SetHeight(height int) {
	ledgerHeight.WithLabelValues(m.chain).Set(float64(height))
}
