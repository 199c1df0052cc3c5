package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sealingIterationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hashledger",
		Subsystem: "sealing_service",
		Name:      "iterations_total",
		Help:      "Count of sealing loop iterations by outcome.",
	}, []string{"chain", "outcome"})

	sealingIterationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hashledger",
		Subsystem: "sealing_service",
		Name:      "iteration_duration_seconds",
		Help:      "Duration of a sealing loop iteration.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "outcome"})

	sealingSubmitTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hashledger",
		Subsystem: "sealing_service",
		Name:      "submit_total",
		Help:      "Count of transactions submitted to the intake.",
	}, []string{"chain", "status"})

	sealingFlushSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hashledger",
		Subsystem: "sealing_service",
		Name:      "flush_size",
		Help:      "Number of transactions moved from the intake into the pool per flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"chain"})
)

// SealingService tracks metrics for the background sealing loop.
type SealingService struct {
	chain string
}

// NewSealingService constructs a SealingService collector.
func NewSealingService(chain string) *SealingService {
	if chain == "" {
		chain = "unknown"
	}
	return &SealingService{chain: chain}
}

// ObserveIteration records one loop iteration. sealed is false when the pool was empty.
func (m SealingService) ObserveIteration(err error, sealed bool, started time.Time) {
	outcome := "sealed"
	switch {
	case err != nil:
		outcome = "error"
	case !sealed:
		outcome = "idle"
	}
	sealingIterationsTotal.WithLabelValues(m.chain, outcome).Inc()
	sealingIterationDuration.WithLabelValues(m.chain, outcome).Observe(time.Since(started).Seconds())
}

// ObserveSubmit records a submission attempt.
func (m SealingService) ObserveSubmit(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	sealingSubmitTotal.WithLabelValues(m.chain, status).Inc()
}

// ObserveFlush records a batch of transactions handed to the ledger.
func (m SealingService) ObserveFlush(count int) {
	sealingFlushSize.WithLabelValues(m.chain).Observe(float64(count))
}
