package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	paymentCyclesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payouts7000",
		Subsystem: "payments",
		Name:      "cycles_total",
		Help:      "Count of payment cycles by outcome.",
	}, []string{"status"})
	paymentCycleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "payouts7000",
		Subsystem: "payments",
		Name:      "cycle_duration_seconds",
		Help:      "Duration of payment cycles.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
	paymentSignTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payouts7000",
		Subsystem: "payments",
		Name:      "sign_total",
		Help:      "Count of sign requests.",
	}, []string{"status"})
	paymentSignDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "payouts7000",
		Subsystem: "payments",
		Name:      "sign_duration_seconds",
		Help:      "Duration of sign requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
	paymentSubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payouts7000",
		Subsystem: "payments",
		Name:      "submissions_total",
		Help:      "Count of classified submissions.",
	}, []string{"category", "resolution"})
	paymentRollbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "payouts7000",
		Subsystem: "payments",
		Name:      "rollbacks_total",
		Help:      "Count of resign rollbacks.",
	})
	paymentRolledBackTransactions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "payouts7000",
		Subsystem: "payments",
		Name:      "rolled_back_transactions_total",
		Help:      "Count of signed transactions cleared by rollbacks.",
	})
	paymentNextSequence = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "payouts7000",
		Subsystem: "payments",
		Name:      "next_sequence",
		Help:      "Next sequence number the signer will use.",
	})
	paymentFatalLatched = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "payouts7000",
		Subsystem: "payments",
		Name:      "fatal_latched",
		Help:      "1 while a fatal error blocks payment cycles.",
	})
)

// Payments tracks metrics for the payment cycle.
type Payments struct{}

// NewPayments constructs a Payments collector.
func NewPayments() *Payments {
	return &Payments{}
}

// ObserveCycle records a finished cycle.
func (m Payments) ObserveCycle(status string, started time.Time) {
	paymentCyclesTotal.WithLabelValues(status).Inc()
	paymentCycleDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveSign records a sign request.
func (m Payments) ObserveSign(err error, started time.Time) {
	status := statusOf(err)
	paymentSignTotal.WithLabelValues(status).Inc()
	paymentSignDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveSubmission records a classified submission.
func (m Payments) ObserveSubmission(category, resolution string) {
	paymentSubmissionsTotal.WithLabelValues(category, resolution).Inc()
}

// ObserveRollback records a resign rollback.
func (m Payments) ObserveRollback(cleared int64) {
	paymentRollbacksTotal.Inc()
	paymentRolledBackTransactions.Add(float64(cleared))
}

// SetSequence exports the next sequence.
func (m Payments) SetSequence(sequence uint32) {
	paymentNextSequence.Set(float64(sequence))
}

// SetFatal exports the fatal latch state.
func (m Payments) SetFatal(latched bool) {
	if latched {
		paymentFatalLatched.Set(1)
		return
	}
	paymentFatalLatched.Set(0)
}
