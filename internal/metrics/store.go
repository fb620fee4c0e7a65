package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payouts7000",
		Subsystem: "store",
		Name:      "operations_total",
		Help:      "Count of transaction store operations.",
	}, []string{"operation", "driver", "status"})
	storeRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "payouts7000",
		Subsystem: "store",
		Name:      "operation_duration_seconds",
		Help:      "Duration of transaction store operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "driver", "status"})
)

// Store tracks metrics for transaction store operations.
type Store struct {
	driver string
}

// NewStore constructs a Store collector labelled with the database driver.
func NewStore(driver string) *Store {
	if driver == "" {
		driver = "unknown"
	}
	return &Store{driver: driver}
}

// Observe records duration and status of a store operation.
func (m Store) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	storeRequestsTotal.WithLabelValues(operation, m.driver, status).Inc()
	storeRequestDuration.WithLabelValues(operation, m.driver, status).Observe(time.Since(started).Seconds())
}
