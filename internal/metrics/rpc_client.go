package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerRPCRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payouts7000",
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of ledger node RPC operations.",
	}, []string{"operation", "node", "status"})
	ledgerRPCRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "payouts7000",
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "node", "status"})
)

// RPCClient tracks metrics for RPC calls to the ledger node.
type RPCClient struct {
	node string
}

// NewRPCClient constructs a metrics collector for RPC calls to node.
func NewRPCClient(node string) *RPCClient {
	if node == "" {
		node = "unknown"
	}
	return &RPCClient{node: node}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	ledgerRPCRequestsTotal.WithLabelValues(operation, m.node, status).Inc()
	ledgerRPCRequestDuration.WithLabelValues(operation, m.node, status).Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
