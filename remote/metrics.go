// ABOUTME: Prometheus counters for remote store operations
// ABOUTME: Labeled by table, operation and success/error outcome
package remote

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var operationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "studiodesk_remote_operations_total",
		Help: "Remote store operations by table, operation and outcome.",
	},
	[]string{"table", "op", "status"},
)

func observe(table, op string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	operationsTotal.WithLabelValues(table, op, status).Inc()
}
