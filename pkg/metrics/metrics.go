package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "inventory"

var (
	registerOnce sync.Once

	ledgerOps = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger",
		Name:      "operations_total",
		Help:      "Ledger operations by kind and result.",
	}, []string{"operation", "result"})

	notificationsEmitted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "notifications",
		Name:      "emitted_total",
		Help:      "Notifications emitted by type.",
	}, []string{"type"})

	scanFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "notifications",
		Name:      "scan_failures_total",
		Help:      "Per-item failures during notification scans.",
	}, []string{"scan"})
)

// Register installs the collectors on the default registry. Safe to call
// more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(ledgerOps, notificationsEmitted, scanFailures)
	})
}

func LedgerOp(operation, result string) {
	ledgerOps.WithLabelValues(operation, result).Inc()
}

func NotificationEmitted(kind string) {
	notificationsEmitted.WithLabelValues(kind).Inc()
}

func ScanFailure(scan string) {
	scanFailures.WithLabelValues(scan).Inc()
}
