package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics records counters for the session-scoped state stores.
type StoreMetrics struct {
	operations      *prometheus.CounterVec
	persistFailures *prometheus.CounterVec
	restoreFailures *prometheus.CounterVec
	ordersPlaced    prometheus.Counter
}

// NewStoreMetrics registers the store metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_operations_total",
		Help: "State store operations by store and operation.",
	}, []string{"store", "op"})
	persistFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "snapshot_persist_failures_total",
		Help: "Snapshot writes that failed after an in-memory mutation.",
	}, []string{"store"})
	restoreFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "snapshot_restore_failures_total",
		Help: "Snapshot restores that degraded to an empty state.",
	}, []string{"store"})
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Orders finalized through the checkout wizard.",
	})
	reg.MustRegister(operations, persistFailures, restoreFailures, ordersPlaced)
	return &StoreMetrics{
		operations:      operations,
		persistFailures: persistFailures,
		restoreFailures: restoreFailures,
		ordersPlaced:    ordersPlaced,
	}
}

// IncOperation increments the operation counter for the named store.
func (m *StoreMetrics) IncOperation(store, op string) {
	if m == nil || m.operations == nil {
		return
	}
	m.operations.WithLabelValues(normalizeLabel(store), normalizeLabel(op)).Inc()
}

// IncPersistFailure increments the persist-failure counter for the named store.
func (m *StoreMetrics) IncPersistFailure(store string) {
	if m == nil || m.persistFailures == nil {
		return
	}
	m.persistFailures.WithLabelValues(normalizeLabel(store)).Inc()
}

// IncRestoreFailure increments the restore-failure counter for the named store.
func (m *StoreMetrics) IncRestoreFailure(store string) {
	if m == nil || m.restoreFailures == nil {
		return
	}
	m.restoreFailures.WithLabelValues(normalizeLabel(store)).Inc()
}

// IncOrderPlaced increments the placed-order counter.
func (m *StoreMetrics) IncOrderPlaced() {
	if m == nil || m.ordersPlaced == nil {
		return
	}
	m.ordersPlaced.Inc()
}

func normalizeLabel(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return "unknown"
	}
	return strings.ReplaceAll(value, " ", "_")
}
