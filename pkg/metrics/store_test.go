package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestStoreMetricsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewStoreMetrics(reg)

	m.IncOperation("cart", "add_item")
	m.IncOperation("cart", "add_item")
	m.IncOperation("Wishlist", "remove item")
	m.IncPersistFailure("cart")
	m.IncOrderPlaced()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}

	byName := map[string]*dto.MetricFamily{}
	for _, fam := range families {
		byName[fam.GetName()] = fam
	}

	ops := byName["store_operations_total"]
	if ops == nil {
		t.Fatal("expected store_operations_total family")
	}
	if got := counterValue(t, ops, map[string]string{"store": "cart", "op": "add_item"}); got != 2 {
		t.Fatalf("expected 2 cart add_item ops, got %v", got)
	}
	if got := counterValue(t, ops, map[string]string{"store": "wishlist", "op": "remove_item"}); got != 1 {
		t.Fatalf("expected normalized wishlist label, got %v", got)
	}

	failures := byName["snapshot_persist_failures_total"]
	if failures == nil {
		t.Fatal("expected snapshot_persist_failures_total family")
	}
	if got := counterValue(t, failures, map[string]string{"store": "cart"}); got != 1 {
		t.Fatalf("expected 1 persist failure, got %v", got)
	}

	orders := byName["orders_placed_total"]
	if orders == nil || len(orders.GetMetric()) != 1 {
		t.Fatal("expected orders_placed_total family")
	}
	if got := orders.GetMetric()[0].GetCounter().GetValue(); got != 1 {
		t.Fatalf("expected 1 order placed, got %v", got)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *StoreMetrics
	m.IncOperation("cart", "add_item")
	m.IncPersistFailure("cart")
	m.IncRestoreFailure("cart")
	m.IncOrderPlaced()

	empty := NewStoreMetrics(nil)
	empty.IncOperation("cart", "add_item")
}

func counterValue(t *testing.T, fam *dto.MetricFamily, labels map[string]string) float64 {
	t.Helper()
	for _, metric := range fam.GetMetric() {
		matched := true
		for _, pair := range metric.GetLabel() {
			if want, ok := labels[pair.GetName()]; ok && want != pair.GetValue() {
				matched = false
				break
			}
		}
		if matched {
			return metric.GetCounter().GetValue()
		}
	}
	t.Fatalf("no metric matched labels %v", labels)
	return 0
}
