package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	total := 0.0
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return total
}

func TestNewMetricsRegistry_IsolatedRegistries(t *testing.T) {
	firstReg := prometheus.NewRegistry()
	secondReg := prometheus.NewRegistry()
	first := NewMetricsRegistry(firstReg)
	second := NewMetricsRegistry(secondReg)

	first.RecordWrite("representative", "create")
	first.RecordWrite("representative", "create")
	second.RecordWrite("banner", "update")

	if got := counterValue(t, firstReg, "naebak_content_writes_total"); got != 2 {
		t.Errorf("expected 2 writes, got %v", got)
	}
	if got := counterValue(t, secondReg, "naebak_content_writes_total"); got != 1 {
		t.Errorf("expected registries to be independent, got %v", got)
	}
}

func TestRecordWrite_NilRegistry(t *testing.T) {
	var m *MetricsRegistry
	m.RecordWrite("faq", "delete")
}
