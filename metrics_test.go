package orbitalshield

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectorCountsSelections(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	sel := NewSelector(nil, WithMetrics(c))
	first := sel.Select(5e16, 5, false)
	sel.Select(5e16, 5, true)
	if got := testutil.ToFloat64(c.MethodSelections.WithLabelValues(string(first.Method))); got != 2 {
		t.Fatalf("orbitalshield_method_selections_total{method=%q} = %v, want 2", first.Method, got)
	}
	if n := testutil.CollectAndCount(c.MethodSelections); n != 1 {
		t.Fatalf("%d label sets, want 1", n)
	}
}

func TestCollectorReRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := NewCollector(reg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("second registration: %v", err)
	}
	a.Assessments.Inc()
	if got := testutil.ToFloat64(b.Assessments); got != 1 {
		t.Fatalf("re-registered collector does not share counters: %v", got)
	}

	reg = prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGauge(prometheus.GaugeOpts{Name: "orbitalshield_assessments_total", Help: "clash"}))
	if _, err := NewCollector(reg); err == nil {
		t.Fatal("incompatible registration accepted")
	}
}

func TestNilCollector(t *testing.T) {
	var c *Collector
	c.observeSelection(Kinetic)
	c.observeCasualtyEstimate()
	c.observeKepler(false)
	if err := c.WriteTextfile(filepath.Join(t.TempDir(), "none.prom")); err != nil {
		t.Fatal(err)
	}
}

func TestCollectorTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	if err != nil {
		t.Fatal(err)
	}
	c.observeKepler(true)
	c.observeKepler(false)
	c.observeCasualtyEstimate()
	path := filepath.Join(t.TempDir(), "shield.prom")
	if err := c.WriteTextfile(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"orbitalshield_kepler_nonconverged_total 1",
		"orbitalshield_casualty_estimates_total 1",
	} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("textfile lacks %q:\n%s", want, data)
		}
	}
}
