package orbitalshield

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector bundles the Prometheus metrics of the deflection planner. A nil *Collector
// records nothing.
type Collector struct {
	gatherer prometheus.Gatherer

	MethodSelections   *prometheus.CounterVec
	Assessments        prometheus.Counter
	CasualtyEstimates  prometheus.Counter
	KeplerNonConverged prometheus.Counter
	AssessmentDuration prometheus.Histogram
}

// NewCollector registers the metrics against the provided registerer, defaulting to
// the global Prometheus registry when nil. Registering twice against the same
// registry returns the existing metrics.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	selections, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orbitalshield_method_selections_total",
		Help: "Number of times each deflection method was selected.",
	}, []string{"method"}), "orbitalshield_method_selections_total")
	if err != nil {
		return nil, err
	}
	assessments, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orbitalshield_assessments_total",
		Help: "Number of completed threat assessments.",
	}), "orbitalshield_assessments_total")
	if err != nil {
		return nil, err
	}
	casualties, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orbitalshield_casualty_estimates_total",
		Help: "Number of casualty estimates computed.",
	}), "orbitalshield_casualty_estimates_total")
	if err != nil {
		return nil, err
	}
	kepler, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orbitalshield_kepler_nonconverged_total",
		Help: "Number of propagations whose Kepler solution did not converge.",
	}), "orbitalshield_kepler_nonconverged_total")
	if err != nil {
		return nil, err
	}
	duration, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "orbitalshield_assessment_duration_seconds",
		Help:    "Threat assessment latency in seconds.",
		Buckets: []float64{1e-5, 5e-5, 1e-4, 5e-4, 1e-3, 5e-3, 0.01, 0.05, 0.1},
	}), "orbitalshield_assessment_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:           gatherer,
		MethodSelections:   selections,
		Assessments:        assessments,
		CasualtyEstimates:  casualties,
		KeplerNonConverged: kepler,
		AssessmentDuration: duration,
	}, nil
}

// WriteTextfile writes the gathered metrics in the text exposition format, for the
// node exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	if c == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, c.gatherer)
}

func (c *Collector) observeSelection(m Method) {
	if c == nil {
		return
	}
	c.MethodSelections.WithLabelValues(string(m)).Inc()
}

func (c *Collector) observeAssessment(start time.Time) {
	if c == nil {
		return
	}
	c.Assessments.Inc()
	c.AssessmentDuration.Observe(time.Since(start).Seconds())
}

func (c *Collector) observeCasualtyEstimate() {
	if c == nil {
		return
	}
	c.CasualtyEstimates.Inc()
}

func (c *Collector) observeKepler(converged bool) {
	if c == nil || converged {
		return
	}
	c.KeplerNonConverged.Inc()
}

func register[T prometheus.Collector](reg prometheus.Registerer, col T, name string) (T, error) {
	if err := reg.Register(col); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			var zero T
			return zero, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		var zero T
		return zero, err
	}
	return col, nil
}
