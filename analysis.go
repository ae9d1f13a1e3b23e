package orbitalshield

import (
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// AssessmentRequest is a threat to assess.
type AssessmentRequest struct {
	Asteroid      Profile
	YearsToImpact float64
	Site          Coordinates
	// ImpactProbability feeds the Torino proxy; zero leaves it at 0.
	ImpactProbability float64
	// SpacecraftMass overrides the configured spacecraft mass when positive.
	SpacecraftMass float64
	// At is the propagation date of the asteroid orbit, now when zero.
	At time.Time
}

// Assessment is the complete threat and mitigation picture of an asteroid.
type Assessment struct {
	Asteroid       Profile           `json:"asteroid" yaml:"asteroid"`
	Site           Coordinates       `json:"site" yaml:"site"`
	YearsToImpact  float64           `json:"yearsToImpact" yaml:"yearsToImpact"`
	Impact         ImpactEffects     `json:"impact" yaml:"impact"`
	Zones          ImpactZones       `json:"zones" yaml:"zones"`
	Torino         int               `json:"torino" yaml:"torino"`
	Envelope       Envelope          `json:"envelope" yaml:"envelope"`
	Selection      Selection         `json:"selection" yaml:"selection"`
	Recommendation Recommendation    `json:"recommendation" yaml:"recommendation"`
	Outcome        DeflectionOutcome `json:"outcome" yaml:"outcome"`
	Casualties     CasualtyReport    `json:"casualties" yaml:"casualties"`
	Validation     Validation        `json:"validation" yaml:"validation"`
	OrbitClass     OrbitClass        `json:"orbitClass,omitempty" yaml:"orbitClass,omitempty"`
	Position       *Position         `json:"position,omitempty" yaml:"position,omitempty"`
}

// Analyzer chains the impact, selection, outcome and casualty engines.
type Analyzer struct {
	selector   *Selector
	simulator  *Simulator
	casualties *CasualtyEstimator
	instrumentation
}

// NewAnalyzer returns an analyzer over the provided catalog and city registry; nil
// means the built-in ones.
func NewAnalyzer(c *Catalog, r *Registry, opts ...Option) *Analyzer {
	sel := NewSelector(c, opts...)
	in := newInstrumentation(opts)
	in.logger = log.With(in.logger, "component", "analyzer")
	return &Analyzer{
		selector:        sel,
		simulator:       NewSimulator(sel.Catalog()),
		casualties:      NewCasualtyEstimator(r),
		instrumentation: in,
	}
}

// Selector returns the method selector in use.
func (a *Analyzer) Selector() *Selector { return a.selector }

// Simulator returns the outcome simulator in use.
func (a *Analyzer) Simulator() *Simulator { return a.simulator }

// Casualties returns the casualty estimator in use.
func (a *Analyzer) Casualties() *CasualtyEstimator { return a.casualties }

// Assess runs the full assessment. The population at risk is taken within the strong
// shaking radius of the impact.
func (a *Analyzer) Assess(req AssessmentRequest) (Assessment, error) {
	start := time.Now()
	p := req.Asteroid
	out := Assessment{
		Asteroid:      p,
		Site:          req.Site,
		YearsToImpact: sanitizeYears(req.YearsToImpact),
	}
	out.Impact = p.Impact(req.Site)
	out.Zones = EffectZones(p.DiameterKm, out.Impact.EnergyMt)
	out.Torino = TorinoProxy(out.Impact.EnergyMt, req.ImpactProbability)
	out.Envelope = UncertaintyEnvelope(p, DefaultEnvelopeSamples)
	if out.Impact.Degraded {
		level.Warn(a.logger).Log("msg", "impact inputs coerced", "asteroid", p.Name, "site", req.Site)
	}

	out.Selection = a.selector.Select(p.MassKg, out.YearsToImpact, p.Hazardous)
	out.Recommendation = out.Selection.Recommend()
	d := DeflectionFor(out.Selection.Config, p.VelocityKmS, p.MassKg)
	if finite(req.SpacecraftMass) && req.SpacecraftMass > 0 {
		d.SpacecraftMass = req.SpacecraftMass
	}
	var err error
	if out.Outcome, err = a.simulator.Simulate(d); err != nil {
		return Assessment{}, err
	}

	radius := out.Zones.StrongShakingRadiusKm
	out.Casualties = a.casualties.Estimate(req.Site, radius)
	out.Validation = a.casualties.Validate(req.Site, radius)
	a.metrics.observeCasualtyEstimate()
	for _, w := range out.Validation.Warnings {
		level.Warn(a.logger).Log("msg", "casualty estimate", "warning", w)
	}

	if p.Orbit != nil {
		at := req.At
		if at.IsZero() {
			at = time.Now()
		}
		pos := p.Orbit.PositionAtTime(at)
		out.Position = &pos
		out.OrbitClass = p.Orbit.Class()
		a.metrics.observeKepler(pos.Converged)
		if !pos.Converged {
			level.Warn(a.logger).Log("msg", "kepler solution did not converge", "asteroid", p.Name, "e", p.Orbit.Eccentricity)
		}
	}

	a.metrics.observeAssessment(start)
	level.Info(a.logger).Log("msg", "assessment complete", "asteroid", p.Name, "energy_mt", out.Impact.EnergyMt,
		"method", out.Selection.Method, "success_pct", out.Outcome.SuccessProbabilityPct,
		"at_risk", out.Casualties.Total, "duration", time.Since(start))
	return out, nil
}

// AssessScenario assesses a preset at its own impact site.
func (a *Analyzer) AssessScenario(s Scenario, yearsToImpact float64) (Assessment, error) {
	return a.Assess(AssessmentRequest{
		Asteroid:          s.Profile(),
		YearsToImpact:     yearsToImpact,
		Site:              s.Site,
		ImpactProbability: 1,
	})
}
