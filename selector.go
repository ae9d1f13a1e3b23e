package orbitalshield

import (
	"fmt"
	"math"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	// DefaultAsteroidMass in kg, used when the provided mass is not usable.
	DefaultAsteroidMass = 1e9
	// DefaultYearsToImpact is used when the provided warning time is not usable.
	DefaultYearsToImpact = 5.0
	minYearsToImpact     = 0.1
)

// Score weights.
const (
	massWeight        = 40.0
	timingWeight      = 30.0
	reliabilityWeight = 20.0
	bonusWeight       = 10.0
)

const (
	acceptableFloor     = 0.6
	acceptableDecay     = 0.15 // per decade away from the peak center
	overkillStart       = 0.7
	overkillDecay       = 0.2 // per decade below the designed minimum
	overkillFloor       = 0.2
	inadequateStart     = 0.6
	inadequateDecay     = 0.3 // per decade above the designed maximum
	inadequateFloor     = 0.1
	categoryBoost       = 1.2 // mass score multiplier for the category's optimal methods
	readinessBoost      = 1.3
	readinessBoostLevel = 8
	nonHazardousBonus   = 5.0
)

// provenBonus favors flight-proven methods when the object is hazardous.
var provenBonus = map[Method]float64{
	Kinetic:        10,
	GravityTractor: 8,
	IonBeam:        7,
	Nuclear:        5,
	MassDriver:     4,
	LaserAblation:  2,
}

// ScoreBreakdown is the suitability score of one method.
type ScoreBreakdown struct {
	Method      Method  `json:"method" yaml:"method"`
	MassRatio   float64 `json:"massRatio" yaml:"massRatio"`
	Mass        float64 `json:"mass" yaml:"mass"`
	Timing      float64 `json:"timing" yaml:"timing"`
	Reliability float64 `json:"reliability" yaml:"reliability"`
	Bonus       float64 `json:"bonus" yaml:"bonus"`
	Total       float64 `json:"total" yaml:"total"`
}

func (s ScoreBreakdown) String() string {
	return fmt.Sprintf("%-11s %6.2f (mass %5.2f timing %5.2f reliability %5.2f bonus %4.1f, ratio %.3g)",
		s.Method, s.Total, s.Mass, s.Timing, s.Reliability, s.Bonus, s.MassRatio)
}

// Selection is the outcome of a method selection.
type Selection struct {
	Method        Method               `json:"method" yaml:"method"`
	Score         float64              `json:"score" yaml:"score"`
	AsteroidMass  float64              `json:"asteroidMassKg" yaml:"asteroidMassKg"`
	YearsToImpact float64              `json:"yearsToImpact" yaml:"yearsToImpact"`
	Hazardous     bool                 `json:"hazardous" yaml:"hazardous"`
	Category      MassCategory         `json:"category" yaml:"category"`
	Scores        []ScoreBreakdown     `json:"scores" yaml:"scores"`
	Config        MissionConfiguration `json:"config" yaml:"config"`
}

// Selector scores every method of a catalog against an asteroid and a warning time.
type Selector struct {
	catalog *Catalog
	instrumentation
}

// NewSelector returns a selector over the provided catalog (the default one when nil).
func NewSelector(c *Catalog, opts ...Option) *Selector {
	if c == nil {
		c = DefaultCatalog()
	}
	in := newInstrumentation(opts)
	in.logger = log.With(in.logger, "component", "selector")
	return &Selector{catalog: c, instrumentation: in}
}

// Catalog returns the catalog in use.
func (s *Selector) Catalog() *Catalog {
	return s.catalog
}

func sanitizeMass(massKg float64) float64 {
	if !finite(massKg) || massKg <= 0 {
		return DefaultAsteroidMass
	}
	return massKg
}

func sanitizeYears(years float64) float64 {
	if !finite(years) || years < 0 {
		return DefaultYearsToImpact
	}
	return math.Max(minYearsToImpact, years)
}

// Select returns the best scoring method. Ties go to the first method in catalog order.
func (s *Selector) Select(massKg, yearsToImpact float64, hazardous bool) Selection {
	massKg = sanitizeMass(massKg)
	yearsToImpact = sanitizeYears(yearsToImpact)
	sel := Selection{
		AsteroidMass:  massKg,
		YearsToImpact: yearsToImpact,
		Hazardous:     hazardous,
		Category:      Classify(massKg),
		Score:         math.Inf(-1),
	}
	for _, m := range s.catalog.Methods() {
		sc := s.score(m, massKg, yearsToImpact, hazardous, sel.Category)
		level.Debug(s.logger).Log("msg", "scored method", "method", m, "total", sc.Total, "mass", sc.Mass,
			"timing", sc.Timing, "reliability", sc.Reliability, "bonus", sc.Bonus, "ratio", sc.MassRatio)
		sel.Scores = append(sel.Scores, sc)
		if sc.Total > sel.Score {
			sel.Method, sel.Score = m, sc.Total
		}
	}
	sel.Config, _ = s.Configure(sel.Method, massKg, yearsToImpact)
	level.Info(s.logger).Log("msg", "method selected", "method", sel.Method, "score", sel.Score,
		"category", sel.Category.Key, "mass", massKg, "years", yearsToImpact, "hazardous", hazardous)
	s.metrics.observeSelection(sel.Method)
	return sel
}

// Score returns the score of a single method.
func (s *Selector) Score(m Method, massKg, yearsToImpact float64, hazardous bool) (ScoreBreakdown, error) {
	if _, ok := s.catalog.Spec(m); !ok {
		return ScoreBreakdown{}, fmt.Errorf("unknown deflection method %q", m)
	}
	massKg = sanitizeMass(massKg)
	return s.score(m, massKg, sanitizeYears(yearsToImpact), hazardous, Classify(massKg)), nil
}

func (s *Selector) score(m Method, massKg, years float64, hazardous bool, cat MassCategory) ScoreBreakdown {
	spec, _ := s.catalog.Spec(m)
	ratio := massKg / spec.SpacecraftMass.Base
	sc := ScoreBreakdown{
		Method:      m,
		MassRatio:   ratio,
		Mass:        massWeight * massEffectiveness(ratio, spec.MassRatio),
		Timing:      timingScore(m, years, spec.WarningTime.Optimal),
		Reliability: reliabilityScore(spec, ratio, hazardous),
		Bonus:       bonusScore(m, hazardous),
	}
	if cat.Favors(m) {
		sc.Mass *= categoryBoost
	}
	sc.Total = sc.Mass + sc.Timing + sc.Reliability + sc.Bonus
	return sc
}

// massEffectiveness rates a mass ratio against a designed band, in (0, 1].
// Inside the peak it follows a bell on the peak midpoint. Elsewhere in the band it
// decays per decade away from that midpoint, outside the band per decade past the edge.
func massEffectiveness(r float64, b Band) float64 {
	p := b.Optimal
	switch {
	case r >= p.Min && r <= p.Max:
		h := (p.Max - p.Min) / 2
		if h == 0 {
			return 1
		}
		dev := (r - p.Mid()) / h
		return math.Exp(-dev * dev)
	case r >= b.Min && r <= b.Max:
		return math.Max(acceptableFloor, 1-acceptableDecay*math.Abs(math.Log10(r/p.Mid())))
	case r < b.Min:
		return math.Max(overkillFloor, overkillStart-overkillDecay*math.Log10(b.Min/r))
	default:
		return math.Max(inadequateFloor, inadequateStart-inadequateDecay*math.Log10(r/b.Max))
	}
}

// timingScore rates the warning time against the method's optimal window.
func timingScore(m Method, years float64, window Interval) float64 {
	switch {
	case years < window.Min:
		urgency := window.Min / years
		if m == Kinetic || m == Nuclear {
			return math.Max(9, 27-urgency*3)
		}
		return math.Max(3, 21-urgency*6)
	case years > window.Max:
		excess := years / window.Max
		switch m {
		case GravityTractor, IonBeam, LaserAblation:
			return math.Min(timingWeight, 18+math.Log(excess)*4.5)
		default:
			return math.Max(15, 27-(excess-1)*2.4)
		}
	default:
		return timingWeight
	}
}

// reliabilityScore penalizes methods pushed outside their effective mass ratio and
// boosts mature technologies for hazardous objects.
func reliabilityScore(spec MethodSpec, ratio float64, hazardous bool) float64 {
	r := spec.Reliability
	eff := spec.EffectiveMassRatio
	if ratio > 2*eff.Max {
		switch spec.Method {
		case Kinetic, LaserAblation:
			r *= 0.7
		case Nuclear:
			r *= 0.9
		}
	}
	if ratio < eff.Min/2 && spec.Method == Nuclear {
		r *= 0.8
	}
	if hazardous && spec.TechnologyReadiness >= readinessBoostLevel {
		r *= readinessBoost
	}
	return r * reliabilityWeight
}

func bonusScore(m Method, hazardous bool) float64 {
	if hazardous {
		return provenBonus[m]
	}
	return nonHazardousBonus
}
