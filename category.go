package orbitalshield

// MassCategory is a band of asteroid mass with its threat profile.
type MassCategory struct {
	Key             string   `json:"key" yaml:"key"`
	Label           string   `json:"label" yaml:"label"`
	Range           Interval `json:"range" yaml:"range"` // kg, [Min, Max)
	Description     string   `json:"description" yaml:"description"`
	TypicalDiameter string   `json:"typicalDiameter" yaml:"typicalDiameter"`
	ThreatLevel     string   `json:"threatLevel" yaml:"threatLevel"`
	OptimalMethods  []Method `json:"optimalMethods" yaml:"optimalMethods"`
	Urgency         string   `json:"urgency" yaml:"urgency"`

	// Configuration multipliers applied to a method's nominal spacecraft mass,
	// delta-v and mission duration.
	massScale, deltaVScale, durationScale float64
}

// Favors reports whether m is one of the category's optimal methods.
func (c MassCategory) Favors(m Method) bool {
	for _, o := range c.OptimalMethods {
		if o == m {
			return true
		}
	}
	return false
}

var massCategories = []MassCategory{
	{"tiny", "Tiny", Interval{1e6, 1e9}, "Small near-Earth objects", "1-10 meters", "minimal",
		[]Method{Kinetic, LaserAblation}, "low", 0.6, 0.8, 0.8},
	{"small", "Small", Interval{1e9, 1e11}, "House to building-sized asteroids", "10-50 meters", "local",
		[]Method{Kinetic, GravityTractor, IonBeam}, "medium", 1.0, 1.0, 1.0},
	{"medium", "Medium", Interval{1e11, 1e13}, "City-killer asteroids", "50-200 meters", "regional",
		[]Method{Kinetic, Nuclear, MassDriver}, "high", 2.2, 1.8, 1.1},
	{"large", "Large", Interval{1e13, 1e15}, "Regional devastation asteroids", "200-500 meters", "continental",
		[]Method{Nuclear, MassDriver, GravityTractor}, "critical", 4.5, 3.2, 1.3},
	{"massive", "Massive", Interval{1e15, 1e17}, "Global catastrophe asteroids", "500-1000 meters", "global",
		[]Method{Nuclear, MassDriver}, "maximum", 8.5, 6.0, 1.6},
	{"ultra_massive", "Ultra-Massive", Interval{1e17, 1e20}, "Extinction-level asteroids", "1+ kilometers", "extinction",
		[]Method{Nuclear}, "absolute", 15, 12, 2},
}

// MassCategories returns every category from the lightest to the heaviest.
func MassCategories() []MassCategory {
	out := make([]MassCategory, len(massCategories))
	for i, c := range massCategories {
		c.OptimalMethods = append([]Method(nil), c.OptimalMethods...)
		out[i] = c
	}
	return out
}

// Classify returns the mass category of an asteroid of the given mass in kg.
// Masses below the tiny band are tiny, anything at or above 1e17 kg (or not a
// number) is ultra massive.
func Classify(massKg float64) MassCategory {
	cats := MassCategories()
	if massKg < cats[0].Range.Min {
		return cats[0]
	}
	for _, c := range cats {
		if massKg >= c.Range.Min && massKg < c.Range.Max {
			return c
		}
	}
	return cats[len(cats)-1]
}
