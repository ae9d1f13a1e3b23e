package orbitalshield

import (
	"errors"
	"fmt"
)

// Method identifies a deflection technique.
type Method string

// Deflection methods.
const (
	Kinetic        Method = "kinetic"
	GravityTractor Method = "gravity"
	Nuclear        Method = "nuclear"
	LaserAblation  Method = "laser"
	IonBeam        Method = "ion"
	MassDriver     Method = "mass_driver"
)

// Methods lists every deflection method in evaluation order.
var Methods = []Method{Kinetic, GravityTractor, Nuclear, LaserAblation, IonBeam, MassDriver}

// ParseMethod returns the method matching the provided key.
func ParseMethod(key string) (Method, error) {
	for _, m := range Methods {
		if string(m) == key {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown deflection method %q", key)
}

// Complexity is the operational complexity of a method.
type Complexity string

// Operational complexities.
const (
	MediumComplexity  Complexity = "medium"
	HighComplexity    Complexity = "high"
	ExtremeComplexity Complexity = "extreme"
)

// Feasibility is the political feasibility of a method.
type Feasibility string

// Political feasibilities.
const (
	VeryLowFeasibility Feasibility = "very_low"
	LowFeasibility     Feasibility = "low"
	MediumFeasibility  Feasibility = "medium"
	HighFeasibility    Feasibility = "high"
)

// Interval is a closed [Min, Max] range.
type Interval struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Contains reports whether v lies in the interval.
func (i Interval) Contains(v float64) bool {
	return v >= i.Min && v <= i.Max
}

// Clamp bounds v to the interval.
func (i Interval) Clamp(v float64) float64 {
	return clamp(v, i.Min, i.Max)
}

// Mid returns the arithmetic center.
func (i Interval) Mid() float64 {
	return (i.Min + i.Max) / 2
}

func (i Interval) valid() bool {
	return finite(i.Min) && finite(i.Max) && i.Min <= i.Max
}

// Band is a physical range with an optimal sub-range.
type Band struct {
	Min     float64  `json:"min" yaml:"min"`
	Max     float64  `json:"max" yaml:"max"`
	Optimal Interval `json:"optimal" yaml:"optimal"`
}

// Range returns the physical range.
func (b Band) Range() Interval {
	return Interval{b.Min, b.Max}
}

func (b Band) valid() bool {
	return b.Range().valid() && b.Optimal.valid() && b.Optimal.Min >= b.Min && b.Optimal.Max <= b.Max
}

// MassBudget is the nominal spacecraft mass and its physical limits, in kg.
type MassBudget struct {
	Base float64 `json:"base" yaml:"base"`
	Min  float64 `json:"min" yaml:"min"`
	Max  float64 `json:"max" yaml:"max"`
}

// Range returns the physical range.
func (m MassBudget) Range() Interval {
	return Interval{m.Min, m.Max}
}

// MethodSpec is the static description of a deflection method.
type MethodSpec struct {
	Method      Method `json:"method" yaml:"method"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Examples    string `json:"examples" yaml:"examples"`

	DeltaV              Band       `json:"deltaV" yaml:"deltaV"` // mm/s
	SpacecraftMass      MassBudget `json:"spacecraftMass" yaml:"spacecraftMass"`
	MomentumEnhancement float64    `json:"momentumEnhancement" yaml:"momentumEnhancement"`

	DevelopmentTime Interval `json:"developmentTime" yaml:"developmentTime"` // years
	MissionDuration Interval `json:"missionDuration" yaml:"missionDuration"` // years
	WarningTime     Band     `json:"warningTime" yaml:"warningTime"`         // years

	// MassRatio is the asteroid to spacecraft mass ratio the method is designed for,
	// Optimal being its peak.
	MassRatio Band `json:"massRatio" yaml:"massRatio"`
	// EffectiveMassRatio is the band over which the outcome physics stays efficient.
	EffectiveMassRatio Interval `json:"effectiveMassRatio" yaml:"effectiveMassRatio"`
	// MassTolerance bounds the spacecraft mass as a multiple of the base mass.
	MassTolerance Interval `json:"massTolerance" yaml:"massTolerance"`

	Reliability          float64     `json:"reliability" yaml:"reliability"`
	TechnologyReadiness  int         `json:"technologyReadiness" yaml:"technologyReadiness"`
	CostBase             float64     `json:"costBase" yaml:"costBase"` // million USD
	CostScale            float64     `json:"costScale" yaml:"costScale"`
	Complexity           Complexity  `json:"complexity" yaml:"complexity"`
	PoliticalFeasibility Feasibility `json:"politicalFeasibility" yaml:"politicalFeasibility"`

	Advantages  []string `json:"advantages" yaml:"advantages"`
	Limitations []string `json:"limitations" yaml:"limitations"`
}

func (s MethodSpec) clone() MethodSpec {
	s.Advantages = append([]string(nil), s.Advantages...)
	s.Limitations = append([]string(nil), s.Limitations...)
	return s
}

// Validate checks the internal consistency of the specification.
func (s MethodSpec) Validate() error {
	var errs []error
	check := func(ok bool, field string) {
		if !ok {
			errs = append(errs, fmt.Errorf("%s: invalid %s", s.Method, field))
		}
	}
	check(s.DeltaV.valid() && s.DeltaV.Min > 0, "delta-v range")
	check(s.SpacecraftMass.Range().valid() && s.SpacecraftMass.Min > 0 && s.SpacecraftMass.Range().Contains(s.SpacecraftMass.Base), "spacecraft mass")
	check(s.DevelopmentTime.valid(), "development time")
	check(s.MissionDuration.valid() && s.MissionDuration.Min > 0, "mission duration")
	check(s.WarningTime.valid(), "warning time")
	check(s.MassRatio.valid() && s.MassRatio.Min > 0, "mass ratio")
	check(s.EffectiveMassRatio.valid() && s.EffectiveMassRatio.Min > 0, "effective mass ratio")
	check(s.MassTolerance.valid(), "mass tolerance")
	check(s.Reliability > 0 && s.Reliability <= 1, "reliability")
	check(s.TechnologyReadiness >= 1 && s.TechnologyReadiness <= 9, "technology readiness")
	check(s.CostBase > 0 && finite(s.CostScale), "cost model")
	return errors.Join(errs...)
}

// Catalog is an immutable set of method specifications, one per Method.
type Catalog struct {
	specs map[Method]MethodSpec
}

// NewCatalog validates the provided specifications. Every method must be present
// exactly once.
func NewCatalog(specs []MethodSpec) (*Catalog, error) {
	c := &Catalog{specs: make(map[Method]MethodSpec, len(Methods))}
	for _, s := range specs {
		if _, err := ParseMethod(string(s.Method)); err != nil {
			return nil, err
		}
		if _, dup := c.specs[s.Method]; dup {
			return nil, fmt.Errorf("duplicate specification for %s", s.Method)
		}
		if err := s.Validate(); err != nil {
			return nil, err
		}
		c.specs[s.Method] = s.clone()
	}
	for _, m := range Methods {
		if _, ok := c.specs[m]; !ok {
			return nil, fmt.Errorf("missing specification for %s", m)
		}
	}
	return c, nil
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultMethodSpecs)
	if err != nil {
		panic(err)
	}
	return c
}

// Methods returns the methods in evaluation order.
func (c *Catalog) Methods() []Method {
	return append([]Method(nil), Methods...)
}

// Spec returns the specification of a method.
func (c *Catalog) Spec(m Method) (MethodSpec, bool) {
	s, ok := c.specs[m]
	if !ok {
		return MethodSpec{}, false
	}
	return s.clone(), true
}

// OptimalMassRatioRange returns the designed mass ratio band of a method.
func (c *Catalog) OptimalMassRatioRange(m Method) (Band, bool) {
	s, ok := c.specs[m]
	return s.MassRatio, ok
}

// MassTolerance returns the spacecraft mass tolerance of a method.
func (c *Catalog) MassTolerance(m Method) (Interval, bool) {
	s, ok := c.specs[m]
	return s.MassTolerance, ok
}

var defaultMethodSpecs = []MethodSpec{
	{
		Method:               Kinetic,
		Name:                 "Kinetic Impactor",
		Description:          "High-velocity spacecraft collision transfers momentum to asteroid",
		Examples:             "DART (2022), Deep Impact (2005), AIDA concept",
		DeltaV:               Band{1, 50, Interval{5, 25}},
		SpacecraftMass:       MassBudget{800, 400, 15000},
		MomentumEnhancement:  2.8,
		DevelopmentTime:      Interval{2.5, 5},
		MissionDuration:      Interval{0.8, 3.5},
		WarningTime:          Band{5, 25, Interval{8, 20}},
		MassRatio:            Band{100, 500000, Interval{1000, 50000}},
		EffectiveMassRatio:   Interval{100, 1e6},
		MassTolerance:        Interval{0.59, 1.41},
		Reliability:          0.88,
		TechnologyReadiness:  9,
		CostBase:             450,
		CostScale:            1.8,
		Complexity:           MediumComplexity,
		PoliticalFeasibility: HighFeasibility,
		Advantages:           []string{"Proven technology", "Fast deployment", "High precision", "Predictable outcomes"},
		Limitations:          []string{"Mass-limited effectiveness", "Single-use", "Requires precise trajectory", "Limited to smaller asteroids"},
	},
	{
		Method:               GravityTractor,
		Name:                 "Gravity Tractor",
		Description:          "Spacecraft uses gravitational attraction to slowly deflect asteroid",
		Examples:             "ESA NEO-MAPP studies, NASA gravity tractor concepts",
		DeltaV:               Band{0.01, 8, Interval{0.1, 3}},
		SpacecraftMass:       MassBudget{3500, 1500, 25000},
		MomentumEnhancement:  1.0,
		DevelopmentTime:      Interval{4, 8},
		MissionDuration:      Interval{8, 25},
		WarningTime:          Band{15, 60, Interval{20, 45}},
		MassRatio:            Band{50, 100000, Interval{200, 10000}},
		EffectiveMassRatio:   Interval{1000, 500000},
		MassTolerance:        Interval{0.5, 1.5},
		Reliability:          0.94,
		TechnologyReadiness:  7,
		CostBase:             1200,
		CostScale:            2.2,
		Complexity:           HighComplexity,
		PoliticalFeasibility: HighFeasibility,
		Advantages:           []string{"Extremely precise", "Works on any composition", "Scalable with time", "No surface contact"},
		Limitations:          []string{"Very slow", "Long missions", "High fuel requirements", "Complex operations"},
	},
	{
		Method:               Nuclear,
		Name:                 "Nuclear Standoff Burst",
		Description:          "Nuclear device creates massive impulse through X-ray ablation",
		Examples:             "Project Icarus (1968), NASA nuclear deflection studies",
		DeltaV:               Band{5, 1000, Interval{20, 400}},
		SpacecraftMass:       MassBudget{8000, 3000, 80000},
		MomentumEnhancement:  25.0,
		DevelopmentTime:      Interval{4, 12},
		MissionDuration:      Interval{1, 5},
		WarningTime:          Band{1, 15, Interval{2, 10}},
		MassRatio:            Band{5000, 5e7, Interval{1e5, 1e7}},
		EffectiveMassRatio:   Interval{1e5, 1e7},
		MassTolerance:        Interval{0.33, 1.67},
		Reliability:          0.75,
		TechnologyReadiness:  6,
		CostBase:             3500,
		CostScale:            2.8,
		Complexity:           ExtremeComplexity,
		PoliticalFeasibility: VeryLowFeasibility,
		Advantages:           []string{"Handles massive asteroids", "Fast execution", "Enormous energy", "Last resort capability"},
		Limitations:          []string{"Political barriers", "Fragmentation risk", "Complex technology", "International treaties"},
	},
	{
		Method:               LaserAblation,
		Name:                 "Laser Ablation Array",
		Description:          "High-power laser array creates continuous thrust through surface ablation",
		Examples:             "DE-STAR concept, Breakthrough Starshot scalability studies",
		DeltaV:               Band{0.1, 25, Interval{1, 12}},
		SpacecraftMass:       MassBudget{4500, 2000, 35000},
		MomentumEnhancement:  4.2,
		DevelopmentTime:      Interval{8, 15},
		MissionDuration:      Interval{3, 18},
		WarningTime:          Band{8, 30, Interval{12, 25}},
		MassRatio:            Band{200, 200000, Interval{1000, 50000}},
		EffectiveMassRatio:   Interval{100, 50000},
		MassTolerance:        Interval{0.57, 1.43},
		Reliability:          0.65,
		TechnologyReadiness:  4,
		CostBase:             2800,
		CostScale:            3.1,
		Complexity:           ExtremeComplexity,
		PoliticalFeasibility: MediumFeasibility,
		Advantages:           []string{"Continuous thrust", "Precise control", "Distance operation", "Scalable power"},
		Limitations:          []string{"Unproven technology", "Enormous power requirements", "Beam diffraction", "Complex targeting"},
	},
	{
		Method:               IonBeam,
		Name:                 "Ion Beam Shepherd",
		Description:          "Ion beam creates continuous low thrust on asteroid surface",
		Examples:             "NASA JPL shepherd concepts, ESA ion deflection studies",
		DeltaV:               Band{0.05, 12, Interval{0.3, 6}},
		SpacecraftMass:       MassBudget{2800, 1200, 20000},
		MomentumEnhancement:  1.4,
		DevelopmentTime:      Interval{5, 9},
		MissionDuration:      Interval{4, 20},
		WarningTime:          Band{10, 35, Interval{15, 28}},
		MassRatio:            Band{100, 150000, Interval{500, 30000}},
		EffectiveMassRatio:   Interval{500, 50000},
		MassTolerance:        Interval{0.57, 1.43},
		Reliability:          0.91,
		TechnologyReadiness:  8,
		CostBase:             950,
		CostScale:            2.0,
		Complexity:           HighComplexity,
		PoliticalFeasibility: HighFeasibility,
		Advantages:           []string{"High efficiency", "Proven ion technology", "Precise control", "Long operational life"},
		Limitations:          []string{"Very low thrust", "Close proximity required", "Long mission times", "Complex operations"},
	},
	{
		Method:               MassDriver,
		Name:                 "Surface Mass Driver",
		Description:          "Surface-mounted electromagnetic launcher ejects asteroid material for thrust",
		Examples:             "Space tug concepts, asteroid mining propulsion studies",
		DeltaV:               Band{2, 180, Interval{8, 80}},
		SpacecraftMass:       MassBudget{6500, 3500, 45000},
		MomentumEnhancement:  6.8,
		DevelopmentTime:      Interval{6, 12},
		MissionDuration:      Interval{2, 12},
		WarningTime:          Band{8, 25, Interval{10, 20}},
		MassRatio:            Band{1000, 5e6, Interval{1e4, 1e6}},
		EffectiveMassRatio:   Interval{500, 50000},
		MassTolerance:        Interval{1.0, 1.0},
		Reliability:          0.82,
		TechnologyReadiness:  5,
		CostBase:             1800,
		CostScale:            2.4,
		Complexity:           ExtremeComplexity,
		PoliticalFeasibility: MediumFeasibility,
		Advantages:           []string{"Uses asteroid material", "High thrust potential", "Reduces asteroid mass", "Scalable"},
		Limitations:          []string{"Complex surface operations", "Landing required", "Composition dependent", "Unproven technology"},
	},
}
