package orbitalshield

import (
	"fmt"
	"math"
)

const (
	minSpacecraftMass = 500.0 // kg
	// Low-thrust methods stretch the mission instead of growing the spacecraft past this.
	longMissionMassCap = 4.5
	nuclearScaleCap    = 15.0
	kineticMassCap     = 3.0
	kineticDeltaVCap   = 2.5
)

// MissionConfiguration is a sized deflection mission.
type MissionConfiguration struct {
	Method               Method     `json:"method" yaml:"method"`
	Name                 string     `json:"name" yaml:"name"`
	SpacecraftMassKg     float64    `json:"spacecraftMassKg" yaml:"spacecraftMassKg"`
	DeltaV               float64    `json:"deltaVmms" yaml:"deltaVmms"` // mm/s
	MissionDurationYears float64    `json:"missionDurationYears" yaml:"missionDurationYears"`
	DevelopmentYears     float64    `json:"developmentYears" yaml:"developmentYears"`
	CostMillionUSD       float64    `json:"costMillionUSD" yaml:"costMillionUSD"`
	Reliability          float64    `json:"reliability" yaml:"reliability"`
	Complexity           Complexity `json:"complexity" yaml:"complexity"`
	YearsToImpact        float64    `json:"yearsToImpact" yaml:"yearsToImpact"`
	Category             string     `json:"category" yaml:"category"`
	// WithinMassTolerance is set when the spacecraft mass stays inside the method's
	// tolerance around its nominal mass.
	WithinMassTolerance bool `json:"withinMassTolerance" yaml:"withinMassTolerance"`
}

func (c MissionConfiguration) String() string {
	return fmt.Sprintf("%s: %.0f kg, %.1f mm/s over %.1f years ($%.0fM, %.0f years development)",
		c.Name, c.SpacecraftMassKg, c.DeltaV, c.MissionDurationYears, c.CostMillionUSD, c.DevelopmentYears)
}

// Configure sizes a mission of method m against an asteroid of the given mass (kg) with
// the given warning time (years). Every value stays inside the method's physical range.
func (s *Selector) Configure(m Method, massKg, yearsToImpact float64) (MissionConfiguration, error) {
	spec, ok := s.catalog.Spec(m)
	if !ok {
		return MissionConfiguration{}, fmt.Errorf("unknown deflection method %q", m)
	}
	massKg = sanitizeMass(massKg)
	years := sanitizeYears(yearsToImpact)
	cat := Classify(massKg)
	billions := massKg / 1e9

	massScale, dvScale, durScale := cat.massScale, cat.deltaVScale, cat.durationScale
	switch m {
	case Nuclear:
		dvScale = math.Min(nuclearScaleCap, dvScale*math.Min(3, math.Pow(billions/1000, 0.3)))
		massScale = math.Min(nuclearScaleCap, massScale*math.Min(2.5, math.Pow(billions/5000, 0.2)))
	case Kinetic:
		massScale = math.Min(kineticMassCap, massScale)
		dvScale = math.Min(kineticDeltaVCap, dvScale)
	case GravityTractor, IonBeam, LaserAblation:
		if massScale > longMissionMassCap {
			durScale *= math.Min(2, 1+0.5*math.Log10(massScale/longMissionMassCap))
			massScale = longMissionMassCap
		}
	}

	scMass := spec.SpacecraftMass.Base * massScale
	dv := spec.DeltaV.Optimal.Mid() * dvScale
	duration := spec.MissionDuration.Mid() * durScale

	window := spec.WarningTime.Optimal
	switch {
	case years < window.Min:
		if m == Nuclear || m == Kinetic {
			dv *= 1.5
			duration = spec.MissionDuration.Min
		} else {
			dv *= 1.2
			duration *= 0.7
		}
	case years > window.Max:
		switch m {
		case GravityTractor, IonBeam:
			dv *= 0.8
			duration = math.Max(duration, years*0.4)
		}
	}

	scMass = spec.SpacecraftMass.Range().Clamp(math.Max(minSpacecraftMass, math.Round(scMass)))
	dv = spec.DeltaV.Range().Clamp(roundTo(dv, 1))
	duration = spec.MissionDuration.Clamp(roundTo(duration, 1))

	effScale := scMass / spec.SpacecraftMass.Base
	return MissionConfiguration{
		Method:               m,
		Name:                 spec.Name,
		SpacecraftMassKg:     scMass,
		DeltaV:               dv,
		MissionDurationYears: duration,
		DevelopmentYears:     spec.DevelopmentTime.Max,
		CostMillionUSD:       math.Round(spec.CostBase * math.Pow(effScale, spec.CostScale/2)),
		Reliability:          spec.Reliability,
		Complexity:           spec.Complexity,
		YearsToImpact:        years,
		Category:             cat.Key,
		WithinMassTolerance:  spec.MassTolerance.Contains(roundTo(effScale, 2)),
	}, nil
}
