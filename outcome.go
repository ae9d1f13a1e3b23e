package orbitalshield

import (
	"fmt"
	"math"
)

const (
	yearSeconds = 365.25 * 86400
	// DefaultSimulatedMass is the asteroid mass assumed when none is known, in kg.
	DefaultSimulatedMass = 1e12
	minSimulatedMass     = 1e5 // kg, a house-sized boulder
	maxSimulatedRatio    = 1e8
	// MaxMissDistance caps the extrapolated miss distance, in km (about 26 lunar distances).
	MaxMissDistance = 1e7
	// Heliocentric distance of the deflection, in AU, scaling the miss distance by its square root.
	deflectionRadiusAU = 1.0
	lateTimingPenalty  = 0.9
	minTimingFactor    = 0.1

	ejectaEnhancement    = 2.5  // kinetic impactor momentum enhancement
	neoOrbitalVelocity   = 20.0 // km/s, added in quadrature to the encounter velocity
	gravityG             = 6.674e-11
	tractorHoverDistance = 100.0 // m
	kilotonPerKg         = 1e-2  // warhead yield per kg of platform
	nuclearImpulsePerKt  = 1e6   // N s per sqrt(kt)
	nuclearCoupling      = 10.0
	laserWattsPerKg      = 1e4 // 1 MW per 100 kg
	ablationCoupling     = 1e-3
	ablationPlume        = 3.0
	ionBeamCoupling      = 1.2
	massDriverReaction   = 4.0

	// Platform mass and delta-v normalizing the mission energy model.
	referenceEnergyMass   = 1500.0
	referenceEnergyDeltaV = 10.0
)

// ratioResponse is the piecewise success multiplier of a method against the mass
// ratio. Ratios above the effective band get over, ratios above shoulder get high and
// ratios below the band get under.
type ratioResponse struct {
	shoulder, over, high, under float64
}

// physicsModel holds the per-method constants of the outcome simulation.
type physicsModel struct {
	efficiency float64 // base efficiency
	refMass    float64 // kg, platform mass at unit efficiency scale
	maxScale   float64 // cap of the platform mass scale
	// Fraction of deployments expected to perform nominally in the field.
	fieldReliability float64
	missionEnergy    float64 // J, reference input energy
	response         ratioResponse
}

var physicsModels = map[Method]physicsModel{
	Kinetic:        {0.15, 500, 2, 0.85, 1e13, ratioResponse{1e5, 0.3, 0.7, 0.8}},
	GravityTractor: {0.95, 1000, 3, 0.95, 1e11, ratioResponse{5e4, 0.5, 0.8, 0.9}},
	Nuclear:        {0.85, 2000, 1.5, 0.70, 1e15, ratioResponse{1e6, 0.4, 0.8, 0.7}},
	LaserAblation:  {0.25, 1500, 2, 0.60, 1e12, ratioResponse{1e4, 0.3, 0.7, 0.8}},
	IonBeam:        {0.90, 800, 1.8, 0.90, 1e10, ratioResponse{1e4, 0.4, 0.8, 0.9}},
	MassDriver:     {0.60, 1200, 2.5, 0.75, 1e12, ratioResponse{1e4, 0.6, 0.9, 0.8}},
}

// Deflection describes an attempted deflection: a delta-v in mm/s applied by a method
// with the given warning time in years against an asteroid of the given mass (kg, zero
// for unknown) approaching at the given relative velocity (km/s).
type Deflection struct {
	Method           Method  `json:"method" yaml:"method"`
	DeltaV           float64 `json:"deltaVmms" yaml:"deltaVmms"`
	YearsToImpact    float64 `json:"yearsToImpact" yaml:"yearsToImpact"`
	RelativeVelocity float64 `json:"relativeVelocity" yaml:"relativeVelocity"`
	AsteroidMass     float64 `json:"asteroidMassKg" yaml:"asteroidMassKg"`
	// SpacecraftMass overrides the nominal spacecraft mass of the method when positive.
	SpacecraftMass float64 `json:"spacecraftMassKg,omitempty" yaml:"spacecraftMassKg,omitempty"`
}

// DeflectionFor returns the deflection flown by a sized mission.
func DeflectionFor(cfg MissionConfiguration, relativeVelocity, asteroidMass float64) Deflection {
	return Deflection{
		Method:           cfg.Method,
		DeltaV:           cfg.DeltaV,
		YearsToImpact:    cfg.YearsToImpact,
		RelativeVelocity: relativeVelocity,
		AsteroidMass:     asteroidMass,
		SpacecraftMass:   cfg.SpacecraftMassKg,
	}
}

// DeflectionOutcome is the projected result of a deflection. VelocityChange is the
// effective delta-v in m/s and MomentumTransfer is in N s. A deflection without any
// delta-v has an all zero outcome.
type DeflectionOutcome struct {
	Method                Method  `json:"method" yaml:"method"`
	MissDistanceKm        float64 `json:"missDistanceKm" yaml:"missDistanceKm"`
	MissDistanceLD        float64 `json:"missDistanceLD" yaml:"missDistanceLD"`
	DeflectionAngleDeg    float64 `json:"deflectionAngleDeg" yaml:"deflectionAngleDeg"`
	EnergyEfficiencyPct   float64 `json:"energyEfficiencyPct" yaml:"energyEfficiencyPct"`
	SuccessProbabilityPct float64 `json:"successProbabilityPct" yaml:"successProbabilityPct"`
	VelocityChange        float64 `json:"velocityChangeMs" yaml:"velocityChangeMs"`
	MomentumTransfer      float64 `json:"momentumTransferNs" yaml:"momentumTransferNs"`
	MassEfficiencyPct     float64 `json:"massEfficiencyPct" yaml:"massEfficiencyPct"`
	SpacecraftMass        float64 `json:"spacecraftMassKg" yaml:"spacecraftMassKg"`
	MassRatio             float64 `json:"massRatio" yaml:"massRatio"`
	MissionEnergy         float64 `json:"missionEnergyJ" yaml:"missionEnergyJ"`
}

func (o DeflectionOutcome) String() string {
	return fmt.Sprintf("%s: miss %.0f km (%.3f LD), success %.1f%%, angle %.2e deg",
		o.Method, o.MissDistanceKm, o.MissDistanceLD, o.SuccessProbabilityPct, o.DeflectionAngleDeg)
}

// Simulator projects deflection outcomes from a method catalog.
type Simulator struct {
	catalog *Catalog
}

// NewSimulator returns a simulator using the provided catalog, or the default one if nil.
func NewSimulator(c *Catalog) *Simulator {
	if c == nil {
		c = DefaultCatalog()
	}
	return &Simulator{catalog: c}
}

// Simulate projects the outcome of the deflection. The only error is an unknown method.
func (s *Simulator) Simulate(d Deflection) (DeflectionOutcome, error) {
	spec, ok := s.catalog.Spec(d.Method)
	model, known := physicsModels[d.Method]
	if !ok || !known {
		return DeflectionOutcome{}, fmt.Errorf("unknown deflection method %q", d.Method)
	}
	out := DeflectionOutcome{Method: d.Method}
	if !finite(d.DeltaV) || d.DeltaV <= 0 {
		return out, nil
	}
	years := sanitizeYears(d.YearsToImpact)
	dt := years * yearSeconds

	scMass := spec.SpacecraftMass.Base
	if finite(d.SpacecraftMass) && d.SpacecraftMass > 0 {
		scMass = d.SpacecraftMass
	}
	scMass = math.Max(minSpacecraftMass, scMass)
	astMass := DefaultSimulatedMass
	if finite(d.AsteroidMass) && d.AsteroidMass > 0 {
		astMass = math.Max(minSimulatedMass, d.AsteroidMass)
	}
	ratio := math.Min(maxSimulatedRatio, astMass/scMass)
	response := model.response.multiplier(ratio, spec.EffectiveMassRatio)

	efficiency := model.efficiency * math.Min(model.maxScale, scMass/model.refMass) * response
	dv := d.DeltaV * 1e-6 * efficiency // km/s

	out.SpacecraftMass = scMass
	out.MassRatio = ratio
	out.VelocityChange = dv * 1e3
	out.MomentumTransfer = momentumTransfer(d.Method, scMass, astMass, d.RelativeVelocity, dt)
	if finite(d.RelativeVelocity) && d.RelativeVelocity > 0 {
		out.DeflectionAngleDeg = dv / d.RelativeVelocity / deg2rad
	}
	out.MissDistanceKm = math.Min(math.Abs(dv*dt*math.Sqrt(deflectionRadiusAU)), MaxMissDistance)
	out.MissDistanceLD = out.MissDistanceKm / Moon.SemiMajorAxis()

	p := 1.0
	window := spec.WarningTime.Optimal
	if years < window.Min {
		p *= math.Max(minTimingFactor, 1-(window.Min-years)/window.Min)
	} else if years > window.Max {
		p *= lateTimingPenalty
	}
	out.SuccessProbabilityPct = math.Min(100, p*response*model.fieldReliability*100)

	out.MissionEnergy = MissionEnergy(d.Method, d.DeltaV, years, scMass)
	imparted := 0.5 * astMass * out.VelocityChange * out.VelocityChange
	if eff := imparted / out.MissionEnergy * 100; finite(eff) {
		out.EnergyEfficiencyPct = math.Min(100, eff)
	}

	center := math.Sqrt(spec.EffectiveMassRatio.Min * spec.EffectiveMassRatio.Max)
	out.MassEfficiencyPct = math.Min(100, 100/math.Sqrt(math.Abs(ratio-center)/center+1))
	return out, nil
}

func (r ratioResponse) multiplier(ratio float64, band Interval) float64 {
	switch {
	case ratio > band.Max:
		return r.over
	case ratio > r.shoulder:
		return r.high
	case ratio < band.Min:
		return r.under
	default:
		return 1
	}
}

// momentumTransfer returns the momentum in N s delivered to the asteroid over dt seconds.
func momentumTransfer(m Method, scMass, astMass, vRel, dt float64) float64 {
	switch m {
	case Kinetic:
		v := math.Hypot(orDefault(vRel, 0), neoOrbitalVelocity) * 1e3
		return scMass * v * ejectaEnhancement
	case GravityTractor:
		f := gravityG * scMass * astMass / (tractorHoverDistance * tractorHoverDistance)
		return f * dt
	case Nuclear:
		return math.Sqrt(scMass*kilotonPerKg) * nuclearImpulsePerKt * nuclearCoupling
	case LaserAblation:
		return scMass * laserWattsPerKg * dt * ablationCoupling * ablationPlume
	case IonBeam:
		thrust, _ := DefaultIonBeam.Thrust(scMass)
		return thrust * dt * ionBeamCoupling
	case MassDriver:
		thrust, _ := DefaultMassDriver.Thrust(scMass)
		return thrust * dt * massDriverReaction
	}
	return 0
}

// MissionEnergy estimates the input energy in J of a mission of method m delivering
// deltaV mm/s within the given years with a platform of the given mass (kg). A non
// positive mass is taken as the 1500 kg reference platform.
func MissionEnergy(m Method, deltaV, years, spacecraftMass float64) float64 {
	base := 1e12
	if model, ok := physicsModels[m]; ok {
		base = model.missionEnergy
	}
	if !finite(spacecraftMass) || spacecraftMass <= 0 {
		spacecraftMass = referenceEnergyMass
	}
	if !finite(deltaV) || deltaV <= 0 {
		return 0
	}
	scale := math.Pow(deltaV/referenceEnergyDeltaV, 1.5)
	massScale := math.Pow(spacecraftMass/referenceEnergyMass, 0.8)
	return base * scale * massScale / math.Max(0.1, sanitizeYears(years)/10)
}
