package orbitalshield

import (
	"fmt"
	"math"
)

const (
	// AsteroidDensity is the assumed bulk density in kg/m³.
	AsteroidDensity = 3000.0
	// MegatonTNT is one megaton of TNT in joules.
	MegatonTNT = 4.184e15

	craterCoefficient = 0.6 // km per Mt^(1/3)
	minEnergyMt       = 1e-6
)

// Seismic magnitude clamp and radii (km per magnitude unit, km cap).
const (
	minMagnitude = -1.0
	maxMagnitude = 12.0

	strongShakingPerMw = 25.0
	strongShakingCap   = 500.0
	damagePerMw        = 10.0
	damageCap          = 200.0
	feltPerMw          = 50.0
	feltCap            = 1000.0
)

// AtmosphericEffect is the qualitative atmospheric consequence of an impact.
type AtmosphericEffect uint8

// Atmospheric effect categories, in increasing severity.
const (
	NoAtmosphericEffect AtmosphericEffect = iota
	Airburst
	LocalDisturbance
	RegionalClimate
	GlobalClimate
)

func (a AtmosphericEffect) String() string {
	switch a {
	case Airburst:
		return "Airburst effects, shock waves"
	case LocalDisturbance:
		return "Local atmospheric disturbance"
	case RegionalClimate:
		return "Regional climate effects, dust clouds"
	case GlobalClimate:
		return "Global climate change, nuclear winter"
	default:
		return "None"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a AtmosphericEffect) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// AtmosphericEffectFor classifies an impact energy in megatons.
func AtmosphericEffectFor(energyMt float64) AtmosphericEffect {
	switch {
	case energyMt > 1e6:
		return GlobalClimate
	case energyMt > 1e5:
		return RegionalClimate
	case energyMt > 1000:
		return LocalDisturbance
	case energyMt > 1:
		return Airburst
	default:
		return NoAtmosphericEffect
	}
}

// SeismicEffects are the ground shaking radii, in km, of an impact.
type SeismicEffects struct {
	Magnitude             float64 `json:"magnitude" yaml:"magnitude"`
	StrongShakingRadiusKm float64 `json:"strongShakingRadiusKm" yaml:"strongShakingRadiusKm"`
	DamageRadiusKm        float64 `json:"damageRadiusKm" yaml:"damageRadiusKm"`
	FeltRadiusKm          float64 `json:"feltRadiusKm" yaml:"feltRadiusKm"`
}

// ImpactEffects summarizes the physical consequences of an impact.
type ImpactEffects struct {
	DiameterKm       float64           `json:"diameterKm" yaml:"diameterKm"`
	VelocityKmS      float64           `json:"velocityKmS" yaml:"velocityKmS"`
	MassKg           float64           `json:"massKg" yaml:"massKg"`
	KineticEnergyJ   float64           `json:"kineticEnergyJ" yaml:"kineticEnergyJ"`
	EnergyMt         float64           `json:"energyMt" yaml:"energyMt"`
	CraterDiameterKm float64           `json:"craterDiameterKm" yaml:"craterDiameterKm"`
	Seismic          SeismicEffects    `json:"seismic" yaml:"seismic"`
	Atmospheric      AtmosphericEffect `json:"atmospheric" yaml:"atmospheric"`
	Site             *Coordinates      `json:"site,omitempty" yaml:"site,omitempty"`
	// Degraded is set when an input had to be coerced to zero.
	Degraded bool `json:"degraded,omitempty" yaml:"degraded,omitempty"`
}

func (e ImpactEffects) String() string {
	return fmt.Sprintf("%.3f km @ %.2f km/s: %.4g Mt, crater %.2f km, Mw %.1f, %s",
		e.DiameterKm, e.VelocityKmS, e.EnergyMt, e.CraterDiameterKm, e.Seismic.Magnitude, e.Atmospheric)
}

// SphereMass returns the mass in kg of a sphere of the given diameter (km) at the
// assumed asteroid density.
func SphereMass(diameterKm float64) float64 {
	r := diameterKm * 1000 / 2
	return 4.0 / 3.0 * math.Pi * r * r * r * AsteroidDensity
}

// ImpactMetrics computes the impact consequences of a sphere of the given diameter (km)
// striking at the given velocity (km/s). Non-finite or negative inputs are treated as zero.
func ImpactMetrics(diameterKm, velocityKmS float64) ImpactEffects {
	var degraded bool
	if !finite(diameterKm) || diameterKm < 0 {
		diameterKm, degraded = 0, true
	}
	if !finite(velocityKmS) || velocityKmS < 0 {
		velocityKmS, degraded = 0, true
	}
	mass := SphereMass(diameterKm)
	v := velocityKmS * 1000
	ke := 0.5 * mass * v * v
	energyMt := ke / MegatonTNT
	return ImpactEffects{
		DiameterKm:       diameterKm,
		VelocityKmS:      velocityKmS,
		MassKg:           mass,
		KineticEnergyJ:   ke,
		EnergyMt:         energyMt,
		CraterDiameterKm: CraterDiameter(energyMt),
		Seismic:          Seismic(ke),
		Atmospheric:      AtmosphericEffectFor(energyMt),
		Degraded:         degraded,
	}
}

// ImpactMetricsAt is ImpactMetrics with the impact site recorded.
func ImpactMetricsAt(diameterKm, velocityKmS float64, site Coordinates) ImpactEffects {
	e := ImpactMetrics(diameterKm, velocityKmS)
	if site.Valid() {
		n := site.Normalized()
		e.Site = &n
	} else {
		e.Degraded = true
	}
	return e
}

// CraterDiameter returns the crater diameter in km, capped to the Earth's diameter.
func CraterDiameter(energyMt float64) float64 {
	return math.Min(craterCoefficient*math.Cbrt(math.Max(minEnergyMt, energyMt)), Earth.Diameter())
}

// MomentMagnitude converts an energy in joules into an equivalent moment magnitude.
func MomentMagnitude(energyJ float64) float64 {
	return clamp((math.Log10(math.Max(1, energyJ))-4.8)/1.5, minMagnitude, maxMagnitude)
}

// Seismic returns the seismic effects of an impact releasing energyJ joules.
func Seismic(energyJ float64) SeismicEffects {
	mw := MomentMagnitude(energyJ)
	r := math.Max(0, mw)
	return SeismicEffects{
		Magnitude:             mw,
		StrongShakingRadiusKm: math.Min(strongShakingCap, r*strongShakingPerMw),
		DamageRadiusKm:        math.Min(damageCap, r*damagePerMw),
		FeltRadiusKm:          math.Min(feltCap, r*feltPerMw),
	}
}

// ImpactZones are the concentric damage radii (km) around an impact site.
type ImpactZones struct {
	CraterRadiusKm        float64 `json:"craterRadiusKm" yaml:"craterRadiusKm"`
	SevereDamageRadiusKm  float64 `json:"severeDamageRadiusKm" yaml:"severeDamageRadiusKm"`
	StrongShakingRadiusKm float64 `json:"strongShakingRadiusKm" yaml:"strongShakingRadiusKm"`
}

// EffectZones returns the mapped damage zones for an impactor of the given diameter
// and energy. The strong shaking radius is the population-at-risk radius.
func EffectZones(diameterKm, energyMt float64) ImpactZones {
	d := math.Max(0, orDefault(diameterKm, 0))
	e := math.Max(0, orDefault(energyMt, 0))
	return ImpactZones{
		CraterRadiusKm:        math.Max(3, d*8),
		SevereDamageRadiusKm:  math.Max(15, math.Sqrt(e)*1.8),
		StrongShakingRadiusKm: math.Max(40, math.Sqrt(e)*4),
	}
}

// TorinoProxy approximates the Torino scale (0 to 10) from the impact energy and the
// impact probability.
func TorinoProxy(energyMt, probability float64) int {
	if !finite(energyMt) || !finite(probability) || probability < 1e-6 {
		return 0
	}
	energyClass := int(clamp(math.Round(math.Log10(math.Max(0, energyMt)+1)), 0, 10))
	switch {
	case probability >= 0.01:
		return energyClass
	case probability >= 0.001:
		return max(0, energyClass-2)
	case probability >= 0.0001:
		return max(0, energyClass-4)
	default:
		return 0
	}
}
