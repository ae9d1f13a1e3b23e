package orbitalshield

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

const (
	keplerε       = 1e-6 // radians
	keplerMaxIter = 10

	// DefaultEpochJD is the epoch used when an element set carries none.
	DefaultEpochJD = 2461000.5
	// DefaultMeanMotion in degrees per day.
	DefaultMeanMotion = 0.01
)

// OrbitClass is the coarse heliocentric orbit family of a near-Earth object.
type OrbitClass string

// Orbit families, split on the semi-major axis only.
const (
	Aten     OrbitClass = "Aten (Earth-crossing)"
	Apollo   OrbitClass = "Apollo (Earth-crossing)"
	Amor     OrbitClass = "Amor (Mars-crossing)"
	MainBelt OrbitClass = "Main Belt"
)

// OrbitalElements defines a heliocentric orbit. Distances are in AU, angles in degrees,
// the mean motion in degrees per day and the epoch is a Julian date.
type OrbitalElements struct {
	SemiMajorAxis float64 `json:"a" yaml:"a" mapstructure:"a"`
	Eccentricity  float64 `json:"e" yaml:"e" mapstructure:"e"`
	Inclination   float64 `json:"i" yaml:"i" mapstructure:"i"`
	AscendingNode float64 `json:"node" yaml:"node" mapstructure:"node"`
	ArgPerihelion float64 `json:"peri" yaml:"peri" mapstructure:"peri"`
	MeanAnomaly   float64 `json:"M" yaml:"M" mapstructure:"M"`
	MeanMotion    float64 `json:"n" yaml:"n" mapstructure:"n"`
	EpochJD       float64 `json:"epoch" yaml:"epoch" mapstructure:"epoch"`
}

// Position is a heliocentric ecliptic position in AU.
type Position struct {
	X, Y, Z          float64
	R                float64 // heliocentric distance in AU
	Speed            float64 // km/s
	EccentricAnomaly float64 // radians
	TrueAnomaly      float64 // radians
	JD               float64
	Converged        bool
}

func (p Position) String() string {
	return fmt.Sprintf("JD %.4f r=%.6f AU [%.6f %.6f %.6f] ν=%.3f°", p.JD, p.R, p.X, p.Y, p.Z, Rad2deg(p.TrueAnomaly))
}

// Normalized returns a copy where missing or degenerate elements are replaced:
// a circular, unit-AU, zero-inclination orbit at the default epoch.
func (oe OrbitalElements) Normalized() OrbitalElements {
	n := oe
	if !finite(n.SemiMajorAxis) || n.SemiMajorAxis <= 0 {
		n.SemiMajorAxis = 1
	}
	if !finite(n.Eccentricity) || n.Eccentricity < 0 || n.Eccentricity >= 1 {
		n.Eccentricity = 0
	}
	n.Inclination = orDefault(n.Inclination, 0)
	n.AscendingNode = orDefault(n.AscendingNode, 0)
	n.ArgPerihelion = orDefault(n.ArgPerihelion, 0)
	n.MeanAnomaly = orDefault(n.MeanAnomaly, 0)
	if !finite(n.MeanMotion) || n.MeanMotion == 0 {
		n.MeanMotion = DefaultMeanMotion
	}
	if !finite(n.EpochJD) || n.EpochJD == 0 {
		n.EpochJD = DefaultEpochJD
	}
	return n
}

// SolveKepler solves M = E - e sin E for the eccentric anomaly E with Newton-Raphson.
// M is in radians. The best estimate is always returned; converged is false when the
// iteration budget ran out before the update fell below tolerance.
func SolveKepler(M, e float64) (E float64, converged bool) {
	M = normalizeRad(M)
	if e == 0 {
		return M, true
	}
	// Danby's starter keeps high eccentricities inside the iteration budget.
	E = M + 0.85*e*sign(math.Sin(M))
	if math.Sin(M) == 0 {
		E = M
	}
	for i := 0; i < keplerMaxIter; i++ {
		sE, cE := math.Sincos(E)
		δE := (E - e*sE - M) / (1 - e*cE)
		E -= δE
		if math.Abs(δE) < keplerε {
			return E, true
		}
	}
	return E, false
}

// PositionAt returns the heliocentric ecliptic position at the provided Julian date.
func (oe OrbitalElements) PositionAt(jd float64) Position {
	o := oe.Normalized()
	if !finite(jd) {
		jd = o.EpochJD
	}
	M := Deg2rad(o.MeanAnomaly + o.MeanMotion*(jd-o.EpochJD))
	E, converged := SolveKepler(M, o.Eccentricity)
	sE, cE := math.Sincos(E)
	ν := math.Atan2(math.Sqrt(1-o.Eccentricity*o.Eccentricity)*sE, cE-o.Eccentricity)
	r := o.SemiMajorAxis * (1 - o.Eccentricity*cE)
	sν, cν := math.Sincos(ν)
	R := PQW2Ecliptic(o.Inclination*deg2rad, o.ArgPerihelion*deg2rad, o.AscendingNode*deg2rad, []float64{r * cν, r * sν, 0})
	return Position{
		X: R[0], Y: R[1], Z: R[2],
		R:                norm(R),
		Speed:            Sun.VisViva(r*AU, o.SemiMajorAxis*AU),
		EccentricAnomaly: E,
		TrueAnomaly:      normalizeRad(ν),
		JD:               jd,
		Converged:        converged,
	}
}

// PositionAtTime returns the heliocentric ecliptic position at the provided time.
func (oe OrbitalElements) PositionAtTime(dt time.Time) Position {
	return oe.PositionAt(julian.TimeToJD(dt.UTC()))
}

// Perihelion returns the perihelion distance in AU.
func (oe OrbitalElements) Perihelion() float64 {
	o := oe.Normalized()
	return o.SemiMajorAxis * (1 - o.Eccentricity)
}

// Aphelion returns the aphelion distance in AU.
func (oe OrbitalElements) Aphelion() float64 {
	o := oe.Normalized()
	return o.SemiMajorAxis * (1 + o.Eccentricity)
}

// Period returns the orbital period implied by the mean motion.
func (oe OrbitalElements) Period() time.Duration {
	o := oe.Normalized()
	days := 360 / math.Abs(o.MeanMotion)
	return time.Duration(days * 24 * float64(time.Hour))
}

// Class returns the orbit family.
func (oe OrbitalElements) Class() OrbitClass {
	a := oe.Normalized().SemiMajorAxis
	switch {
	case a < 1.3:
		return Aten
	case a < 1.665:
		return Apollo
	case a < 4.2:
		return Amor
	default:
		return MainBelt
	}
}

func (oe OrbitalElements) String() string {
	return fmt.Sprintf("a=%.6f AU e=%.6f i=%.4f° Ω=%.4f° ω=%.4f° M=%.4f° n=%.6f°/d epoch=%.1f",
		oe.SemiMajorAxis, oe.Eccentricity, oe.Inclination, oe.AscendingNode, oe.ArgPerihelion,
		oe.MeanAnomaly, oe.MeanMotion, oe.EpochJD)
}
