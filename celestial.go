package orbitalshield

import "math"

const (
	// AU is one astronomical unit in kilometers.
	AU = 1.49597870700e8
)

// CelestialObject defines a celestial object.
type CelestialObject struct {
	Name   string
	Radius float64 // mean radius in km
	a      float64 // semi-major axis of its own orbit in km
	μ      float64
	vOrbit float64 // mean orbital velocity in km/s
}

// Diameter returns the mean diameter in km.
func (c CelestialObject) Diameter() float64 {
	return 2 * c.Radius
}

// SemiMajorAxis returns the semi-major axis of the object's orbit in km.
func (c CelestialObject) SemiMajorAxis() float64 {
	return c.a
}

// OrbitalVelocity returns the mean orbital velocity in km/s.
func (c CelestialObject) OrbitalVelocity() float64 {
	return c.vOrbit
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// VisViva returns the speed in km/s of a body orbiting c at distance r (km)
// on an orbit of semi-major axis a (km).
func (c CelestialObject) VisViva(r, a float64) float64 {
	if r <= 0 || a <= 0 {
		return 0
	}
	return math.Sqrt(math.Max(0, c.μ*(2/r-1/a)))
}

// Sun is our closest star.
var Sun = CelestialObject{"Sun", 695700, -1, 1.32712440017987e11, 0}

// Earth is home. The radius is the mean radius used for great circle distances.
var Earth = CelestialObject{"Earth", 6371, 149598023, 3.98600433e5, 29.78}

// Moon is only used for its mean distance from the Earth.
var Moon = CelestialObject{"Moon", 1737.4, 384400, 4.9028e3, 1.022}
