package orbitalshield

import (
	"fmt"
	"math"
)

// Coordinates is a geographic location in degrees.
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat" mapstructure:"lat"`
	Lng float64 `json:"lng" yaml:"lng" mapstructure:"lng"`
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", c.Lat, c.Lng)
}

// Valid reports whether both components are finite numbers.
func (c Coordinates) Valid() bool {
	return finite(c.Lat) && finite(c.Lng)
}

// InRange reports whether the latitude lies in [-90, 90] and the longitude in [-180, 180].
func (c Coordinates) InRange() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Normalized clamps the latitude to [-90, 90] and wraps the longitude into [-180, 180).
func (c Coordinates) Normalized() Coordinates {
	lng := math.Mod(c.Lng+180, 360)
	if lng < 0 {
		lng += 360
	}
	return Coordinates{Lat: clamp(c.Lat, -90, 90), Lng: lng - 180}
}

// Distance returns the great circle distance in km between a and b on a spherical
// Earth. Non-finite inputs yield +Inf so that callers treat the point as out of reach.
func Distance(a, b Coordinates) float64 {
	if !a.Valid() || !b.Valid() {
		return math.Inf(1)
	}
	a, b = a.Normalized(), b.Normalized()
	φ1, φ2 := a.Lat*deg2rad, b.Lat*deg2rad
	δφ := φ2 - φ1
	δλ := (b.Lng - a.Lng) * deg2rad
	h := math.Pow(math.Sin(δφ/2), 2) + math.Cos(φ1)*math.Cos(φ2)*math.Pow(math.Sin(δλ/2), 2)
	d := Earth.Radius * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(math.Max(0, 1-h)))
	if d < 0.01 {
		return 0
	}
	return d
}
