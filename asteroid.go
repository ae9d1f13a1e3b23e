package orbitalshield

import (
	"fmt"
	"time"
)

// CloseApproach is a predicted or past Earth close approach.
type CloseApproach struct {
	Date             time.Time `json:"date" yaml:"date"`
	RelativeVelocity float64   `json:"relativeVelocityKmS" yaml:"relativeVelocityKmS"` // km/s
	MissDistanceKm   float64   `json:"missDistanceKm" yaml:"missDistanceKm"`
}

// NEORecord is a near-Earth object as reported by an external catalog.
type NEORecord struct {
	ID            string           `json:"id" yaml:"id"`
	Name          string           `json:"name" yaml:"name"`
	DiameterMinKm float64          `json:"diameterMinKm" yaml:"diameterMinKm"`
	DiameterMaxKm float64          `json:"diameterMaxKm" yaml:"diameterMaxKm"`
	Hazardous     bool             `json:"hazardous" yaml:"hazardous"`
	Approaches    []CloseApproach  `json:"approaches,omitempty" yaml:"approaches,omitempty"`
	Orbit         *OrbitalElements `json:"orbit,omitempty" yaml:"orbit,omitempty"`
}

// NextApproach returns the earliest approach after now or, when all approaches are
// past, the latest one.
func (r NEORecord) NextApproach(now time.Time) (CloseApproach, bool) {
	if len(r.Approaches) == 0 {
		return CloseApproach{}, false
	}
	var next, latest *CloseApproach
	for i := range r.Approaches {
		a := &r.Approaches[i]
		if a.Date.After(now) && (next == nil || a.Date.Before(next.Date)) {
			next = a
		}
		if latest == nil || a.Date.After(latest.Date) {
			latest = a
		}
	}
	if next != nil {
		return *next, true
	}
	return *latest, true
}

// Profile is the physical description of an asteroid used by the planners.
type Profile struct {
	ID            string           `json:"id" yaml:"id"`
	Name          string           `json:"name" yaml:"name"`
	DiameterKm    float64          `json:"diameterKm" yaml:"diameterKm"`
	DiameterMinKm float64          `json:"diameterMinKm" yaml:"diameterMinKm"`
	DiameterMaxKm float64          `json:"diameterMaxKm" yaml:"diameterMaxKm"`
	VelocityKmS   float64          `json:"velocityKmS" yaml:"velocityKmS"`
	Density       float64          `json:"density" yaml:"density"` // kg/m³
	MassKg        float64          `json:"massKg" yaml:"massKg"`
	Hazardous     bool             `json:"hazardous" yaml:"hazardous"`
	Approach      *CloseApproach   `json:"approach,omitempty" yaml:"approach,omitempty"`
	Orbit         *OrbitalElements `json:"orbit,omitempty" yaml:"orbit,omitempty"`
}

// NewProfile returns the profile of a spherical asteroid of the given diameter (km)
// approaching at the given velocity (km/s).
func NewProfile(name string, diameterKm, velocityKmS float64) Profile {
	d := clamp(orDefault(diameterKm, 0), 0, Earth.Diameter())
	return Profile{
		Name:          name,
		DiameterKm:    d,
		DiameterMinKm: d,
		DiameterMaxKm: d,
		VelocityKmS:   max(0, orDefault(velocityKmS, 0)),
		Density:       AsteroidDensity,
		MassKg:        SphereMass(d),
	}
}

// Profile derives the physical profile of the record. The velocity is the one of the
// next approach, zero without any.
func (r NEORecord) Profile(now time.Time) Profile {
	lo, hi := max(0, orDefault(r.DiameterMinKm, 0)), max(0, orDefault(r.DiameterMaxKm, 0))
	if hi < lo {
		lo, hi = hi, lo
	}
	p := NewProfile(r.Name, (lo+hi)/2, 0)
	p.ID = r.ID
	p.DiameterMinKm, p.DiameterMaxKm = lo, hi
	p.Hazardous = r.Hazardous
	p.Orbit = r.Orbit
	if a, ok := r.NextApproach(now); ok {
		p.Approach = &a
		p.VelocityKmS = max(0, orDefault(a.RelativeVelocity, 0))
	}
	return p
}

// YearsToImpact is the warning time until the next approach, or fallback when the
// approach is unknown or past.
func (p Profile) YearsToImpact(now time.Time, fallback float64) float64 {
	if p.Approach == nil || !p.Approach.Date.After(now) {
		return fallback
	}
	return p.Approach.Date.Sub(now).Hours() / 24 / 365.25
}

// Impact returns the impact consequences of the profile at the site.
func (p Profile) Impact(site Coordinates) ImpactEffects {
	return ImpactMetricsAt(p.DiameterKm, p.VelocityKmS, site)
}

func (p Profile) String() string {
	name := p.Name
	if name == "" {
		name = p.ID
	}
	return fmt.Sprintf("%s: %.3f km, %.2f km/s, %.3g kg", name, p.DiameterKm, p.VelocityKmS, p.MassKg)
}
