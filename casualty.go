package orbitalshield

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Concentric zones as fractions of the effect radius.
const (
	craterZone   = 0.2
	severeZone   = 0.5
	moderateZone = 0.8

	maxCasualtyRate     = 0.85
	ruralDensityFactor  = 0.35
	maxPlausibleRadius  = 2000.0 // km
	maxPlausibleAtRisk  = 5e8
	maxPlausibleCities  = 50
	emptyZoneRadius     = 50.0 // km
	ruralSanityFraction = 0.3
)

// Rural casualty fractions per zone.
var ruralCasualtyRate = [4]float64{0.80, 0.35, 0.15, 0.04}

// DamageLevel is the zone a location falls in.
type DamageLevel uint8

// Damage levels from the center outward.
const (
	CompleteDamage DamageLevel = iota
	SevereDamage
	ModerateDamage
	LightDamage
)

func (d DamageLevel) String() string {
	switch d {
	case CompleteDamage:
		return "complete"
	case SevereDamage:
		return "severe"
	case ModerateDamage:
		return "moderate"
	default:
		return "light"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d DamageLevel) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// City is a populated place of the registry. Density is in people per km².
type City struct {
	Name       string  `json:"name" yaml:"name" mapstructure:"name"`
	Lat        float64 `json:"lat" yaml:"lat" mapstructure:"lat"`
	Lng        float64 `json:"lng" yaml:"lng" mapstructure:"lng"`
	Population int     `json:"population" yaml:"population" mapstructure:"population"`
	Density    float64 `json:"density" yaml:"density" mapstructure:"density"`
}

// Coordinates returns the location of the city.
func (c City) Coordinates() Coordinates {
	return Coordinates{Lat: c.Lat, Lng: c.Lng}
}

// Registry is an immutable list of cities.
type Registry struct {
	cities []City
}

// NewRegistry validates and copies the provided cities.
func NewRegistry(cities []City) (*Registry, error) {
	r := &Registry{cities: make([]City, len(cities))}
	for i, c := range cities {
		if c.Name == "" {
			return nil, fmt.Errorf("city #%d has no name", i)
		}
		if !c.Coordinates().Valid() || !c.Coordinates().InRange() {
			return nil, fmt.Errorf("city %s has invalid coordinates %s", c.Name, c.Coordinates())
		}
		if c.Population < 0 || !finite(c.Density) || c.Density < 0 {
			return nil, fmt.Errorf("city %s has a negative population or density", c.Name)
		}
		r.cities[i] = c
	}
	return r, nil
}

// DefaultRegistry returns the built-in registry of major metropolitan areas.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(defaultCities)
	if err != nil {
		panic(err)
	}
	return r
}

// With returns a new registry with the extra cities appended.
func (r *Registry) With(extra ...City) (*Registry, error) {
	return NewRegistry(append(r.Cities(), extra...))
}

// Cities returns a copy of the registered cities.
func (r *Registry) Cities() []City {
	return append([]City(nil), r.cities...)
}

// Len returns the number of cities.
func (r *Registry) Len() int {
	return len(r.cities)
}

// Lookup finds a city by name.
func (r *Registry) Lookup(name string) (City, bool) {
	for _, c := range r.cities {
		if c.Name == name {
			return c, true
		}
	}
	return City{}, false
}

// AffectedCity is a city inside the effect radius.
type AffectedCity struct {
	City
	DistanceKm   float64     `json:"distanceKm" yaml:"distanceKm"`
	Level        DamageLevel `json:"damageLevel" yaml:"damageLevel"`
	CasualtyRate float64     `json:"casualtyRate" yaml:"casualtyRate"`
	AtRisk       int         `json:"atRisk" yaml:"atRisk"`
}

// CasualtyReport is the population at risk around an impact site.
type CasualtyReport struct {
	Site     Coordinates    `json:"site" yaml:"site"`
	RadiusKm float64        `json:"radiusKm" yaml:"radiusKm"`
	Total    int            `json:"total" yaml:"total"`
	Urban    int            `json:"urban" yaml:"urban"`
	Rural    int            `json:"rural" yaml:"rural"`
	Cities   []AffectedCity `json:"cities" yaml:"cities"`
}

// LargestCity returns the most affected city, if any.
func (r CasualtyReport) LargestCity() (AffectedCity, bool) {
	if len(r.Cities) == 0 {
		return AffectedCity{}, false
	}
	return r.Cities[0], true
}

// Validation carries the plausibility checks of a casualty estimate and its totals.
type Validation struct {
	Valid         bool          `json:"valid" yaml:"valid"`
	Warnings      []string      `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Total         int           `json:"total" yaml:"total"`
	Urban         int           `json:"urban" yaml:"urban"`
	Rural         int           `json:"rural" yaml:"rural"`
	CitiesInRange int           `json:"citiesInRange" yaml:"citiesInRange"`
	LargestCity   *AffectedCity `json:"largestCity,omitempty" yaml:"largestCity,omitempty"`
}

// Errors returns the warnings joined into a single error, or nil.
func (v Validation) Errors() error {
	errs := make([]error, len(v.Warnings))
	for i, w := range v.Warnings {
		errs[i] = errors.New(w)
	}
	return errors.Join(errs...)
}

// CasualtyEstimator estimates the population at risk from a registry of cities and a
// regional rural density model.
type CasualtyEstimator struct {
	registry *Registry
}

// NewCasualtyEstimator returns an estimator over the provided registry (the default
// registry when nil).
func NewCasualtyEstimator(r *Registry) *CasualtyEstimator {
	if r == nil {
		r = DefaultRegistry()
	}
	return &CasualtyEstimator{registry: r}
}

// Registry returns the registry in use.
func (e *CasualtyEstimator) Registry() *Registry {
	return e.registry
}

// PopulationAtRisk returns the total number of people at risk.
func (e *CasualtyEstimator) PopulationAtRisk(site Coordinates, radiusKm float64) int {
	return e.Estimate(site, radiusKm).Total
}

// Estimate returns the detailed casualty report. Invalid coordinates and non-positive
// radii produce an empty report.
func (e *CasualtyEstimator) Estimate(site Coordinates, radiusKm float64) CasualtyReport {
	rpt := CasualtyReport{Site: site, RadiusKm: radiusKm, Cities: []AffectedCity{}}
	if !site.Valid() || !finite(radiusKm) || radiusKm <= 0 {
		return rpt
	}
	site = site.Normalized()
	rpt.Site = site
	for _, c := range e.registry.cities {
		d := Distance(site, c.Coordinates())
		if d > radiusKm {
			continue
		}
		level, factor := zoneFactor(d, radiusKm)
		rate := math.Min(maxCasualtyRate, factor*densityMultiplier(c.Density))
		ac := AffectedCity{City: c, DistanceKm: d, Level: level, CasualtyRate: rate, AtRisk: int(math.Round(float64(c.Population) * rate))}
		rpt.Urban += ac.AtRisk
		rpt.Cities = append(rpt.Cities, ac)
	}
	sort.SliceStable(rpt.Cities, func(i, j int) bool {
		return rpt.Cities[i].AtRisk > rpt.Cities[j].AtRisk
	})
	rpt.Rural = ruralAtRisk(site, radiusKm)
	rpt.Total = rpt.Urban + rpt.Rural
	return rpt
}

// zoneFactor returns the damage level and the base casualty fraction at distance d
// from the center of a zone of radius r. Each zone decays toward the peak of the next
// one so the fraction never increases with distance.
func zoneFactor(d, r float64) (DamageLevel, float64) {
	crater, severe, moderate := r*craterZone, r*severeZone, r*moderateZone
	switch {
	case d <= crater:
		return CompleteDamage, 0.95
	case d <= severe:
		t := (d - crater) / (severe - crater)
		return SevereDamage, math.Max(0.25, 0.60*math.Exp(-1.5*t))
	case d <= moderate:
		t := (d - severe) / (moderate - severe)
		return ModerateDamage, math.Max(0.08, 0.25*(1-t*t))
	default:
		t := (d - moderate) / (r - moderate)
		return LightDamage, math.Max(0, 0.08*(1-t))
	}
}

func densityMultiplier(density float64) float64 {
	switch {
	case density > 15000:
		return 1.3
	case density > 8000:
		return 1.15
	case density < 2000:
		return 0.6
	default:
		return 1
	}
}

func ruralAtRisk(site Coordinates, r float64) int {
	density := RegionalDensity(site) * ruralDensityFactor
	radii := [4]float64{r * craterZone, r * severeZone, r * moderateZone, r}
	var total, inner float64
	for i, ri := range radii {
		disk := math.Pi * ri * ri
		total += (disk - inner) * density * ruralCasualtyRate[i]
		inner = disk
	}
	return int(math.Round(total))
}

// Validate estimates the population at risk around site and checks the plausibility
// of the result.
func (e *CasualtyEstimator) Validate(site Coordinates, radiusKm float64) Validation {
	if !site.Valid() || math.IsNaN(radiusKm) {
		return Validation{Warnings: []string{"invalid input parameters"}}
	}
	return checkReport(site, radiusKm, e.Estimate(site, radiusKm))
}

func checkReport(site Coordinates, radiusKm float64, rpt CasualtyReport) Validation {
	v := Validation{
		Valid:         true,
		Total:         rpt.Total,
		Urban:         rpt.Urban,
		Rural:         rpt.Rural,
		CitiesInRange: len(rpt.Cities),
	}
	if c, ok := rpt.LargestCity(); ok {
		v.LargestCity = &c
	}
	warn := func(format string, args ...interface{}) {
		v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
	}
	if site.Lat < -90 || site.Lat > 90 {
		warn("latitude %.4f out of range (-90 to 90)", site.Lat)
	}
	if site.Lng < -180 || site.Lng > 180 {
		warn("longitude %.4f out of range (-180 to 180)", site.Lng)
	}
	if radiusKm <= 0 || radiusKm > maxPlausibleRadius {
		warn("impact radius %.1f km seems unrealistic (0-%.0f km)", radiusKm, maxPlausibleRadius)
	}
	if float64(rpt.Total) > maxPlausibleAtRisk {
		warn("population at risk %d seems very high", rpt.Total)
	}
	if rpt.Total == 0 && radiusKm > emptyZoneRadius {
		warn("no population found in a %.0f km impact zone", radiusKm)
	}
	if rpt.Urban > rpt.Total {
		v.Valid = false
		warn("urban population %d exceeds total %d", rpt.Urban, rpt.Total)
	}
	if len(rpt.Cities) > maxPlausibleCities {
		warn("%d cities affected, check radius", len(rpt.Cities))
	}
	if expected := math.Pi * radiusKm * radiusKm * RegionalDensity(site.Normalized()) * ruralSanityFraction; float64(rpt.Rural) > 2*expected {
		warn("rural population estimate %d may be too high", rpt.Rural)
	}
	return v
}

// region is a lat/lng box with a default density and optional sub-regions.
type region struct {
	name           string
	minLng, maxLng float64
	minLat, maxLat float64
	density        float64
	subregions     []region
}

func (r region) contains(c Coordinates) bool {
	return c.Lng >= r.minLng && c.Lng <= r.maxLng && c.Lat >= r.minLat && c.Lat <= r.maxLat
}

// remoteDensity applies to oceans, polar regions and anything not listed.
const remoteDensity = 1.0

// regions are checked in order, first match wins. Densities in people/km².
var regions = []region{
	{"Asia", 60, 150, 5, 55, 200, []region{
		{"East Asia", 100, 140, 20, 45, 350, nil},
		{"South Asia", 65, 100, 5, 35, 400, nil},
		{"Southeast Asia", 95, 150, -10, 25, 180, nil},
	}},
	{"Europe", -15, 60, 35, 75, 120, []region{
		{"Central Europe", 5, 25, 45, 60, 200, nil},
		{"Southern Europe", -10, 20, 35, 50, 170, nil},
	}},
	{"North America", -170, -50, 25, 75, 20, []region{
		{"United States", -130, -70, 30, 50, 35, nil},
		{"Canada", -140, -50, 45, 75, 4, nil},
		{"Mexico", -120, -80, 15, 35, 65, nil},
	}},
	{"Africa", -20, 55, -35, 40, 35, []region{
		{"East Africa", 25, 40, 0, 15, 80, nil},
		{"West and Central Africa", -10, 25, 0, 20, 45, nil},
		{"Southern Africa", 15, 35, -35, 0, 50, nil},
	}},
	{"South America", -85, -35, -60, 15, 20, []region{
		{"Brazil", -75, -45, -30, 10, 25, nil},
		{"Northern South America", -80, -60, -20, 15, 35, nil},
	}},
	{"Oceania", 110, 180, -50, -10, 3, nil},
}

// RegionalDensity returns the average population density (people/km²) of the region
// containing c.
func RegionalDensity(c Coordinates) float64 {
	for _, r := range regions {
		if !r.contains(c) {
			continue
		}
		for _, s := range r.subregions {
			if s.contains(c) {
				return s.density
			}
		}
		return r.density
	}
	return remoteDensity
}
