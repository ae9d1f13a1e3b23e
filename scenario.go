package orbitalshield

import (
	"fmt"
	"time"
)

// ScenarioType categorizes a preset.
type ScenarioType string

// Scenario types.
const (
	Historical     ScenarioType = "historical"
	WhatIf         ScenarioType = "what-if"
	Catastrophic   ScenarioType = "catastrophic"
	RegionalThreat ScenarioType = "regional-threat"
	Complex        ScenarioType = "complex"
)

// Fragment is a secondary impact of a fragmented asteroid.
type Fragment struct {
	Site     Coordinates `json:"site" yaml:"site"`
	EnergyMt float64     `json:"energyMt" yaml:"energyMt"`
}

// ScenarioAsteroid is the impactor of a preset. EnergyMt is the published energy
// figure, which may differ from the one derived from diameter and velocity.
type ScenarioAsteroid struct {
	Name           string    `json:"name" yaml:"name"`
	DiameterKm     float64   `json:"diameterKm" yaml:"diameterKm"`
	VelocityKmS    float64   `json:"velocityKmS" yaml:"velocityKmS"`
	MissDistanceKm float64   `json:"missDistanceKm" yaml:"missDistanceKm"`
	Date           time.Time `json:"date" yaml:"date"`
	EnergyMt       float64   `json:"energyMt" yaml:"energyMt"`
	Classification string    `json:"classification" yaml:"classification"`
}

// Scenario is a predefined impact scenario.
type Scenario struct {
	Key         string           `json:"key" yaml:"key"`
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description" yaml:"description"`
	Type        ScenarioType     `json:"type" yaml:"type"`
	Asteroid    ScenarioAsteroid `json:"asteroid" yaml:"asteroid"`
	Site        Coordinates      `json:"site" yaml:"site"`
	Fragments   []Fragment       `json:"fragments,omitempty" yaml:"fragments,omitempty"`
}

// Profile returns the physical profile of the scenario impactor, approaching on the
// scenario date.
func (s Scenario) Profile() Profile {
	p := NewProfile(s.Asteroid.Name, s.Asteroid.DiameterKm, s.Asteroid.VelocityKmS)
	p.ID = s.Key
	p.Hazardous = true
	p.Approach = &CloseApproach{
		Date:             s.Asteroid.Date,
		RelativeVelocity: s.Asteroid.VelocityKmS,
		MissDistanceKm:   s.Asteroid.MissDistanceKm,
	}
	return p
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var scenarios = []Scenario{
	{
		Key:         "apophis-2029",
		Name:        "99942 Apophis - 2029 Flyby",
		Description: "Historical close approach of Apophis asteroid in April 2029",
		Type:        Historical,
		Asteroid:    ScenarioAsteroid{"99942 Apophis", 0.37, 7.42, 31000, date(2029, time.April, 13), 1151, "Aten"},
		Site:        Coordinates{35.7, 139.7},
	},
	{
		Key:         "tunguska-modern",
		Name:        "Modern Tunguska Event",
		Description: "What if the 1908 Tunguska event happened today over a major city?",
		Type:        WhatIf,
		Asteroid:    ScenarioAsteroid{"Tunguska-2025", 0.06, 27, 0, date(2025, time.October, 15), 10, "Apollo"},
		Site:        Coordinates{40.7, -74.0},
	},
	{
		Key:         "extinction-event",
		Name:        "Extinction-Level Asteroid",
		Description: "A massive asteroid similar to the one that ended the age of dinosaurs",
		Type:        Catastrophic,
		Asteroid:    ScenarioAsteroid{"Chicxulub-2025", 10, 20, 0, date(2025, time.December, 25), 1e8, "Apollo"},
		Site:        Coordinates{21.0, -89.0},
	},
	{
		Key:         "city-killer",
		Name:        "City-Killer Asteroid",
		Description: "A 300-meter asteroid threatening a major metropolitan area",
		Type:        RegionalThreat,
		Asteroid:    ScenarioAsteroid{"Urban-Threat-1", 0.3, 18, 0, date(2026, time.March, 15), 2000, "Apollo"},
		Site:        Coordinates{51.5, -0.1},
	},
	{
		Key:         "asteroid-shower",
		Name:        "Fragmented Asteroid Shower",
		Description: "A large asteroid breaks apart, creating multiple impact threats",
		Type:        Complex,
		Asteroid:    ScenarioAsteroid{"Fragment-Alpha", 0.15, 22, 0, date(2027, time.August, 8), 400, "Apollo"},
		Site:        Coordinates{35.7, 139.7},
		Fragments: []Fragment{
			{Coordinates{40.7, -74.0}, 100},
			{Coordinates{51.5, -0.1}, 50},
			{Coordinates{-23.6, -46.6}, 25},
		},
	},
}

// Scenarios returns every preset.
func Scenarios() []Scenario {
	out := make([]Scenario, len(scenarios))
	for i, s := range scenarios {
		s.Fragments = append([]Fragment(nil), s.Fragments...)
		out[i] = s
	}
	return out
}

// ScenarioByKey returns the preset with the given key.
func ScenarioByKey(key string) (Scenario, error) {
	for _, s := range Scenarios() {
		if s.Key == key {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("unknown scenario %q", key)
}
