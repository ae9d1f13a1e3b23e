package orbitalshield

import (
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestEstimateTokyo(t *testing.T) {
	est := NewCasualtyEstimator(nil)
	rpt := est.Estimate(Coordinates{35.7, 139.7}, 150)
	if rpt.Total < 1e6 || rpt.Total > 5e7 {
		t.Fatalf("Tokyo total %d outside the multi-million range", rpt.Total)
	}
	if rpt.Urban < rpt.Rural {
		t.Fatalf("urban %d should dominate rural %d", rpt.Urban, rpt.Rural)
	}
	largest, ok := rpt.LargestCity()
	if !ok || largest.Name != "Tokyo-Yokohama" || largest.Level != CompleteDamage {
		t.Fatalf("unexpected largest city %+v", largest)
	}
	// Crater zone capped at 85%.
	if largest.CasualtyRate != maxCasualtyRate || largest.AtRisk != 32300000 {
		t.Fatalf("Tokyo rate %f at risk %d", largest.CasualtyRate, largest.AtRisk)
	}
	if est.PopulationAtRisk(Coordinates{35.7, 139.7}, 150) != rpt.Total {
		t.Fatal("PopulationAtRisk differs from the report total")
	}
	v := est.Validate(Coordinates{35.7, 139.7}, 150)
	if !v.Valid || len(v.Warnings) != 0 {
		t.Fatalf("unexpected validation %+v", v)
	}
	if v.Total != rpt.Total || v.Urban != rpt.Urban || v.Rural != rpt.Rural || v.CitiesInRange != len(rpt.Cities) {
		t.Fatalf("validation totals %+v differ from the estimate", v)
	}
	if v.LargestCity == nil || v.LargestCity.Name != "Tokyo-Yokohama" || v.LargestCity.AtRisk != largest.AtRisk {
		t.Fatalf("validation largest city %+v", v.LargestCity)
	}
}

func TestEstimateNewYork(t *testing.T) {
	rpt := NewCasualtyEstimator(nil).Estimate(Coordinates{40.7, -74.0}, 200)
	if len(rpt.Cities) != 2 || rpt.Cities[0].Name != "New York" || rpt.Cities[1].Name != "Philadelphia" {
		t.Fatalf("unexpected cities %+v", rpt.Cities)
	}
	phl := rpt.Cities[1]
	if phl.Level != ModerateDamage || phl.CasualtyRate <= 0.08 || phl.CasualtyRate >= 0.25 {
		t.Fatalf("Philadelphia %+v", phl)
	}
	if rpt.Urban != rpt.Cities[0].AtRisk+phl.AtRisk || rpt.Total != rpt.Urban+rpt.Rural {
		t.Fatal("totals do not add up")
	}
}

func TestEstimateRemote(t *testing.T) {
	rpt := NewCasualtyEstimator(nil).Estimate(Coordinates{0, -150}, 300)
	if rpt.Urban != 0 || len(rpt.Cities) != 0 {
		t.Fatalf("open ocean hit cities: %+v", rpt.Cities)
	}
	if rpt.Total <= 0 || rpt.Total > 50000 {
		t.Fatalf("open ocean total %d", rpt.Total)
	}
	// Rural model: 0.35 × density × Σ zone area × zone rate.
	r := 300.0
	exp := 0.35 * (math.Pi*math.Pow(0.2*r, 2)*0.80 +
		math.Pi*(math.Pow(0.5*r, 2)-math.Pow(0.2*r, 2))*0.35 +
		math.Pi*(math.Pow(0.8*r, 2)-math.Pow(0.5*r, 2))*0.15 +
		math.Pi*(r*r-math.Pow(0.8*r, 2))*0.04)
	if !scalar.EqualWithinAbs(float64(rpt.Rural), exp, 1) {
		t.Fatalf("rural %d expected %f", rpt.Rural, exp)
	}
}

func TestEstimateMonotonicInRadius(t *testing.T) {
	est := NewCasualtyEstimator(nil)
	for _, site := range []Coordinates{{40.7, -74.0}, {35.7, 139.7}, {51.5, -0.1}, {19.1, 72.9}, {48.0, 10.0}, {-25, 135}, {30.5, 31.0}} {
		prev := 0
		for r := 1.0; r <= 1500; r *= 1.15 {
			rpt := est.Estimate(site, r)
			if rpt.Total < prev {
				t.Fatalf("%s: total decreased from %d to %d at r=%f", site, prev, rpt.Total, r)
			}
			if rpt.Urban > rpt.Total {
				t.Fatalf("%s: urban %d > total %d", site, rpt.Urban, rpt.Total)
			}
			for i := 1; i < len(rpt.Cities); i++ {
				if rpt.Cities[i].AtRisk > rpt.Cities[i-1].AtRisk {
					t.Fatalf("%s: cities not sorted", site)
				}
			}
			prev = rpt.Total
		}
	}
}

func TestZoneFactorNonIncreasing(t *testing.T) {
	prev := math.Inf(1)
	for d := 0.0; d <= 100; d += 0.25 {
		_, f := zoneFactor(d, 100)
		if f > prev {
			t.Fatalf("factor increased at d=%f: %f > %f", d, f, prev)
		}
		prev = f
	}
	if lvl, f := zoneFactor(100, 100); lvl != LightDamage || f != 0 {
		t.Fatalf("edge of the zone: %s %f", lvl, f)
	}
}

func TestEstimateDegenerate(t *testing.T) {
	est := NewCasualtyEstimator(nil)
	for _, tc := range []struct {
		site Coordinates
		r    float64
	}{{Coordinates{math.NaN(), 0}, 100}, {Coordinates{10, 10}, 0}, {Coordinates{10, 10}, -5}, {Coordinates{10, math.Inf(1)}, 10}} {
		if rpt := est.Estimate(tc.site, tc.r); rpt.Total != 0 || len(rpt.Cities) != 0 {
			t.Fatalf("%s r=%f should yield nothing: %+v", tc.site, tc.r, rpt)
		}
	}
	v := est.Validate(Coordinates{math.NaN(), 0}, 100)
	if v.Valid || len(v.Warnings) != 1 || v.Errors() == nil || v.Total != 0 || v.LargestCity != nil {
		t.Fatalf("NaN site validation %+v", v)
	}
}

func TestValidateWarnings(t *testing.T) {
	est := NewCasualtyEstimator(nil)
	v := est.Validate(Coordinates{95, 200}, 2500)
	for _, want := range []string{"latitude", "longitude", "unrealistic"} {
		found := false
		for _, w := range v.Warnings {
			if strings.Contains(w, want) {
				found = true
			}
		}
		if !found {
			t.Fatalf("missing %q warning in %v", want, v.Warnings)
		}
	}
	if v.Errors() == nil {
		t.Fatal("warnings should surface as errors")
	}
	if v.Urban > v.Total || v.Rural <= 0 {
		t.Fatalf("totals %+v", v)
	}
}

func TestCheckReport(t *testing.T) {
	v := checkReport(Coordinates{10, 10}, 100, CasualtyReport{Total: 10, Urban: 20})
	if v.Valid || len(v.Warnings) != 1 || !strings.Contains(v.Warnings[0], "exceeds total") {
		t.Fatalf("urban above total must invalidate the report: %+v", v)
	}
	v = checkReport(Coordinates{0, -150}, 300, CasualtyReport{})
	if !v.Valid || len(v.Warnings) != 1 || !strings.Contains(v.Warnings[0], "no population") {
		t.Fatalf("empty zone validation %+v", v)
	}
}

func TestRegionalDensity(t *testing.T) {
	for _, tc := range []struct {
		c   Coordinates
		exp float64
	}{
		{Coordinates{35.7, 139.7}, 350},
		{Coordinates{19.1, 72.9}, 400},
		{Coordinates{-25, 135}, 3},
		{Coordinates{0, -150}, 1},
		{Coordinates{48.9, 2.3}, 170},
		{Coordinates{40.7, -74.0}, 35},
		{Coordinates{60, -100}, 4},
		{Coordinates{23, 5}, 35},
		{Coordinates{-10, -50}, 25},
		{Coordinates{-80, 0}, 1},
	} {
		if got := RegionalDensity(tc.c); got != tc.exp {
			t.Fatalf("%s: density %f expected %f", tc.c, got, tc.exp)
		}
	}
}

func TestRegistry(t *testing.T) {
	def := DefaultRegistry()
	if def.Len() < 100 {
		t.Fatalf("default registry has only %d cities", def.Len())
	}
	if _, ok := def.Lookup("London"); !ok {
		t.Fatal("London missing")
	}
	if _, err := NewRegistry([]City{{Name: "Nowhere", Lat: 91}}); err == nil {
		t.Fatal("expected an invalid coordinates error")
	}
	if _, err := NewRegistry([]City{{Lat: 1}}); err == nil {
		t.Fatal("expected a missing name error")
	}
	if _, err := NewRegistry([]City{{Name: "Ghost", Population: -1}}); err == nil {
		t.Fatal("expected a negative population error")
	}
	ext, err := def.With(City{Name: "Atlantis", Lat: 31, Lng: -24, Population: 1000000, Density: 9000})
	if err != nil {
		t.Fatal(err)
	}
	if ext.Len() != def.Len()+1 {
		t.Fatal("extra city not appended")
	}
	rpt := NewCasualtyEstimator(ext).Estimate(Coordinates{31, -24}, 10)
	if a, ok := rpt.LargestCity(); !ok || a.Name != "Atlantis" || a.AtRisk != 850000 {
		t.Fatalf("custom registry not used: %+v", rpt)
	}
	// Cities returns a copy.
	c := def.Cities()
	c[0].Name = "changed"
	if def.Cities()[0].Name == "changed" {
		t.Fatal("registry mutated through Cities")
	}
}
