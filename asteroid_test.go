package orbitalshield

import (
	"math"
	"testing"
	"time"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestNextApproach(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	past1 := CloseApproach{Date: now.AddDate(-10, 0, 0), RelativeVelocity: 5}
	past2 := CloseApproach{Date: now.AddDate(-1, 0, 0), RelativeVelocity: 6}
	future1 := CloseApproach{Date: now.AddDate(3, 0, 0), RelativeVelocity: 7}
	future2 := CloseApproach{Date: now.AddDate(20, 0, 0), RelativeVelocity: 8}

	rec := NEORecord{Approaches: []CloseApproach{future2, past1, future1, past2}}
	if a, ok := rec.NextApproach(now); !ok || a.RelativeVelocity != 7 {
		t.Fatalf("expected earliest future approach, got %+v", a)
	}
	rec.Approaches = []CloseApproach{past2, past1}
	if a, ok := rec.NextApproach(now); !ok || a.RelativeVelocity != 6 {
		t.Fatalf("expected latest past approach, got %+v", a)
	}
	rec.Approaches = nil
	if _, ok := rec.NextApproach(now); ok {
		t.Fatal("approach found without any data")
	}
}

func TestRecordProfile(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := NEORecord{
		ID:            "99942",
		Name:          "Apophis",
		DiameterMinKm: 0.42,
		DiameterMaxKm: 0.32,
		Hazardous:     true,
		Approaches:    []CloseApproach{{Date: now.AddDate(3, 0, 0), RelativeVelocity: 7.42}},
	}
	p := rec.Profile(now)
	if p.DiameterMinKm != 0.32 || p.DiameterMaxKm != 0.42 || !scalar.EqualWithinAbs(p.DiameterKm, 0.37, 1e-12) {
		t.Fatalf("diameters: %+v", p)
	}
	if p.VelocityKmS != 7.42 || !p.Hazardous || p.Density != AsteroidDensity {
		t.Fatalf("profile: %+v", p)
	}
	if exp := 4. / 3 * math.Pi * math.Pow(185, 3) * 3000; !scalar.EqualWithinRel(p.MassKg, exp, 1e-12) {
		t.Fatalf("mass=%e expected %e", p.MassKg, exp)
	}
	if y := p.YearsToImpact(now, 5); !scalar.EqualWithinAbs(y, 3, 0.01) {
		t.Fatalf("years to impact=%f", y)
	}
	if y := p.YearsToImpact(now.AddDate(4, 0, 0), 5); y != 5 {
		t.Fatalf("past approach gave %f years", y)
	}
	if e := p.Impact(Coordinates{Lat: 40.7, Lng: -74}); e.Site == nil || e.Degraded {
		t.Fatalf("impact: %+v", e)
	}
}

func TestProfileWithoutApproach(t *testing.T) {
	p := NEORecord{Name: "2024 XY", DiameterMinKm: math.NaN(), DiameterMaxKm: 0.2}.Profile(time.Now())
	if p.VelocityKmS != 0 || p.Approach != nil {
		t.Fatalf("velocity without approach: %+v", p)
	}
	if p.DiameterKm != 0.1 {
		t.Fatalf("NaN diameter not dropped: %f", p.DiameterKm)
	}
	if p.YearsToImpact(time.Now(), 7) != 7 {
		t.Fatal("fallback not used")
	}
	if q := NewProfile("", -1, math.Inf(1)); q.DiameterKm != 0 || q.VelocityKmS != 0 || q.MassKg != 0 {
		t.Fatalf("degenerate profile: %+v", q)
	}
}
