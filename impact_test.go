package orbitalshield

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestImpactMetricsApophis(t *testing.T) {
	e := ImpactMetrics(0.37, 7.42)
	if !scalar.EqualWithinRel(e.MassKg, 7.9566e10, 1e-3) {
		t.Fatalf("mass %g", e.MassKg)
	}
	if !scalar.EqualWithinRel(e.EnergyMt, 523.5, 0.01) {
		t.Fatalf("energy %f Mt", e.EnergyMt)
	}
	if !scalar.EqualWithinAbs(e.Seismic.Magnitude, 9.03, 0.01) {
		t.Fatalf("magnitude %f", e.Seismic.Magnitude)
	}
	if !scalar.EqualWithinAbs(e.Seismic.StrongShakingRadiusKm, e.Seismic.Magnitude*25, 1e-9) {
		t.Fatalf("shaking radius %f", e.Seismic.StrongShakingRadiusKm)
	}
	if !scalar.EqualWithinAbs(e.Seismic.DamageRadiusKm, 90.27, 0.1) {
		t.Fatalf("damage radius %f", e.Seismic.DamageRadiusKm)
	}
	if e.Atmospheric != Airburst {
		t.Fatalf("atmospheric %s", e.Atmospheric)
	}
	if !scalar.EqualWithinRel(e.CraterDiameterKm, 0.6*math.Cbrt(e.EnergyMt), 1e-12) {
		t.Fatalf("crater %f", e.CraterDiameterKm)
	}
	if e.Degraded || e.Site != nil {
		t.Fatal("clean inputs flagged as degraded")
	}
}

func TestImpactMetricsMonotonic(t *testing.T) {
	prev := ImpactMetrics(0.01, 5)
	for d := 0.02; d < 20; d *= 1.7 {
		cur := ImpactMetrics(d, 5)
		if cur.EnergyMt <= prev.EnergyMt || cur.CraterDiameterKm < prev.CraterDiameterKm || cur.Seismic.Magnitude < prev.Seismic.Magnitude {
			t.Fatalf("not monotonic in diameter at d=%f", d)
		}
		prev = cur
	}
	prev = ImpactMetrics(1, 1)
	for v := 2.0; v < 80; v += 3 {
		cur := ImpactMetrics(1, v)
		if cur.EnergyMt <= prev.EnergyMt {
			t.Fatalf("not monotonic in velocity at v=%f", v)
		}
		prev = cur
	}
}

func TestImpactMetricsBounds(t *testing.T) {
	for _, d := range []float64{0, 1e-4, 0.05, 1, 10, 100, 1e4} {
		for _, v := range []float64{0, 0.1, 11, 30, 72} {
			e := ImpactMetrics(d, v)
			if e.CraterDiameterKm > 12742 || e.CraterDiameterKm <= 0 {
				t.Fatalf("d=%f v=%f: crater %f out of bounds", d, v, e.CraterDiameterKm)
			}
			if e.Seismic.Magnitude < -1 || e.Seismic.Magnitude > 12 {
				t.Fatalf("d=%f v=%f: magnitude %f out of bounds", d, v, e.Seismic.Magnitude)
			}
			s := e.Seismic
			if s.StrongShakingRadiusKm < 0 || s.StrongShakingRadiusKm > 500 || s.DamageRadiusKm > 200 || s.FeltRadiusKm > 1000 {
				t.Fatalf("d=%f v=%f: radii out of bounds %+v", d, v, s)
			}
		}
	}
}

func TestImpactMetricsDegenerate(t *testing.T) {
	e := ImpactMetrics(0.5, 0)
	if e.EnergyMt != 0 || e.KineticEnergyJ != 0 {
		t.Fatalf("zero velocity should give zero energy, got %f", e.EnergyMt)
	}
	if !scalar.EqualWithinAbs(e.CraterDiameterKm, 0.006, 1e-12) {
		t.Fatalf("crater floor %f", e.CraterDiameterKm)
	}
	if e.Seismic.Magnitude != -1 || e.Seismic.FeltRadiusKm != 0 {
		t.Fatalf("degenerate seismic %+v", e.Seismic)
	}
	e = ImpactMetrics(math.NaN(), -3)
	if !e.Degraded || e.EnergyMt != 0 || e.DiameterKm != 0 {
		t.Fatalf("invalid inputs not coerced: %+v", e)
	}
	e = ImpactMetricsAt(1, 20, Coordinates{40.7, 286})
	if e.Site == nil || !scalar.EqualWithinAbs(e.Site.Lng, -74, 1e-9) {
		t.Fatalf("site not normalized: %v", e.Site)
	}
	if e = ImpactMetricsAt(1, 20, Coordinates{math.NaN(), 0}); e.Site != nil || !e.Degraded {
		t.Fatal("invalid site should be dropped and flagged")
	}
}

func TestAtmosphericEffectFor(t *testing.T) {
	for _, tc := range []struct {
		mt  float64
		exp AtmosphericEffect
	}{{0.5, NoAtmosphericEffect}, {1, NoAtmosphericEffect}, {2, Airburst}, {1001, LocalDisturbance}, {2e5, RegionalClimate}, {1e8, GlobalClimate}} {
		if got := AtmosphericEffectFor(tc.mt); got != tc.exp {
			t.Fatalf("%f Mt: %s expected %s", tc.mt, got, tc.exp)
		}
	}
	if GlobalClimate.String() != "Global climate change, nuclear winter" {
		t.Fatal("unexpected description")
	}
}

func TestEffectZones(t *testing.T) {
	z := EffectZones(0.01, 0)
	if z.CraterRadiusKm != 3 || z.SevereDamageRadiusKm != 15 || z.StrongShakingRadiusKm != 40 {
		t.Fatalf("floors not applied %+v", z)
	}
	z = EffectZones(1, 10000)
	if z.CraterRadiusKm != 8 || z.SevereDamageRadiusKm != 180 || z.StrongShakingRadiusKm != 400 {
		t.Fatalf("zones %+v", z)
	}
}

func TestTorinoProxy(t *testing.T) {
	for _, tc := range []struct {
		mt, p float64
		exp   int
	}{
		{1000, 1e-7, 0},
		{1000, 0.5, 3},
		{1000, 0.005, 1},
		{1000, 0.0005, 0},
		{1e8, 0.02, 8},
		{1e12, 1, 10},
		{1e12, 0.0002, 6},
		{0, 1, 0},
	} {
		if got := TorinoProxy(tc.mt, tc.p); got != tc.exp {
			t.Fatalf("TorinoProxy(%g, %g)=%d expected %d", tc.mt, tc.p, got, tc.exp)
		}
	}
}
