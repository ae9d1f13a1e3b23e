package orbitalshield

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestDistanceIdentityAndSymmetry(t *testing.T) {
	pts := []Coordinates{{40.7, -74.0}, {35.7, 139.7}, {-33.9, 151.2}, {0, 0}, {89.9, 179.9}, {-12.05, -77.05}}
	for _, a := range pts {
		if d := Distance(a, a); d != 0 {
			t.Fatalf("Distance(%s, %s)=%f", a, a, d)
		}
		for _, b := range pts {
			if Distance(a, b) != Distance(b, a) {
				t.Fatalf("distance not symmetric between %s and %s", a, b)
			}
		}
	}
}

func TestDistanceKnown(t *testing.T) {
	// Antipodal points are half the circumference apart.
	if d := Distance(Coordinates{0, 0}, Coordinates{0, 180}); !scalar.EqualWithinAbs(d, math.Pi*6371, 1) {
		t.Fatalf("antipodal distance %f", d)
	}
	if d := Distance(Coordinates{0, 0}, Coordinates{0, 180}); !scalar.EqualWithinAbs(d, 20015, 1) {
		t.Fatalf("antipodal distance %f", d)
	}
	// New York to London is roughly 5570 km.
	if d := Distance(Coordinates{40.7, -74.0}, Coordinates{51.5, -0.1}); !scalar.EqualWithinRel(d, 5570, 0.01) {
		t.Fatalf("NYC to London %f", d)
	}
	// Very close points snap to zero.
	if d := Distance(Coordinates{10, 10}, Coordinates{10, 10.00001}); d != 0 {
		t.Fatalf("sub 10 m distance not snapped: %f", d)
	}
}

func TestDistanceInvalid(t *testing.T) {
	if !math.IsInf(Distance(Coordinates{math.NaN(), 0}, Coordinates{0, 0}), 1) {
		t.Fatal("NaN latitude should yield +Inf")
	}
	if !math.IsInf(Distance(Coordinates{0, 0}, Coordinates{0, math.Inf(-1)}), 1) {
		t.Fatal("infinite longitude should yield +Inf")
	}
}

func TestNormalized(t *testing.T) {
	for _, tc := range []struct{ in, exp Coordinates }{
		{Coordinates{95, 190}, Coordinates{90, -170}},
		{Coordinates{-100, -190}, Coordinates{-90, 170}},
		{Coordinates{10, 180}, Coordinates{10, -180}},
		{Coordinates{10, 540}, Coordinates{10, -180}},
		{Coordinates{10, -74}, Coordinates{10, -74}},
	} {
		got := tc.in.Normalized()
		if !scalar.EqualWithinAbs(got.Lat, tc.exp.Lat, 1e-9) || !scalar.EqualWithinAbs(got.Lng, tc.exp.Lng, 1e-9) {
			t.Fatalf("%s normalized to %s expected %s", tc.in, got, tc.exp)
		}
	}
	// Wrapped longitudes are equivalent for distances.
	if !scalar.EqualWithinAbs(Distance(Coordinates{10, 190}, Coordinates{10, -160}), Distance(Coordinates{10, -170}, Coordinates{10, -160}), 1e-9) {
		t.Fatal("longitude wrap changed the distance")
	}
}
