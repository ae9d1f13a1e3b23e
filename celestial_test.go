package orbitalshield

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestCelestialObject(t *testing.T) {
	if Earth.Diameter() != 12742 {
		t.Fatalf("Earth diameter %f != 12742", Earth.Diameter())
	}
	if Moon.SemiMajorAxis() != 384400 {
		t.Fatalf("lunar distance %f", Moon.SemiMajorAxis())
	}
	if Earth.String() != "Earth body" {
		t.Fatalf("unexpected string %s", Earth)
	}
	// Circular orbit at 1 AU is close to the Earth's mean orbital velocity.
	if v := Sun.VisViva(AU, AU); !scalar.EqualWithinAbs(v, Earth.OrbitalVelocity(), 0.1) {
		t.Fatalf("vis-viva at 1 AU = %f km/s", v)
	}
	if Sun.VisViva(0, AU) != 0 {
		t.Fatal("vis-viva should be zero for an invalid radius")
	}
}
