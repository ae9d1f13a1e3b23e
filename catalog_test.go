package orbitalshield

import "testing"

func TestParseMethod(t *testing.T) {
	for _, m := range Methods {
		got, err := ParseMethod(string(m))
		if err != nil || got != m {
			t.Fatalf("%s parsed as %s (%v)", m, got, err)
		}
	}
	if _, err := ParseMethod("Kinetic"); err == nil {
		t.Fatal("keys are case sensitive")
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	if len(c.Methods()) != 6 {
		t.Fatalf("%d methods", len(c.Methods()))
	}
	for _, m := range c.Methods() {
		s, ok := c.Spec(m)
		if !ok || s.Validate() != nil {
			t.Fatalf("%s: %v", m, s.Validate())
		}
		if !s.DeltaV.Range().Contains(s.DeltaV.Optimal.Mid()) {
			t.Fatalf("%s optimal delta-v outside its range", m)
		}
		if b, _ := c.OptimalMassRatioRange(m); b != s.MassRatio {
			t.Fatalf("%s mass ratio band %+v", m, b)
		}
	}
	if _, ok := c.Spec("sling"); ok {
		t.Fatal("unknown method has a specification")
	}
}

func TestCatalogSpecIsCopy(t *testing.T) {
	c := DefaultCatalog()
	s, _ := c.Spec(Kinetic)
	s.Advantages[0] = "changed"
	s.Reliability = 0
	again, _ := c.Spec(Kinetic)
	if again.Advantages[0] == "changed" || again.Reliability == 0 {
		t.Fatal("catalog mutated through a returned specification")
	}
}

func TestNewCatalogErrors(t *testing.T) {
	specs := func() []MethodSpec {
		out := make([]MethodSpec, len(defaultMethodSpecs))
		for i, s := range defaultMethodSpecs {
			out[i] = s.clone()
		}
		return out
	}
	missing := specs()[1:]
	if _, err := NewCatalog(missing); err == nil {
		t.Fatal("missing method accepted")
	}
	dup := append(specs(), defaultMethodSpecs[0])
	if _, err := NewCatalog(dup); err == nil {
		t.Fatal("duplicate method accepted")
	}
	unknown := specs()
	unknown[0].Method = "sling"
	if _, err := NewCatalog(unknown); err == nil {
		t.Fatal("unknown method accepted")
	}
	inverted := specs()
	inverted[2].DeltaV.Min, inverted[2].DeltaV.Max = inverted[2].DeltaV.Max, inverted[2].DeltaV.Min
	if _, err := NewCatalog(inverted); err == nil {
		t.Fatal("inverted delta-v range accepted")
	}
	base := specs()
	base[1].SpacecraftMass.Base = base[1].SpacecraftMass.Max * 2
	if _, err := NewCatalog(base); err == nil {
		t.Fatal("base mass outside its range accepted")
	}
}
