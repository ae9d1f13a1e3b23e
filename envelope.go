package orbitalshield

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultEnvelopeSamples is the number of diameters swept by an envelope.
const DefaultEnvelopeSamples = 21

// Summary describes the distribution of a quantity across an envelope.
type Summary struct {
	Min    float64 `json:"min" yaml:"min"`
	P05    float64 `json:"p05" yaml:"p05"`
	Median float64 `json:"median" yaml:"median"`
	P95    float64 `json:"p95" yaml:"p95"`
	Max    float64 `json:"max" yaml:"max"`
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"stdDev" yaml:"stdDev"`
}

func summarize(x []float64) Summary {
	sort.Float64s(x)
	s := Summary{
		Min:    x[0],
		Max:    x[len(x)-1],
		P05:    stat.Quantile(0.05, stat.Empirical, x, nil),
		Median: stat.Quantile(0.5, stat.Empirical, x, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, x, nil),
	}
	if len(x) == 1 {
		s.Mean = x[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(x, nil)
	return s
}

// Envelope is the spread of the impact consequences over the diameter uncertainty of
// an asteroid.
type Envelope struct {
	Samples    int      `json:"samples" yaml:"samples"`
	DiameterKm Interval `json:"diameterKm" yaml:"diameterKm"`
	EnergyMt   Summary  `json:"energyMt" yaml:"energyMt"`
	CraterKm   Summary  `json:"craterKm" yaml:"craterKm"`
	Magnitude  Summary  `json:"magnitude" yaml:"magnitude"`
	RadiusKm   Summary  `json:"radiusKm" yaml:"radiusKm"` // population-at-risk radius
}

// UncertaintyEnvelope sweeps n evenly spaced diameters between the minimum and maximum
// estimates of the profile. A profile without spread yields a single sample.
func UncertaintyEnvelope(p Profile, n int) Envelope {
	lo, hi := p.DiameterMinKm, p.DiameterMaxKm
	if !finite(lo) || !finite(hi) || hi <= lo || lo < 0 {
		lo, hi = p.DiameterKm, p.DiameterKm
	}
	if n < 2 || hi == lo {
		n = 1
	}
	diameters := []float64{lo}
	if n > 1 {
		diameters = floats.Span(make([]float64, n), lo, hi)
	}
	energy := make([]float64, n)
	crater := make([]float64, n)
	mw := make([]float64, n)
	radius := make([]float64, n)
	for i, d := range diameters {
		e := ImpactMetrics(d, p.VelocityKmS)
		energy[i] = e.EnergyMt
		crater[i] = e.CraterDiameterKm
		mw[i] = e.Seismic.Magnitude
		radius[i] = EffectZones(d, e.EnergyMt).StrongShakingRadiusKm
	}
	return Envelope{
		Samples:    n,
		DiameterKm: Interval{lo, hi},
		EnergyMt:   summarize(energy),
		CraterKm:   summarize(crater),
		Magnitude:  summarize(mw),
		RadiusKm:   summarize(radius),
	}
}
