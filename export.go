package orbitalshield

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a report output format.
type Format string

// Report formats.
const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
	CSV  Format = "csv"
)

// ParseFormat returns the format matching s, case insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSON, YAML, CSV:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// Export writes v to w in the requested format. CSV is only available for casualty
// reports, selections and assessments.
func Export(w io.Writer, f Format, v interface{}) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case CSV:
		return exportCSV(w, v)
	case Text, "":
		if a, ok := v.(Assessment); ok {
			return writeAssessmentText(w, a)
		}
		_, err := fmt.Fprintln(w, v)
		return err
	}
	return fmt.Errorf("unknown output format %q", f)
}

func exportCSV(w io.Writer, v interface{}) error {
	cw := csv.NewWriter(w)
	switch r := v.(type) {
	case Assessment:
		writeCitiesCSV(cw, r.Casualties)
	case CasualtyReport:
		writeCitiesCSV(cw, r)
	case Selection:
		cw.Write([]string{"method", "mass_ratio", "mass", "timing", "reliability", "bonus", "total"})
		for _, s := range r.Scores {
			cw.Write([]string{string(s.Method), ftoa(s.MassRatio), ftoa(s.Mass), ftoa(s.Timing),
				ftoa(s.Reliability), ftoa(s.Bonus), ftoa(s.Total)})
		}
	default:
		return fmt.Errorf("no CSV representation for %T", v)
	}
	cw.Flush()
	return cw.Error()
}

func writeCitiesCSV(cw *csv.Writer, r CasualtyReport) {
	cw.Write([]string{"city", "lat", "lng", "population", "density", "distance_km", "damage", "casualty_rate", "at_risk"})
	for _, c := range r.Cities {
		cw.Write([]string{c.Name, ftoa(c.Lat), ftoa(c.Lng), strconv.Itoa(c.Population), ftoa(c.Density),
			ftoa(c.DistanceKm), c.Level.String(), ftoa(c.CasualtyRate), strconv.Itoa(c.AtRisk)})
	}
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeAssessmentText(w io.Writer, a Assessment) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Asteroid:     %s\n", a.Asteroid)
	if a.Position != nil {
		fmt.Fprintf(&b, "Position:     %s (%s)\n", a.Position, a.OrbitClass)
	}
	fmt.Fprintf(&b, "Impact:       %s\n", a.Impact)
	fmt.Fprintf(&b, "Zones:        crater %.1f km, severe %.1f km, shaking %.1f km\n",
		a.Zones.CraterRadiusKm, a.Zones.SevereDamageRadiusKm, a.Zones.StrongShakingRadiusKm)
	fmt.Fprintf(&b, "Torino:       %d\n", a.Torino)
	if a.Envelope.Samples > 1 {
		fmt.Fprintf(&b, "Energy range: %.4g to %.4g Mt (median %.4g)\n", a.Envelope.EnergyMt.Min, a.Envelope.EnergyMt.Max, a.Envelope.EnergyMt.Median)
	}
	fmt.Fprintf(&b, "Category:     %s (%s threat)\n", a.Selection.Category.Label, a.Selection.Category.ThreatLevel)
	for _, s := range a.Selection.Scores {
		fmt.Fprintf(&b, "  %s\n", s)
	}
	fmt.Fprintf(&b, "Mission:      %s\n", a.Selection.Config)
	fmt.Fprintf(&b, "Outcome:      %s\n", a.Outcome)
	fmt.Fprintf(&b, "Urgency:      %s, %s\n", a.Recommendation.Urgency, a.Recommendation.Confidence)
	fmt.Fprintf(&b, "At risk:      %d (%d urban, %d rural) within %.1f km\n",
		a.Casualties.Total, a.Casualties.Urban, a.Casualties.Rural, a.Casualties.RadiusKm)
	if c, ok := a.Casualties.LargestCity(); ok {
		fmt.Fprintf(&b, "Largest city: %s, %d at risk (%s)\n", c.Name, c.AtRisk, c.Level)
	}
	for _, warn := range a.Validation.Warnings {
		fmt.Fprintf(&b, "Warning:      %s\n", warn)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
