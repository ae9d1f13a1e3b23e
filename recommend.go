package orbitalshield

import (
	"fmt"
	"math"
)

// Urgency is the deployment priority implied by the warning time.
type Urgency string

// Urgencies.
const (
	Urgent           Urgency = "URGENT"
	HighPriority     Urgency = "HIGH PRIORITY"
	MediumPriority   Urgency = "MEDIUM PRIORITY"
	LongTermPlanning Urgency = "LONG-TERM PLANNING"
)

// UrgencyFor returns the urgency of a threat the given number of years away.
func UrgencyFor(yearsToImpact float64) Urgency {
	switch {
	case yearsToImpact < 5:
		return Urgent
	case yearsToImpact < 10:
		return HighPriority
	case yearsToImpact < 20:
		return MediumPriority
	default:
		return LongTermPlanning
	}
}

// Recommendation is the human readable digest of a selection.
type Recommendation struct {
	Urgency          Urgency `json:"urgency" yaml:"urgency"`
	Summary          string  `json:"summary" yaml:"summary"`
	ThreatAssessment string  `json:"threatAssessment" yaml:"threatAssessment"`
	Confidence       string  `json:"confidence" yaml:"confidence"`
	CostSummary      string  `json:"costSummary" yaml:"costSummary"`
}

// Recommend summarizes the selection.
func (sel Selection) Recommend() Recommendation {
	cfg := sel.Config
	return Recommendation{
		Urgency: UrgencyFor(sel.YearsToImpact),
		Summary: fmt.Sprintf("Deploy %s with %.0fkg spacecraft delivering %gmm/s over %g years",
			cfg.Name, cfg.SpacecraftMassKg, cfg.DeltaV, cfg.MissionDurationYears),
		ThreatAssessment: fmt.Sprintf("%s asteroid poses %s threat", sel.Category.Label, sel.Category.ThreatLevel),
		Confidence:       fmt.Sprintf("%.0f%% mission confidence", math.Round(sel.Score)),
		CostSummary: fmt.Sprintf("Estimated $%.0fM USD over %g years development",
			cfg.CostMillionUSD, cfg.DevelopmentYears),
	}
}
