package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/go-kit/log/level"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/spf13/cobra"

	shield "github.com/Skilledcamman/OrbitalShield"
)

var (
	diameter, velocity float64
	lat, lng, radius   float64
	mass, years        float64
	hazardous          bool
	methodKey          string
	deltaV, scMass     float64
	probability        float64
	elements           shield.OrbitalElements
	dateFlag           string
	scenarioFile       string
)

var impactCmd = &cobra.Command{
	Use:   "impact",
	Short: "Impact energy, crater, seismic and atmospheric effects",
	RunE: func(cmd *cobra.Command, args []string) error {
		site := siteFlags(cmd)
		e := shield.ImpactMetricsAt(diameter, velocity, site)
		out := struct {
			Effects shield.ImpactEffects `json:"effects" yaml:"effects"`
			Zones   shield.ImpactZones   `json:"zones" yaml:"zones"`
			Torino  int                  `json:"torino" yaml:"torino"`
		}{e, shield.EffectZones(e.DiameterKm, e.EnergyMt), shield.TorinoProxy(e.EnergyMt, probability)}
		return emit(cmd, out, func(w io.Writer) {
			fmt.Fprintln(w, e)
			fmt.Fprintf(w, "seismic: strong shaking %.0f km, damage %.0f km, felt %.0f km\n",
				e.Seismic.StrongShakingRadiusKm, e.Seismic.DamageRadiusKm, e.Seismic.FeltRadiusKm)
			fmt.Fprintf(w, "zones: crater %.1f km, severe %.1f km, shaking %.1f km\n",
				out.Zones.CraterRadiusKm, out.Zones.SevereDamageRadiusKm, out.Zones.StrongShakingRadiusKm)
			fmt.Fprintf(w, "torino: %d\n", out.Torino)
		})
	},
}

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Score every deflection method and size the best mission",
	RunE: func(cmd *cobra.Command, args []string) error {
		sel := analyzer.Selector().Select(mass, yearsFlag(cmd), hazardFlag(cmd))
		return emit(cmd, sel, func(w io.Writer) {
			fmt.Fprintf(w, "%s asteroid (%.3g kg), %g years to impact\n", sel.Category.Label, sel.AsteroidMass, sel.YearsToImpact)
			for _, s := range sel.Scores {
				fmt.Fprintln(w, " ", s)
			}
			rec := sel.Recommend()
			fmt.Fprintf(w, "%s: %s\n%s\n%s\n", rec.Urgency, rec.Summary, rec.ThreatAssessment, rec.CostSummary)
		})
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Project the outcome of a deflection",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := shield.ParseMethod(methodKey)
		if err != nil {
			return err
		}
		out, err := analyzer.Simulator().Simulate(shield.Deflection{
			Method:           m,
			DeltaV:           deltaV,
			YearsToImpact:    yearsFlag(cmd),
			RelativeVelocity: velocity,
			AsteroidMass:     mass,
			SpacecraftMass:   scMass,
		})
		if err != nil {
			return err
		}
		return emit(cmd, out, func(w io.Writer) { fmt.Fprintln(w, out) })
	},
}

var casualtiesCmd = &cobra.Command{
	Use:   "casualties",
	Short: "Population at risk around an impact site",
	RunE: func(cmd *cobra.Command, args []string) error {
		est := analyzer.Casualties()
		site := siteFlags(cmd)
		rpt := est.Estimate(site, radius)
		if v := est.Validate(site, radius); len(v.Warnings) > 0 {
			level.Warn(logger).Log("msg", "casualty estimate", "valid", v.Valid, "warnings", v.Errors())
		}
		return emit(cmd, rpt, func(w io.Writer) {
			fmt.Fprintf(w, "%d at risk (%d urban, %d rural) within %.1f km of %s\n", rpt.Total, rpt.Urban, rpt.Rural, rpt.RadiusKm, rpt.Site)
			for _, c := range rpt.Cities {
				fmt.Fprintf(w, "  %-28s %7.1f km  %-8s %10d\n", c.Name, c.DistanceKm, c.Level, c.AtRisk)
			}
		})
	},
}

var positionCmd = &cobra.Command{
	Use:   "position",
	Short: "Heliocentric ecliptic position of an orbit",
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := parseDate(dateFlag)
		if err != nil {
			return err
		}
		pos := elements.PositionAtTime(at)
		if !pos.Converged {
			level.Warn(logger).Log("msg", "kepler solution did not converge", "e", elements.Eccentricity)
		}
		return emit(cmd, pos, func(w io.Writer) {
			fmt.Fprintln(w, pos)
			fmt.Fprintf(w, "%s, period %.1f days\n", elements.Class(), elements.Period().Hours()/24)
		})
	},
}

var scenarioCmd = &cobra.Command{
	Use:   "scenario [key]",
	Short: "List the preset scenarios or assess one of them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			all := shield.Scenarios()
			return emit(cmd, all, func(w io.Writer) {
				for _, s := range all {
					fmt.Fprintf(w, "%-18s %-16s %s\n", s.Key, s.Type, s.Name)
				}
			})
		}
		s, err := shield.ScenarioByKey(args[0])
		if err != nil {
			return err
		}
		a, err := analyzer.AssessScenario(s, yearsFlag(cmd))
		if err != nil {
			return err
		}
		return shield.Export(cmd.OutOrStdout(), format, a)
	},
}

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Assess the threat described by a scenario file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if scenarioFile == "" {
			return fmt.Errorf("no scenario file provided")
		}
		req, err := shield.LoadScenarioFile(scenarioFile, time.Now().UTC(), cfg.YearsToImpact)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("years") {
			req.YearsToImpact = years
		}
		a, err := analyzer.Assess(req)
		if err != nil {
			return err
		}
		return shield.Export(cmd.OutOrStdout(), format, a)
	},
}

func init() {
	impactCmd.Flags().Float64Var(&diameter, "diameter", 0.37, "diameter in km")
	impactCmd.Flags().Float64Var(&velocity, "velocity", 7.42, "impact velocity in km/s")
	impactCmd.Flags().Float64Var(&probability, "probability", 0, "impact probability for the Torino proxy")
	addSiteFlags(impactCmd)

	selectCmd.Flags().Float64Var(&mass, "mass", shield.DefaultAsteroidMass, "asteroid mass in kg")
	addYearsFlag(selectCmd)
	selectCmd.Flags().BoolVar(&hazardous, "hazardous", false, "potentially hazardous object")

	simulateCmd.Flags().StringVar(&methodKey, "method", string(shield.Kinetic), "deflection method")
	simulateCmd.Flags().Float64Var(&deltaV, "dv", 10, "delta-v in mm/s")
	simulateCmd.Flags().Float64Var(&velocity, "velocity", 15, "relative velocity in km/s")
	simulateCmd.Flags().Float64Var(&mass, "mass", 0, "asteroid mass in kg (0 for unknown)")
	simulateCmd.Flags().Float64Var(&scMass, "spacecraft-mass", 0, "spacecraft mass in kg (0 for nominal)")
	addYearsFlag(simulateCmd)

	casualtiesCmd.Flags().Float64Var(&radius, "radius", 100, "effect radius in km")
	addSiteFlags(casualtiesCmd)

	pf := positionCmd.Flags()
	pf.Float64Var(&elements.SemiMajorAxis, "a", 1, "semi-major axis in AU")
	pf.Float64Var(&elements.Eccentricity, "e", 0, "eccentricity")
	pf.Float64Var(&elements.Inclination, "i", 0, "inclination in degrees")
	pf.Float64Var(&elements.AscendingNode, "node", 0, "longitude of the ascending node in degrees")
	pf.Float64Var(&elements.ArgPerihelion, "peri", 0, "argument of perihelion in degrees")
	pf.Float64Var(&elements.MeanAnomaly, "M", 0, "mean anomaly at epoch in degrees")
	pf.Float64Var(&elements.MeanMotion, "n", shield.DefaultMeanMotion, "mean motion in degrees per day")
	pf.Float64Var(&elements.EpochJD, "epoch", shield.DefaultEpochJD, "epoch as a Julian date")
	pf.StringVar(&dateFlag, "date", "", "propagation date, RFC 3339 or Julian date (default now)")

	addYearsFlag(scenarioCmd)

	assessCmd.Flags().StringVar(&scenarioFile, "scenario", "", "threat scenario TOML file")
	addYearsFlag(assessCmd)

	rootCmd.AddCommand(impactCmd, selectCmd, simulateCmd, casualtiesCmd, positionCmd, scenarioCmd, assessCmd)
}

func addSiteFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&lat, "lat", 0, "impact latitude in degrees (default from configuration)")
	cmd.Flags().Float64Var(&lng, "lng", 0, "impact longitude in degrees (default from configuration)")
}

func addYearsFlag(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&years, "years", 0, "years to impact (default from configuration)")
}

func siteFlags(cmd *cobra.Command) shield.Coordinates {
	site := cfg.Site
	if cmd.Flags().Changed("lat") {
		site.Lat = lat
	}
	if cmd.Flags().Changed("lng") {
		site.Lng = lng
	}
	return site
}

func yearsFlag(cmd *cobra.Command) float64 {
	if cmd.Flags().Changed("years") {
		return years
	}
	return cfg.YearsToImpact
}

func hazardFlag(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("hazardous") {
		return hazardous
	}
	return cfg.Hazardous
}

// parseDate reads an RFC 3339 date or a Julian date, defaulting to now.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	if jd, err := strconv.ParseFloat(s, 64); err == nil {
		return julian.JDToTime(jd), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected RFC 3339 or a Julian date", s)
	}
	return t, nil
}

// emit writes v in the configured format, using text for the text format.
func emit(cmd *cobra.Command, v interface{}, text func(io.Writer)) error {
	if format == shield.Text {
		text(cmd.OutOrStdout())
		return nil
	}
	return shield.Export(cmd.OutOrStdout(), format, v)
}
