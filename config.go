package orbitalshield

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/spf13/viper"
)

// ConfigEnv names the environment variable holding the directory of conf.toml.
const ConfigEnv = "SHIELD_CONFIG"

// Config is the runtime configuration.
type Config struct {
	LogLevel    string
	Output      string // text, json, yaml or csv
	MetricsFile string // textfile collector output, empty to disable

	YearsToImpact float64
	Site          Coordinates
	Hazardous     bool

	// Cities are appended to the built-in registry.
	Cities []City
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("general.log_level", "info")
	v.SetDefault("general.output", "text")
	v.SetDefault("general.metrics_file", "")
	v.SetDefault("defaults.years_to_impact", DefaultYearsToImpact)
	v.SetDefault("defaults.impact_lat", 40.7)
	v.SetDefault("defaults.impact_lng", -74.0)
	v.SetDefault("defaults.hazardous", false)
}

// LoadConfig reads the configuration at path. An empty path looks for conf.toml in the
// directory named by SHIELD_CONFIG, and falls back to the defaults when unset.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	switch {
	case path != "":
		v.SetConfigFile(path)
	case os.Getenv(ConfigEnv) != "":
		v.SetConfigName("conf")
		v.AddConfigPath(os.Getenv(ConfigEnv))
	default:
		return readConfig(v)
	}
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading configuration: %w", err)
	}
	return readConfig(v)
}

func readConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		LogLevel:      strings.ToLower(v.GetString("general.log_level")),
		Output:        strings.ToLower(v.GetString("general.output")),
		MetricsFile:   v.GetString("general.metrics_file"),
		YearsToImpact: v.GetFloat64("defaults.years_to_impact"),
		Site:          Coordinates{Lat: v.GetFloat64("defaults.impact_lat"), Lng: v.GetFloat64("defaults.impact_lng")},
		Hazardous:     v.GetBool("defaults.hazardous"),
	}
	if err := v.UnmarshalKey("cities", &cfg.Cities); err != nil {
		return Config{}, fmt.Errorf("reading cities: %w", err)
	}
	switch cfg.Output {
	case "text", "json", "yaml", "csv":
	default:
		return Config{}, fmt.Errorf("unknown output format %q", cfg.Output)
	}
	if cfg.YearsToImpact <= 0 {
		return Config{}, fmt.Errorf("defaults.years_to_impact must be positive, got %f", cfg.YearsToImpact)
	}
	return cfg, nil
}

// Registry returns the built-in city registry extended by the configured cities.
func (c Config) Registry() (*Registry, error) {
	return DefaultRegistry().With(c.Cities...)
}

// LoadScenarioFile reads a threat scenario TOML file. Dates are either Julian dates or
// TOML datetimes. The warning time defaults to the time until the approach date, then
// to fallbackYears.
func LoadScenarioFile(path string, now time.Time, fallbackYears float64) (AssessmentRequest, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return AssessmentRequest{}, fmt.Errorf("%s: %w", path, err)
	}
	if preset := v.GetString("scenario.preset"); preset != "" {
		s, err := ScenarioByKey(preset)
		if err != nil {
			return AssessmentRequest{}, err
		}
		req := AssessmentRequest{Asteroid: s.Profile(), Site: s.Site, ImpactProbability: 1}
		req.YearsToImpact = v.GetFloat64("mission.years_to_impact")
		if req.YearsToImpact <= 0 {
			req.YearsToImpact = fallbackYears
		}
		return req, nil
	}

	if !v.IsSet("asteroid.diameter") && !v.IsSet("asteroid.diameter_min") {
		return AssessmentRequest{}, fmt.Errorf("%s: asteroid.diameter is required", path)
	}
	rec := NEORecord{
		ID:            v.GetString("asteroid.id"),
		Name:          v.GetString("asteroid.name"),
		DiameterMinKm: v.GetFloat64("asteroid.diameter_min"),
		DiameterMaxKm: v.GetFloat64("asteroid.diameter_max"),
		Hazardous:     v.GetBool("asteroid.hazardous"),
	}
	if d := v.GetFloat64("asteroid.diameter"); v.IsSet("asteroid.diameter") {
		rec.DiameterMinKm, rec.DiameterMaxKm = d, d
	}
	if v.IsSet("asteroid.approach") {
		rec.Approaches = []CloseApproach{{
			Date:             readJDEorTime(v, "asteroid.approach"),
			RelativeVelocity: v.GetFloat64("asteroid.velocity"),
			MissDistanceKm:   v.GetFloat64("asteroid.miss_distance"),
		}}
	}
	if v.IsSet("asteroid.orbit") {
		var oe OrbitalElements
		if err := v.UnmarshalKey("asteroid.orbit", &oe); err != nil {
			return AssessmentRequest{}, fmt.Errorf("%s: asteroid.orbit: %w", path, err)
		}
		rec.Orbit = &oe
	}
	p := rec.Profile(now)
	if p.Approach == nil {
		p.VelocityKmS = max(0, v.GetFloat64("asteroid.velocity"))
	}

	req := AssessmentRequest{
		Asteroid:          p,
		Site:              Coordinates{Lat: v.GetFloat64("impact.lat"), Lng: v.GetFloat64("impact.lng")},
		ImpactProbability: v.GetFloat64("impact.probability"),
		SpacecraftMass:    v.GetFloat64("mission.spacecraft_mass"),
		YearsToImpact:     v.GetFloat64("mission.years_to_impact"),
		At:                now,
	}
	if req.YearsToImpact <= 0 {
		req.YearsToImpact = p.YearsToImpact(now, fallbackYears)
	}
	return req, nil
}

// readJDEorTime reads a date stored either as a Julian date or as a datetime.
func readJDEorTime(v *viper.Viper, key string) time.Time {
	if jde := v.GetFloat64(key); jde != 0 {
		return julian.JDToTime(jde)
	}
	return v.GetTime(key).UTC()
}
