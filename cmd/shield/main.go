package main

import (
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	shield "github.com/Skilledcamman/OrbitalShield"
)

var (
	cfgPath     string
	outputFlag  string
	logLevel    string
	metricsFile string

	cfg      shield.Config
	format   shield.Format
	logger   log.Logger
	metrics  *shield.Collector
	analyzer *shield.Analyzer
)

var rootCmd = &cobra.Command{
	Use:   "shield",
	Short: "Asteroid impact assessment and deflection planning",
	Long: `shield estimates the consequences of an asteroid impact, selects the best
deflection method for the threat and projects the outcome of the mission.

The configuration is read from --config, or from conf.toml in the directory named by
the SHIELD_CONFIG environment variable.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "configuration file (default $SHIELD_CONFIG/conf.toml)")
	pf.StringVarP(&outputFlag, "output", "o", "", "output format: text, json, yaml or csv")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile on exit")
}

func setup(cmd *cobra.Command, args []string) (err error) {
	if cfg, err = shield.LoadConfig(cfgPath); err != nil {
		return err
	}
	if outputFlag != "" {
		cfg.Output = outputFlag
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if metricsFile != "" {
		cfg.MetricsFile = metricsFile
	}
	if format, err = shield.ParseFormat(cfg.Output); err != nil {
		return err
	}
	if logger, err = shield.NewLogger(os.Stderr, cfg.LogLevel); err != nil {
		return err
	}
	if metrics, err = shield.NewCollector(prometheus.NewRegistry()); err != nil {
		return err
	}
	registry, err := cfg.Registry()
	if err != nil {
		return fmt.Errorf("city registry: %w", err)
	}
	level.Debug(logger).Log("msg", "configuration loaded", "output", format, "cities", registry.Len())
	analyzer = shield.NewAnalyzer(nil, registry, shield.WithLogger(logger), shield.WithMetrics(metrics))
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if cfg.MetricsFile == "" {
		return nil
	}
	if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	level.Debug(logger).Log("msg", "metrics written", "file", cfg.MetricsFile)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
