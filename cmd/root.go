package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/cinestat/cinestat-cli/internal/config"
)

var (
	// Global flags (wired to config on initialize)
	cfgFile string

	// Analysis overrides (applied over the loaded config if set)
	flagBins             int
	flagDensityPoints    int
	flagOutlierMult      float64
	flagCorrThreshold    float64
	flagMissingThreshold float64
	flagTopCategories    int
	flagWorkers          int

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "cinestat",
	Short: "cinestat: exploratory analysis of tabular movie datasets",
	Long: `cinestat runs a statistical analysis pipeline over a movie dataset CSV and
produces a textual report bundle plus chart-ready data artifacts: structure,
missingness, descriptive statistics, outlier fences, distributions,
correlations, and ranked insights.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ~/.cinestat/config.yaml)")
	pf.IntVar(&flagBins, "bins", 0, "histogram bin count (overrides config)")
	pf.IntVar(&flagDensityPoints, "density-points", 0, "density curve sample count (overrides config)")
	pf.Float64Var(&flagOutlierMult, "outlier-multiplier", 0, "IQR fence multiplier (overrides config)")
	pf.Float64Var(&flagCorrThreshold, "corr-threshold", 0, "correlation insight threshold (overrides config)")
	pf.Float64Var(&flagMissingThreshold, "missing-threshold", 0, "missing-percentage insight threshold (overrides config)")
	pf.IntVar(&flagTopCategories, "top-categories", 0, "top categories reported by the insight rule (overrides config)")
	pf.IntVar(&flagWorkers, "workers", 0, "per-column worker pool size, 0 = sequential (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands validate before running an analysis
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	f := rootCmd.PersistentFlags()
	if f.Changed("bins") {
		cfg.HistogramBins = flagBins
	}
	if f.Changed("density-points") {
		cfg.DensityPoints = flagDensityPoints
	}
	if f.Changed("outlier-multiplier") {
		cfg.OutlierMultiplier = flagOutlierMult
	}
	if f.Changed("corr-threshold") {
		cfg.CorrelationThreshold = flagCorrThreshold
	}
	if f.Changed("missing-threshold") {
		cfg.MissingPctThreshold = flagMissingThreshold
	}
	if f.Changed("top-categories") {
		cfg.TopCategories = flagTopCategories
	}
	if f.Changed("workers") {
		cfg.Workers = flagWorkers
	}
}
