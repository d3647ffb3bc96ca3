// Package config loads and validates the per-run analysis configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global holds every recognized option. Values come from defaults, the
// optional config file, CINESTAT_* environment variables, and finally CLI
// flag overrides.
type Global struct {
	HistogramBins        int     `mapstructure:"histogram_bins" yaml:"histogram_bins"`
	DensityPoints        int     `mapstructure:"density_points" yaml:"density_points"`
	OutlierMultiplier    float64 `mapstructure:"outlier_multiplier" yaml:"outlier_multiplier"`
	CorrelationThreshold float64 `mapstructure:"correlation_threshold" yaml:"correlation_threshold"`
	MissingPctThreshold  float64 `mapstructure:"missing_pct_threshold" yaml:"missing_pct_threshold"`
	TopCategories        int     `mapstructure:"top_categories" yaml:"top_categories"`
	SampleRows           int     `mapstructure:"sample_rows" yaml:"sample_rows"`
	Workers              int     `mapstructure:"workers" yaml:"workers"`
	ScatterSizeMin       float64 `mapstructure:"scatter_size_min" yaml:"scatter_size_min"`
	ScatterSizeMax       float64 `mapstructure:"scatter_size_max" yaml:"scatter_size_max"`
}

// Load reads configuration from file, env, and defaults.
// Precedence: flags (applied by the caller) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("CINESTAT")
	v.AutomaticEnv()

	v.SetDefault("histogram_bins", 10)
	v.SetDefault("density_points", 64)
	v.SetDefault("outlier_multiplier", 1.5)
	v.SetDefault("correlation_threshold", 0.7)
	v.SetDefault("missing_pct_threshold", 5.0)
	v.SetDefault("top_categories", 2)
	v.SetDefault("sample_rows", 5)
	v.SetDefault("workers", 0)
	v.SetDefault("scatter_size_min", 20.0)
	v.SetDefault("scatter_size_max", 200.0)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".cinestat")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Save writes the configuration to cfgFile, or ~/.cinestat/config.yaml when
// cfgFile is empty, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".cinestat")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate rejects out-of-domain option values. This is the one fatal
// error class: a run must not start on a configuration that would produce
// silently wrong statistics.
func (c *Global) Validate() error {
	if c.HistogramBins <= 0 {
		return fmt.Errorf("histogram_bins must be positive, got %d", c.HistogramBins)
	}
	if c.DensityPoints < 2 {
		return fmt.Errorf("density_points must be at least 2, got %d", c.DensityPoints)
	}
	if c.OutlierMultiplier <= 0 {
		return fmt.Errorf("outlier_multiplier must be positive, got %g", c.OutlierMultiplier)
	}
	if c.CorrelationThreshold < 0 || c.CorrelationThreshold > 1 {
		return fmt.Errorf("correlation_threshold must be within [0, 1], got %g", c.CorrelationThreshold)
	}
	if c.MissingPctThreshold < 0 || c.MissingPctThreshold > 100 {
		return fmt.Errorf("missing_pct_threshold must be within [0, 100], got %g", c.MissingPctThreshold)
	}
	if c.TopCategories < 1 {
		return fmt.Errorf("top_categories must be at least 1, got %d", c.TopCategories)
	}
	if c.SampleRows < 0 {
		return fmt.Errorf("sample_rows must not be negative, got %d", c.SampleRows)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.ScatterSizeMin <= 0 || c.ScatterSizeMax <= c.ScatterSizeMin {
		return fmt.Errorf("scatter size range must satisfy 0 < min < max, got [%g, %g]",
			c.ScatterSizeMin, c.ScatterSizeMax)
	}
	return nil
}
