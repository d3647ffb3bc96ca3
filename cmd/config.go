package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	cfgpkg "github.com/cinestat/cinestat-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or initialize cinestat configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := cfg
		if c == nil {
			loaded, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			c = loaded
		}
		fmt.Printf("histogram_bins: %d\n", c.HistogramBins)
		fmt.Printf("density_points: %d\n", c.DensityPoints)
		fmt.Printf("outlier_multiplier: %.2f\n", c.OutlierMultiplier)
		fmt.Printf("correlation_threshold: %.2f\n", c.CorrelationThreshold)
		fmt.Printf("missing_pct_threshold: %.1f\n", c.MissingPctThreshold)
		fmt.Printf("top_categories: %d\n", c.TopCategories)
		fmt.Printf("sample_rows: %d\n", c.SampleRows)
		fmt.Printf("workers: %d\n", c.Workers)
		fmt.Printf("scatter_size_min: %.1f\n", c.ScatterSizeMin)
		fmt.Printf("scatter_size_max: %.1f\n", c.ScatterSizeMax)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := cfg
		if c == nil {
			loaded, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			c = loaded
		}
		if err := c.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		fmt.Println("✓ Configuration saved")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
