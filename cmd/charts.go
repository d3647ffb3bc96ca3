package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cinestat/cinestat-cli/internal/charts"
)

var (
	chartsOutDir string
	chartsFormat string
)

var chartsCmd = &cobra.Command{
	Use:   "charts <file>",
	Short: "Run the analysis pipeline and export chart-ready data artifacts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := runPipeline(args[0])
		if err != nil {
			return err
		}
		set := charts.Build(res)
		man, err := set.Write(chartsOutDir, chartsFormat)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Wrote %d chart artifacts to %s (run %s)\n", len(man.Files), chartsOutDir, man.RunID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chartsCmd)
	chartsCmd.Flags().StringVarP(&chartsOutDir, "out", "o", "charts", "output directory for chart artifacts")
	chartsCmd.Flags().StringVar(&chartsFormat, "format", "json", "artifact format: json | yaml")
}
