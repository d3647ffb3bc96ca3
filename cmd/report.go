package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cinestat/cinestat-cli/internal/report"
)

var repOutputPath string

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Run the analysis pipeline and print the full report bundle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := runPipeline(args[0])
		if err != nil {
			return err
		}
		out := report.Render(res)
		if repOutputPath != "" {
			if err := os.WriteFile(repOutputPath, []byte(out), 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Printf("✓ Wrote report to %s\n", repOutputPath)
			return nil
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&repOutputPath, "output", "o", "", "optional path to write the report")
}
