package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights <file>",
	Short: "Run the analysis pipeline and print only the ranked insights",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := runPipeline(args[0])
		if err != nil {
			return err
		}
		if len(res.Insights) == 0 {
			fmt.Println("No insight rules fired.")
			return nil
		}
		for i, f := range res.Insights {
			fmt.Printf("%d. %s [%s]\n", i+1, f.Text, f.Rule)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}
