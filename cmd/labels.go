package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vizkit/violin/core"
	"github.com/vizkit/violin/internal/contract"
)

// labelsCmd summarizes the categories found in the input table.
var labelsCmd = &cobra.Command{
	Use:   "labels <input.csv>",
	Short: "Show the categories of the input table with their assigned ids.",
	Long: `Extract the unique categories from the input table and print a summary.

Categories keep their first-occurrence order and get dense ids from 0,
exactly as the renderer assigns them. The share column shows how much
of the record set each category holds after cleaning.

Examples:
  # Inspect category ids and sample counts
  violin labels data.csv

  # Plain output for scripting
  violin labels data.csv --color no`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteLabels(cfg, logger); err != nil {
			contract.LogFatal("Cannot summarize labels", err)
		}
	},
}
