package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vizkit/violin/core"
	"github.com/vizkit/violin/internal/contract"
)

// renderCmd builds the violin chart artifact from a CSV table.
var renderCmd = &cobra.Command{
	Use:   "render <input.csv>",
	Short: "Render a violin chart HTML artifact from a CSV table.",
	Long: `Prepare the input table and write a self-contained d3.js violin chart.

The input CSV needs an "x" (category) and a "y" (value) column. Optional
"color", "size", "stroke", "opacity" and "tooltip" columns override the
per-point styling defaults.

Rows without a y value are dropped. When no color column is present,
dot colors are derived deterministically from the y values using the
configured color scheme.

Examples:
  # Render with defaults into violin.html
  violin render data.csv

  # Custom title, output path and fixed y bounds
  violin render data.csv --title "Response times" -f out/chart.html --ylim 0,250

  # Show only two categories, in this order, and open the result
  violin render data.csv --x-order setosa,virginica --show`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRender(cfg, logger); err != nil {
			contract.LogFatal("Cannot render chart", err)
		}
	},
}
