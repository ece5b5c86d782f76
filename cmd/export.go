package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vizkit/violin/core"
	"github.com/vizkit/violin/internal/contract"
)

// exportCmd writes the cleaned record set instead of rendering a chart.
var exportCmd = &cobra.Command{
	Use:   "export <input.csv>",
	Short: "Export the cleaned record set as text, CSV, JSON or Parquet.",
	Long: `Run the preparation pipeline and write the resulting record set.

The export carries exactly what would be embedded in the chart: rows
without a y value are dropped, x-order filtering is applied, and colors
are filled in from the configured scheme.

Examples:
  # Inspect the cleaned records on stdout
  violin export data.csv --output json

  # Persist the record set for downstream analytics
  violin export data.csv --output parquet --output-file records.parquet`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(cfg, logger); err != nil {
			contract.LogFatal("Cannot export records", err)
		}
	},
}
