// Package cmd defines the command-line interface for violin.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vizkit/violin/internal/contract"
	"github.com/vizkit/violin/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(labelsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("title", "t", schema.DefaultTitle, "Chart title")
	rootCmd.PersistentFlags().String("cmap", schema.DefaultCmap, "Color scheme for value-derived colors")
	rootCmd.PersistentFlags().String("ylim", "", "Fixed y-axis bounds as 'min,max' (default: auto)")
	rootCmd.PersistentFlags().String("x-order", "", "Comma-separated category order and filter (default: auto)")
	rootCmd.PersistentFlags().Float64("size", schema.DefaultSize, "Dot radius in pixels")
	rootCmd.PersistentFlags().String("stroke", schema.DefaultStroke, "Dot stroke color (hex)")
	rootCmd.PersistentFlags().Float64("opacity", schema.DefaultOpacity, "Dot fill opacity in [0,1]")
	rootCmd.PersistentFlags().String("tooltip", "", "Tooltip text applied to every row")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in table output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("term-width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("config", "", "Path to an explicit config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of renderCmd to Viper
	renderCmd.Flags().StringP("filepath", "f", schema.DefaultFilename, "Output path of the HTML artifact")
	renderCmd.Flags().Int("width", 0, "Chart width in pixels (0 = auto from category count)")
	renderCmd.Flags().Int("height", 0, "Chart height in pixels (0 = auto)")
	renderCmd.Flags().Int("bins", schema.DefaultBins, "Histogram bin count per category")
	renderCmd.Flags().Bool("show", false, "Open the artifact in a browser after writing")
	renderCmd.Flags().Bool("overwrite", true, "Replace an existing artifact; false preserves it")
	renderCmd.Flags().String("grace", schema.DefaultOverwriteGrace.String(), "Pause between pre-delete and rewrite")
	if err := viper.BindPFlags(renderCmd.Flags()); err != nil {
		contract.LogFatal("Error binding render flags", err)
	}

	// Bind all flags of exportCmd to Viper
	exportCmd.Flags().StringP("output", "o", string(schema.TextOut), "Export format: text or csv or json or parquet")
	exportCmd.Flags().String("output-file", "", "Optional path to write the export to")
	if err := viper.BindPFlags(exportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding export flags", err)
	}
}
