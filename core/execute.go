package core

import (
	"log/slog"
	"os"

	"github.com/vizkit/violin/internal/contract"
	"github.com/vizkit/violin/internal/loader"
	"github.com/vizkit/violin/internal/outwriter"
)

// ExecuteRender loads the input table, prepares the record set and
// writes the HTML artifact.
func ExecuteRender(cfg *contract.Config, logger *slog.Logger) error {
	logger = ensureLogger(logger)

	table, err := loader.LoadCSV(cfg.InputPath)
	if err != nil {
		return err
	}

	props, err := NodeProperties(table.X, logger)
	if err != nil {
		return err
	}

	records, err := PrepareRecords(table.X, table.Y, optionsFromTable(table, cfg), cfg.Chart, logger)
	if err != nil {
		return err
	}

	final, err := Show(records, props, cfg.Chart, logger)
	if err != nil {
		return err
	}
	logger.Info("Chart ready", "path", final.Filepath, "categories", len(props), "samples", len(records))
	return nil
}

// ExecuteLabels prints the per-category summary table for the input.
func ExecuteLabels(cfg *contract.Config, logger *slog.Logger) error {
	table, err := loader.LoadCSV(cfg.InputPath)
	if err != nil {
		return err
	}

	props, err := NodeProperties(table.X, logger)
	if err != nil {
		return err
	}

	records, err := PrepareRecords(table.X, table.Y, optionsFromTable(table, cfg), cfg.Chart, logger)
	if err != nil {
		return err
	}

	summaries := outwriter.SummarizeLabels(records, props)
	return outwriter.WriteLabelTable(summaries, cfg, os.Stdout)
}

// ExecuteExport writes the cleaned record set in the configured export
// format instead of rendering a chart.
func ExecuteExport(cfg *contract.Config, logger *slog.Logger) error {
	logger = ensureLogger(logger)

	table, err := loader.LoadCSV(cfg.InputPath)
	if err != nil {
		return err
	}

	records, err := PrepareRecords(table.X, table.Y, optionsFromTable(table, cfg), cfg.Chart, logger)
	if err != nil {
		return err
	}
	return outwriter.WriteRecords(records, cfg.Output, cfg.OutputFile, logger)
}

// optionsFromTable merges the CLI scalar defaults with any per-row
// styling columns present in the input table.
func optionsFromTable(table *loader.Table, cfg *contract.Config) PrepareOptions {
	opts := DefaultPrepareOptions()
	opts.Size = cfg.Size
	opts.Stroke = cfg.Stroke
	opts.Opacity = cfg.Opacity
	opts.Tooltip = cfg.Tooltip

	opts.Colors = table.Colors
	opts.Sizes = table.Sizes
	opts.Strokes = table.Strokes
	opts.Opacities = table.Opacities
	opts.Tooltips = table.Tooltips
	return opts
}
