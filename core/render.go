package core

import (
	"log/slog"
	"math"

	"github.com/vizkit/violin/internal"
	"github.com/vizkit/violin/internal/outwriter"
	"github.com/vizkit/violin/schema"
)

// Show computes the remaining layout defaults, serializes the record
// set and writes the rendered HTML artifact. The configuration is
// taken by value and returned with every auto field resolved; the
// caller's copy stays untouched.
func Show(records []schema.Record, props map[string]schema.NodeProperty, cfg schema.Config, logger *slog.Logger) (schema.Config, error) {
	logger = ensureLogger(logger)

	if len(records) == 0 {
		return cfg, &schema.DataError{Msg: "no records to render"}
	}

	cfg = resolveLayout(records, props, cfg)

	if err := outwriter.WriteHTML(records, cfg, logger); err != nil {
		return cfg, err
	}
	if cfg.ShowFig {
		if err := internal.OpenBrowser(cfg.Filepath); err != nil {
			logger.Warn("Cannot open chart in browser", "path", cfg.Filepath, "error", err)
		}
	}
	return cfg, nil
}

// resolveLayout fills the auto-computed layout fields from the prepared
// data: y bounds padded by 10% of the observed range, category order
// from the node properties, and figure dimensions from the number of
// distinct categories.
func resolveLayout(records []schema.Record, props map[string]schema.NodeProperty, cfg schema.Config) schema.Config {
	if len(cfg.YLim) < 2 {
		minY, maxY := yRange(records)
		spacing := (maxY - minY) * schema.YLimSpacing
		cfg.YLim = []float64{minY - spacing, maxY + spacing}
	}
	if cfg.XOrder == nil {
		cfg.XOrder = OrderedLabels(props)
	}
	if cfg.FigSize[0] == 0 {
		cfg.FigSize[0] = len(props) * schema.WidthPerLabel
	}
	if cfg.FigSize[1] == 0 {
		cfg.FigSize[1] = schema.DefaultHeight
	}
	return cfg
}

// yRange returns the minimum and maximum observed y values.
func yRange(records []schema.Record) (float64, float64) {
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, rec := range records {
		if !rec.HasY() {
			continue
		}
		minY = math.Min(minY, rec.Y)
		maxY = math.Max(maxY, rec.Y)
	}
	return minY, maxY
}
