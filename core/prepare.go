package core

import (
	"log/slog"
	"math"
	"strings"

	"github.com/vizkit/violin/internal"
	"github.com/vizkit/violin/schema"
)

// PrepareOptions carries the optional per-point styling for
// PrepareRecords. Scalar fields broadcast to every row; the per-row
// slices take precedence and must match the length of x when set.
type PrepareOptions struct {
	Colors    []string // per-row hex colors; nil derives colors from cfg.Cmap
	Size      float64
	Sizes     []float64
	Stroke    string
	Strokes   []string
	Opacity   float64
	Opacities []float64
	Tooltip   string
	Tooltips  []string
}

// DefaultPrepareOptions returns the standard per-point styling.
func DefaultPrepareOptions() PrepareOptions {
	return PrepareOptions{
		Size:    schema.DefaultSize,
		Stroke:  schema.DefaultStroke,
		Opacity: schema.DefaultOpacity,
	}
}

// PrepareRecords validates and cleans parallel category/value arrays
// into the canonical record set. Rows with a missing y are dropped,
// x-order filtering retains only configured categories, and colors are
// derived deterministically from the configured scheme when not
// supplied. The returned records are indexed contiguously from 0.
func PrepareRecords(x []string, y []float64, opts PrepareOptions, cfg schema.Config, logger *slog.Logger) ([]schema.Record, error) {
	logger = ensureLogger(logger)

	if err := validateInput(x, y, opts); err != nil {
		return nil, err
	}

	// Assemble rows with scalars broadcast to every row.
	records := make([]schema.Record, 0, len(x))
	for i := range x {
		rec := schema.Record{
			X:       x[i],
			Y:       y[i],
			Size:    opts.Size,
			Stroke:  opts.Stroke,
			Opacity: opts.Opacity,
			Tooltip: opts.Tooltip,
		}
		if opts.Colors != nil {
			rec.Color = opts.Colors[i]
		}
		if opts.Sizes != nil {
			rec.Size = opts.Sizes[i]
		}
		if opts.Strokes != nil {
			rec.Stroke = opts.Strokes[i]
		}
		if opts.Opacities != nil {
			rec.Opacity = opts.Opacities[i]
		}
		if opts.Tooltips != nil {
			rec.Tooltip = opts.Tooltips[i]
		}
		records = append(records, rec)
	}

	// Drop rows without an observation.
	cleaned := make([]schema.Record, 0, len(records))
	removed := 0
	for _, rec := range records {
		if !rec.HasY() {
			removed++
			continue
		}
		cleaned = append(cleaned, rec)
	}
	if removed > 0 {
		logger.Info("Removed rows with missing y values", "count", removed)
	}

	// Retain only configured categories. Exact set membership: the
	// pipe-joined substring match of older implementations also kept
	// categories whose names merely contain an allowed one.
	if cfg.XOrder != nil {
		allowed := make(map[string]struct{}, len(cfg.XOrder))
		for _, class := range cfg.XOrder {
			allowed[class] = struct{}{}
		}
		filtered := cleaned[:0]
		for _, rec := range cleaned {
			if _, ok := allowed[rec.X]; ok {
				filtered = append(filtered, rec)
			}
		}
		cleaned = filtered
		logger.Info("Filtered on categories", "classes", strings.Join(cfg.XOrder, "|"))
	}

	// Color on values and scheme, after cleaning and filtering.
	if opts.Colors == nil {
		values := make([]float64, len(cleaned))
		for i, rec := range cleaned {
			values[i] = rec.Y
		}
		colors, err := internal.FromValues(values, cfg.Cmap)
		if err != nil {
			return nil, err
		}
		for i := range cleaned {
			cleaned[i].Color = colors[i]
		}
	}

	logger.Info("Number of samples", "count", len(cleaned))
	return cleaned, nil
}

// validateInput applies the preparer contract checks.
func validateInput(x []string, y []float64, opts PrepareOptions) error {
	if len(x) != len(y) {
		return schema.NewValidationError("input parameter %q should be of size of %q", "x", "y")
	}
	if opts.Sizes == nil && (math.IsNaN(opts.Size) || opts.Size <= 0) {
		return schema.NewValidationError("input parameter %q should have value >0", "size")
	}
	if opts.Sizes != nil && len(opts.Sizes) != len(x) {
		return schema.NewValidationError("input parameter %q should be of same size of (x, y)", "size")
	}
	if opts.Strokes == nil && opts.Stroke == "" {
		return schema.NewValidationError("input parameter %q should have hex value", "stroke")
	}
	if opts.Strokes != nil && len(opts.Strokes) != len(x) {
		return schema.NewValidationError("input parameter %q should be of same size of (x, y)", "stroke")
	}
	if opts.Opacities == nil && (math.IsNaN(opts.Opacity) || opts.Opacity < 0 || opts.Opacity > 1) {
		return schema.NewValidationError("input parameter %q should have value in range [0..1]", "opacity")
	}
	if opts.Opacities != nil && len(opts.Opacities) != len(x) {
		return schema.NewValidationError("input parameter %q should be of same size of (x, y)", "opacity")
	}
	if opts.Colors != nil && len(opts.Colors) != len(x) {
		return schema.NewValidationError("input parameter %q should be of same size of (x, y)", "color")
	}
	if opts.Tooltips != nil && len(opts.Tooltips) != len(x) {
		return schema.NewValidationError("input parameter %q should be of same size of (x, y)", "tooltip")
	}
	return nil
}
