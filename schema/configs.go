package schema

import (
	"path/filepath"
	"time"
)

// Config holds the chart configuration for a single render call.
// NewConfig fills defaults; fields left at their auto sentinels
// (FigSize 0, YLim shorter than two values, XOrder nil) are resolved at
// render time from the prepared data.
type Config struct {
	Chart           string        // Chart kind; always "violin"
	Title           string        // Title shown above the chart
	Filepath        string        // Normalized output path of the artifact
	FigSize         [2]int        // [width, height] in pixels; 0 = auto
	ShowFig         bool          // Open the artifact in a browser after writing
	Overwrite       bool          // Replace an existing artifact; false preserves it
	OverwriteGrace  time.Duration // Pause between pre-delete and rewrite
	Bins            int           // Histogram bin count per category
	Cmap            string        // Color scheme for value-derived colors
	YLim            []float64     // [min, max]; fewer than two values = auto
	XOrder          []string      // Category order and filter; nil = auto
	ResetProperties bool          // Recompute node properties on every plot call
}

// Option adjusts a Config under construction. Callers never see the
// intermediate value, so a Config is effectively immutable once
// NewConfig returns it.
type Option func(*Config)

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(c *Config) { c.Title = title }
}

// WithFilepath sets the normalized output path of the artifact.
func WithFilepath(path string) Option {
	return func(c *Config) { c.Filepath = NormalizePath(path) }
}

// WithFigSize sets the chart width and height in pixels. Zero keeps a
// dimension auto-computed.
func WithFigSize(width, height int) Option {
	return func(c *Config) { c.FigSize = [2]int{width, height} }
}

// WithShowFig controls opening the artifact in a browser after writing.
func WithShowFig(show bool) Option {
	return func(c *Config) { c.ShowFig = show }
}

// WithOverwrite controls replacing an existing artifact.
func WithOverwrite(overwrite bool) Option {
	return func(c *Config) { c.Overwrite = overwrite }
}

// WithOverwriteGrace sets the pause between pre-delete and rewrite.
func WithOverwriteGrace(grace time.Duration) Option {
	return func(c *Config) { c.OverwriteGrace = grace }
}

// WithBins sets the histogram bin count per category.
func WithBins(bins int) Option {
	return func(c *Config) { c.Bins = bins }
}

// WithCmap sets the color scheme for value-derived colors.
func WithCmap(cmap string) Option {
	return func(c *Config) { c.Cmap = cmap }
}

// WithYLim fixes the y-axis bounds instead of auto-computing them.
func WithYLim(minY, maxY float64) Option {
	return func(c *Config) { c.YLim = []float64{minY, maxY} }
}

// WithXOrder fixes the category display order. Rows whose category is
// not listed are filtered out during preparation.
func WithXOrder(order ...string) Option {
	return func(c *Config) { c.XOrder = order }
}

// WithResetProperties controls recomputing node properties between
// plot calls on the same Violin value.
func WithResetProperties(reset bool) Option {
	return func(c *Config) { c.ResetProperties = reset }
}

// NewConfig builds a chart configuration from defaults plus overrides.
// Inputs are never mutated: every call returns a fresh value.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		Chart:           DefaultChart,
		Title:           DefaultTitle,
		Filepath:        NormalizePath(DefaultFilename),
		ShowFig:         true,
		Overwrite:       true,
		OverwriteGrace:  DefaultOverwriteGrace,
		Bins:            DefaultBins,
		Cmap:            DefaultCmap,
		ResetProperties: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// NormalizePath normalizes a user-supplied artifact path: an empty path
// defaults to DefaultFilename, a path without an extension is treated
// as a directory and gets the default filename appended, and the result
// is made absolute when possible. Pure - nothing is created on disk.
func NormalizePath(path string) string {
	if path == "" {
		path = DefaultFilename
	}
	if filepath.Ext(path) == "" {
		path = filepath.Join(path, DefaultFilename)
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path
}
