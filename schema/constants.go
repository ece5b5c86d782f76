package schema

import "time"

// Custom string types for type safety.
type (
	// OutputMode represents the format of a record set export.
	OutputMode string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// Default values for chart configuration.
const (
	DefaultChart    = "violin"
	DefaultTitle    = "Violin - D3blocks"
	DefaultFilename = "violin.html"
	DefaultBins     = 20
	DefaultCmap     = "inferno"

	// DefaultHeight is the chart height when figsize height is auto.
	DefaultHeight = 400

	// WidthPerLabel is the auto-computed chart width per distinct category.
	WidthPerLabel = 95

	// YLimSpacing pads the observed y range on both sides when the
	// y-axis bounds are auto-computed.
	YLimSpacing = 0.10
)

// Default per-point styling.
const (
	DefaultSize    = 5.0
	DefaultStroke  = "#ffffff"
	DefaultOpacity = 0.8
)

// DefaultOverwriteGrace is the pause between removing an existing
// artifact and writing the fresh one. Some filesystems surface deletes
// with a delay; the grace period keeps the rewrite from racing them.
const DefaultOverwriteGrace = 500 * time.Millisecond
