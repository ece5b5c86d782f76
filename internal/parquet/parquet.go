// Package parquet provides export of the cleaned record set to Parquet
// files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/vizkit/violin/schema"
)

// Row mirrors schema.Record with parquet struct tags. The schema is
// inferred from the tags by the generic writer.
type Row struct {
	// X is the category of the data point
	X string `parquet:"x,snappy"`

	// Y is the observed value
	Y float64 `parquet:"y,snappy"`

	// Color is the hex fill color of the dot
	Color string `parquet:"color,snappy"`

	// Size is the dot radius in pixels
	Size float64 `parquet:"size,snappy"`

	// Stroke is the hex stroke color of the dot
	Stroke string `parquet:"stroke,snappy"`

	// Opacity is the fill opacity in [0,1]
	Opacity float64 `parquet:"opacity,snappy"`

	// Tooltip is the hover text
	Tooltip string `parquet:"tooltip,snappy"`
}

// FromRecords converts a cleaned record set into parquet rows.
func FromRecords(records []schema.Record) []Row {
	rows := make([]Row, len(records))
	for i, rec := range records {
		rows[i] = Row{
			X:       rec.X,
			Y:       rec.Y,
			Color:   rec.Color,
			Size:    rec.Size,
			Stroke:  rec.Stroke,
			Opacity: rec.Opacity,
			Tooltip: rec.Tooltip,
		}
	}
	return rows
}

// WriteRecordsParquet writes the record rows to a Parquet file.
func WriteRecordsParquet(rows []Row, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the Row struct tags.
	writer := parquet.NewGenericWriter[Row](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}
