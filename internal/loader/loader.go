// Package loader reads tabular chart input from CSV files.
package loader

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Column names recognized in the input header. The x and y columns are
// required; the rest override the per-point styling defaults.
const (
	ColX       = "x"
	ColY       = "y"
	ColColor   = "color"
	ColSize    = "size"
	ColStroke  = "stroke"
	ColOpacity = "opacity"
	ColTooltip = "tooltip"
)

// Table holds the parsed input columns. Optional columns are nil when
// absent from the header.
type Table struct {
	X         []string
	Y         []float64 // NaN marks an empty cell
	Colors    []string
	Sizes     []float64
	Strokes   []string
	Opacities []float64
	Tooltips  []string
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.X)
}

// LoadCSV reads a violin input table from a CSV file. The first row
// must be a header naming at least the x and y columns; column order is
// free. Empty y cells become NaN so the preparer can drop them.
func LoadCSV(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open input %q: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse input %q: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("input %q needs a header row and at least one data row", path)
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	xCol, ok := index[ColX]
	if !ok {
		return nil, fmt.Errorf("input %q is missing the %q column", path, ColX)
	}
	yCol, ok := index[ColY]
	if !ok {
		return nil, fmt.Errorf("input %q is missing the %q column", path, ColY)
	}

	table := &Table{}
	_, hasColor := index[ColColor]
	_, hasSize := index[ColSize]
	_, hasStroke := index[ColStroke]
	_, hasOpacity := index[ColOpacity]
	_, hasTooltip := index[ColTooltip]

	for line, row := range rows[1:] {
		table.X = append(table.X, row[xCol])

		y, err := parseFloatCell(row[yCol])
		if err != nil {
			return nil, fmt.Errorf("input %q row %d: bad y value %q: %w", path, line+2, row[yCol], err)
		}
		table.Y = append(table.Y, y)

		if hasColor {
			table.Colors = append(table.Colors, row[index[ColColor]])
		}
		if hasSize {
			size, err := parseFloatCell(row[index[ColSize]])
			if err != nil || math.IsNaN(size) {
				return nil, fmt.Errorf("input %q row %d: bad size value %q", path, line+2, row[index[ColSize]])
			}
			table.Sizes = append(table.Sizes, size)
		}
		if hasStroke {
			table.Strokes = append(table.Strokes, row[index[ColStroke]])
		}
		if hasOpacity {
			opacity, err := parseFloatCell(row[index[ColOpacity]])
			if err != nil || math.IsNaN(opacity) {
				return nil, fmt.Errorf("input %q row %d: bad opacity value %q", path, line+2, row[index[ColOpacity]])
			}
			table.Opacities = append(table.Opacities, opacity)
		}
		if hasTooltip {
			table.Tooltips = append(table.Tooltips, row[index[ColTooltip]])
		}
	}
	return table, nil
}

// parseFloatCell parses a numeric cell. Empty cells and textual
// missing-value markers map to NaN instead of an error.
func parseFloatCell(cell string) (float64, error) {
	trimmed := strings.TrimSpace(cell)
	switch strings.ToLower(trimmed) {
	case "", "nan", "none", "null":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(trimmed, 64)
}
