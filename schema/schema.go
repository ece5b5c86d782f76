// Package schema has configs, models and errors for all parts of violin.
package schema

import (
	"encoding/json"
	"math"
	"strconv"
)

// NodeProperty holds per-category metadata: the dense id assigned in
// first-occurrence order and the display label. Ids start at 0 and are
// stable for a given input order.
type NodeProperty struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

// Record is one cleaned data point, ready for serialization into the
// rendered artifact.
type Record struct {
	X       string  // Category of the data point
	Y       float64 // Observed value; NaN marks a missing observation
	Color   string  // Hex fill color of the dot
	Size    float64 // Dot radius in pixels
	Stroke  string  // Hex stroke color of the dot
	Opacity float64 // Fill opacity in [0,1]
	Tooltip string  // Hover text; empty on all rows disables interactivity
}

// recordJSON is the wire form of a Record. Field order matches what the
// d3 script expects and Y travels in string form.
type recordJSON struct {
	X       string  `json:"x"`
	Y       string  `json:"y"`
	Color   string  `json:"color"`
	Size    float64 `json:"size"`
	Stroke  string  `json:"stroke"`
	Opacity float64 `json:"opacity"`
	Tooltip string  `json:"tooltip"`
}

// HasY reports whether the record carries an actual observation.
func (r Record) HasY() bool {
	return !math.IsNaN(r.Y)
}

// MarshalJSON serializes the record in wire form.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		X:       r.X,
		Y:       FormatY(r.Y),
		Color:   r.Color,
		Size:    r.Size,
		Stroke:  r.Stroke,
		Opacity: r.Opacity,
		Tooltip: r.Tooltip,
	})
}

// UnmarshalJSON parses the wire form back into a record.
func (r *Record) UnmarshalJSON(data []byte) error {
	var rj recordJSON
	if err := json.Unmarshal(data, &rj); err != nil {
		return err
	}
	y, err := strconv.ParseFloat(rj.Y, 64)
	if err != nil {
		return err
	}
	*r = Record{
		X:       rj.X,
		Y:       y,
		Color:   rj.Color,
		Size:    rj.Size,
		Stroke:  rj.Stroke,
		Opacity: rj.Opacity,
		Tooltip: rj.Tooltip,
	}
	return nil
}

// FormatY renders a Y value the way it is embedded in the artifact.
func FormatY(y float64) string {
	return strconv.FormatFloat(y, 'g', -1, 64)
}
