package internal

import (
	"fmt"
	"math"
	"sort"

	"github.com/mazznoer/colorgrad"
)

// gradients maps the supported scheme names onto colorgrad presets.
var gradients = map[string]func() colorgrad.Gradient{
	"inferno": colorgrad.Inferno,
	"magma":   colorgrad.Magma,
	"plasma":  colorgrad.Plasma,
	"viridis": colorgrad.Viridis,
	"cividis": colorgrad.Cividis,
	"turbo":   colorgrad.Turbo,
	"rainbow": colorgrad.Rainbow,
	"sinebow": colorgrad.Sinebow,
	"warm":    colorgrad.Warm,
	"cool":    colorgrad.Cool,
}

// SupportedSchemes returns the recognized color scheme names, sorted.
func SupportedSchemes() []string {
	schemes := make([]string, 0, len(gradients))
	for name := range gradients {
		schemes = append(schemes, name)
	}
	sort.Strings(schemes)
	return schemes
}

// FromValues maps every value onto a hex color from the named scheme.
// Values are min/max normalized over the gradient domain, so equal
// values always get equal colors and the mapping is deterministic for a
// fixed scheme. When all values coincide the gradient midpoint is used.
func FromValues(values []float64, scheme string) ([]string, error) {
	factory, ok := gradients[scheme]
	if !ok {
		return nil, fmt.Errorf("unknown color scheme %q (supported: %v)", scheme, SupportedSchemes())
	}
	grad := factory()

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	colors := make([]string, len(values))
	for i, v := range values {
		t := 0.5
		switch {
		case math.IsNaN(v):
			t = 0
		case hi > lo:
			t = (v - lo) / (hi - lo)
		}
		colors[i] = grad.At(t).Hex()
	}
	return colors, nil
}
