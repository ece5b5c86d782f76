package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromValuesDeterministic(t *testing.T) {
	values := []float64{1, 2, 2, 4}

	first, err := FromValues(values, "inferno")
	require.NoError(t, err)
	second, err := FromValues(values, "inferno")
	require.NoError(t, err)

	assert.Equal(t, first, second, "same inputs should always give the same colors")
	assert.Equal(t, first[1], first[2], "equal values should share a color")
	assert.NotEqual(t, first[0], first[3], "range endpoints should differ")

	for _, c := range first {
		assert.Regexp(t, `^#[0-9a-fA-F]{6}$`, c, "colors should be 6-digit hex strings")
	}
}

func TestFromValuesAllEqual(t *testing.T) {
	colors, err := FromValues([]float64{3, 3, 3}, "viridis")
	require.NoError(t, err)

	// Degenerate range collapses onto the gradient midpoint.
	assert.Equal(t, colors[0], colors[1])
	assert.Equal(t, colors[1], colors[2])
}

func TestFromValuesNaN(t *testing.T) {
	colors, err := FromValues([]float64{math.NaN(), 1, 2}, "inferno")
	require.NoError(t, err)
	require.Len(t, colors, 3)

	for _, c := range colors {
		assert.NotEmpty(t, c)
	}
}

func TestFromValuesUnknownScheme(t *testing.T) {
	_, err := FromValues([]float64{1}, "bogus")
	assert.ErrorContains(t, err, "unknown color scheme")
}

func TestSupportedSchemes(t *testing.T) {
	schemes := SupportedSchemes()
	assert.Contains(t, schemes, "inferno")
	assert.Contains(t, schemes, "viridis")
	assert.IsIncreasing(t, schemes, "schemes should come back sorted")
}
