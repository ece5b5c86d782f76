package loader

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSVMinimal(t *testing.T) {
	path := writeCSV(t, "x,y\na,1\nb,2.5\n")

	table, err := LoadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, table.X)
	assert.Equal(t, []float64{1, 2.5}, table.Y)
	assert.Nil(t, table.Colors)
	assert.Nil(t, table.Sizes)
	assert.Equal(t, 2, table.Len())
}

func TestLoadCSVOptionalColumns(t *testing.T) {
	path := writeCSV(t, "x,y,color,size,stroke,opacity,tooltip\na,1,#111111,3,#eeeeee,0.5,hi\n")

	table, err := LoadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"#111111"}, table.Colors)
	assert.Equal(t, []float64{3}, table.Sizes)
	assert.Equal(t, []string{"#eeeeee"}, table.Strokes)
	assert.Equal(t, []float64{0.5}, table.Opacities)
	assert.Equal(t, []string{"hi"}, table.Tooltips)
}

func TestLoadCSVColumnOrderFree(t *testing.T) {
	path := writeCSV(t, "y,x\n1,a\n")

	table, err := LoadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, table.X)
	assert.Equal(t, []float64{1}, table.Y)
}

func TestLoadCSVEmptyYBecomesNaN(t *testing.T) {
	path := writeCSV(t, "x,y\na,1\nb,\nc,nan\n")

	table, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, table.Y, 3)

	assert.False(t, math.IsNaN(table.Y[0]))
	assert.True(t, math.IsNaN(table.Y[1]), "empty cells should map to NaN")
	assert.True(t, math.IsNaN(table.Y[2]), "textual markers should map to NaN")
}

func TestLoadCSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing x column", "y,z\n1,2\n"},
		{"missing y column", "x,z\na,2\n"},
		{"header only", "x,y\n"},
		{"bad y value", "x,y\na,forty\n"},
		{"bad size value", "x,y,size\na,1,big\n"},
		{"missing size value", "x,y,size\na,1,\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCSV(writeCSV(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
