package core

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizkit/violin/schema"
)

func testProps() map[string]schema.NodeProperty {
	return map[string]schema.NodeProperty{
		"b": {ID: 0, Label: "b"},
		"a": {ID: 1, Label: "a"},
	}
}

func testRecords() []schema.Record {
	return []schema.Record{
		{X: "b", Y: 0, Color: "#000000", Size: 5, Stroke: "#ffffff", Opacity: 0.8},
		{X: "a", Y: 10, Color: "#ffffff", Size: 5, Stroke: "#ffffff", Opacity: 0.8},
	}
}

func TestResolveLayoutYLim(t *testing.T) {
	cfg := resolveLayout(testRecords(), testProps(), schema.NewConfig())

	// Spacing is 10% of the observed range on each side.
	require.Len(t, cfg.YLim, 2)
	assert.InDelta(t, -1.0, cfg.YLim[0], 1e-9)
	assert.InDelta(t, 11.0, cfg.YLim[1], 1e-9)
}

func TestResolveLayoutKeepsExplicitYLim(t *testing.T) {
	cfg := resolveLayout(testRecords(), testProps(), schema.NewConfig(schema.WithYLim(-5, 25)))

	assert.Equal(t, []float64{-5, 25}, cfg.YLim)
}

func TestResolveLayoutXOrder(t *testing.T) {
	cfg := resolveLayout(testRecords(), testProps(), schema.NewConfig())

	// Auto order follows the assigned ids, not the map iteration order.
	assert.Equal(t, []string{"b", "a"}, cfg.XOrder)
}

func TestResolveLayoutFigSize(t *testing.T) {
	cfg := resolveLayout(testRecords(), testProps(), schema.NewConfig())

	assert.Equal(t, 2*schema.WidthPerLabel, cfg.FigSize[0], "width scales with distinct categories")
	assert.Equal(t, schema.DefaultHeight, cfg.FigSize[1])

	fixed := resolveLayout(testRecords(), testProps(), schema.NewConfig(schema.WithFigSize(640, 480)))
	assert.Equal(t, [2]int{640, 480}, fixed.FigSize)
}

func TestShowWritesArtifact(t *testing.T) {
	dir := t.TempDir()
	cfg := schema.NewConfig(
		schema.WithFilepath(filepath.Join(dir, "chart.html")),
		schema.WithShowFig(false),
		schema.WithOverwriteGrace(0),
	)

	final, err := Show(testRecords(), testProps(), cfg, nil)
	require.NoError(t, err)

	content, err := os.ReadFile(final.Filepath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"x":"b"`)
	assert.Contains(t, string(content), final.Title)

	// The caller's configuration is untouched; only the returned copy
	// carries the resolved layout.
	assert.Nil(t, cfg.YLim)
	require.Len(t, final.YLim, 2)
}

func TestShowIdempotent(t *testing.T) {
	dir := t.TempDir()
	cfg := schema.NewConfig(
		schema.WithFilepath(filepath.Join(dir, "chart.html")),
		schema.WithShowFig(false),
		schema.WithOverwriteGrace(0),
	)

	final, err := Show(testRecords(), testProps(), cfg, nil)
	require.NoError(t, err)
	first, err := os.ReadFile(final.Filepath)
	require.NoError(t, err)

	_, err = Show(testRecords(), testProps(), cfg, nil)
	require.NoError(t, err)
	second, err := os.ReadFile(final.Filepath)
	require.NoError(t, err)

	assert.Equal(t, first, second, "re-rendering identical inputs should produce identical bytes")
}

func TestShowPreservesExistingWhenOverwriteDisabled(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "chart.html")
	require.NoError(t, os.WriteFile(target, []byte("keep me"), 0o644))

	cfg := schema.NewConfig(
		schema.WithFilepath(target),
		schema.WithShowFig(false),
		schema.WithOverwrite(false),
	)

	_, err := Show(testRecords(), testProps(), cfg, nil)
	require.NoError(t, err)

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(content), "overwrite=false should leave the existing artifact alone")
}

func TestShowNoRecords(t *testing.T) {
	_, err := Show(nil, testProps(), schema.NewConfig(schema.WithShowFig(false)), nil)
	var dataErr *schema.DataError
	assert.ErrorAs(t, err, &dataErr)
}

func TestYRange(t *testing.T) {
	records := []schema.Record{
		{Y: 3}, {Y: math.NaN()}, {Y: -2}, {Y: 7},
	}
	minY, maxY := yRange(records)
	assert.Equal(t, -2.0, minY)
	assert.Equal(t, 7.0, maxY)
}

func TestViolinPlotReusesProperties(t *testing.T) {
	dir := t.TempDir()
	cfg := schema.NewConfig(
		schema.WithFilepath(filepath.Join(dir, "chart.html")),
		schema.WithShowFig(false),
		schema.WithOverwriteGrace(0),
		schema.WithResetProperties(false),
	)

	v := NewViolin(cfg, nil)
	_, err := v.Plot([]string{"b", "a"}, []float64{0, 10}, DefaultPrepareOptions())
	require.NoError(t, err)
	firstProps := v.NodeProps

	_, err = v.Plot([]string{"z", "q"}, []float64{1, 2}, DefaultPrepareOptions())
	require.NoError(t, err)

	// With ResetProperties disabled the original assignment is kept.
	assert.Equal(t, firstProps, v.NodeProps)
}
