package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizkit/violin/schema"
)

func TestUniqueLabelsFirstOccurrenceOrder(t *testing.T) {
	got, err := UniqueLabels([]string{"b", "a", "b", "c", "a"}, nil)
	require.NoError(t, err)

	// Deduplicated in first-occurrence order, not sorted.
	assert.Equal(t, []string{"b", "a", "c"}, got)
}

func TestUniqueLabelsPreprocessing(t *testing.T) {
	got, err := UniqueLabels([]string{"b", "", "nan", "a", "  ", "b"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a"}, got, "missing-value markers should be dropped before dedup")
}

func TestUniqueLabelsEmpty(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
	}{
		{"nil input", nil},
		{"empty input", []string{}},
		{"only missing markers", []string{"", "nan", "none"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UniqueLabels(tt.labels, nil)
			var dataErr *schema.DataError
			assert.ErrorAs(t, err, &dataErr, "unusable labels should raise a DataError")
		})
	}
}

func TestNodeProperties(t *testing.T) {
	props, err := NodeProperties([]string{"b", "a", "b", "c", "a"}, nil)
	require.NoError(t, err)

	want := map[string]schema.NodeProperty{
		"b": {ID: 0, Label: "b"},
		"a": {ID: 1, Label: "a"},
		"c": {ID: 2, Label: "c"},
	}
	assert.Equal(t, want, props)
}

func TestLabelsFromRecords(t *testing.T) {
	records := []schema.Record{{X: "b"}, {X: "a"}, {X: "b"}}
	assert.Equal(t, []string{"b", "a", "b"}, LabelsFromRecords(records))
}

func TestOrderedLabels(t *testing.T) {
	props := map[string]schema.NodeProperty{
		"c": {ID: 2, Label: "c"},
		"b": {ID: 0, Label: "b"},
		"a": {ID: 1, Label: "a"},
	}

	// Insertion order is recovered from the dense ids.
	assert.Equal(t, []string{"b", "a", "c"}, OrderedLabels(props))
}
