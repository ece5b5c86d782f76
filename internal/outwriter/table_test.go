package outwriter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizkit/violin/internal/contract"
	"github.com/vizkit/violin/schema"
)

func TestSummarizeLabels(t *testing.T) {
	records := []schema.Record{
		{X: "a", Y: 1},
		{X: "a", Y: 2},
		{X: "b", Y: 3},
		{X: "a", Y: 4},
	}
	props := map[string]schema.NodeProperty{
		"a": {ID: 0, Label: "a"},
		"b": {ID: 1, Label: "b"},
	}

	summaries := SummarizeLabels(records, props)
	require.Len(t, summaries, 2)

	assert.Equal(t, LabelSummary{ID: 0, Label: "a", Count: 3, Share: 75}, summaries[0])
	assert.Equal(t, LabelSummary{ID: 1, Label: "b", Count: 1, Share: 25}, summaries[1])
}

func TestSummarizeLabelsEmptyRecords(t *testing.T) {
	props := map[string]schema.NodeProperty{"a": {ID: 0, Label: "a"}}

	summaries := SummarizeLabels(nil, props)
	require.Len(t, summaries, 1)

	assert.Zero(t, summaries[0].Count)
	assert.Zero(t, summaries[0].Share)
}

func TestWriteLabelTable(t *testing.T) {
	summaries := []LabelSummary{
		{ID: 0, Label: "alpha", Count: 6, Share: 60},
		{ID: 1, Label: "beta", Count: 4, Share: 40},
	}
	cfg := &contract.Config{TermWidth: 80}

	var buf bytes.Buffer
	require.NoError(t, WriteLabelTable(summaries, cfg, &buf))

	out := buf.String()
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "60.0%")
	assert.Contains(t, out, contract.DominantValue)
	assert.Contains(t, out, contract.HighValue)
	assert.Contains(t, out, "Showing 2 categories (total samples: 10)")
}

func TestWriteLabelTableTruncatesLongLabels(t *testing.T) {
	long := "this-category-name-is-way-too-long-to-fit-in-a-narrow-terminal-column"
	summaries := []LabelSummary{{ID: 0, Label: long, Count: 1, Share: 100}}
	cfg := &contract.Config{TermWidth: 40}

	var buf bytes.Buffer
	require.NoError(t, WriteLabelTable(summaries, cfg, &buf))

	assert.NotContains(t, buf.String(), long)
	assert.Contains(t, buf.String(), "...")
}
