package outwriter

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/vizkit/violin/internal/contract"
	"github.com/vizkit/violin/schema"
)

// LabelSummary is one category row of the labels table.
type LabelSummary struct {
	ID    int     `json:"id"`
	Label string  `json:"label"`
	Count int     `json:"count"`
	Share float64 `json:"share"` // percentage of all records in [0,100]
}

// SummarizeLabels folds the record set into per-category summaries,
// ordered by assigned id.
func SummarizeLabels(records []schema.Record, props map[string]schema.NodeProperty) []LabelSummary {
	counts := make(map[string]int, len(props))
	for _, rec := range records {
		counts[rec.X]++
	}

	summaries := make([]LabelSummary, 0, len(props))
	for label, prop := range props {
		share := 0.0
		if len(records) > 0 {
			share = float64(counts[label]) / float64(len(records)) * 100
		}
		summaries = append(summaries, LabelSummary{
			ID:    prop.ID,
			Label: label,
			Count: counts[label],
			Share: share,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].ID < summaries[j].ID
	})
	return summaries
}

// WriteLabelTable prints the category summaries as a human-readable
// table with the share column labeled and optionally colored.
func WriteLabelTable(summaries []LabelSummary, cfg *contract.Config, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"ID", "Label", "Count", "Share", "Level"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := GetMaxLabelWidth(cfg.TermWidth)

	var data [][]string
	total := 0
	for _, s := range summaries {
		level := contract.GetPlainShareLabel(s.Share)
		if cfg.UseColors {
			level = contract.GetColorShareLabel(s.Share)
		}
		data = append(data, []string{
			strconv.Itoa(s.ID),
			truncateLabel(s.Label, maxWidth),
			strconv.Itoa(s.Count),
			fmt.Sprintf("%.1f%%", s.Share),
			level,
		})
		total += s.Count
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing %d categories (total samples: %d)\n", len(summaries), total); err != nil {
		return err
	}
	return nil
}
