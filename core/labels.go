package core

import (
	"log/slog"
	"sort"

	"github.com/vizkit/violin/internal"
	"github.com/vizkit/violin/schema"
)

// UniqueLabels derives the ordered set of distinct category labels from
// raw input. Labels are preprocessed first; the result preserves
// first-occurrence order rather than sort order.
func UniqueLabels(labels []string, logger *slog.Logger) ([]string, error) {
	logger = ensureLogger(logger)

	labels = internal.PreProcessing(labels)
	if len(labels) == 0 {
		return nil, &schema.DataError{Msg: "could not extract the labels"}
	}

	seen := make(map[string]struct{}, len(labels))
	unique := make([]string, 0, len(labels))
	for _, label := range labels {
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		unique = append(unique, label)
	}
	logger.Info("Collected unique labels", "count", len(unique))
	return unique, nil
}

// LabelsFromRecords extracts the x column from a record set, for
// callers holding a prepared table instead of a raw label sequence.
func LabelsFromRecords(records []schema.Record) []string {
	labels := make([]string, len(records))
	for i, rec := range records {
		labels[i] = rec.X
	}
	return labels
}

// NodeProperties assigns an id and display label to every unique
// category, keyed by label. Ids are dense integers from 0 in
// first-occurrence order.
func NodeProperties(labels []string, logger *slog.Logger) (map[string]schema.NodeProperty, error) {
	unique, err := UniqueLabels(labels, logger)
	if err != nil {
		return nil, err
	}
	props := make(map[string]schema.NodeProperty, len(unique))
	for i, label := range unique {
		props[label] = schema.NodeProperty{ID: i, Label: label}
	}
	return props, nil
}

// OrderedLabels returns node property keys sorted by their assigned id,
// recovering first-occurrence order from the map form.
func OrderedLabels(props map[string]schema.NodeProperty) []string {
	labels := make([]string, 0, len(props))
	for label := range props {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return props[labels[i]].ID < props[labels[j]].ID
	})
	return labels
}
