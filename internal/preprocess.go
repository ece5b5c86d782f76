package internal

import "strings"

// missingMarkers are label spellings treated as absent values.
var missingMarkers = map[string]struct{}{
	"":     {},
	"nan":  {},
	"none": {},
	"null": {},
}

// PreProcessing cleans a raw label sequence: entries that are empty,
// whitespace-only or a textual missing-value marker are dropped. The
// surviving labels keep their original spelling and order.
func PreProcessing(labels []string) []string {
	cleaned := make([]string, 0, len(labels))
	for _, label := range labels {
		key := strings.ToLower(strings.TrimSpace(label))
		if _, missing := missingMarkers[key]; missing {
			continue
		}
		cleaned = append(cleaned, label)
	}
	return cleaned
}
