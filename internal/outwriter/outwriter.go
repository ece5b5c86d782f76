// Package outwriter has output and writer logic for the rendered chart
// artifact and record set exports.
package outwriter

import (
	"os"

	"golang.org/x/term"
)

// GetMaxLabelWidth calculates the maximum width for category labels in
// table output based on terminal width. A positive override skips
// detection entirely.
func GetMaxLabelWidth(override int) int {
	termWidth := override
	if termWidth == 0 {
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Conservative default for narrow terminals and CI.
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the id, count, share and color columns with
	// borders and padding.
	available := termWidth - 45
	if available < 10 {
		return 10
	}
	if available > 60 {
		return 60
	}
	return available
}

// truncateLabel truncates a category label to a maximum width with an
// ellipsis suffix. Requires maxWidth > 3 so there is room for both the
// ellipsis and at least one character of content.
func truncateLabel(label string, maxWidth int) string {
	runes := []rune(label)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return label
}
