package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Share label constants for the category summary table.
const (
	DominantValue = "Dominant" // Dominant value
	HighValue     = "High"     // High value
	ModerateValue = "Moderate" // Moderate value
	LowValue      = "Low"      // Low value
)

// Color variables for console output.
var (
	DominantColor = color.New(color.FgRed, color.Bold)     // dominantColor flags a category that dwarfs the rest.
	HighColor     = color.New(color.FgMagenta, color.Bold) // highColor flags a heavily represented category.
	ModerateColor = color.New(color.FgYellow)              // moderateColor flags an average share, not bold.
	LowColor      = color.New(color.FgCyan)                // lowColor flags a sparse category.
)

// GetPlainShareLabel returns a plain text label for a category's share
// of the record set, as a percentage in [0,100]. This is the core logic
// used for CSV, JSON, and table printing.
func GetPlainShareLabel(share float64) string {
	switch {
	case share >= 50:
		return DominantValue
	case share >= 25:
		return HighValue
	case share >= 10:
		return ModerateValue
	default:
		return LowValue
	}
}

// GetColorShareLabel returns a colored share label for console output.
// It uses GetPlainShareLabel to determine the string, then applies the
// matching color.
func GetColorShareLabel(share float64) string {
	text := GetPlainShareLabel(share)

	switch text {
	case DominantValue:
		return DominantColor.Sprint(text)
	case HighValue:
		return HighColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	default: // "Low"
		return LowColor.Sprint(text)
	}
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "❌ %s: %v\n", msg, err)
	os.Exit(1)
}
