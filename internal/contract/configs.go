// Package contract provides configuration contracts and shared console
// utilities for the violin CLI.
package contract

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vizkit/violin/schema"
)

// ConfigRawInput holds the raw, unvalidated configuration from all
// sources (file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	Title      string  `mapstructure:"title"`
	Filepath   string  `mapstructure:"filepath"`
	Width      int     `mapstructure:"width"`
	Height     int     `mapstructure:"height"`
	Show       bool    `mapstructure:"show"`
	Overwrite  bool    `mapstructure:"overwrite"`
	GraceStr   string  `mapstructure:"grace"`
	Bins       int     `mapstructure:"bins"`
	Cmap       string  `mapstructure:"cmap"`
	YLimStr    string  `mapstructure:"ylim"`
	XOrderStr  string  `mapstructure:"x-order"`
	Size       float64 `mapstructure:"size"`
	Stroke     string  `mapstructure:"stroke"`
	Opacity    float64 `mapstructure:"opacity"`
	Tooltip    string  `mapstructure:"tooltip"`
	Output     string  `mapstructure:"output"`
	OutputFile string  `mapstructure:"output-file"`
	ColorStr   string  `mapstructure:"color"`
	TermWidth  int     `mapstructure:"term-width"`
}

// Config is the final, validated CLI configuration.
type Config struct {
	InputPath string        // Path to the input CSV table
	Chart     schema.Config // Resolved chart configuration

	// Scalar styling defaults broadcast over the input rows.
	Size    float64
	Stroke  string
	Opacity float64
	Tooltip string

	Output     schema.OutputMode // Export format for the export command
	OutputFile string            // Export destination; empty = stdout
	UseColors  bool              // Colored labels in table output
	TermWidth  int               // Terminal width override (0 = auto-detect)
}

// ProcessAndValidate validates raw input and populates cfg. The input
// CSV path comes from the positional arguments.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("input CSV path is required")
	}
	cfg.InputPath = args[0]

	if input.Bins <= 0 {
		return fmt.Errorf("bins must be positive, got %d", input.Bins)
	}

	opts := []schema.Option{
		schema.WithTitle(input.Title),
		schema.WithFilepath(input.Filepath),
		schema.WithFigSize(input.Width, input.Height),
		schema.WithShowFig(input.Show),
		schema.WithOverwrite(input.Overwrite),
		schema.WithBins(input.Bins),
		schema.WithCmap(input.Cmap),
	}

	if input.GraceStr != "" {
		grace, err := time.ParseDuration(input.GraceStr)
		if err != nil {
			return fmt.Errorf("invalid grace duration %q: %w", input.GraceStr, err)
		}
		if grace < 0 {
			return fmt.Errorf("grace duration cannot be negative")
		}
		opts = append(opts, schema.WithOverwriteGrace(grace))
	}

	if input.YLimStr != "" {
		minY, maxY, err := parseYLim(input.YLimStr)
		if err != nil {
			return err
		}
		opts = append(opts, schema.WithYLim(minY, maxY))
	}

	if input.XOrderStr != "" {
		opts = append(opts, schema.WithXOrder(splitList(input.XOrderStr)...))
	}

	cfg.Chart = schema.NewConfig(opts...)

	cfg.Size = input.Size
	cfg.Stroke = input.Stroke
	cfg.Opacity = input.Opacity
	cfg.Tooltip = input.Tooltip

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format %q", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	useColors, err := parseYesNo(input.ColorStr)
	if err != nil {
		return err
	}
	cfg.UseColors = useColors
	cfg.TermWidth = input.TermWidth

	return nil
}

// parseYLim parses a "min,max" pair of floats.
func parseYLim(value string) (float64, float64, error) {
	parts := splitList(value)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("ylim must be two comma-separated numbers, got %q", value)
	}
	minY, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid ylim minimum %q: %w", parts[0], err)
	}
	maxY, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid ylim maximum %q: %w", parts[1], err)
	}
	if minY >= maxY {
		return 0, 0, fmt.Errorf("ylim minimum must be below maximum, got %q", value)
	}
	return minY, maxY, nil
}

// splitList splits a comma-separated flag value, trimming whitespace
// and skipping empty entries.
func splitList(value string) []string {
	var parts []string
	for p := range strings.SplitSeq(value, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// parseYesNo accepts the usual spellings for a boolean-ish flag.
func parseYesNo(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "true", "1", "on", "":
		return true, nil
	case "no", "false", "0", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value %q", value)
	}
}
