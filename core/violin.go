package core

import (
	"log/slog"

	"github.com/vizkit/violin/schema"
)

// Violin ties the pipeline together the way most callers use it: one
// call that extracts labels, prepares the record set and renders the
// chart. Node properties can be carried across calls by disabling
// ResetProperties on the configuration.
type Violin struct {
	Config    schema.Config
	NodeProps map[string]schema.NodeProperty
	Records   []schema.Record

	logger *slog.Logger
}

// NewViolin creates a chart builder with the given configuration. A nil
// logger falls back to slog.Default.
func NewViolin(cfg schema.Config, logger *slog.Logger) *Violin {
	return &Violin{Config: cfg, logger: ensureLogger(logger)}
}

// Plot runs the full pipeline on parallel category/value arrays and
// writes the artifact. The returned configuration carries the resolved
// layout; the builder's own configuration stays as constructed so later
// calls resolve their layout fresh.
func (v *Violin) Plot(x []string, y []float64, opts PrepareOptions) (schema.Config, error) {
	if v.Config.ResetProperties || v.NodeProps == nil {
		props, err := NodeProperties(x, v.logger)
		if err != nil {
			return v.Config, err
		}
		v.NodeProps = props
	}

	records, err := PrepareRecords(x, y, opts, v.Config, v.logger)
	if err != nil {
		return v.Config, err
	}
	v.Records = records

	return Show(records, v.NodeProps, v.Config, v.logger)
}
