package outwriter

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/vizkit/violin/schema"
)

//go:embed violin.html.tmpl
var violinTemplate string

var violinTmpl = template.Must(template.New("violin").Parse(violinTemplate))

// templateContent holds the substitutions injected into the template.
type templateContent struct {
	JSONData   string
	Title      string
	Width      int
	Height     int
	MinY       float64
	MaxY       float64
	XOrder     string
	Bins       int
	Mouseover  string
	Mousemove  string
	Mouseleave string
}

// Event binding snippets toggled by tooltip availability.
const (
	mouseoverBinding  = `.on("mouseover", mouseover)`
	mousemoveBinding  = `.on("mousemove", mousemove)`
	mouseleaveBinding = `.on("mouseleave", mouseleave)`
)

// mouseBindings returns the event binding snippets for the point layer.
// When no row carries a tooltip all three come back empty, which
// disables the hover box entirely.
func mouseBindings(records []schema.Record) (over, move, leave string) {
	for _, rec := range records {
		if rec.Tooltip != "" {
			return mouseoverBinding, mousemoveBinding, mouseleaveBinding
		}
	}
	return "", "", ""
}

// DataForD3 serializes the record set into the JSON array embedded in
// the artifact. Field order is x, y, color, size, stroke, opacity,
// tooltip, with y in string form.
func DataForD3(records []schema.Record) (string, error) {
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("cannot serialize records: %w", err)
	}
	return string(data), nil
}

// WriteHTML renders the violin template with the given records and
// configuration and writes it to cfg.Filepath. With Overwrite set an
// existing artifact is removed first and the rewrite waits out
// cfg.OverwriteGrace, since some filesystems surface deletes with a
// delay. With Overwrite unset an existing artifact is preserved and the
// write is skipped.
func WriteHTML(records []schema.Record, cfg schema.Config, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	content, err := buildContent(records, cfg)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := violinTmpl.Execute(&buf, content); err != nil {
		return fmt.Errorf("cannot render violin template: %w", err)
	}

	if _, err := os.Stat(cfg.Filepath); err == nil {
		if !cfg.Overwrite {
			logger.Info("File exists and overwrite is disabled, keeping it", "path", cfg.Filepath)
			return nil
		}
		logger.Info("File exists and will be overwritten", "path", cfg.Filepath)
		if err := os.Remove(cfg.Filepath); err != nil {
			return fmt.Errorf("cannot remove %q: %w", cfg.Filepath, err)
		}
		time.Sleep(cfg.OverwriteGrace)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Filepath), 0o755); err != nil {
		return fmt.Errorf("cannot create output directory: %w", err)
	}
	if err := os.WriteFile(cfg.Filepath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("cannot write %q: %w", cfg.Filepath, err)
	}
	logger.Info("Wrote chart", "path", cfg.Filepath, "bytes", buf.Len())
	return nil
}

// buildContent assembles the template substitutions from the prepared
// records and the resolved configuration.
func buildContent(records []schema.Record, cfg schema.Config) (templateContent, error) {
	jsonData, err := DataForD3(records)
	if err != nil {
		return templateContent{}, err
	}
	xOrder, err := json.Marshal(cfg.XOrder)
	if err != nil {
		return templateContent{}, fmt.Errorf("cannot serialize category order: %w", err)
	}

	over, move, leave := mouseBindings(records)
	return templateContent{
		JSONData:   jsonData,
		Title:      cfg.Title,
		Width:      cfg.FigSize[0],
		Height:     cfg.FigSize[1],
		MinY:       cfg.YLim[0],
		MaxY:       cfg.YLim[1],
		XOrder:     string(xOrder),
		Bins:       cfg.Bins,
		Mouseover:  over,
		Mousemove:  move,
		Mouseleave: leave,
	}, nil
}
