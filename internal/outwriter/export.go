package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/vizkit/violin/internal/parquet"
	"github.com/vizkit/violin/schema"
)

// WriteRecords exports the cleaned record set in the requested format.
// Text and empty output files go to stdout; parquet always needs a
// file path.
func WriteRecords(records []schema.Record, mode schema.OutputMode, outputFile string, logger *slog.Logger) error {
	switch mode {
	case schema.TextOut:
		return writeWithFile(outputFile, func(w io.Writer) error {
			return writeRecordsText(w, records)
		}, "Wrote text", logger)
	case schema.JSONOut:
		return writeWithFile(outputFile, func(w io.Writer) error {
			return writeJSON(w, records)
		}, "Wrote JSON", logger)
	case schema.CSVOut:
		return writeWithFile(outputFile, func(w io.Writer) error {
			return writeRecordsCSV(w, records)
		}, "Wrote CSV", logger)
	case schema.ParquetOut:
		if outputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		rows := parquet.FromRecords(records)
		if err := parquet.WriteRecordsParquet(rows, outputFile); err != nil {
			return err
		}
		logger.Info("Wrote parquet", "path", outputFile, "rows", len(rows))
		return nil
	default:
		return fmt.Errorf("unsupported export format %q", mode)
	}
}

// writeWithFile handles the common pattern of opening a file, writing
// to it, and cleaning up. An empty path writes to stdout.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string, logger *slog.Logger) error {
	file := os.Stdout
	if outputFile != "" {
		created, err := os.Create(outputFile)
		if err != nil {
			return err
		}
		file = created
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}
	if file != os.Stdout {
		logger.Info(successMsg, "path", outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation
// consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeRecordsText prints the record set as a human-readable table,
// one row per record with the wire field order.
func writeRecordsText(w io.Writer, records []schema.Record) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"X", "Y", "Color", "Size", "Stroke", "Opacity", "Tooltip"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, rec := range records {
		data = append(data, []string{
			rec.X,
			schema.FormatY(rec.Y),
			rec.Color,
			fmt.Sprintf("%g", rec.Size),
			rec.Stroke,
			fmt.Sprintf("%g", rec.Opacity),
			rec.Tooltip,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeRecordsCSV writes the record set in CSV form, one row per
// record with the wire field order.
func writeRecordsCSV(w io.Writer, records []schema.Record) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	header := []string{"x", "y", "color", "size", "stroke", "opacity", "tooltip"}
	if err := csvWriter.Write(header); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.X,
			schema.FormatY(rec.Y),
			rec.Color,
			fmt.Sprintf("%g", rec.Size),
			rec.Stroke,
			fmt.Sprintf("%g", rec.Opacity),
			rec.Tooltip,
		}
		if err := csvWriter.Write(row); err != nil {
			return err
		}
	}
	return nil
}
