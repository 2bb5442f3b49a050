// Package export writes projected tables to row-oriented files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/okian/pbp/internal/domain/pipeline"
	"github.com/okian/pbp/pkg/metrics"
)

// WriteCSV writes the projection as CSV: header row first, then one record
// per event in table order.
func WriteCSV(w io.Writer, t *pipeline.Projection) error {
	const op = "export.write_csv"
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	for _, rec := range t.Records {
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// WriteFile writes the projection to path, creating or truncating it.
func WriteFile(path string, t *pipeline.Projection) error {
	const op = "export.write_file"
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = f.Close() }()

	if err := WriteCSV(f, t); err != nil {
		return err
	}
	metrics.RecordTableExported()
	return nil
}
