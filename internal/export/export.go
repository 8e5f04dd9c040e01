// Package export writes the processed view of a grid as CSV.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"trade-search/internal/grid"
	"trade-search/internal/logger"
)

// WriteCSV writes the visible columns of every processed row (all pages) to w.
// Synthetic selection columns are written as "x" for selected rows.
func WriteCSV[T any](ctx context.Context, w io.Writer, g grid.Grid[T]) (int, error) {
	op := logger.StartOperation(ctx, "export.WriteCSV")

	cols := g.VisibleColumns()
	cw := csv.NewWriter(w)

	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.Label
	}
	if err := cw.Write(header); err != nil {
		op.EndWithError(err)
		return 0, fmt.Errorf("write header: %w", err)
	}

	rows := g.ProcessedRows()
	rec := make([]string, len(cols))
	for _, r := range rows {
		for i, c := range cols {
			if c.Synthetic {
				rec[i] = ""
				if g.IsSelected(g.Key(r)) {
					rec[i] = "x"
				}
				continue
			}
			rec[i] = g.Cell(r, c.ID)
		}
		if err := cw.Write(rec); err != nil {
			op.EndWithError(err)
			return 0, fmt.Errorf("write row %s: %w", g.Key(r), err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		op.EndWithError(err)
		return 0, err
	}
	op.End("rows", len(rows), "columns", len(cols))
	return len(rows), nil
}
