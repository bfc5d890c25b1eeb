package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// WriteCSV exports the grid's current view (after any filter/sort) with
// a header row.
func (g *Grid) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := make([]string, len(g.Columns))
	for i, col := range g.Columns {
		header[i] = col.Title
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range g.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the grid to a file.
func (g *Grid) ExportCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()
	return g.WriteCSV(f)
}
