// Package tables exports extracted table grids to delimited-text files and
// styled XLSX workbooks.
package tables

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gaurav-prasanna/mdpipe/core"
)

// CSVExporter writes one CSV file per grid.
type CSVExporter struct {
	Dir string
}

// Export writes each grid as <stem>_table<N>.csv and returns the written
// paths in grid order. An empty grid list writes nothing.
func (e *CSVExporter) Export(stem string, grids []core.TableGrid) ([]string, error) {
	if len(grids) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", e.Dir, err)
	}

	paths := make([]string, 0, len(grids))
	for i, g := range grids {
		path := filepath.Join(e.Dir, fmt.Sprintf("%s_table%d.csv", stem, i+1))
		if err := writeCSV(path, g.Rows); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
