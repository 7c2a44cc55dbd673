// Package tables — XLSX exporter.
// Writes all grids of a document as separate sheets in one workbook, with
// header and alternating-row styling matching the HTML theme.
package tables

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/gaurav-prasanna/mdpipe/core"
)

const (
	headerFill  = "1F3864"
	altRowFill  = "E8F0FE"
	borderColor = "BFBFBF"
	maxColWidth = 50
)

// XLSXExporter writes all grids into one styled workbook.
type XLSXExporter struct {
	Dir string
}

// Export writes the workbook <stem>_tables.xlsx with one sheet per grid and
// returns its path. An empty grid list writes nothing and returns "".
func (e *XLSXExporter) Export(stem string, grids []core.TableGrid) (string, error) {
	if len(grids) == 0 {
		return "", nil
	}

	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", e.Dir, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	styles, err := newStyleSet(f)
	if err != nil {
		return "", fmt.Errorf("building styles: %w", err)
	}

	for i, g := range grids {
		sheet := fmt.Sprintf("Table_%d", i+1)
		if i == 0 {
			// Rename the default sheet instead of deleting it.
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return "", fmt.Errorf("naming sheet %s: %w", sheet, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return "", fmt.Errorf("adding sheet %s: %w", sheet, err)
		}

		if err := writeSheet(f, sheet, g, styles); err != nil {
			return "", err
		}
	}
	f.SetActiveSheet(0)

	path := filepath.Join(e.Dir, stem+"_tables.xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("saving %s: %w", path, err)
	}
	return path, nil
}

// styleSet holds the three cell styles used by every sheet.
type styleSet struct {
	header, alt, base int
}

func newStyleSet(f *excelize.File) (styleSet, error) {
	border := make([]excelize.Border, 0, 4)
	for _, side := range []string{"left", "right", "top", "bottom"} {
		border = append(border, excelize.Border{Type: side, Color: borderColor, Style: 1})
	}
	align := &excelize.Alignment{Vertical: "center", WrapText: true}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Family: "Calibri", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
		Alignment: align,
		Border:    border,
	})
	if err != nil {
		return styleSet{}, err
	}

	alt, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{altRowFill}},
		Alignment: align,
		Border:    border,
	})
	if err != nil {
		return styleSet{}, err
	}

	base, err := f.NewStyle(&excelize.Style{
		Alignment: align,
		Border:    border,
	})
	if err != nil {
		return styleSet{}, err
	}

	return styleSet{header: header, alt: alt, base: base}, nil
}

// writeSheet fills one sheet with a grid. Ragged rows are written as-is;
// styling covers only the cells a row actually has.
func writeSheet(f *excelize.File, sheet string, g core.TableGrid, styles styleSet) error {
	var widths []float64

	for ri, row := range g.Rows {
		for ci, val := range row {
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+1)
			if err != nil {
				return fmt.Errorf("sheet %s: %w", sheet, err)
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return fmt.Errorf("sheet %s cell %s: %w", sheet, cell, err)
			}
			for len(widths) <= ci {
				widths = append(widths, 0)
			}
			if w := float64(len(val)); w > widths[ci] {
				widths[ci] = w
			}
		}

		if len(row) == 0 {
			continue
		}
		style := styles.base
		switch {
		case ri == 0:
			style = styles.header
		case (ri+1)%2 == 0:
			style = styles.alt
		}
		first, _ := excelize.CoordinatesToCellName(1, ri+1)
		last, _ := excelize.CoordinatesToCellName(len(row), ri+1)
		if err := f.SetCellStyle(sheet, first, last, style); err != nil {
			return fmt.Errorf("sheet %s styling: %w", sheet, err)
		}
	}

	for ci, w := range widths {
		col, err := excelize.ColumnNumberToName(ci + 1)
		if err != nil {
			return fmt.Errorf("sheet %s: %w", sheet, err)
		}
		if w+4 > maxColWidth {
			w = maxColWidth - 4
		}
		if err := f.SetColWidth(sheet, col, col, w+4); err != nil {
			return fmt.Errorf("sheet %s column width: %w", sheet, err)
		}
	}

	if err := f.SetRowHeight(sheet, 1, 20); err != nil {
		return fmt.Errorf("sheet %s row height: %w", sheet, err)
	}
	return nil
}
