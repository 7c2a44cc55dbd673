package scan

import (
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/mdpipe/core"
)

// separatorRe matches a header-alignment row: nothing but whitespace,
// dashes, pipes, and colons. Any line in a run matching it is dropped,
// wherever it appears; a data row that legitimately looks like a
// separator is lost too. Kept as observed behavior.
var separatorRe = regexp.MustCompile(`^\s*\|?[\s\-|:]+\|?\s*$`)

// Tables scans text for pipe tables in document order. A maximal run of
// consecutive candidate lines forms one occurrence; the scan pointer
// advances past the whole run, so tables never overlap and a blank or
// non-pipe line always terminates a run. A run whose every line is
// separator-like yields no grid.
func Tables(text string) []core.TableGrid {
	lines := strings.Split(text, "\n")

	var grids []core.TableGrid
	for i := 0; i < len(lines); {
		if !isTableLine(lines[i]) {
			i++
			continue
		}

		var run []string
		for i < len(lines) && isTableLine(lines[i]) {
			run = append(run, strings.TrimSpace(lines[i]))
			i++
		}

		var rows [][]string
		for _, line := range run {
			if separatorRe.MatchString(line) {
				continue
			}
			rows = append(rows, splitCells(line))
		}
		if len(rows) > 0 {
			grids = append(grids, core.TableGrid{Rows: rows})
		}
	}
	return grids
}

// isTableLine reports whether a physical line is a table candidate:
// after trimming it starts and ends with a pipe.
func isTableLine(line string) bool {
	t := strings.TrimSpace(line)
	return strings.HasPrefix(t, "|") && strings.HasSuffix(t, "|")
}

// splitCells splits one trimmed table line into trimmed cell values:
// strip one leading and one trailing pipe, split the rest on "|".
// Escaped pipes inside cell content are not supported.
func splitCells(line string) []string {
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	cells := strings.Split(line, "|")
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}
