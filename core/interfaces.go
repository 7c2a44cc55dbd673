// Package core defines the shared data types and stage interfaces for mdpipe.
// The scanners produce the value types; renderers and exporters consume them.
package core

import (
	"path/filepath"
	"strings"
	"unicode"
)

// CodeBlock is one fenced code block occurrence in a document.
type CodeBlock struct {
	Lang         string // tag written after the opening fence, may be empty
	FilenameHint string // explicit filename after ':' on the fence line, may be empty
	Body         string // verbatim text between the fences, trailing newline included
	Line         int    // 1-based line number of the opening fence
}

// TableGrid is one pipe-table occurrence: ordered rows of trimmed cells.
// Rows[0] is the header row. Rows may be ragged when the source was
// malformed; the scanner does not normalize widths.
type TableGrid struct {
	Rows [][]string
}

// Header returns the header row, or nil for an empty grid.
func (g TableGrid) Header() []string {
	if len(g.Rows) == 0 {
		return nil
	}
	return g.Rows[0]
}

// Cols returns the nominal column count, defined by the header row.
func (g TableGrid) Cols() int {
	return len(g.Header())
}

// DocMeta holds metadata about the document being processed.
type DocMeta struct {
	Path  string `json:"path"`
	Stem  string `json:"stem"`
	Title string `json:"title"`
}

// MetaFor builds document metadata from a source path. The title is the
// file stem with separators turned into spaces and words capitalized.
func MetaFor(path string) DocMeta {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return DocMeta{Path: path, Stem: stem, Title: titleFromStem(stem)}
}

func titleFromStem(stem string) string {
	words := strings.FieldsFunc(stem, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	if len(words) == 0 {
		return stem
	}
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// Heading is a single heading found in the document.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link is a Markdown hyperlink found in the document.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// BlockSummary describes one code block for the structural report.
type BlockSummary struct {
	Lang     string `json:"lang"`
	Filename string `json:"filename"`
	Line     int    `json:"line"`
	Lines    int    `json:"lines"`
}

// TableSummary describes one table for the structural report.
type TableSummary struct {
	Rows   int      `json:"rows"`
	Cols   int      `json:"cols"`
	Header []string `json:"header"`
}

// DocReport is the complete structural report for a single document.
type DocReport struct {
	Meta       DocMeta        `json:"metadata"`
	Lines      int            `json:"lines"`
	Words      int            `json:"words"`
	Headings   []Heading      `json:"headings"`
	Links      []Link         `json:"links"`
	CodeBlocks []BlockSummary `json:"code_blocks"`
	Tables     []TableSummary `json:"tables"`
}

// HeadingCount returns how many headings of the given level the report holds.
func (r DocReport) HeadingCount(level int) int {
	n := 0
	for _, h := range r.Headings {
		if h.Level == level {
			n++
		}
	}
	return n
}

// Renderer converts a Markdown document into a final output format.
type Renderer interface {
	Render(markdown string, meta DocMeta) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".html", ".pdf").
	Extension() string
}
