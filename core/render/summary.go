// Package render — structural summary.
// Builds the report for a document from the scanners' output plus
// lightweight heading and link extraction, and serializes it as JSON.
package render

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/mdpipe/core"
	"github.com/gaurav-prasanna/mdpipe/core/extract"
	"github.com/gaurav-prasanna/mdpipe/core/scan"
)

var (
	headingRe = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
	linkRe    = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// Summarize builds the structural report for a document.
func Summarize(markdown string, meta core.DocMeta) core.DocReport {
	report := core.DocReport{
		Meta:  meta,
		Lines: len(strings.Split(markdown, "\n")),
		Words: len(strings.Fields(markdown)),
	}

	for _, m := range headingRe.FindAllStringSubmatch(markdown, -1) {
		report.Headings = append(report.Headings, core.Heading{
			Level: len(m[1]),
			Text:  strings.TrimSpace(m[2]),
		})
	}

	for _, m := range linkRe.FindAllStringSubmatch(markdown, -1) {
		report.Links = append(report.Links, core.Link{Text: m[1], Href: m[2]})
	}

	for _, b := range scan.CodeBlocks(markdown) {
		report.CodeBlocks = append(report.CodeBlocks, core.BlockSummary{
			Lang:     b.Lang,
			Filename: extract.Filename(b),
			Line:     b.Line,
			Lines:    countBodyLines(b.Body),
		})
	}

	for _, g := range scan.Tables(markdown) {
		report.Tables = append(report.Tables, core.TableSummary{
			Rows:   len(g.Rows),
			Cols:   g.Cols(),
			Header: g.Header(),
		})
	}

	return report
}

func countBodyLines(body string) int {
	if body == "" {
		return 0
	}
	n := strings.Count(body, "\n")
	if !strings.HasSuffix(body, "\n") {
		n++
	}
	return n
}

// JSONRenderer serializes the structural report.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render converts a Markdown document into its JSON structural report.
func (r *JSONRenderer) Render(markdown string, meta core.DocMeta) ([]byte, error) {
	data, err := json.MarshalIndent(Summarize(markdown, meta), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling report: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
