// Package render — PDF renderer.
// Prefers external renderers operating on the styled HTML (wkhtmltopdf,
// then headless Chrome/Chromium) and falls back to a native gofpdf
// rendering of the Markdown when no binary is available, so a PDF is
// always produced. External failures degrade with warnings, never errors.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/mdpipe/core"
)

// WarnFunc receives non-fatal renderer diagnostics.
type WarnFunc func(format string, args ...any)

// PDFRenderer renders Markdown content as a PDF document.
type PDFRenderer struct {
	html *HTMLRenderer
	warn WarnFunc
}

// NewPDFRenderer creates a PDFRenderer. warn may be nil.
func NewPDFRenderer(warn WarnFunc) *PDFRenderer {
	return &PDFRenderer{html: NewHTMLRenderer(), warn: warn}
}

// Render converts Markdown into PDF bytes, trying external renderers first.
func (r *PDFRenderer) Render(markdown string, meta core.DocMeta) ([]byte, error) {
	data, err := r.renderExternal(markdown, meta)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, errNoExternalRenderer) {
		r.warnf("external PDF rendering: %v", err)
	}
	return r.renderNative(markdown, meta)
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

func (r *PDFRenderer) warnf(format string, args ...any) {
	if r.warn != nil {
		r.warn(format, args...)
	}
}

var errNoExternalRenderer = errors.New("no external PDF renderer found")

// externalRenderer is one candidate binary with its argument builder.
type externalRenderer struct {
	binary string
	args   func(htmlPath, pdfPath string) []string
}

var externalRenderers = []externalRenderer{
	{binary: "wkhtmltopdf", args: func(htmlPath, pdfPath string) []string {
		return []string{
			"--page-size", "A4",
			"--margin-top", "15mm", "--margin-bottom", "15mm",
			"--margin-left", "12mm", "--margin-right", "12mm",
			"--enable-local-file-access", "--quiet",
			htmlPath, pdfPath,
		}
	}},
	{binary: "google-chrome", args: chromeArgs},
	{binary: "chromium-browser", args: chromeArgs},
	{binary: "chromium", args: chromeArgs},
}

func chromeArgs(htmlPath, pdfPath string) []string {
	return []string{
		"--headless", "--disable-gpu", "--no-sandbox",
		"--print-to-pdf=" + pdfPath, htmlPath,
	}
}

// renderExternal writes the styled HTML to a temp directory and runs the
// first available external binary over it. Each failing binary produces a
// warning and the next one is tried.
func (r *PDFRenderer) renderExternal(markdown string, meta core.DocMeta) ([]byte, error) {
	htmlData, err := r.html.Render(markdown, meta)
	if err != nil {
		return nil, err
	}

	dir, err := os.MkdirTemp("", "mdpipe-pdf-")
	if err != nil {
		return nil, fmt.Errorf("creating temp directory: %w", err)
	}
	defer os.RemoveAll(dir)

	htmlPath := filepath.Join(dir, meta.Stem+".html")
	pdfPath := filepath.Join(dir, meta.Stem+".pdf")
	if err := os.WriteFile(htmlPath, htmlData, 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", htmlPath, err)
	}

	found := false
	for _, ext := range externalRenderers {
		bin, err := exec.LookPath(ext.binary)
		if err != nil {
			continue
		}
		found = true

		var stderr bytes.Buffer
		cmd := exec.Command(bin, ext.args(htmlPath, pdfPath)...)
		cmd.Stderr = &stderr
		if err := cmd.Run(); err != nil {
			r.warnf("%s: %v: %s", ext.binary, err, truncate(stderr.String(), 200))
			continue
		}

		data, err := os.ReadFile(pdfPath)
		if err != nil {
			r.warnf("%s produced no output: %v", ext.binary, err)
			continue
		}
		return data, nil
	}

	if !found {
		return nil, errNoExternalRenderer
	}
	return nil, fmt.Errorf("all external PDF renderers failed")
}

// renderNative is the gofpdf fallback. It handles headings with variable
// font sizes, paragraphs, code blocks with a monospace fill, and lists.
// Images and tables are not rendered here.
func (r *PDFRenderer) renderNative(markdown string, meta core.DocMeta) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	if meta.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, meta.Title, "", "L", false)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, "Source: "+meta.Path, "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	inCodeBlock := false
	for _, line := range strings.Split(markdown, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inCodeBlock = !inCodeBlock
			pdf.Ln(2)
			continue
		}
		if inCodeBlock {
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, line, "", "L", true)
			continue
		}
		renderTextLine(pdf, line)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

var orderedItemRe = regexp.MustCompile(`^\d+\.\s`)

// renderTextLine writes one non-code Markdown line as heading, list item,
// or paragraph text.
func renderTextLine(pdf *gofpdf.Fpdf, line string) {
	trimmed := strings.TrimSpace(line)

	if trimmed == "" {
		pdf.Ln(3)
		return
	}

	if strings.HasPrefix(line, "#") {
		level := 0
		for _, ch := range line {
			if ch != '#' {
				break
			}
			level++
		}
		renderHeading(pdf, strings.TrimSpace(strings.TrimLeft(line, "# ")), level)
		return
	}

	pdf.SetFont("Helvetica", "", 10)
	switch {
	case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
		text := "• " + strings.TrimSpace(trimmed[2:])
		pdf.MultiCell(0, 5, stripInlineMarkdown(text), "", "L", false)
	case orderedItemRe.MatchString(trimmed):
		pdf.MultiCell(0, 5, stripInlineMarkdown(trimmed), "", "L", false)
	default:
		pdf.MultiCell(0, 5, stripInlineMarkdown(line), "", "L", false)
	}
}

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, stripInlineMarkdown(text), "", "L", false)
	pdf.Ln(2)
}

var (
	italicRe     = regexp.MustCompile(`(?:^|\s)\*([^*]+)\*(?:\s|$)`)
	inlineCodeRe = regexp.MustCompile("`([^`]+)`")
	mdLinkRe     = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
)

// stripInlineMarkdown removes inline formatting markers for plain PDF text.
func stripInlineMarkdown(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	text = italicRe.ReplaceAllString(text, " $1 ")
	text = inlineCodeRe.ReplaceAllString(text, "$1")
	text = mdLinkRe.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n]
}
