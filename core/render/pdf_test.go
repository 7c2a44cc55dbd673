package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/mdpipe/core"
)

func TestNativePDF_ProducesDocument(t *testing.T) {
	markdown := "# Title\n\nA paragraph with **bold** text.\n\n- item one\n- item two\n\n```go\npackage main\n```\n\n1. first\n2. second\n"

	r := NewPDFRenderer(nil)
	data, err := r.renderNative(markdown, core.MetaFor("guide.md"))
	require.NoError(t, err)

	require.Greater(t, len(data), 500)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestNativePDF_EmptyDocument(t *testing.T) {
	r := NewPDFRenderer(nil)
	data, err := r.renderNative("", core.DocMeta{Path: "x.md", Stem: "x"})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestPDFRenderer_Extension(t *testing.T) {
	assert.Equal(t, ".pdf", NewPDFRenderer(nil).Extension())
}

func TestStripInlineMarkdown(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"**bold** text", "bold text"},
		{"__also bold__", "also bold"},
		{"see *this* word", "see this word"},
		{"run `go build` now", "run go build now"},
		{"a [label](https://example.com) link", "a label link"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stripInlineMarkdown(tt.in), "input %q", tt.in)
	}
}

// Warnings from failing external renderers surface through the callback
// rather than failing the render.
func TestPDFRenderer_WarnCallback(t *testing.T) {
	var warnings []string
	r := NewPDFRenderer(func(format string, args ...any) {
		warnings = append(warnings, format)
	})

	data, err := r.Render("# Doc\n\ntext\n", core.MetaFor("doc.md"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
	// warnings may or may not be emitted depending on installed binaries;
	// the render must succeed either way.
	_ = warnings
}
