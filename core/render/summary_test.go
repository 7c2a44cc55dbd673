package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/mdpipe/core"
)

const reportDoc = `# Intro

## Setup

Visit [the docs](https://example.com/docs) first.

` + "```python:setup.py\nimport os\nprint(os.name)\n```\n" + `
| Key | Value |
|-----|-------|
| a   | 1     |
`

func TestSummarize(t *testing.T) {
	report := Summarize(reportDoc, core.MetaFor("readme.md"))

	assert.Equal(t, 1, report.HeadingCount(1))
	assert.Equal(t, 1, report.HeadingCount(2))
	assert.Equal(t, 0, report.HeadingCount(3))

	require.Len(t, report.Links, 1)
	assert.Equal(t, "the docs", report.Links[0].Text)
	assert.Equal(t, "https://example.com/docs", report.Links[0].Href)

	require.Len(t, report.CodeBlocks, 1)
	b := report.CodeBlocks[0]
	assert.Equal(t, "python", b.Lang)
	assert.Equal(t, "setup.py", b.Filename)
	assert.Equal(t, 2, b.Lines)

	require.Len(t, report.Tables, 1)
	assert.Equal(t, 2, report.Tables[0].Rows) // separator row already dropped
	assert.Equal(t, 2, report.Tables[0].Cols)
	assert.Equal(t, []string{"Key", "Value"}, report.Tables[0].Header)

	assert.Greater(t, report.Words, 0)
	assert.Greater(t, report.Lines, 10)
}

func TestSummarize_EmptyDocument(t *testing.T) {
	report := Summarize("", core.MetaFor("empty.md"))

	assert.Empty(t, report.Headings)
	assert.Empty(t, report.Links)
	assert.Empty(t, report.CodeBlocks)
	assert.Empty(t, report.Tables)
	assert.Equal(t, 0, report.Words)
}

func TestJSONRenderer_RoundTrips(t *testing.T) {
	r := NewJSONRenderer()
	assert.Equal(t, ".json", r.Extension())

	data, err := r.Render(reportDoc, core.MetaFor("readme.md"))
	require.NoError(t, err)

	var report core.DocReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "readme", report.Meta.Stem)
	assert.Len(t, report.CodeBlocks, 1)
	assert.Len(t, report.Tables, 1)
}
