package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/mdpipe/core"
)

const sampleDoc = `# User Guide

Some intro with a [link](https://example.com).

| A | B |
|---|---|
| 1 | 2 |

` + "```go\npackage main\n```\n"

func renderDoc(t *testing.T, markdown string) *goquery.Document {
	t.Helper()

	data, err := NewHTMLRenderer().Render(markdown, core.MetaFor("user_guide.md"))
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	require.NoError(t, err)
	return doc
}

func TestHTMLRenderer_SelfContainedPage(t *testing.T) {
	data, err := NewHTMLRenderer().Render(sampleDoc, core.MetaFor("user_guide.md"))
	require.NoError(t, err)

	page := string(data)
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, "<style>")
	assert.Contains(t, page, ".md-container")
}

func TestHTMLRenderer_TitleFromStem(t *testing.T) {
	doc := renderDoc(t, sampleDoc)
	assert.Equal(t, "User Guide", doc.Find("title").Text())
}

func TestHTMLRenderer_RendersGFMTable(t *testing.T) {
	doc := renderDoc(t, sampleDoc)

	assert.Equal(t, 1, doc.Find("table").Length())
	assert.Equal(t, "A", doc.Find("th").First().Text())
	assert.Equal(t, 2, doc.Find("tbody td").Length())
}

func TestHTMLRenderer_AnnotatesCodeLanguage(t *testing.T) {
	doc := renderDoc(t, sampleDoc)

	pre := doc.Find("pre[data-lang=go]")
	require.Equal(t, 1, pre.Length())
	assert.Contains(t, pre.Find("code").AttrOr("class", ""), "language-go")
}

func TestHTMLRenderer_RendersHeadingsAndLinks(t *testing.T) {
	doc := renderDoc(t, sampleDoc)

	assert.Equal(t, "User Guide", doc.Find("h1").Text())
	href, _ := doc.Find("a").First().Attr("href")
	assert.Equal(t, "https://example.com", href)
}
