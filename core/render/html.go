// Package render provides output renderers for the mdpipe pipeline.
// This file implements the HTML renderer: goldmark GFM conversion wrapped
// in a self-contained dark-theme stylesheet.
package render

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/gaurav-prasanna/mdpipe/core"
)

// md converts Markdown to HTML with tables, strikethrough, task lists, and
// autolinks enabled. Hard wraps match the original renderer's line handling.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
)

// HTMLRenderer renders Markdown as a standalone styled HTML document.
type HTMLRenderer struct{}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Render converts Markdown into a complete HTML page with embedded CSS.
func (r *HTMLRenderer) Render(markdown string, meta core.DocMeta) ([]byte, error) {
	var body bytes.Buffer
	if err := md.Convert([]byte(markdown), &body); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}

	var out bytes.Buffer
	out.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	out.WriteString("  <meta charset=\"UTF-8\"/>\n")
	out.WriteString("  <meta name=\"viewport\" content=\"width=device-width,initial-scale=1.0\"/>\n")
	out.WriteString("  <title>" + meta.Title + "</title>\n")
	out.WriteString("  <style>\n" + stylesheet + "\n  </style>\n</head>\n<body>\n")
	out.WriteString("  <div class=\"md-container\">\n")
	out.WriteString(annotateCodeLanguages(body.String()))
	out.WriteString("\n  </div>\n</body>\n</html>\n")
	return out.Bytes(), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}

// preRe matches goldmark's <pre><code class="language-..."> openings so the
// language can be lifted onto the <pre> as a data-lang attribute, which the
// stylesheet shows as a corner label.
var preRe = regexp.MustCompile(`<pre><code class="language-([A-Za-z0-9_+#.-]+)"`)

func annotateCodeLanguages(body string) string {
	return preRe.ReplaceAllString(body, `<pre data-lang="$1"><code class="language-$1"`)
}

// stylesheet is the embedded dark theme. Kept byte-compatible with the
// original export so rendered documents diff cleanly across versions.
const stylesheet = `
:root{--bg:#0f172a;--surface:#1e293b;--border:#334155;--accent:#3b82f6;
  --accent2:#8b5cf6;--text:#e2e8f0;--muted:#94a3b8;--code-bg:#020617;
  --link:#60a5fa;--font:'Segoe UI',system-ui,sans-serif;
  --mono:'JetBrains Mono','Fira Code',monospace}
*{box-sizing:border-box;margin:0;padding:0}
body{background:var(--bg);color:var(--text);font-family:var(--font);
  font-size:16px;line-height:1.75}
.md-container{max-width:900px;margin:0 auto;padding:60px 40px}
h1,h2,h3,h4,h5,h6{font-weight:700;line-height:1.3;margin:2em 0 .6em;letter-spacing:-.02em}
h1{font-size:2.4em;background:linear-gradient(135deg,#60a5fa,#a78bfa);
  -webkit-background-clip:text;-webkit-text-fill-color:transparent;
  background-clip:text;border-bottom:2px solid var(--border);padding-bottom:.4em}
h2{font-size:1.7em;color:#93c5fd;border-bottom:1px solid var(--border);padding-bottom:.3em}
h3{font-size:1.3em;color:#a5b4fc}
h4{font-size:1.1em;color:#c4b5fd}
p{margin:.9em 0}
a{color:var(--link);text-decoration:none;border-bottom:1px solid #3b82f640}
a:hover{color:#93c5fd;border-color:#93c5fd}
code{font-family:var(--mono);font-size:.85em;background:var(--code-bg);color:#f472b6;
  padding:2px 6px;border-radius:4px;border:1px solid var(--border)}
pre{background:var(--code-bg);border:1px solid var(--border);
  border-left:4px solid var(--accent);border-radius:8px;
  padding:1.2em 1.5em;overflow-x:auto;margin:1.5em 0;position:relative}
pre code{background:transparent;color:var(--text);border:none;padding:0;
  font-size:.88em;line-height:1.6}
pre::before{content:attr(data-lang);position:absolute;top:8px;right:14px;
  font-size:.72em;color:var(--muted);text-transform:uppercase;
  letter-spacing:.08em;font-family:var(--font)}
table{width:100%;border-collapse:collapse;margin:1.8em 0;
  border-radius:8px;overflow:hidden;box-shadow:0 0 0 1px var(--border)}
thead tr{background:linear-gradient(135deg,#1e3a5f,#2d1f6e)}
th{color:#e2e8f0;font-weight:600;font-size:.85em;text-transform:uppercase;
  letter-spacing:.06em;padding:12px 16px;text-align:left}
td{padding:11px 16px;border-top:1px solid var(--border);font-size:.94em}
tbody tr:nth-child(even){background:#162032}
tbody tr:hover{background:#1a2840}
blockquote{border-left:4px solid var(--accent2);background:#1e1b4b40;
  padding:.8em 1.2em;border-radius:0 8px 8px 0;margin:1.5em 0;
  color:var(--muted);font-style:italic}
ul,ol{padding-left:1.6em;margin:.8em 0}
li{margin:.35em 0}
ul li::marker{color:var(--accent)}
ol li::marker{color:var(--accent2);font-weight:700}
hr{border:none;border-top:1px solid var(--border);margin:2.5em 0}
strong{color:#f8fafc;font-weight:700}
em{color:#c4b5fd}
`
